package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitializeRegistersAllCaches(t *testing.T) {
	Initialize(nil)

	assert.NotNil(t, UserByID)
	assert.NotNil(t, Users)
	assert.NotNil(t, Activities)
	assert.NotNil(t, ActivityByID)
	assert.NotNil(t, Leaderboard)
	assert.NotNil(t, LastModifiedTime)
}
