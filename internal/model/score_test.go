package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreValueTotal(t *testing.T) {
	tests := []struct {
		name  string
		value ScoreValue
		want  int
	}{
		{"Empty", ScoreValue{}, 0},
		{"Scalar", ScalarScore(7), 7},
		{"ScalarZero", ScalarScore(0), 0},
		{"Entries", ScoreEntries(1, 2, 3), 6},
		{"SingleEntry", ScoreEntries(4), 4},
		{"EntriesWinOverScalar", ScoreValue{Score: ScalarScore(9).Score, Scores: []int{1, 1}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.Total())
		})
	}
}
