package cache

import (
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when the requested key holds no value.
var ErrNotFound = errors.New("cache: not found")

var client *redis.Client

// Populate sets the redis client all Set caches are backed by. It must be called
// before any Set is used; NewSet itself is safe to call at init time.
func Populate(c *redis.Client) {
	client = c
}
