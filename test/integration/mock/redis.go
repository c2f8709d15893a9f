package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisConn *redis.Client

// NewRedis returns a client connected to a suite-wide miniredis instance.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		mini, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisConn = redis.NewClient(&redis.Options{Addr: mini.Addr()})
	})
	return redisConn
}

// ClearRedis flushes every key, dropping cached month balances between
// scenarios.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
