package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var (
	cacheOnce   sync.Once
	cacheClient *redis.Client
)

// NewRedis returns a client for the suite's shared miniredis instance, which
// backs the summary cache in scenarios. The instance is started once and
// lives for the whole run; scenarios isolate themselves with ClearRedis.
func NewRedis() *redis.Client {
	cacheOnce.Do(func() {
		mini, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		cacheClient = redis.NewClient(&redis.Options{Addr: mini.Addr()})
	})
	return cacheClient
}

// ClearRedis drops every memoized summary so scenarios cannot see each
// other's cache entries.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
