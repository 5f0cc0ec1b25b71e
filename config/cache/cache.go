package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var rdb *redis.Client

const defaultTTL = 15 * time.Minute

var ErrCacheDisabled = errors.New("cache disabled")

/*
* Connect to redis when REDIS_ADDR is set
* The cache is best effort, callers log and carry on when it fails
 */
func Connect() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, cache disabled")
		return
	}
	rdb = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
}

/*
* Marshal the value and set it with the default TTL
 */
func SetCache(ctx context.Context, key string, value interface{}) error {
	if rdb == nil {
		return ErrCacheDisabled
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, raw, defaultTTL).Err()
}

/*
* Fetch and unmarshal into out, redis.Nil when absent
 */
func GetCache(ctx context.Context, key string, out interface{}) error {
	if rdb == nil {
		return ErrCacheDisabled
	}
	raw, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func DeleteCache(ctx context.Context, key string) error {
	if rdb == nil {
		return ErrCacheDisabled
	}
	return rdb.Del(ctx, key).Err()
}
