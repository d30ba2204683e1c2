// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"growlytics/config"

	"github.com/go-redis/redis/v8"
)

var (
	// AuthCacheClient is the dedicated client for auth-session caching.
	AuthCacheClient *redis.Client
	// StreamClient carries the pub/sub traffic behind collection
	// subscriptions.
	StreamClient *redis.Client
)

// InitAuthCache initializes the Redis client for auth-session caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for auth-session caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// InitStreamClient initializes the Redis client used for change
// notifications.
func InitStreamClient() {
	StreamClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisStreamDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := StreamClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Stream): %v", err)
	}
}

// GetStreamClient returns the Redis client for change notifications.
func GetStreamClient() *redis.Client {
	if StreamClient == nil {
		InitStreamClient()
	}
	return StreamClient
}
