// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"vetly/config"

	"github.com/go-redis/redis/v8"
)

var (
	// ScheduleCacheClient caches fetched day schedules, short TTL.
	ScheduleCacheClient *redis.Client
	// NameCacheClient backs the doctor-name resolver.
	NameCacheClient *redis.Client
)

// InitScheduleCache initializes the Redis client for day-schedule caching.
func InitScheduleCache() {
	ScheduleCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisScheduleDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ScheduleCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Schedule Cache): %v", err)
	}
}

// GetScheduleCacheClient returns the day-schedule cache client.
func GetScheduleCacheClient() *redis.Client {
	if ScheduleCacheClient == nil {
		InitScheduleCache()
	}
	return ScheduleCacheClient
}

// InitNameCache initializes the Redis client for doctor-name caching.
func InitNameCache() {
	NameCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNameDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := NameCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Name Cache): %v", err)
	}
}

// GetNameCacheClient returns the doctor-name cache client.
func GetNameCacheClient() *redis.Client {
	if NameCacheClient == nil {
		InitNameCache()
	}
	return NameCacheClient
}
