package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "staffflow:notify:"

// RedisStore keeps notifications in Redis, one key per notification with the
// TTL handled by Redis itself.
type RedisStore struct {
	client *redis.Client
	logger *log.Logger
}

// NewRedis connects using REDIS_HOST / REDIS_PORT / REDIS_PASSWORD. When the
// server cannot be reached the returned store is unavailable and the caller
// should fall back to the in-memory store.
func NewRedis(logger *log.Logger) *RedisStore {
	host := strings.TrimSpace(os.Getenv("REDIS_HOST"))
	if host == "" {
		host = "localhost"
	}
	port := strings.TrimSpace(os.Getenv("REDIS_PORT"))
	if port == "" {
		port = "6379"
	}
	pass := strings.TrimSpace(os.Getenv("REDIS_PASSWORD"))

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: pass,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.Printf("[Notify] Redis unavailable, using in-memory notifications: %v", err)
		}
		_ = client.Close()
		return &RedisStore{client: nil, logger: logger}
	}

	return &RedisStore{client: client, logger: logger}
}

func (r *RedisStore) Available() bool {
	return r != nil && r.client != nil
}

func (r *RedisStore) Close() error {
	if !r.Available() {
		return nil
	}
	return r.client.Close()
}

func (r *RedisStore) Push(ctx context.Context, n Notification, ttl time.Duration) error {
	if !r.Available() {
		return fmt.Errorf("redis unavailable")
	}
	b, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, redisKeyPrefix+n.ID, b, ttl).Err()
}

func (r *RedisStore) List(ctx context.Context) ([]Notification, error) {
	if !r.Available() {
		return nil, fmt.Errorf("redis unavailable")
	}

	var keys []string
	iter := r.client.Scan(ctx, 0, redisKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []Notification{}, nil
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	out := make([]Notification, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok || s == "" {
			continue
		}
		var n Notification
		if err := json.Unmarshal([]byte(s), &n); err != nil {
			continue
		}
		out = append(out, n)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
