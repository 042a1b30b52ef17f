package priority

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists the ordering as a single JSON array of strings and
// broadcasts changes on a pub/sub channel.
type RedisStore struct {
	client  *redis.Client
	key     string
	channel string
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewRedisStoreWithClient(client), nil
}

// NewRedisStoreWithClient creates a store from an existing Redis client.
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{
		client:  client,
		key:     "priority:order",
		channel: "priority:changed",
	}
}

// Load reads the persisted ordering and reconciles it. Absent, unreadable, or
// malformed state degrades to the canonical default; Load never broadcasts.
func (s *RedisStore) Load(ctx context.Context) []string {
	raw, err := s.client.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return CanonicalDefault()
	}
	if err != nil {
		log.Printf("priority: load order: %v", err)
		return CanonicalDefault()
	}
	return Reconcile(decodeOrder([]byte(raw)))
}

// Save reconciles the given ordering, persists it, and publishes a change
// signal. The broadcast goes out only after the write completes, so a
// subscriber that re-loads in response is guaranteed to observe the saved
// value. Persistence errors are logged; the reconciled list is returned
// either way.
func (s *RedisStore) Save(ctx context.Context, order []string) []string {
	reconciled := Reconcile(order)

	data, err := json.Marshal(reconciled)
	if err != nil {
		log.Printf("priority: marshal order: %v", err)
		return reconciled
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		log.Printf("priority: save order: %v", err)
		return reconciled
	}
	if err := s.client.Publish(ctx, s.channel, "").Err(); err != nil {
		log.Printf("priority: publish change: %v", err)
	}
	return reconciled
}

// Reset restores the canonical default ordering and broadcasts the change.
func (s *RedisStore) Reset(ctx context.Context) []string {
	return s.Save(ctx, CanonicalDefault())
}

// Subscribe runs fn on every change broadcast until the returned function is
// called. A subscription that cannot be established is logged and fn is never
// invoked.
func (s *RedisStore) Subscribe(fn func()) func() {
	pubsub := s.client.Subscribe(context.Background(), s.channel)
	done := make(chan struct{})

	go func() {
		ch := pubsub.Channel()
		for {
			select {
			case <-done:
				return
			case _, ok := <-ch:
				if !ok {
					return
				}
				fn()
			}
		}
	}()

	return func() {
		close(done)
		if err := pubsub.Close(); err != nil {
			log.Printf("priority: close subscription: %v", err)
		}
	}
}

// Ping checks if Redis is reachable.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// decodeOrder extracts the string elements of a persisted JSON array. Values
// that are not arrays, and array elements that are not strings, are treated as
// no customization.
func decodeOrder(raw []byte) []string {
	var elements []any
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil
	}
	order := make([]string, 0, len(elements))
	for _, element := range elements {
		if title, ok := element.(string); ok {
			order = append(order, title)
		}
	}
	return order
}
