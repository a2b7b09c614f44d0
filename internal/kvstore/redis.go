package kvstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"tableside/internal/domain"
)

const channelPrefix = "kv:"

// Redis is the shared-state Store for multi-node deployments. Writes are
// published on a per-key channel so subscribers on other nodes see them.
type Redis struct {
	client *redis.Client
}

func NewRedis(addr, password string, db int) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Ping verifies connectivity; called once at startup.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return err
	}
	return r.client.Publish(ctx, channelPrefix+key, value).Err()
}

func (r *Redis) Subscribe(ctx context.Context, key string) (<-chan string, func()) {
	pubsub := r.client.Subscribe(ctx, channelPrefix+key)
	out := make(chan string, 1)
	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			select {
			case out <- msg.Payload:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, func() { _ = pubsub.Close() }
}

func (r *Redis) Close() error {
	return r.client.Close()
}
