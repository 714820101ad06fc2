package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"resort-booking/internal/domain/order"
	"resort-booking/internal/pkg/config"
	"resort-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Store keeps carts in Redis keyed by user. A cart expires after the
// configured TTL of inactivity; an expired or missing cart reads as empty.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, nil, errs.Wrap(err, "failed to connect to redis")
	}

	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}

func key(userID uuid.UUID) string {
	return "cart:" + userID.String()
}

func (s *Store) Get(ctx context.Context, userID uuid.UUID) (order.Cart, error) {
	raw, err := s.client.Get(ctx, key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return order.Cart{}, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to load cart")
	}

	var c order.Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, errs.Wrap(err, "failed to decode cart")
	}
	return c, nil
}

func (s *Store) Save(ctx context.Context, userID uuid.UUID, c order.Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return errs.Wrap(err, "failed to encode cart")
	}
	if err := s.client.Set(ctx, key(userID), raw, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to save cart")
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, key(userID)).Err(); err != nil {
		return errs.Wrap(err, "failed to delete cart")
	}
	return nil
}
