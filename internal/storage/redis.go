package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"food-delivery/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisCache holds the per-session shopping cart. The cart is the live,
// uncommitted state; it never survives past checkout or cache expiry.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) cartKey(customerID int64) string {
	return "cart:" + strconv.FormatInt(customerID, 10)
}

func (c *RedisCache) GetCart(ctx context.Context, customerID int64) (domain.Cart, error) {
	payload, err := c.Client.Get(ctx, c.cartKey(customerID)).Bytes()
	if err == redis.Nil {
		return domain.EmptyCart(), nil
	}
	if err != nil {
		return domain.Cart{}, err
	}

	var cart domain.Cart
	if err := json.Unmarshal(payload, &cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

func (c *RedisCache) SaveCart(ctx context.Context, customerID int64, cart domain.Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.cartKey(customerID), payload, c.TTL).Err()
}

func (c *RedisCache) ClearCart(ctx context.Context, customerID int64) error {
	return c.Client.Del(ctx, c.cartKey(customerID)).Err()
}

// SessionStore maps bearer tokens to customer ids.
type SessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{Client: client, TTL: ttl}
}

func (s *SessionStore) sessionKey(token string) string {
	return "session:" + token
}

func (s *SessionStore) CreateSession(ctx context.Context, customerID int64) (string, error) {
	token := uuid.NewString()
	if err := s.Client.Set(ctx, s.sessionKey(token), customerID, s.TTL).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *SessionStore) ResolveSession(ctx context.Context, token string) (int64, error) {
	customerID, err := s.Client.Get(ctx, s.sessionKey(token)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return customerID, nil
}
