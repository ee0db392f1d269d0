package storage

import (
	"context"
	"strconv"
	"time"

	"food-delivery/internal/domain"

	"github.com/redis/go-redis/v9"
)

// SpendStore keeps Redis-side spend aggregates fed by order_created events.
type SpendStore struct {
	rdb *redis.Client
	ctx context.Context
}

func NewSpendStore(rdb *redis.Client) *SpendStore {
	return &SpendStore{
		rdb: rdb,
		ctx: context.Background(),
	}
}

func (s *SpendStore) RecordOrder(msg domain.OrderMessage) error {
	total, _ := msg.Total.Float64()
	member := strconv.FormatInt(msg.CustomerID, 10)
	if err := s.rdb.ZIncrBy(s.ctx, "spend:alltime", total, member).Err(); err != nil {
		return err
	}

	day := msg.Timestamp.Format("2006-01-02")
	dailyKey := "orders:daily:" + day
	if err := s.rdb.Incr(s.ctx, dailyKey).Err(); err != nil {
		return err
	}
	s.rdb.Expire(s.ctx, dailyKey, 7*24*time.Hour)
	return nil
}
