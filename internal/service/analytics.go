package service

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"food-delivery/internal/domain"

	"github.com/redis/go-redis/v9"
)

type AnalyticsInterface interface {
	TopCustomers(limit int) ([]domain.CustomerSpend, error)
	OrdersToday() (int64, error)
}

// AnalyticsService reads the spend aggregates maintained by the consumer.
// Redis scores are approximations for ranking; the money of record stays in
// Postgres.
type AnalyticsService struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context
}

func NewAnalyticsService(db *sql.DB, rdb *redis.Client) *AnalyticsService {
	return &AnalyticsService{
		db:  db,
		rdb: rdb,
		ctx: context.Background(),
	}
}

func (s *AnalyticsService) TopCustomers(limit int) ([]domain.CustomerSpend, error) {
	results, err := s.rdb.ZRevRangeWithScores(s.ctx, "spend:alltime", 0, int64(limit-1)).Result()
	if err != nil || len(results) == 0 {
		return s.topCustomersFromDB(limit)
	}

	var top []domain.CustomerSpend
	for _, result := range results {
		customerID, _ := strconv.ParseInt(result.Member.(string), 10, 64)
		var name string
		if err := s.db.QueryRow("SELECT name FROM customers WHERE id = $1", customerID).Scan(&name); err != nil {
			continue
		}
		top = append(top, domain.CustomerSpend{
			CustomerID: customerID,
			Name:       name,
			TotalSpent: result.Score,
		})
	}
	return top, nil
}

func (s *AnalyticsService) topCustomersFromDB(limit int) ([]domain.CustomerSpend, error) {
	rows, err := s.db.Query(`
		SELECT c.id, c.name, COALESCE(SUM(o.total_price), 0) as spent
		FROM customers c
		JOIN orders o ON o.customer_id = c.id
		GROUP BY c.id, c.name
		ORDER BY spent DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var top []domain.CustomerSpend
	for rows.Next() {
		var spend domain.CustomerSpend
		if err := rows.Scan(&spend.CustomerID, &spend.Name, &spend.TotalSpent); err != nil {
			continue
		}
		top = append(top, spend)
	}
	return top, nil
}

func (s *AnalyticsService) OrdersToday() (int64, error) {
	today := time.Now().Format("2006-01-02")
	count, err := s.rdb.Get(s.ctx, "orders:daily:"+today).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return count, err
}

var _ AnalyticsInterface = (*AnalyticsService)(nil)
