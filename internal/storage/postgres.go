package storage

import (
	"context"
	"database/sql"
	"fmt"

	"food-delivery/internal/domain"

	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) ListFoods(ctx context.Context) ([]domain.Food, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, COALESCE(description, ''), price
		FROM foods
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var foods []domain.Food
	for rows.Next() {
		var food domain.Food
		if err := rows.Scan(&food.ID, &food.Name, &food.Description, &food.Price); err != nil {
			continue
		}
		foods = append(foods, food)
	}
	return foods, rows.Err()
}

func (r *PostgresRepository) FindFoodByName(ctx context.Context, name string) (*domain.Food, error) {
	var food domain.Food
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, COALESCE(description, ''), price
		FROM foods
		WHERE name = $1`, name).
		Scan(&food.ID, &food.Name, &food.Description, &food.Price)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *PostgresRepository) FindByUserName(ctx context.Context, userName string) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, username, password, balance
		FROM customers
		WHERE username = $1`, userName).
		Scan(&customer.ID, &customer.Name, &customer.UserName, &customer.Password, &customer.Balance)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	customer.Cart = domain.EmptyCart()
	return &customer, nil
}

func (r *PostgresRepository) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, username, password, balance
		FROM customers
		WHERE id = $1`, id).
		Scan(&customer.ID, &customer.Name, &customer.UserName, &customer.Password, &customer.Balance)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	customer.Cart = domain.EmptyCart()
	return &customer, nil
}

// CreateOrder writes the order, its items and the debited customer balance
// in a single transaction.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order, newBalance decimal.Decimal) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"UPDATE customers SET balance = $1 WHERE id = $2",
		newBalance, order.CustomerID); err != nil {
		return err
	}

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (customer_id, total_price, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, order.CustomerID, order.Price, order.CreatedAt).Scan(&order.ID); err != nil {
		return err
	}

	for _, item := range order.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, food_id, food_name, unit_price, pieces, price)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, order.ID, item.Food.ID, item.Food.Name, item.Food.Price, item.Pieces, item.Price); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) ListOrders(ctx context.Context, customerID int64) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, customer_id, total_price, created_at
		FROM orders
		WHERE customer_id = $1
		ORDER BY id
	`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.CustomerID, &order.Price, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.orderItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PostgresRepository) ListAllOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, customer_id, total_price, created_at
		FROM orders
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.CustomerID, &order.Price, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.orderItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, customer_id, total_price, created_at
		FROM orders
		WHERE id = $1
	`, orderID).Scan(&order.ID, &order.CustomerID, &order.Price, &order.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	order.Items, err = r.orderItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PostgresRepository) orderItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT food_id, food_name, unit_price, pieces, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.Food.ID, &item.Food.Name, &item.Food.Price, &item.Pieces, &item.Price); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ImportFoods loads catalog rows, skipping names that already exist.
func (r *PostgresRepository) ImportFoods(ctx context.Context, foods []domain.Food) error {
	for _, food := range foods {
		if _, err := r.DB.ExecContext(ctx, `
			INSERT INTO foods (name, description, price)
			VALUES ($1, $2, $3)
			ON CONFLICT (name) DO NOTHING
		`, food.Name, food.Description, food.Price); err != nil {
			return fmt.Errorf("import food %q: %w", food.Name, err)
		}
	}
	return nil
}

func (r *PostgresRepository) ImportCustomers(ctx context.Context, customers []domain.Customer) error {
	for _, customer := range customers {
		if _, err := r.DB.ExecContext(ctx, `
			INSERT INTO customers (name, username, password, balance)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (username) DO NOTHING
		`, customer.Name, customer.UserName, customer.Password, customer.Balance); err != nil {
			return fmt.Errorf("import customer %q: %w", customer.UserName, err)
		}
	}
	return nil
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS customers (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			balance NUMERIC(12,2) NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS foods (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			description TEXT,
			price NUMERIC(12,2) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id BIGSERIAL PRIMARY KEY,
			customer_id BIGINT NOT NULL REFERENCES customers(id),
			total_price NUMERIC(12,2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id BIGSERIAL PRIMARY KEY,
			order_id BIGINT NOT NULL REFERENCES orders(id),
			food_id BIGINT NOT NULL,
			food_name TEXT NOT NULL,
			unit_price NUMERIC(12,2) NOT NULL,
			pieces INT NOT NULL,
			price NUMERIC(12,2) NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
