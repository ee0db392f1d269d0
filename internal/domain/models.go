package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Credentials struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}

type Customer struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	UserName string          `json:"username"`
	Password string          `json:"-"`
	Balance  decimal.Decimal `json:"balance"`
	Cart     Cart            `json:"cart"`
	Orders   []Order         `json:"orders,omitempty"`
}

type Food struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// OrderItem is one line of a cart or order. Price is always
// Pieces x Food.Price at the time of the mutation.
type OrderItem struct {
	Food   Food            `json:"food"`
	Pieces int             `json:"pieces"`
	Price  decimal.Decimal `json:"price"`
}

type Cart struct {
	Items []OrderItem     `json:"items"`
	Price decimal.Decimal `json:"price"`
}

// EmptyCart returns a cart with no items and a total of exactly zero.
func EmptyCart() Cart {
	return Cart{Price: decimal.Zero}
}

type Order struct {
	ID         int64       `json:"id"`
	CustomerID int64       `json:"customer_id"`
	Items      []OrderItem `json:"items"`
	// Price can later carry discounts, so it may diverge from the item sum.
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

type CustomerSpend struct {
	CustomerID int64   `json:"customer_id"`
	Name       string  `json:"name"`
	TotalSpent float64 `json:"total_spent"`
}

type OrderMessage struct {
	Type       string          `json:"type"`
	OrderID    int64           `json:"order_id"`
	CustomerID int64           `json:"customer_id"`
	Total      decimal.Decimal `json:"total"`
	ItemCount  int             `json:"item_count"`
	Timestamp  time.Time       `json:"timestamp"`
}
