package service

import (
	"context"

	"food-delivery/internal/domain"
	"food-delivery/internal/storage"

	"github.com/shopspring/decimal"
)

type FoodDeliveryInterface interface {
	Authenticate(ctx context.Context, credentials domain.Credentials) (*domain.Customer, string, error)
	CustomerFromToken(ctx context.Context, token string) (*domain.Customer, error)
	ListFoods(ctx context.Context) ([]domain.Food, error)
	GetCart(ctx context.Context, customerID int64) (domain.Cart, error)
	UpdateCart(ctx context.Context, customerID int64, foodName string, pieces int) (domain.Cart, error)
	Checkout(ctx context.Context, customerID int64) (*domain.Order, error)
	ListOrders(ctx context.Context, customerID int64) ([]domain.Order, error)
	GetOrder(ctx context.Context, orderID int64) (*domain.Order, error)
	OrderReceipt(ctx context.Context, customerID, orderID int64) ([]byte, error)
}

type CatalogRepository interface {
	ListFoods(ctx context.Context) ([]domain.Food, error)
	// FindFoodByName returns (nil, nil) when the catalog has no such food.
	FindFoodByName(ctx context.Context, name string) (*domain.Food, error)
}

type CustomerRepository interface {
	// FindByUserName returns (nil, nil) when no customer matches.
	FindByUserName(ctx context.Context, userName string) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
}

type OrderRepository interface {
	// CreateOrder persists the order and the debited balance in one
	// transaction, assigning the order id.
	CreateOrder(ctx context.Context, order *domain.Order, newBalance decimal.Decimal) error
	ListOrders(ctx context.Context, customerID int64) ([]domain.Order, error)
	ListAllOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, orderID int64) (*domain.Order, error)
}

type CartCache interface {
	// GetCart returns an empty cart when nothing is cached.
	GetCart(ctx context.Context, customerID int64) (domain.Cart, error)
	SaveCart(ctx context.Context, customerID int64, cart domain.Cart) error
	ClearCart(ctx context.Context, customerID int64) error
}

type SessionStore interface {
	CreateSession(ctx context.Context, customerID int64) (string, error)
	// ResolveSession returns (0, nil) for an unknown or expired token.
	ResolveSession(ctx context.Context, token string) (int64, error)
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, msg domain.OrderMessage) error
}

// OrderExporter dumps the full order history to an external sink after each
// checkout.
type OrderExporter interface {
	ExportOrders(orders []domain.Order) error
}

type SpendStoreInterface interface {
	RecordOrder(msg domain.OrderMessage) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessOrder(msg domain.OrderMessage)
}

var _ FoodDeliveryInterface = (*FoodDeliveryService)(nil)
var _ SpendStoreInterface = (*storage.SpendStore)(nil)
