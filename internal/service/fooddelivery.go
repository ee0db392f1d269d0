package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"food-delivery/internal/cart"
	"food-delivery/internal/domain"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrFoodNotFound       = errors.New("food is not on the menu")
	ErrOrderNotFound      = errors.New("order not found")
)

type FoodDeliveryService struct {
	catalog   CatalogRepository
	customers CustomerRepository
	orders    OrderRepository
	carts     CartCache
	sessions  SessionStore
	publisher OrderPublisher
	qrEncoder QRGenerator
	exporter  OrderExporter
	engine    cart.Engine
	now       func() time.Time
}

func NewFoodDeliveryService(
	catalog CatalogRepository,
	customers CustomerRepository,
	orders OrderRepository,
	carts CartCache,
	sessions SessionStore,
	publisher OrderPublisher,
	qrEncoder QRGenerator,
	exporter OrderExporter,
) *FoodDeliveryService {
	return &FoodDeliveryService{
		catalog:   catalog,
		customers: customers,
		orders:    orders,
		carts:     carts,
		sessions:  sessions,
		publisher: publisher,
		qrEncoder: qrEncoder,
		exporter:  exporter,
		engine:    cart.NewEngine(),
		now:       time.Now,
	}
}

// Authenticate matches the credentials against the customer store and, on
// success, issues a session token.
func (s *FoodDeliveryService) Authenticate(ctx context.Context, credentials domain.Credentials) (*domain.Customer, string, error) {
	customer, err := s.customers.FindByUserName(ctx, credentials.UserName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up customer: %w", err)
	}
	if customer == nil || customer.Password != credentials.Password {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessions.CreateSession(ctx, customer.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	customer.Cart, err = s.carts.GetCart(ctx, customer.ID)
	if err != nil {
		return nil, "", err
	}
	return customer, token, nil
}

func (s *FoodDeliveryService) CustomerFromToken(ctx context.Context, token string) (*domain.Customer, error) {
	customerID, err := s.sessions.ResolveSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if customerID == 0 {
		return nil, ErrInvalidCredentials
	}
	customer, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrInvalidCredentials
	}
	return customer, nil
}

func (s *FoodDeliveryService) ListFoods(ctx context.Context) ([]domain.Food, error) {
	return s.catalog.ListFoods(ctx)
}

func (s *FoodDeliveryService) GetCart(ctx context.Context, customerID int64) (domain.Cart, error) {
	return s.carts.GetCart(ctx, customerID)
}

// UpdateCart sets the cart line for the named food to pieces. Balance is
// only reserved here, never debited; the debit happens at checkout.
func (s *FoodDeliveryService) UpdateCart(ctx context.Context, customerID int64, foodName string, pieces int) (domain.Cart, error) {
	food, err := s.catalog.FindFoodByName(ctx, foodName)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("failed to look up food: %w", err)
	}
	if food == nil {
		return domain.Cart{}, ErrFoodNotFound
	}

	customer, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return domain.Cart{}, err
	}
	if customer == nil {
		return domain.Cart{}, ErrCustomerNotFound
	}

	current, err := s.carts.GetCart(ctx, customerID)
	if err != nil {
		return domain.Cart{}, err
	}

	updated, err := s.engine.Update(current, customer.Balance, *food, pieces)
	if err != nil {
		return current, err
	}

	if err := s.carts.SaveCart(ctx, customerID, updated); err != nil {
		return current, fmt.Errorf("failed to store cart: %w", err)
	}
	return updated, nil
}

// Checkout finalizes the customer's cart into an order. Once the in-memory
// commit succeeded and the order is persisted, cache and publish failures
// are logged but never rolled back.
func (s *FoodDeliveryService) Checkout(ctx context.Context, customerID int64) (*domain.Order, error) {
	customer, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	customer.Cart, err = s.carts.GetCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	updated, order, err := cart.Checkout(*customer, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.orders.CreateOrder(ctx, &order, updated.Balance); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	if err := s.carts.ClearCart(ctx, customerID); err != nil {
		log.Printf("Warning: failed to clear cart for customer %d: %v", customerID, err)
	}

	if s.publisher != nil {
		msg := domain.OrderMessage{
			Type:       "order_created",
			OrderID:    order.ID,
			CustomerID: order.CustomerID,
			Total:      order.Price,
			ItemCount:  len(order.Items),
			Timestamp:  s.now(),
		}
		if err := s.publisher.PublishOrder(ctx, msg); err != nil {
			log.Printf("Warning: failed to publish order %d: %v", order.ID, err)
		}
	}

	if s.exporter != nil {
		history, err := s.orders.ListAllOrders(ctx)
		if err == nil {
			err = s.exporter.ExportOrders(history)
		}
		if err != nil {
			log.Printf("Warning: failed to export order history: %v", err)
		}
	}

	return &order, nil
}

func (s *FoodDeliveryService) ListOrders(ctx context.Context, customerID int64) ([]domain.Order, error) {
	return s.orders.ListOrders(ctx, customerID)
}

func (s *FoodDeliveryService) GetOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// OrderReceipt renders the QR receipt for one of the customer's own orders.
// Another customer's order is reported as not found, never as forbidden.
func (s *FoodDeliveryService) OrderReceipt(ctx context.Context, customerID, orderID int64) ([]byte, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, ErrOrderNotFound
	}
	return s.qrEncoder.Generate(order.ID)
}
