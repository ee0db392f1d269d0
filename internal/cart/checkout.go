package cart

import (
	"time"

	"food-delivery/internal/domain"
)

// Checkout converts the customer's cart into an order. It returns the
// updated customer (balance debited, order appended, cart emptied) and the
// created order. The order id is assigned later by the store. On error the
// input customer is returned untouched.
//
// The whole-cart balance gate here is deliberately independent of the
// per-line guard in Update; it also covers a balance that changed between
// cart mutation and checkout.
func Checkout(customer domain.Customer, now time.Time) (domain.Customer, domain.Order, error) {
	if len(customer.Cart.Items) == 0 {
		return customer, domain.Order{}, ErrEmptyCart
	}
	if customer.Cart.Price.GreaterThan(customer.Balance) {
		return customer, domain.Order{}, ErrLowBalance
	}

	order := domain.Order{
		CustomerID: customer.ID,
		Items:      append([]domain.OrderItem(nil), customer.Cart.Items...),
		Price:      customer.Cart.Price,
		CreatedAt:  now,
	}

	updated := customer
	updated.Balance = customer.Balance.Sub(customer.Cart.Price)
	updated.Orders = append(append([]domain.Order(nil), customer.Orders...), order)
	updated.Cart = domain.EmptyCart()

	return updated, order, nil
}
