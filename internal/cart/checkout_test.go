package cart_test

import (
	"testing"
	"time"

	"food-delivery/internal/cart"
	"food-delivery/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customerWithCart(balance string, items ...domain.OrderItem) domain.Customer {
	c := domain.Customer{
		ID:      1,
		Name:    "Smith",
		Balance: money(balance),
		Cart:    domain.EmptyCart(),
	}
	for _, item := range items {
		c.Cart.Items = append(c.Cart.Items, item)
		c.Cart.Price = c.Cart.Price.Add(item.Price)
	}
	return c
}

func TestCheckout_debitsExactlyOnce(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)
	customer := customerWithCart("100.00", domain.OrderItem{Food: pizza, Pieces: 1, Price: money("15.00")})

	updated, order, err := cart.Checkout(customer, now)

	require.NoError(t, err)
	assert.True(t, updated.Balance.Equal(money("85.00")), "expected balance 85.00, got %s", updated.Balance)
	assert.Empty(t, updated.Cart.Items)
	assert.True(t, updated.Cart.Price.Equal(money("0")))
	require.Len(t, updated.Orders, 1)
	assert.Equal(t, order, updated.Orders[0])
	assert.Equal(t, customer.Cart.Items, order.Items)
	assert.True(t, order.Price.Equal(money("15.00")))
	assert.Equal(t, now, order.CreatedAt)
}

func TestCheckout_emptyCartRejected(t *testing.T) {
	customer := customerWithCart("100.00")

	updated, _, err := cart.Checkout(customer, time.Now())

	assert.ErrorIs(t, err, cart.ErrEmptyCart)
	assert.Equal(t, customer, updated)
}

func TestCheckout_lowBalanceRejected(t *testing.T) {
	// Balance dropped below the cart total between mutation and checkout.
	customer := customerWithCart("10.00", domain.OrderItem{Food: pizza, Pieces: 1, Price: money("15.00")})

	updated, _, err := cart.Checkout(customer, time.Now())

	assert.ErrorIs(t, err, cart.ErrLowBalance)
	assert.Equal(t, customer, updated, "failed checkout must not partially apply")
}

func TestCheckout_orderSnapshotIsIsolated(t *testing.T) {
	customer := customerWithCart("100.00",
		domain.OrderItem{Food: pizza, Pieces: 1, Price: money("15.00")},
		domain.OrderItem{Food: soup, Pieces: 2, Price: money("9.00")},
	)

	updated, order, err := cart.Checkout(customer, time.Now())
	require.NoError(t, err)

	// Mutating the new cart must not reach into the finalized order.
	engine := cart.NewEngine()
	next, err := engine.Update(updated.Cart, updated.Balance, soup, 5)
	require.NoError(t, err)
	require.Len(t, next.Items, 1)

	require.Len(t, order.Items, 2)
	assert.Equal(t, 1, order.Items[0].Pieces)
	assert.True(t, order.Price.Equal(money("24.00")))
}

func TestCheckout_keepsOrderHistoryAppendOnly(t *testing.T) {
	customer := customerWithCart("100.00", domain.OrderItem{Food: soup, Pieces: 1, Price: money("4.50")})
	customer.Orders = []domain.Order{{ID: 7, CustomerID: 1, Price: money("20.00")}}

	updated, order, err := cart.Checkout(customer, time.Now())

	require.NoError(t, err)
	require.Len(t, updated.Orders, 2)
	assert.Equal(t, int64(7), updated.Orders[0].ID)
	assert.Equal(t, order, updated.Orders[1])
	// The input customer's history is not aliased.
	assert.Len(t, customer.Orders, 1)
}
