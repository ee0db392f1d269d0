package cart

import (
	"errors"

	"food-delivery/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("number of pieces cannot be negative")
	ErrItemNotInCart   = errors.New("item does not exist in cart")
	ErrLowBalance      = errors.New("insufficient balance for current cart content")
	ErrEmptyCart       = errors.New("cart is empty")
)

const notInCart = -1

// LineKey extracts the identity used to match a food against existing cart
// lines. Two foods with the same key share one line.
type LineKey func(domain.Food) string

// ByName matches cart lines by food name.
func ByName(food domain.Food) string {
	return food.Name
}

// Engine applies cart mutations. Operations take a cart value and return a
// replacement value; the caller decides where to store it.
type Engine struct {
	Key LineKey
}

func NewEngine() Engine {
	return Engine{Key: ByName}
}

// Update sets the cart line for food to pieces and returns the new cart.
// pieces == 0 removes the line; an absent line with pieces == 0 is an error,
// not a no-op. The returned cart total is always the exact sum of its line
// prices. On error the input cart is returned unchanged.
func (e Engine) Update(current domain.Cart, balance decimal.Decimal, food domain.Food, pieces int) (domain.Cart, error) {
	if pieces < 0 {
		return current, ErrInvalidQuantity
	}

	key := e.Key
	if key == nil {
		key = ByName
	}

	index := findLine(current.Items, key, key(food))
	items := append([]domain.OrderItem(nil), current.Items...)
	linePrice := food.Price.Mul(decimal.NewFromInt(int64(pieces)))

	switch {
	case index == notInCart && pieces == 0:
		return current, ErrItemNotInCart
	case index == notInCart:
		if err := checkSufficientBalance(balance, items, notInCart, linePrice); err != nil {
			return current, err
		}
		items = append(items, domain.OrderItem{Food: food, Pieces: pieces, Price: linePrice})
	case pieces == 0:
		// Removal only decreases spend, so no balance check.
		items = append(items[:index], items[index+1:]...)
	default:
		if err := checkSufficientBalance(balance, items, index, linePrice); err != nil {
			return current, err
		}
		items[index] = domain.OrderItem{Food: food, Pieces: pieces, Price: linePrice}
	}

	return domain.Cart{Items: items, Price: totalOf(items)}, nil
}

func findLine(items []domain.OrderItem, key LineKey, want string) int {
	for i, item := range items {
		if key(item.Food) == want {
			return i
		}
	}
	return notInCart
}

// checkSufficientBalance verifies that amount still fits into the balance
// once all other cart lines are accounted for. The line at skip (the one
// being replaced) is excluded. It never consults historical orders; those
// were debited at their own checkout.
func checkSufficientBalance(balance decimal.Decimal, items []domain.OrderItem, skip int, amount decimal.Decimal) error {
	others := decimal.Zero
	for i, item := range items {
		if i == skip {
			continue
		}
		others = others.Add(item.Price)
	}
	if balance.Sub(others).LessThan(amount) {
		return ErrLowBalance
	}
	return nil
}

func totalOf(items []domain.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price)
	}
	return total
}
