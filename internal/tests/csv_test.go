package tests

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"food-delivery/internal/domain"
	"food-delivery/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFoods(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foods.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"Pizza,Margherita with basil,15.00\nSoup,Tomato soup,4.50\n"), 0644))

	foods, err := storage.LoadFoods(path)

	require.NoError(t, err)
	require.Len(t, foods, 2)
	assert.Equal(t, "Pizza", foods[0].Name)
	assert.True(t, foods[0].Price.Equal(money("15.00")))
	assert.Equal(t, "Soup", foods[1].Name)
	assert.True(t, foods[1].Price.Equal(money("4.50")))
}

func TestLoadFoods_invalidPrice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foods.csv")
	require.NoError(t, os.WriteFile(path, []byte("Pizza,desc,cheap\n"), 0644))

	_, err := storage.LoadFoods(path)

	assert.Error(t, err)
}

func TestLoadCustomers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"John Smith,Smith,SmithSecret,100.00\n"), 0644))

	customers, err := storage.LoadCustomers(path)

	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Smith", customers[0].UserName)
	assert.True(t, customers[0].Balance.Equal(money("100.00")))
	assert.True(t, customers[0].Cart.Price.Equal(money("0")))
}

func TestExportOrders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.csv")
	orders := []domain.Order{
		{
			ID:         1,
			CustomerID: 1,
			Items: []domain.OrderItem{
				{Food: pizza, Pieces: 2, Price: money("30.00")},
				{Food: domain.Food{ID: 2, Name: "Soup", Price: money("4.50")}, Pieces: 1, Price: money("4.50")},
			},
			Price:     money("34.50"),
			CreatedAt: time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC),
		},
	}

	require.NoError(t, storage.ExportOrders(orders, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 2, "one line per order item")
	assert.Equal(t, "1,1,Pizza,2,30.00,14/03/2026 12:30,34.50", lines[0])
	assert.Equal(t, "1,1,Soup,1,4.50,14/03/2026 12:30,34.50", lines[1])
}
