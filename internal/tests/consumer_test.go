package tests

import (
	"testing"
	"time"

	"food-delivery/internal/domain"
	"food-delivery/internal/mocks"
	"food-delivery/internal/service"
)

func TestConsumer_ProcessOrder(t *testing.T) {
	t.Run("records_order_created", func(t *testing.T) {
		store := mocks.NewSpendStoreInterface(t)
		consumer := service.NewConsumer(nil, store)

		msg := domain.OrderMessage{
			Type:       "order_created",
			OrderID:    42,
			CustomerID: 1,
			Total:      money("15.00"),
			ItemCount:  1,
			Timestamp:  time.Now(),
		}
		store.On("RecordOrder", msg).Return(nil).Once()

		consumer.ProcessOrder(msg)
	})

	t.Run("ignores_other_message_types", func(t *testing.T) {
		store := mocks.NewSpendStoreInterface(t)
		consumer := service.NewConsumer(nil, store)

		consumer.ProcessOrder(domain.OrderMessage{Type: "customer_updated"})
	})

	t.Run("store_error_is_swallowed", func(t *testing.T) {
		store := mocks.NewSpendStoreInterface(t)
		consumer := service.NewConsumer(nil, store)

		msg := domain.OrderMessage{Type: "order_created", OrderID: 7}
		store.On("RecordOrder", msg).Return(errFailed).Once()

		consumer.ProcessOrder(msg)
	})
}
