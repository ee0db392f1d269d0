package service

import (
	"context"
	"encoding/json"
	"log"

	"food-delivery/internal/domain"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	Reader *kafka.Reader
	Store  SpendStoreInterface
}

func NewConsumer(reader *kafka.Reader, store SpendStoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting spend aggregation consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.OrderMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if msg.Type == "order_created" {
			c.ProcessOrder(msg)
		}
	}
}

func (c *Consumer) ProcessOrder(msg domain.OrderMessage) {
	if msg.Type != "order_created" {
		return
	}
	log.Printf("Processing order: OrderID=%d, CustomerID=%d, Total=%s",
		msg.OrderID, msg.CustomerID, msg.Total)

	if err := c.Store.RecordOrder(msg); err != nil {
		log.Printf("Error recording order spend: %v", err)
		return
	}

	log.Printf("Successfully processed order %d", msg.OrderID)
}

var _ ConsumerInterface = (*Consumer)(nil)
