package main

import (
	"context"

	"food-delivery/config"
	"food-delivery/internal/service"
	"food-delivery/internal/storage"
)

func main() {
	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader("orders", "spend-aggregator")
	defer reader.Close()

	store := storage.NewSpendStore(rdb)
	consumer := service.NewConsumer(reader, store)
	consumer.Start(context.Background())
}
