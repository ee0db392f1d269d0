package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"food-delivery/config"
	httpapi "food-delivery/internal/api/http"
	"food-delivery/internal/service"
	"food-delivery/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter("orders")
	defer writer.Close()

	repository := storage.NewPostgresRepository(db)
	if err := repository.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	if seedDir := os.Getenv("SEED_DIR"); seedDir != "" {
		seed(repository, seedDir)
	}

	carts := storage.NewRedisCache(rdb, 24*time.Hour)
	sessions := storage.NewSessionStore(rdb, 12*time.Hour)
	publisher := storage.NewKafkaPublisher(writer)
	qrEncoder := service.DefaultQRGenerator{BaseURL: os.Getenv("PUBLIC_URL")}

	var exporter service.OrderExporter
	if exportFile := os.Getenv("EXPORT_FILE"); exportFile != "" {
		exporter = storage.NewCSVExporter(exportFile)
		log.Printf("Exporting order history to %s after each checkout", exportFile)
	}

	delivery := service.NewFoodDeliveryService(
		repository, repository, repository,
		carts, sessions, publisher, qrEncoder, exporter,
	)
	analytics := service.NewAnalyticsService(db, rdb)

	handler := httpapi.NewHandler(delivery, analytics)
	httpapi.StartServer(":8080", httpapi.NewRouter(handler))
}

func seed(repository *storage.PostgresRepository, dir string) {
	ctx := context.Background()

	foodsFile := filepath.Join(dir, "foods.csv")
	if _, err := os.Stat(foodsFile); err == nil {
		foods, err := storage.LoadFoods(foodsFile)
		if err != nil {
			log.Fatal("Failed to load foods seed:", err)
		}
		if err := repository.ImportFoods(ctx, foods); err != nil {
			log.Fatal("Failed to import foods:", err)
		}
		log.Printf("Seeded %d foods from %s", len(foods), foodsFile)
	}

	customersFile := filepath.Join(dir, "customers.csv")
	if _, err := os.Stat(customersFile); err == nil {
		customers, err := storage.LoadCustomers(customersFile)
		if err != nil {
			log.Fatal("Failed to load customers seed:", err)
		}
		if err := repository.ImportCustomers(ctx, customers); err != nil {
			log.Fatal("Failed to import customers:", err)
		}
		log.Printf("Seeded %d customers from %s", len(customers), customersFile)
	}
}
