package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"food-delivery/internal/domain"

	"github.com/shopspring/decimal"
)

// CSV seed and export plumbing. Seed files use one record per line:
//
//	foods.csv:     name,description,price
//	customers.csv: name,username,password,balance
//
// Exported orders use one line per order item:
//
//	orderID,customerID,foodName,pieces,itemPrice,createdAt,orderTotal

const exportTimeLayout = "02/01/2006 15:04"

func LoadFoods(path string) ([]domain.Food, error) {
	records, err := readRecords(path, 3)
	if err != nil {
		return nil, err
	}

	var foods []domain.Food
	for _, record := range records {
		price, err := decimal.NewFromString(record[2])
		if err != nil {
			return nil, fmt.Errorf("invalid price %q for food %q: %w", record[2], record[0], err)
		}
		foods = append(foods, domain.Food{
			Name:        record[0],
			Description: record[1],
			Price:       price,
		})
	}
	return foods, nil
}

func LoadCustomers(path string) ([]domain.Customer, error) {
	records, err := readRecords(path, 4)
	if err != nil {
		return nil, err
	}

	var customers []domain.Customer
	for _, record := range records {
		balance, err := decimal.NewFromString(record[3])
		if err != nil {
			return nil, fmt.Errorf("invalid balance %q for customer %q: %w", record[3], record[1], err)
		}
		customers = append(customers, domain.Customer{
			Name:     record[0],
			UserName: record[1],
			Password: record[2],
			Balance:  balance,
			Cart:     domain.EmptyCart(),
		})
	}
	return customers, nil
}

func readRecords(path string, fields int) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = fields

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return records, nil
}

// CSVExporter writes the order history to a fixed file after each checkout.
type CSVExporter struct {
	Path string
}

func NewCSVExporter(path string) *CSVExporter {
	return &CSVExporter{Path: path}
}

func (e *CSVExporter) ExportOrders(orders []domain.Order) error {
	return ExportOrders(orders, e.Path)
}

// ExportOrders appends nothing and overwrites the file; orders are the full
// history, so the result is always complete.
func ExportOrders(orders []domain.Order, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	for _, order := range orders {
		for _, item := range order.Items {
			record := []string{
				strconv.FormatInt(order.ID, 10),
				strconv.FormatInt(order.CustomerID, 10),
				item.Food.Name,
				strconv.Itoa(item.Pieces),
				item.Price.String(),
				order.CreatedAt.Format(exportTimeLayout),
				order.Price.String(),
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}
	return writer.Error()
}
