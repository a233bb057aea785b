package repository_test

import (
	"fmt"
	"strings"
	"testing"

	"dealership-api/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory SQLite database with the same GORM
// options the application uses. The DSN is derived from the test name so
// parallel tests never share state.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Customer{}, &models.Vehicle{}, &models.Order{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, name, email string) *models.Customer {
	t.Helper()
	customer := &models.Customer{Name: name, Email: email, Phone: "555-0100", Address: "Calle 1"}
	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}
	return customer
}

func seedVehicle(t *testing.T, db *gorm.DB, makeName, model string, available bool) *models.Vehicle {
	t.Helper()
	vehicle := &models.Vehicle{
		Make: makeName, Model: model, Year: 2022, Price: 20000,
		Color: "white", FuelType: models.FuelGasoline, Available: available,
	}
	if err := db.Create(vehicle).Error; err != nil {
		t.Fatalf("failed to seed vehicle: %v", err)
	}
	return vehicle
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return n
}
