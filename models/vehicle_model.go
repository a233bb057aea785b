package models

import (
	"fmt"
	"strings"
)

// FuelType is the closed set of fuel kinds a vehicle can have.
// Persisted as a lowercase string.
type FuelType string

const (
	FuelGasoline FuelType = "gasoline"
	FuelDiesel   FuelType = "diesel"
	FuelElectric FuelType = "electric"
	FuelHybrid   FuelType = "hybrid"
)

// ParseFuelType normalizes s to lowercase and maps it to a FuelType,
// rejecting anything outside the fixed set.
func ParseFuelType(s string) (FuelType, error) {
	switch ft := FuelType(strings.ToLower(s)); ft {
	case FuelGasoline, FuelDiesel, FuelElectric, FuelHybrid:
		return ft, nil
	default:
		return "", fmt.Errorf("invalid fuel type %q", s)
	}
}

// Vehicle represents a car in the dealership inventory.
type Vehicle struct {
	ID        uint     `json:"id" gorm:"primaryKey"`
	Make      string   `json:"make" gorm:"index;not null"`
	Model     string   `json:"model" gorm:"index;not null"`
	Year      int      `json:"year"`
	Price     float64  `json:"price"`
	Color     string   `json:"color"`
	FuelType  FuelType `json:"fuel_type" gorm:"type:varchar(16);not null"`
	Available bool     `json:"available" gorm:"default:true"`
}

// VehicleRequest is the payload for creating or fully replacing a vehicle.
// Available is a pointer so an omitted field defaults to true instead of false.
type VehicleRequest struct {
	Make      string  `json:"make"`
	Model     string  `json:"model"`
	Year      int     `json:"year"`
	Price     float64 `json:"price"`
	Color     string  `json:"color"`
	FuelType  string  `json:"fuel_type"`
	Available *bool   `json:"available"`
}
