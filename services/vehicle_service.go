package services

import (
	"errors"
	"fmt"

	"dealership-api/models"
	"dealership-api/repository"

	"gorm.io/gorm"
)

// IVehicleService defines the interface for vehicle business logic.
type IVehicleService interface {
	Create(req *models.VehicleRequest) (*models.Vehicle, error)
	List(skip, limit int, makeFilter string, available *bool) ([]models.Vehicle, error)
	Get(id uint) (*models.Vehicle, error)
	Update(id uint, req *models.VehicleRequest) (*models.Vehicle, error)
	Delete(id uint) error
	SearchByModel(model string) ([]models.Vehicle, error)
}

// VehicleService implements IVehicleService.
type VehicleService struct {
	repo repository.IVehicleRepository
}

// NewVehicleService creates a new VehicleService instance.
func NewVehicleService(repo repository.IVehicleRepository) IVehicleService {
	return &VehicleService{repo: repo}
}

// Create validates the payload, including the fuel type enumeration, and
// persists a new vehicle. Availability defaults to true when omitted.
func (s *VehicleService) Create(req *models.VehicleRequest) (*models.Vehicle, error) {
	if req.Make == "" || req.Model == "" {
		return nil, fmt.Errorf("make and model are required: %w", ErrValidation)
	}
	fuel, err := models.ParseFuelType(req.FuelType)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrValidation)
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	vehicle := &models.Vehicle{
		Make:      req.Make,
		Model:     req.Model,
		Year:      req.Year,
		Price:     req.Price,
		Color:     req.Color,
		FuelType:  fuel,
		Available: available,
	}
	if err := s.repo.Create(vehicle); err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}
	return vehicle, nil
}

// List returns a page of vehicles. Both filters are optional and combinable:
// makeFilter is a case-insensitive substring, available an exact match.
func (s *VehicleService) List(skip, limit int, makeFilter string, available *bool) ([]models.Vehicle, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	return s.repo.FindAll(skip, limit, makeFilter, available)
}

func (s *VehicleService) Get(id uint) (*models.Vehicle, error) {
	vehicle, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("vehicle not found with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load vehicle %d: %w", id, err)
	}
	return vehicle, nil
}

// Update replaces every field of an existing vehicle with the payload values.
func (s *VehicleService) Update(id uint, req *models.VehicleRequest) (*models.Vehicle, error) {
	vehicle, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if req.Make == "" || req.Model == "" {
		return nil, fmt.Errorf("make and model are required: %w", ErrValidation)
	}
	fuel, err := models.ParseFuelType(req.FuelType)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrValidation)
	}

	vehicle.Make = req.Make
	vehicle.Model = req.Model
	vehicle.Year = req.Year
	vehicle.Price = req.Price
	vehicle.Color = req.Color
	vehicle.FuelType = fuel
	vehicle.Available = true
	if req.Available != nil {
		vehicle.Available = *req.Available
	}

	if err := s.repo.Update(vehicle); err != nil {
		return nil, fmt.Errorf("failed to update vehicle %d: %w", id, err)
	}
	return vehicle, nil
}

// Delete removes the vehicle unconditionally, dangling orders included.
func (s *VehicleService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete vehicle %d: %w", id, err)
	}
	return nil
}

func (s *VehicleService) SearchByModel(model string) ([]models.Vehicle, error) {
	return s.repo.SearchByModel(model)
}
