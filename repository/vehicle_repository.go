package repository

import (
	"strings"

	"dealership-api/models"

	"gorm.io/gorm"
)

// IVehicleRepository defines the interface for vehicle data operations.
type IVehicleRepository interface {
	Create(vehicle *models.Vehicle) error
	FindAll(offset, limit int, makeFilter string, available *bool) ([]models.Vehicle, error)
	FindByID(id uint) (*models.Vehicle, error)
	Update(vehicle *models.Vehicle) error
	Delete(id uint) error
	SearchByModel(model string) ([]models.Vehicle, error)
}

// VehicleRepository implements IVehicleRepository for GORM.
type VehicleRepository struct {
	DB *gorm.DB
}

// NewVehicleRepository creates a new VehicleRepository instance.
func NewVehicleRepository(db *gorm.DB) IVehicleRepository {
	return &VehicleRepository{DB: db}
}

func (r *VehicleRepository) Create(vehicle *models.Vehicle) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(vehicle).Error
	})
}

// FindAll lists vehicles with two optional filters: a case-insensitive
// substring match on make and an exact match on availability.
func (r *VehicleRepository) FindAll(offset, limit int, makeFilter string, available *bool) ([]models.Vehicle, error) {
	q := r.DB.Model(&models.Vehicle{})
	if makeFilter != "" {
		q = q.Where("LOWER(make) LIKE ?", "%"+strings.ToLower(makeFilter)+"%")
	}
	if available != nil {
		q = q.Where("available = ?", *available)
	}

	var vehicles []models.Vehicle
	err := q.Order("id ASC").Offset(offset).Limit(limit).Find(&vehicles).Error
	return vehicles, err
}

func (r *VehicleRepository) FindByID(id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.DB.First(&vehicle, id).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) Update(vehicle *models.Vehicle) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Save(vehicle).Error
	})
}

func (r *VehicleRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&models.Vehicle{}, id).Error
	})
}

func (r *VehicleRepository) SearchByModel(model string) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	pattern := "%" + strings.ToLower(model) + "%"
	err := r.DB.Where("LOWER(model) LIKE ?", pattern).Order("id ASC").Find(&vehicles).Error
	return vehicles, err
}
