package repository

import (
	"strings"

	"dealership-api/models"

	"gorm.io/gorm"
)

// ICustomerRepository defines the interface for customer data operations.
type ICustomerRepository interface {
	Create(customer *models.Customer) error
	FindAll(offset, limit int) ([]models.Customer, error)
	FindByID(id uint) (*models.Customer, error)
	Update(customer *models.Customer) error
	Delete(id uint) error
	SearchByName(name string) ([]models.Customer, error)
}

// CustomerRepository implements ICustomerRepository for GORM.
type CustomerRepository struct {
	DB *gorm.DB
}

// NewCustomerRepository creates a new CustomerRepository instance.
func NewCustomerRepository(db *gorm.DB) ICustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) Create(customer *models.Customer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(customer).Error
	})
}

func (r *CustomerRepository) FindAll(offset, limit int) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.DB.Order("id ASC").Offset(offset).Limit(limit).Find(&customers).Error
	return customers, err
}

func (r *CustomerRepository) FindByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.DB.First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) Update(customer *models.Customer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Save(customer).Error
	})
}

func (r *CustomerRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&models.Customer{}, id).Error
	})
}

// SearchByName matches the name field case-insensitively against a substring.
// LOWER + LIKE behaves the same on sqlite and postgres.
func (r *CustomerRepository) SearchByName(name string) ([]models.Customer, error) {
	var customers []models.Customer
	pattern := "%" + strings.ToLower(name) + "%"
	err := r.DB.Where("LOWER(name) LIKE ?", pattern).Order("id ASC").Find(&customers).Error
	return customers, err
}
