package services

import (
	"errors"
	"fmt"

	"dealership-api/models"
	"dealership-api/repository"

	"gorm.io/gorm"
)

// ICustomerService defines the interface for customer business logic.
type ICustomerService interface {
	Create(req *models.CustomerRequest) (*models.Customer, error)
	List(skip, limit int) ([]models.Customer, error)
	Get(id uint) (*models.Customer, error)
	Update(id uint, req *models.CustomerRequest) (*models.Customer, error)
	Delete(id uint) error
	SearchByName(name string) ([]models.Customer, error)
}

// CustomerService implements ICustomerService.
type CustomerService struct {
	repo repository.ICustomerRepository
}

// NewCustomerService creates a new CustomerService instance.
func NewCustomerService(repo repository.ICustomerRepository) ICustomerService {
	return &CustomerService{repo: repo}
}

func validateCustomerRequest(req *models.CustomerRequest) error {
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Address == "" {
		return fmt.Errorf("name, email, phone and address are required: %w", ErrValidation)
	}
	return nil
}

// Create validates the payload and persists a new customer. A duplicate
// email surfaces as a validation error.
func (s *CustomerService) Create(req *models.CustomerRequest) (*models.Customer, error) {
	if err := validateCustomerRequest(req); err != nil {
		return nil, err
	}

	customer := &models.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := s.repo.Create(customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("email %s is already registered: %w", req.Email, ErrValidation)
		}
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

// List returns up to limit customers starting after skip, by ascending id.
// Limit defaults to 100 when unset.
func (s *CustomerService) List(skip, limit int) ([]models.Customer, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	return s.repo.FindAll(skip, limit)
}

func (s *CustomerService) Get(id uint) (*models.Customer, error) {
	customer, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer not found with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load customer %d: %w", id, err)
	}
	return customer, nil
}

// Update replaces every field of an existing customer with the payload
// values. There is no partial update.
func (s *CustomerService) Update(id uint, req *models.CustomerRequest) (*models.Customer, error) {
	customer, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := validateCustomerRequest(req); err != nil {
		return nil, err
	}

	customer.Name = req.Name
	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.Address = req.Address

	if err := s.repo.Update(customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("email %s is already registered: %w", req.Email, ErrValidation)
		}
		return nil, fmt.Errorf("failed to update customer %d: %w", id, err)
	}
	return customer, nil
}

// Delete removes the customer unconditionally. Orders referencing it are
// left in place with a dangling customer_id.
func (s *CustomerService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete customer %d: %w", id, err)
	}
	return nil
}

func (s *CustomerService) SearchByName(name string) ([]models.Customer, error) {
	return s.repo.SearchByName(name)
}
