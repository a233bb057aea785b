package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"dealership-api/models"
	"dealership-api/repository"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// IOrderService defines the interface for order business logic.
type IOrderService interface {
	Create(req *models.OrderRequest) (*models.Order, error)
	List(skip, limit int, status string) ([]models.Order, error)
	Get(id uint) (*models.Order, error)
	Update(id uint, req *models.OrderRequest) (*models.Order, error)
	Delete(id uint) error
	ListByCustomer(customerID uint) ([]models.Order, error)
	SetStatus(id uint, status string) (*models.Order, error)
}

// OrderService implements IOrderService. Order creation is the one operation
// with cross-entity checks: both referenced records must exist before the
// insert happens.
type OrderService struct {
	orders    repository.IOrderRepository
	customers repository.ICustomerRepository
	vehicles  repository.IVehicleRepository
	publisher IEventPublisher
}

// NewOrderService creates a new OrderService instance.
func NewOrderService(
	orders repository.IOrderRepository,
	customers repository.ICustomerRepository,
	vehicles repository.IVehicleRepository,
	publisher IEventPublisher,
) IOrderService {
	return &OrderService{
		orders:    orders,
		customers: customers,
		vehicles:  vehicles,
		publisher: publisher,
	}
}

// Create checks that the referenced customer and vehicle exist, validates
// the status (defaulting to pending), and inserts the order with the server
// clock as creation timestamp. The returned order embeds the resolved
// customer and vehicle. A publish failure is logged but never fails the
// request: the order is already durable at that point.
func (s *OrderService) Create(req *models.OrderRequest) (*models.Order, error) {
	customer, err := s.customers.FindByID(req.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer not found with ID %d: %w", req.CustomerID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load customer %d: %w", req.CustomerID, err)
	}

	vehicle, err := s.vehicles.FindByID(req.VehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("vehicle not found with ID %d: %w", req.VehicleID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load vehicle %d: %w", req.VehicleID, err)
	}

	status := models.StatusPending
	if req.Status != "" {
		status, err = models.ParseOrderStatus(req.Status)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrValidation)
		}
	}

	order := &models.Order{
		CustomerID: req.CustomerID,
		VehicleID:  req.VehicleID,
		OrderDate:  time.Now(),
		Status:     status,
		Total:      req.Total,
	}
	if err := s.orders.Create(order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}
	order.Customer = *customer
	order.Vehicle = *vehicle

	if err := s.publisher.PublishOrderEvent(EventOrderCreated, order); err != nil {
		logger.Error().Err(err).Uint("order_id", order.ID).Msg("failed to publish order created event")
	}
	return order, nil
}

// List returns a page of orders with an optional status filter.
func (s *OrderService) List(skip, limit int, status string) ([]models.Order, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}

	var statusFilter models.OrderStatus
	if status != "" {
		parsed, err := models.ParseOrderStatus(status)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrValidation)
		}
		statusFilter = parsed
	}
	return s.orders.FindAll(skip, limit, statusFilter)
}

func (s *OrderService) Get(id uint) (*models.Order, error) {
	order, err := s.orders.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order not found with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load order %d: %w", id, err)
	}
	return order, nil
}

// Update replaces customer_id, vehicle_id, status and total of an existing
// order. Unlike Create, the new references are not checked for existence;
// the creation timestamp stays untouched.
func (s *OrderService) Update(id uint, req *models.OrderRequest) (*models.Order, error) {
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	status := models.StatusPending
	if req.Status != "" {
		status, err = models.ParseOrderStatus(req.Status)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrValidation)
		}
	}

	order.CustomerID = req.CustomerID
	order.VehicleID = req.VehicleID
	order.Status = status
	order.Total = req.Total

	if err := s.orders.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order %d: %w", id, err)
	}
	// Reload so the embedded customer and vehicle reflect the new references.
	return s.Get(id)
}

func (s *OrderService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.orders.Delete(id); err != nil {
		return fmt.Errorf("failed to delete order %d: %w", id, err)
	}
	return nil
}

// ListByCustomer returns every order referencing the customer, unbounded.
func (s *OrderService) ListByCustomer(customerID uint) ([]models.Order, error) {
	return s.orders.FindByCustomer(customerID)
}

// SetStatus updates only the status field. Any of the four values is
// accepted regardless of the current one; there is no transition graph.
func (s *OrderService) SetStatus(id uint, status string) (*models.Order, error) {
	parsed, err := models.ParseOrderStatus(status)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrValidation)
	}

	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := s.orders.UpdateStatus(id, parsed); err != nil {
		return nil, fmt.Errorf("failed to update status of order %d: %w", id, err)
	}
	order.Status = parsed

	if err := s.publisher.PublishOrderEvent(EventOrderStatusChanged, order); err != nil {
		logger.Error().Err(err).Uint("order_id", order.ID).Msg("failed to publish status change event")
	}
	return order, nil
}
