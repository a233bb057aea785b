package repository

import (
	"dealership-api/models"

	"gorm.io/gorm"
)

// IOrderRepository defines the interface for order data operations. Reads
// eager-load the referenced customer and vehicle so responses can embed them.
type IOrderRepository interface {
	Create(order *models.Order) error
	FindAll(offset, limit int, status models.OrderStatus) ([]models.Order, error)
	FindByID(id uint) (*models.Order, error)
	Update(order *models.Order) error
	UpdateStatus(id uint, status models.OrderStatus) error
	Delete(id uint) error
	FindByCustomer(customerID uint) ([]models.Order, error)
}

// OrderRepository implements IOrderRepository for GORM.
type OrderRepository struct {
	DB *gorm.DB
}

// NewOrderRepository creates a new OrderRepository instance.
func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) withRefs() *gorm.DB {
	return r.DB.Preload("Customer").Preload("Vehicle")
}

func (r *OrderRepository) Create(order *models.Order) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

// FindAll lists orders with an optional exact-match status filter.
func (r *OrderRepository) FindAll(offset, limit int, status models.OrderStatus) ([]models.Order, error) {
	q := r.withRefs().Model(&models.Order{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var orders []models.Order
	err := q.Order("id ASC").Offset(offset).Limit(limit).Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.withRefs().First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// Update replaces the mutable columns of an existing order. The creation
// timestamp is never touched.
func (r *OrderRepository) Update(order *models.Order) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Order{ID: order.ID}).
			Select("customer_id", "vehicle_id", "status", "total").
			Updates(map[string]interface{}{
				"customer_id": order.CustomerID,
				"vehicle_id":  order.VehicleID,
				"status":      order.Status,
				"total":       order.Total,
			}).Error
	})
}

func (r *OrderRepository) UpdateStatus(id uint, status models.OrderStatus) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Order{ID: id}).Update("status", status).Error
	})
}

func (r *OrderRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&models.Order{}, id).Error
	})
}

func (r *OrderRepository) FindByCustomer(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.withRefs().Where("customer_id = ?", customerID).Order("id ASC").Find(&orders).Error
	return orders, err
}
