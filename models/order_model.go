package models

import (
	"fmt"
	"strings"
	"time"
)

// OrderStatus is the closed set of states a purchase order can be in.
// There is no enforced transition graph: callers may move an order from
// any status to any other.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusApproved  OrderStatus = "approved"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// ParseOrderStatus normalizes s to lowercase and maps it to an OrderStatus,
// rejecting anything outside the fixed set.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch st := OrderStatus(strings.ToLower(s)); st {
	case StatusPending, StatusApproved, StatusDelivered, StatusCancelled:
		return st, nil
	default:
		return "", fmt.Errorf("invalid order status %q", s)
	}
}

// Order represents the purchase of one vehicle by one customer.
// Customer and Vehicle are eager-loaded on reads so responses embed the
// full referenced records.
type Order struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	CustomerID uint `json:"customer_id" gorm:"index;not null"`
	VehicleID  uint `json:"vehicle_id" gorm:"index;not null"`
	// fecha_pedido is the wire name the API shipped with; kept so existing
	// clients keep working. Set once at creation, never updated.
	OrderDate time.Time   `json:"fecha_pedido"`
	Status    OrderStatus `json:"status" gorm:"type:varchar(16);index;not null;default:'pending'"`
	Total     float64     `json:"total"`
	Customer  Customer    `json:"customer" gorm:"foreignKey:CustomerID"`
	Vehicle   Vehicle     `json:"vehicle" gorm:"foreignKey:VehicleID"`
}

// OrderRequest is the payload for creating or fully replacing an order.
// Status is optional on create and defaults to "pending".
type OrderRequest struct {
	CustomerID uint    `json:"customer_id"`
	VehicleID  uint    `json:"vehicle_id"`
	Status     string  `json:"status"`
	Total      float64 `json:"total"`
}
