package models

// Customer represents a dealership client who places orders.
type Customer struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"index;not null"`
	Email   string `json:"email" gorm:"uniqueIndex;not null"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CustomerRequest is the payload for creating or fully replacing a customer.
type CustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
