package domain

import "github.com/google/uuid"

// Customer 銀行客戶 純識別資料，無業務行為
type Customer struct {
	// CustomerID 由 UUID 產生，建立後不可變
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// NewCustomer 建立一個新客戶並配發 ID
func NewCustomer(name, email, phone string) *Customer {
	return &Customer{
		CustomerID: uuid.NewString(),
		Name:       name,
		Email:      email,
		Phone:      phone,
	}
}
