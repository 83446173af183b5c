package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type OrderCreate struct {
	CustomerName    string     `json:"customer_name"`
	CustomerPhone   string     `json:"customer_phone"`
	CustomerAddress *string    `json:"customer_address,omitempty"`
	Items           []CartItem `json:"items"`
	Notes           *string    `json:"notes,omitempty"`
}

// Order lives only for the duration of a request; once the notification is
// sent there is no durable record of it.
type Order struct {
	OrderCreate
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
}
