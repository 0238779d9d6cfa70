package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a service row carries no currency.
const DefaultCurrency = "SAR"

type Service struct {
	ID          string          `json:"id"`
	ProviderID  string          `json:"provider_id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
