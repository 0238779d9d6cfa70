package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Donation struct {
	ID        string          `json:"id"`
	DonorID   string          `json:"donor_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Campaign  *string         `json:"campaign,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type CreateDonationRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Currency *string         `json:"currency,omitempty"`
	Campaign *string         `json:"campaign,omitempty"`
}
