package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending    = "pending"
	StatusAccepted   = "accepted"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
	StatusDisputed   = "disputed"
)

// bookingTransitions lists the states reachable from each state.
// Completed, cancelled and disputed are terminal.
var bookingTransitions = map[string][]string{
	StatusPending:    {StatusAccepted, StatusCancelled},
	StatusAccepted:   {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusDisputed},
}

func CanTransitionBooking(from, to string) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func IsBookingStatus(s string) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusDisputed:
		return true
	}
	return false
}

type Booking struct {
	ID              string          `json:"id"`
	ServiceID       string          `json:"service_id"`
	BeneficiaryID   string          `json:"beneficiary_id"`
	ProviderID      string          `json:"provider_id"`
	TravelerID      string          `json:"traveler_id"`
	ScheduledDate   *string         `json:"scheduled_date"`
	SpecialRequests *string         `json:"special_requests"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Currency        string          `json:"currency"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type BookingWithActivity struct {
	Booking
	Activity []BookingActivity `json:"activity"`
}

// CreateBookingRequest keeps the raw JSON values so the handler can tell
// a missing field from a value of the wrong type. The price is never part
// of the request; the server computes it from the service row.
type CreateBookingRequest struct {
	ServiceID       interface{} `json:"service_id"`
	BeneficiaryID   interface{} `json:"beneficiary_id"`
	ScheduledDate   interface{} `json:"scheduled_date"`
	SpecialRequests interface{} `json:"special_requests"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ProviderBookingsQuery struct {
	Status string `form:"status"`
	Date   string `form:"date" binding:"omitempty,ymd"`
}
