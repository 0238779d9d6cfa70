package models

import (
	"encoding/json"
	"time"
)

const ActionCreated = "created"

// BookingActivity is an append-only audit entry. Every booking gets a
// "created" entry at creation time; status transitions add one entry each,
// tagged with the new status.
type BookingActivity struct {
	ID        string          `json:"id"`
	BookingID string          `json:"booking_id"`
	ActorID   string          `json:"actor_id"`
	Action    string          `json:"action"`
	Details   json.RawMessage `json:"details,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
