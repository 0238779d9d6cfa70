package models

import "time"

// Beneficiary is the person a ritual is booked on behalf of. Only the
// owning user may book against it.
type Beneficiary struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	FullName  string    `json:"full_name"`
	Relation  *string   `json:"relation,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateBeneficiaryRequest struct {
	FullName string  `json:"full_name" binding:"required"`
	Relation *string `json:"relation,omitempty"`
}

type UpdateBeneficiaryRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Relation *string `json:"relation,omitempty"`
}
