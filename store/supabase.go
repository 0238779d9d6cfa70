package store

import (
	"encoding/json"

	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"

	"github.com/limitlessinfotechsolution/wakilni-sub002/models"
)

// Supabase implements Store over the hosted PostgREST API. Each method is
// a single request; there are no cross-call transactions (see the
// compensating delete in the booking handler).
type Supabase struct {
	client *supa.Client
}

func NewSupabase(client *supa.Client) *Supabase {
	return &Supabase{client: client}
}

func execList[T any](fb *postgrest.FilterBuilder) ([]T, error) {
	data, _, err := fb.Execute()
	if err != nil {
		return nil, err
	}
	var rows []T
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func execOne[T any](fb *postgrest.FilterBuilder) (*T, error) {
	rows, err := execList[T](fb)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

func (s *Supabase) GetUserByEmail(email string) (*models.User, error) {
	return execOne[models.User](s.client.From("users").
		Select("*", "", false).
		Eq("email", email))
}

func (s *Supabase) GetUserByID(id string) (*models.User, error) {
	return execOne[models.User](s.client.From("users").
		Select("*", "", false).
		Eq("id", id))
}

func (s *Supabase) CreateUser(fields map[string]interface{}) (*models.User, error) {
	return execOne[models.User](s.client.From("users").
		Insert(fields, false, "", "", ""))
}

func (s *Supabase) ListActiveServices() ([]models.Service, error) {
	return execList[models.Service](s.client.From("services").
		Select("*", "", false).
		Eq("is_active", "true").
		Order("created_at", &postgrest.OrderOpts{Ascending: false}))
}

func (s *Supabase) GetServiceByID(id string) (*models.Service, error) {
	return execOne[models.Service](s.client.From("services").
		Select("*", "", false).
		Eq("id", id))
}

func (s *Supabase) ListBeneficiaries(ownerID string) ([]models.Beneficiary, error) {
	return execList[models.Beneficiary](s.client.From("beneficiaries").
		Select("*", "", false).
		Eq("user_id", ownerID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}))
}

func (s *Supabase) GetBeneficiaryByID(id string) (*models.Beneficiary, error) {
	return execOne[models.Beneficiary](s.client.From("beneficiaries").
		Select("*", "", false).
		Eq("id", id))
}

func (s *Supabase) CreateBeneficiary(fields map[string]interface{}) (*models.Beneficiary, error) {
	return execOne[models.Beneficiary](s.client.From("beneficiaries").
		Insert(fields, false, "", "", ""))
}

func (s *Supabase) UpdateBeneficiary(id, ownerID string, fields map[string]interface{}) (*models.Beneficiary, error) {
	return execOne[models.Beneficiary](s.client.From("beneficiaries").
		Update(fields, "", "").
		Eq("id", id).
		Eq("user_id", ownerID))
}

func (s *Supabase) DeleteBeneficiary(id, ownerID string) error {
	rows, err := execList[models.Beneficiary](s.client.From("beneficiaries").
		Delete("representation", "").
		Eq("id", id).
		Eq("user_id", ownerID))
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Supabase) CreateBooking(fields map[string]interface{}) (*models.Booking, error) {
	return execOne[models.Booking](s.client.From("bookings").
		Insert(fields, false, "", "", ""))
}

func (s *Supabase) DeleteBooking(id string) error {
	_, _, err := s.client.From("bookings").
		Delete("", "").
		Eq("id", id).
		Execute()
	return err
}

func (s *Supabase) GetBookingByID(id string) (*models.Booking, error) {
	return execOne[models.Booking](s.client.From("bookings").
		Select("*", "", false).
		Eq("id", id))
}

func (s *Supabase) ListBookingsByTraveler(travelerID, status string) ([]models.Booking, error) {
	query := s.client.From("bookings").
		Select("*", "", false).
		Eq("traveler_id", travelerID)
	if status != "" {
		query = query.Eq("status", status)
	}
	return execList[models.Booking](query.
		Order("created_at", &postgrest.OrderOpts{Ascending: false}))
}

func (s *Supabase) ListBookingsByProvider(providerID, status, date string) ([]models.Booking, error) {
	query := s.client.From("bookings").
		Select("*", "", false).
		Eq("provider_id", providerID)
	if status != "" {
		query = query.Eq("status", status)
	}
	if date != "" {
		query = query.Eq("scheduled_date", date)
	}
	return execList[models.Booking](query.
		Order("created_at", &postgrest.OrderOpts{Ascending: false}))
}

func (s *Supabase) ListAllBookings(status, date string) ([]models.Booking, error) {
	query := s.client.From("bookings").
		Select("*", "", false)
	if status != "" {
		query = query.Eq("status", status)
	}
	if date != "" {
		query = query.Eq("scheduled_date", date)
	}
	return execList[models.Booking](query.
		Order("created_at", &postgrest.OrderOpts{Ascending: false}))
}

func (s *Supabase) UpdateBookingStatus(id, status string) (*models.Booking, error) {
	return execOne[models.Booking](s.client.From("bookings").
		Update(map[string]interface{}{"status": status}, "", "").
		Eq("id", id))
}

func (s *Supabase) AppendBookingActivity(fields map[string]interface{}) error {
	_, _, err := s.client.From("booking_activities").
		Insert(fields, false, "", "", "").
		Execute()
	return err
}

func (s *Supabase) ListBookingActivity(bookingID string) ([]models.BookingActivity, error) {
	return execList[models.BookingActivity](s.client.From("booking_activities").
		Select("*", "", false).
		Eq("booking_id", bookingID).
		Order("created_at", &postgrest.OrderOpts{Ascending: true}))
}

func (s *Supabase) CreateDonation(fields map[string]interface{}) (*models.Donation, error) {
	return execOne[models.Donation](s.client.From("donations").
		Insert(fields, false, "", "", ""))
}

func (s *Supabase) ListDonationsByDonor(donorID string) ([]models.Donation, error) {
	return execList[models.Donation](s.client.From("donations").
		Select("*", "", false).
		Eq("donor_id", donorID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}))
}
