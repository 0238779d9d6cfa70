package store

import (
	"errors"

	"github.com/limitlessinfotechsolution/wakilni-sub002/models"
)

// ErrNotFound is returned when a lookup matches no row, or when an update
// scoped to an owner matches none.
var ErrNotFound = errors.New("record not found")

// Store is the data-access surface the handlers depend on. The production
// implementation wraps the Supabase PostgREST client; tests inject a fake.
type Store interface {
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	CreateUser(fields map[string]interface{}) (*models.User, error)

	ListActiveServices() ([]models.Service, error)
	GetServiceByID(id string) (*models.Service, error)

	ListBeneficiaries(ownerID string) ([]models.Beneficiary, error)
	GetBeneficiaryByID(id string) (*models.Beneficiary, error)
	CreateBeneficiary(fields map[string]interface{}) (*models.Beneficiary, error)
	UpdateBeneficiary(id, ownerID string, fields map[string]interface{}) (*models.Beneficiary, error)
	DeleteBeneficiary(id, ownerID string) error

	CreateBooking(fields map[string]interface{}) (*models.Booking, error)
	DeleteBooking(id string) error
	GetBookingByID(id string) (*models.Booking, error)
	ListBookingsByTraveler(travelerID, status string) ([]models.Booking, error)
	ListBookingsByProvider(providerID, status, date string) ([]models.Booking, error)
	ListAllBookings(status, date string) ([]models.Booking, error)
	UpdateBookingStatus(id, status string) (*models.Booking, error)

	AppendBookingActivity(fields map[string]interface{}) error
	ListBookingActivity(bookingID string) ([]models.BookingActivity, error)

	CreateDonation(fields map[string]interface{}) (*models.Donation, error)
	ListDonationsByDonor(donorID string) ([]models.Donation, error)
}
