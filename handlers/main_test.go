package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/limitlessinfotechsolution/wakilni-sub002/config"
	"github.com/limitlessinfotechsolution/wakilni-sub002/middleware"
	"github.com/limitlessinfotechsolution/wakilni-sub002/models"
	"github.com/limitlessinfotechsolution/wakilni-sub002/routes"
	"github.com/limitlessinfotechsolution/wakilni-sub002/store"
	"github.com/limitlessinfotechsolution/wakilni-sub002/validations"
)

// fakeStore is an in-memory store.Store used to exercise the handlers
// without a live PostgREST backend.
type fakeStore struct {
	usersByEmail  map[string]*models.User
	usersByID     map[string]*models.User
	services      map[string]*models.Service
	beneficiaries map[string]*models.Beneficiary
	bookings      map[string]*models.Booking
	activities    []models.BookingActivity
	donations     []models.Donation

	failBookingInsert  bool
	failActivityInsert bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		usersByEmail:  make(map[string]*models.User),
		usersByID:     make(map[string]*models.User),
		services:      make(map[string]*models.Service),
		beneficiaries: make(map[string]*models.Beneficiary),
		bookings:      make(map[string]*models.Booking),
	}
}

func (f *fakeStore) GetUserByEmail(email string) (*models.User, error) {
	if u, ok := f.usersByEmail[email]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) GetUserByID(id string) (*models.User, error) {
	if u, ok := f.usersByID[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) CreateUser(fields map[string]interface{}) (*models.User, error) {
	u := &models.User{
		ID:           fields["id"].(string),
		Email:        fields["email"].(string),
		PasswordHash: fields["password_hash"].(string),
		FullName:     fields["full_name"].(string),
		Role:         fields["role"].(string),
		IsActive:     fields["is_active"].(bool),
	}
	f.usersByEmail[u.Email] = u
	f.usersByID[u.ID] = u
	copied := *u
	return &copied, nil
}

func (f *fakeStore) ListActiveServices() ([]models.Service, error) {
	var out []models.Service
	for _, s := range f.services {
		if s.IsActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeStore) GetServiceByID(id string) (*models.Service, error) {
	if s, ok := f.services[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) ListBeneficiaries(ownerID string) ([]models.Beneficiary, error) {
	var out []models.Beneficiary
	for _, b := range f.beneficiaries {
		if b.UserID == ownerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeStore) GetBeneficiaryByID(id string) (*models.Beneficiary, error) {
	if b, ok := f.beneficiaries[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) CreateBeneficiary(fields map[string]interface{}) (*models.Beneficiary, error) {
	b := &models.Beneficiary{
		ID:       uuid.NewString(),
		UserID:   fields["user_id"].(string),
		FullName: fields["full_name"].(string),
	}
	if rel, ok := fields["relation"].(*string); ok {
		b.Relation = rel
	}
	f.beneficiaries[b.ID] = b
	return b, nil
}

func (f *fakeStore) UpdateBeneficiary(id, ownerID string, fields map[string]interface{}) (*models.Beneficiary, error) {
	b, ok := f.beneficiaries[id]
	if !ok || b.UserID != ownerID {
		return nil, store.ErrNotFound
	}
	if name, ok := fields["full_name"].(string); ok {
		b.FullName = name
	}
	if rel, ok := fields["relation"].(string); ok {
		b.Relation = &rel
	}
	copied := *b
	return &copied, nil
}

func (f *fakeStore) DeleteBeneficiary(id, ownerID string) error {
	b, ok := f.beneficiaries[id]
	if !ok || b.UserID != ownerID {
		return store.ErrNotFound
	}
	delete(f.beneficiaries, id)
	return nil
}

func (f *fakeStore) CreateBooking(fields map[string]interface{}) (*models.Booking, error) {
	if f.failBookingInsert {
		return nil, errors.New("insert rejected")
	}
	b := &models.Booking{
		ID:            uuid.NewString(),
		ServiceID:     fields["service_id"].(string),
		BeneficiaryID: fields["beneficiary_id"].(string),
		ProviderID:    fields["provider_id"].(string),
		TravelerID:    fields["traveler_id"].(string),
		TotalAmount:   fields["total_amount"].(decimal.Decimal),
		Currency:      fields["currency"].(string),
		Status:        fields["status"].(string),
	}
	if sd, ok := fields["scheduled_date"].(*string); ok {
		b.ScheduledDate = sd
	}
	if sr, ok := fields["special_requests"].(*string); ok {
		b.SpecialRequests = sr
	}
	f.bookings[b.ID] = b
	return b, nil
}

func (f *fakeStore) DeleteBooking(id string) error {
	delete(f.bookings, id)
	return nil
}

func (f *fakeStore) GetBookingByID(id string) (*models.Booking, error) {
	if b, ok := f.bookings[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) ListBookingsByTraveler(travelerID, status string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.TravelerID == travelerID && (status == "" || b.Status == status) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeStore) ListBookingsByProvider(providerID, status, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ProviderID != providerID {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		if date != "" && (b.ScheduledDate == nil || *b.ScheduledDate != date) {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeStore) ListAllBookings(status, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if status != "" && b.Status != status {
			continue
		}
		if date != "" && (b.ScheduledDate == nil || *b.ScheduledDate != date) {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeStore) UpdateBookingStatus(id, status string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	b.Status = status
	copied := *b
	return &copied, nil
}

func (f *fakeStore) AppendBookingActivity(fields map[string]interface{}) error {
	if f.failActivityInsert {
		return errors.New("insert rejected")
	}
	details, err := json.Marshal(fields["details"])
	if err != nil {
		return err
	}
	f.activities = append(f.activities, models.BookingActivity{
		ID:        uuid.NewString(),
		BookingID: fields["booking_id"].(string),
		ActorID:   fields["actor_id"].(string),
		Action:    fields["action"].(string),
		Details:   details,
	})
	return nil
}

func (f *fakeStore) ListBookingActivity(bookingID string) ([]models.BookingActivity, error) {
	var out []models.BookingActivity
	for _, a := range f.activities {
		if a.BookingID == bookingID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateDonation(fields map[string]interface{}) (*models.Donation, error) {
	d := models.Donation{
		ID:       uuid.NewString(),
		DonorID:  fields["donor_id"].(string),
		Amount:   fields["amount"].(decimal.Decimal),
		Currency: fields["currency"].(string),
	}
	if camp, ok := fields["campaign"].(*string); ok {
		d.Campaign = camp
	}
	f.donations = append(f.donations, d)
	copied := d
	return &copied, nil
}

func (f *fakeStore) ListDonationsByDonor(donorID string) ([]models.Donation, error) {
	var out []models.Donation
	for _, d := range f.donations {
		if d.DonorID == donorID {
			out = append(out, d)
		}
	}
	return out, nil
}

var _ store.Store = (*fakeStore)(nil)

func newTestRouter(st store.Store) (*gin.Engine, *config.Config) {
	gin.SetMode(gin.TestMode)
	validations.RegisterCustomValidators()

	cfg := &config.Config{JWTSecret: "test-secret", Environment: "test"}
	router := gin.New()
	router.Use(config.CORSMiddleware())
	routes.SetupRoutes(router, st, cfg)
	return router, cfg
}

func makeToken(t *testing.T, cfg *config.Config, userID, role string) string {
	t.Helper()
	claims := middleware.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)
	return token
}

func doRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func decodeBooking(t *testing.T, w *httptest.ResponseRecorder) models.Booking {
	t.Helper()
	var resp struct {
		Data models.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

// seedBookingFixtures sets up a traveler, an active 200.00 SAR service and
// a beneficiary owned by the traveler.
func seedBookingFixtures(f *fakeStore) (travelerID, providerID, serviceID, beneficiaryID string) {
	travelerID = uuid.NewString()
	providerID = uuid.NewString()
	serviceID = uuid.NewString()
	beneficiaryID = uuid.NewString()

	f.services[serviceID] = &models.Service{
		ID:         serviceID,
		ProviderID: providerID,
		Name:       "Umrah by proxy",
		Price:      decimal.RequireFromString("200.00"),
		Currency:   "SAR",
		IsActive:   true,
	}
	f.beneficiaries[beneficiaryID] = &models.Beneficiary{
		ID:       beneficiaryID,
		UserID:   travelerID,
		FullName: "Late grandfather",
	}
	return
}

func createBooking(router *gin.Engine, token string, body map[string]interface{}) *httptest.ResponseRecorder {
	return doRequest(router, http.MethodPost, "/api/v1/bookings", token, body)
}
