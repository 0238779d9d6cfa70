package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/limitlessinfotechsolution/wakilni-sub002/config"
	"github.com/limitlessinfotechsolution/wakilni-sub002/models"
	"github.com/limitlessinfotechsolution/wakilni-sub002/services"
	"github.com/limitlessinfotechsolution/wakilni-sub002/store"
	"github.com/limitlessinfotechsolution/wakilni-sub002/validations"
)

type BookingHandler struct {
	store  store.Store
	config *config.Config
}

func NewBookingHandler(st store.Store, cfg *config.Config) *BookingHandler {
	return &BookingHandler{
		store:  st,
		config: cfg,
	}
}

// CreateBooking validates the request, checks beneficiary ownership,
// recomputes the total server-side and commits the booking together with
// its first activity entry. The client never supplies a price.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{Error: "Invalid service_id"})
		return
	}

	serviceID, ok := req.ServiceID.(string)
	if !ok || serviceID == "" {
		c.JSON(http.StatusBadRequest, models.Response{Error: "Invalid service_id"})
		return
	}
	beneficiaryID, ok := req.BeneficiaryID.(string)
	if !ok || beneficiaryID == "" {
		c.JSON(http.StatusBadRequest, models.Response{Error: "Invalid beneficiary_id"})
		return
	}
	if !validations.IsUUID(serviceID) || !validations.IsUUID(beneficiaryID) {
		c.JSON(http.StatusBadRequest, models.Response{Error: "Invalid UUID format"})
		return
	}

	var scheduledDate *string
	if req.ScheduledDate != nil {
		dateStr, ok := req.ScheduledDate.(string)
		if !ok || !validations.IsDate(dateStr) {
			c.JSON(http.StatusBadRequest, models.Response{Error: "Invalid date format. Use YYYY-MM-DD"})
			return
		}
		scheduledDate = &dateStr
	}

	var specialRequests *string
	if text, ok := req.SpecialRequests.(string); ok {
		specialRequests = validations.SanitizeFreeText(text)
	}

	service, err := h.store.GetServiceByID(serviceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.Response{Error: "Service not found"})
			return
		}
		log.Printf("[CreateBooking] service lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Response{Error: "Internal server error"})
		return
	}
	if !service.IsActive {
		c.JSON(http.StatusBadRequest, models.Response{Error: "Service is not available"})
		return
	}

	beneficiary, err := h.store.GetBeneficiaryByID(beneficiaryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.Response{Error: "Beneficiary not found"})
			return
		}
		log.Printf("[CreateBooking] beneficiary lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Response{Error: "Internal server error"})
		return
	}
	if beneficiary.UserID != userID {
		c.JSON(http.StatusForbidden, models.Response{Error: "You do not have access to this beneficiary"})
		return
	}

	total := services.BookingTotal(service.Price)
	currency := service.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}

	booking, err := h.store.CreateBooking(map[string]interface{}{
		"service_id":       serviceID,
		"beneficiary_id":   beneficiaryID,
		"provider_id":      service.ProviderID,
		"traveler_id":      userID,
		"scheduled_date":   scheduledDate,
		"special_requests": specialRequests,
		"total_amount":     total,
		"currency":         currency,
		"status":           models.StatusPending,
	})
	if err != nil {
		log.Printf("[CreateBooking] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Response{Error: "Failed to create booking"})
		return
	}

	err = h.store.AppendBookingActivity(map[string]interface{}{
		"booking_id": booking.ID,
		"actor_id":   userID,
		"action":     models.ActionCreated,
		"details": map[string]interface{}{
			"status":       booking.Status,
			"total_amount": total,
		},
	})
	if err != nil {
		// The store has no cross-call transactions; compensate by removing
		// the booking rather than reporting a booking with no audit trail.
		log.Printf("[CreateBooking] activity insert failed for booking %s: %v", booking.ID, err)
		if delErr := h.store.DeleteBooking(booking.ID); delErr != nil {
			log.Printf("[CreateBooking] compensating delete failed for booking %s: %v", booking.ID, delErr)
		}
		c.JSON(http.StatusInternalServerError, models.Response{Error: "Failed to create booking"})
		return
	}

	c.JSON(http.StatusCreated, models.Response{Data: booking})
}

func (h *BookingHandler) GetMyBookings(c *gin.Context) {
	userID := c.GetString("user_id")
	status := c.Query("status")

	bookings, err := h.store.ListBookingsByTraveler(userID, status)
	if err != nil {
		log.Printf("[GetMyBookings] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Response{Error: "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Data: bookings})
}

func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	bookingID := c.Param("id")
	userID := c.GetString("user_id")
	role := c.GetString("role")

	if !validations.IsUUID(bookingID) {
		c.JSON(http.StatusBadRequest, models.Response{Error: "Invalid UUID format"})
		return
	}

	booking, err := h.store.GetBookingByID(bookingID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Printf("[GetBookingByID] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Response{Error: "Internal server error"})
		return
	}
	// Travelers see their own bookings, providers the ones they fulfil.
	// Anything else reads as absent rather than leaking existence.
	if err != nil || !canViewBooking(booking, userID, role) {
		c.JSON(http.StatusNotFound, models.Response{Error: "Booking not found"})
		return
	}

	activity, err := h.store.ListBookingActivity(bookingID)
	if err != nil {
		log.Printf("[GetBookingByID] activity fetch failed for booking %s: %v", bookingID, err)
	}

	c.JSON(http.StatusOK, models.Response{Data: models.BookingWithActivity{
		Booking:  *booking,
		Activity: activity,
	}})
}

func canViewBooking(b *models.Booking, userID, role string) bool {
	if role == models.RoleAdmin {
		return true
	}
	if b.TravelerID == userID {
		return true
	}
	return role == models.RoleProvider && b.ProviderID == userID
}

// CancelBooking moves a traveler's own booking to cancelled. Bookings that
// already started or finished cannot be cancelled here.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID := c.Param("id")
	userID := c.GetString("user_id")

	if !validations.IsUUID(bookingID) {
		c.JSON(http.StatusBadRequest, models.Response{Error: "Invalid UUID format"})
		return
	}

	booking, err := h.store.GetBookingByID(bookingID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Printf("[CancelBooking] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Response{Error: "Internal server error"})
		return
	}
	if err != nil || booking.TravelerID != userID {
		c.JSON(http.StatusNotFound, models.Response{Error: "Booking not found"})
		return
	}

	if !models.CanTransitionBooking(booking.Status, models.StatusCancelled) {
		c.JSON(http.StatusConflict, models.Response{Error: "Booking cannot be cancelled"})
		return
	}

	updated, err := h.store.UpdateBookingStatus(bookingID, models.StatusCancelled)
	if err != nil {
		log.Printf("[CancelBooking] update failed for booking %s: %v", bookingID, err)
		c.JSON(http.StatusInternalServerError, models.Response{Error: "Failed to cancel booking"})
		return
	}

	if err := h.store.AppendBookingActivity(map[string]interface{}{
		"booking_id": bookingID,
		"actor_id":   userID,
		"action":     models.StatusCancelled,
		"details": map[string]interface{}{
			"from": booking.Status,
			"to":   models.StatusCancelled,
		},
	}); err != nil {
		log.Printf("[CancelBooking] activity insert failed for booking %s: %v", bookingID, err)
	}

	c.JSON(http.StatusOK, models.Response{Data: updated})
}
