package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/limitlessinfotechsolution/wakilni-sub002/config"
	"github.com/limitlessinfotechsolution/wakilni-sub002/models"
	"github.com/limitlessinfotechsolution/wakilni-sub002/store"
	"github.com/limitlessinfotechsolution/wakilni-sub002/validations"
)

// ProviderHandler serves the fulfilment side: providers see bookings made
// against their services and walk them through the status lifecycle.
// Admins get the same operations over all bookings.
type ProviderHandler struct {
	store  store.Store
	config *config.Config
}

func NewProviderHandler(st store.Store, cfg *config.Config) *ProviderHandler {
	return &ProviderHandler{
		store:  st,
		config: cfg,
	}
}

func (h *ProviderHandler) GetProviderBookings(c *gin.Context) {
	userID := c.GetString("user_id")
	role := c.GetString("role")

	var query models.ProviderBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{Error: "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	var bookings []models.Booking
	var err error
	if role == models.RoleAdmin {
		bookings, err = h.store.ListAllBookings(query.Status, query.Date)
	} else {
		bookings, err = h.store.ListBookingsByProvider(userID, query.Status, query.Date)
	}
	if err != nil {
		log.Printf("[GetProviderBookings] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Response{Error: "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Data: bookings})
}

// UpdateBookingStatus applies one lifecycle transition. Only transitions in
// the allowed table go through; terminal states are immutable.
func (h *ProviderHandler) UpdateBookingStatus(c *gin.Context) {
	bookingID := c.Param("id")
	userID := c.GetString("user_id")
	role := c.GetString("role")

	if !validations.IsUUID(bookingID) {
		c.JSON(http.StatusBadRequest, models.Response{Error: "Invalid UUID format"})
		return
	}

	var req models.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !models.IsBookingStatus(req.Status) {
		c.JSON(http.StatusBadRequest, models.Response{Error: "Invalid status"})
		return
	}

	booking, err := h.store.GetBookingByID(bookingID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Printf("[UpdateBookingStatus] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Response{Error: "Internal server error"})
		return
	}
	if err != nil || (role != models.RoleAdmin && booking.ProviderID != userID) {
		c.JSON(http.StatusNotFound, models.Response{Error: "Booking not found"})
		return
	}

	if !models.CanTransitionBooking(booking.Status, req.Status) {
		c.JSON(http.StatusConflict, models.Response{Error: "Invalid status transition"})
		return
	}

	updated, err := h.store.UpdateBookingStatus(bookingID, req.Status)
	if err != nil {
		log.Printf("[UpdateBookingStatus] update failed for booking %s: %v", bookingID, err)
		c.JSON(http.StatusInternalServerError, models.Response{Error: "Failed to update booking"})
		return
	}

	if err := h.store.AppendBookingActivity(map[string]interface{}{
		"booking_id": bookingID,
		"actor_id":   userID,
		"action":     req.Status,
		"details": map[string]interface{}{
			"from": booking.Status,
			"to":   req.Status,
		},
	}); err != nil {
		log.Printf("[UpdateBookingStatus] activity insert failed for booking %s: %v", bookingID, err)
	}

	c.JSON(http.StatusOK, models.Response{Data: updated})
}
