package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/limitlessinfotechsolution/wakilni-sub002/config"
	"github.com/limitlessinfotechsolution/wakilni-sub002/models"
	"github.com/limitlessinfotechsolution/wakilni-sub002/services"
	"github.com/limitlessinfotechsolution/wakilni-sub002/store"
)

type DonationHandler struct {
	store  store.Store
	config *config.Config
}

func NewDonationHandler(st store.Store, cfg *config.Config) *DonationHandler {
	return &DonationHandler{
		store:  st,
		config: cfg,
	}
}

func (h *DonationHandler) CreateDonation(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{Error: "Invalid request body"})
		return
	}

	if !services.ValidDonationAmount(req.Amount) {
		c.JSON(http.StatusBadRequest, models.Response{Error: "Invalid donation amount"})
		return
	}

	currency := models.DefaultCurrency
	if req.Currency != nil && *req.Currency != "" {
		currency = *req.Currency
	}

	donation, err := h.store.CreateDonation(map[string]interface{}{
		"donor_id": userID,
		"amount":   req.Amount,
		"currency": currency,
		"campaign": req.Campaign,
	})
	if err != nil {
		log.Printf("[CreateDonation] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Response{Error: "Failed to create donation"})
		return
	}

	c.JSON(http.StatusCreated, models.Response{Data: donation})
}

func (h *DonationHandler) GetMyDonations(c *gin.Context) {
	userID := c.GetString("user_id")

	donations, err := h.store.ListDonationsByDonor(userID)
	if err != nil {
		log.Printf("[GetMyDonations] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Response{Error: "Failed to fetch donations"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Data: donations})
}
