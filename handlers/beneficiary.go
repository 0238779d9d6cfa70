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

// BeneficiaryHandler manages the people a traveler can book rituals for.
// Every operation is scoped to the authenticated owner.
type BeneficiaryHandler struct {
	store  store.Store
	config *config.Config
}

func NewBeneficiaryHandler(st store.Store, cfg *config.Config) *BeneficiaryHandler {
	return &BeneficiaryHandler{
		store:  st,
		config: cfg,
	}
}

func (h *BeneficiaryHandler) GetBeneficiaries(c *gin.Context) {
	userID := c.GetString("user_id")

	beneficiaries, err := h.store.ListBeneficiaries(userID)
	if err != nil {
		log.Printf("[GetBeneficiaries] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Response{Error: "Failed to fetch beneficiaries"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Data: beneficiaries})
}

func (h *BeneficiaryHandler) CreateBeneficiary(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.CreateBeneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{Error: "Invalid request body"})
		return
	}

	beneficiary, err := h.store.CreateBeneficiary(map[string]interface{}{
		"user_id":   userID,
		"full_name": req.FullName,
		"relation":  req.Relation,
	})
	if err != nil {
		log.Printf("[CreateBeneficiary] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Response{Error: "Failed to create beneficiary"})
		return
	}

	c.JSON(http.StatusCreated, models.Response{Data: beneficiary})
}

func (h *BeneficiaryHandler) UpdateBeneficiary(c *gin.Context) {
	beneficiaryID := c.Param("id")
	userID := c.GetString("user_id")

	if !validations.IsUUID(beneficiaryID) {
		c.JSON(http.StatusBadRequest, models.Response{Error: "Invalid UUID format"})
		return
	}

	var req models.UpdateBeneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{Error: "Invalid request body"})
		return
	}

	fields := make(map[string]interface{})
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Relation != nil {
		fields["relation"] = *req.Relation
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, models.Response{Error: "Nothing to update"})
		return
	}

	beneficiary, err := h.store.UpdateBeneficiary(beneficiaryID, userID, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.Response{Error: "Beneficiary not found"})
			return
		}
		log.Printf("[UpdateBeneficiary] update failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Response{Error: "Failed to update beneficiary"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Data: beneficiary})
}

func (h *BeneficiaryHandler) DeleteBeneficiary(c *gin.Context) {
	beneficiaryID := c.Param("id")
	userID := c.GetString("user_id")

	if !validations.IsUUID(beneficiaryID) {
		c.JSON(http.StatusBadRequest, models.Response{Error: "Invalid UUID format"})
		return
	}

	if err := h.store.DeleteBeneficiary(beneficiaryID, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.Response{Error: "Beneficiary not found"})
			return
		}
		log.Printf("[DeleteBeneficiary] delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Response{Error: "Failed to delete beneficiary"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Data: gin.H{"deleted": true}})
}
