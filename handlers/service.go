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

type ServiceHandler struct {
	store  store.Store
	config *config.Config
}

func NewServiceHandler(st store.Store, cfg *config.Config) *ServiceHandler {
	return &ServiceHandler{
		store:  st,
		config: cfg,
	}
}

// GetServices returns the public catalog: active services, newest first.
func (h *ServiceHandler) GetServices(c *gin.Context) {
	svcs, err := h.store.ListActiveServices()
	if err != nil {
		log.Printf("[GetServices] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Response{Error: "Failed to fetch services"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Data: svcs})
}

func (h *ServiceHandler) GetServiceByID(c *gin.Context) {
	serviceID := c.Param("id")

	if !validations.IsUUID(serviceID) {
		c.JSON(http.StatusBadRequest, models.Response{Error: "Invalid UUID format"})
		return
	}

	service, err := h.store.GetServiceByID(serviceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.Response{Error: "Service not found"})
			return
		}
		log.Printf("[GetServiceByID] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Response{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Data: service})
}
