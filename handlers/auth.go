package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/limitlessinfotechsolution/wakilni-sub002/config"
	"github.com/limitlessinfotechsolution/wakilni-sub002/middleware"
	"github.com/limitlessinfotechsolution/wakilni-sub002/models"
	"github.com/limitlessinfotechsolution/wakilni-sub002/store"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	store  store.Store
	config *config.Config
}

func NewAuthHandler(st store.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		store:  st,
		config: cfg,
	}
}

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := middleware.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{Error: "Invalid request body"})
		return
	}

	_, err := h.store.GetUserByEmail(req.Email)
	if err == nil {
		c.JSON(http.StatusConflict, models.Response{Error: "Email already registered"})
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Printf("[Register] user lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Response{Error: "Internal server error"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[Register] password hash failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Response{Error: "Internal server error"})
		return
	}

	user, err := h.store.CreateUser(map[string]interface{}{
		"id":            uuid.New().String(),
		"email":         req.Email,
		"password_hash": string(hash),
		"full_name":     req.FullName,
		"role":          models.RoleTraveler,
		"is_active":     true,
	})
	if err != nil {
		log.Printf("[Register] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Response{Error: "Failed to create account"})
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		log.Printf("[Register] token signing failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Response{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, models.Response{Data: models.LoginResponse{
		Token: token,
		User:  redactUser(user),
	}})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{Error: "Invalid request body"})
		return
	}

	user, err := h.store.GetUserByEmail(req.Email)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("[Login] user lookup failed: %v", err)
		}
		c.JSON(http.StatusUnauthorized, models.Response{Error: "Invalid email or password"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, models.Response{Error: "Invalid email or password"})
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusForbidden, models.Response{Error: "Account is disabled"})
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		log.Printf("[Login] token signing failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Response{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Data: models.LoginResponse{
		Token: token,
		User:  redactUser(user),
	}})
}

func (h *AuthHandler) GetMe(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := h.store.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.Response{Error: "User not found"})
			return
		}
		log.Printf("[GetMe] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Response{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Data: redactUser(user)})
}

// redactUser copies the user with the password hash cleared, so responses
// never mutate whatever the store handed back.
func redactUser(user *models.User) *models.User {
	redacted := *user
	redacted.PasswordHash = ""
	return &redacted
}
