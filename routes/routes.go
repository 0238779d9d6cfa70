package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/limitlessinfotechsolution/wakilni-sub002/config"
	"github.com/limitlessinfotechsolution/wakilni-sub002/handlers"
	"github.com/limitlessinfotechsolution/wakilni-sub002/middleware"
	"github.com/limitlessinfotechsolution/wakilni-sub002/models"
	"github.com/limitlessinfotechsolution/wakilni-sub002/store"
)

func SetupRoutes(router *gin.Engine, st store.Store, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(st, cfg)
	serviceHandler := handlers.NewServiceHandler(st, cfg)
	beneficiaryHandler := handlers.NewBeneficiaryHandler(st, cfg)
	bookingHandler := handlers.NewBookingHandler(st, cfg)
	providerHandler := handlers.NewProviderHandler(st, cfg)
	donationHandler := handlers.NewDonationHandler(st, cfg)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, models.Response{Data: gin.H{"status": "ok"}})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Public service catalog
		v1.GET("/services", serviceHandler.GetServices)
		v1.GET("/services/:id", serviceHandler.GetServiceByID)

		// Protected routes
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.GET("/auth/me", authHandler.GetMe)

			beneficiaries := protected.Group("/beneficiaries")
			{
				beneficiaries.GET("", beneficiaryHandler.GetBeneficiaries)
				beneficiaries.POST("", beneficiaryHandler.CreateBeneficiary)
				beneficiaries.PUT("/:id", beneficiaryHandler.UpdateBeneficiary)
				beneficiaries.DELETE("/:id", beneficiaryHandler.DeleteBeneficiary)
			}

			bookings := protected.Group("/bookings")
			{
				bookings.GET("", bookingHandler.GetMyBookings)
				bookings.POST("", bookingHandler.CreateBooking)
				bookings.GET("/:id", bookingHandler.GetBookingByID)
				bookings.DELETE("/:id", bookingHandler.CancelBooking)
			}

			donations := protected.Group("/donations")
			{
				donations.GET("", donationHandler.GetMyDonations)
				donations.POST("", donationHandler.CreateDonation)
			}

			// Provider / admin oversight
			provider := protected.Group("/provider")
			provider.Use(middleware.RoleMiddleware(models.RoleProvider, models.RoleAdmin))
			{
				provider.GET("/bookings", providerHandler.GetProviderBookings)
				provider.PUT("/bookings/:id/status", providerHandler.UpdateBookingStatus)
			}
		}
	}
}
