package routes

import (
	"os"
	"strings"

	"salonbook-backend/config"
	"salonbook-backend/controllers"
	"salonbook-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	limiter := utils.NewRateLimiter(10, 20)
	r.Use(limiter.Limit())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	{
		// Public browsing routes. Salon listing takes an optional token so
		// the ?ownerId= view can resolve the caller.
		api.GET("/salons", utils.OptionalAuthMiddleware(), controllers.GetSalons)
		api.GET("/salons/:id/services", controllers.GetSalonServices)
		api.GET("/services", controllers.GetServices)
		api.GET("/services/:id", controllers.GetService)
		api.GET("/reviews", controllers.GetReviews)
		api.GET("/bookings/availability", controllers.GetAvailability)

		authed := api.Group("")
		authed.Use(utils.AuthMiddleware())
		{
			// Salon routes
			salons := authed.Group("/salons")
			{
				salons.POST("", controllers.CreateSalon)
				salons.GET("/:id", controllers.GetSalon)
				salons.PATCH("/:id", controllers.UpdateSalon)
				salons.PATCH("/:id/status", controllers.UpdateSalonStatus)
			}

			// Service routes
			services := authed.Group("/services")
			{
				services.POST("", controllers.CreateService)
				services.PATCH("/:id", controllers.UpdateService)
				services.DELETE("/:id", controllers.DeleteService)
			}

			// Booking routes
			bookings := authed.Group("/bookings")
			{
				bookings.POST("", controllers.CreateBooking)
				bookings.GET("", controllers.GetBookings)
				bookings.GET("/:id", controllers.GetBooking)
				bookings.PATCH("/:id", controllers.UpdateBooking)
				bookings.DELETE("/:id", controllers.DeleteBooking)
			}

			// Review routes
			authed.POST("/reviews", controllers.CreateReview)

			// Dashboard routes
			authed.GET("/dashboard/stats", controllers.GetDashboardStats)
		}
	}

	return r
}
