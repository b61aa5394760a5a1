// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardStats struct {
	TotalBookings  int64   `json:"totalBookings"`
	ActiveBookings int64   `json:"activeBookings"`
	TotalSalons    int64   `json:"totalSalons"`
	TotalReviews   int64   `json:"totalReviews"`
	AverageRating  float64 `json:"averageRating"`
	MonthlyGrowth  int     `json:"monthlyGrowth"`
}

// GetDashboardStats aggregates the caller's activity on both sides of the
// marketplace: their own bookings as a customer, and salons/reviews they
// own.
func GetDashboardStats(c *gin.Context) {
	actorID, ok := utils.ActorID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var stats DashboardStats

	config.DB.Model(&models.Booking{}).
		Where("user_id = ? AND deleted_at IS NULL", actorID).
		Count(&stats.TotalBookings)

	config.DB.Model(&models.Booking{}).
		Where("user_id = ? AND status IN ? AND deleted_at IS NULL", actorID, models.ActiveBookingStatuses).
		Count(&stats.ActiveBookings)

	config.DB.Model(&models.Salon{}).
		Where("owner_id = ? AND deleted_at IS NULL", actorID).
		Count(&stats.TotalSalons)

	config.DB.Model(&models.Review{}).
		Joins("JOIN salons ON salons.id = reviews.salon_id").
		Where("salons.owner_id = ? AND reviews.deleted_at IS NULL", actorID).
		Count(&stats.TotalReviews)

	if stats.TotalReviews > 0 {
		config.DB.Model(&models.Review{}).
			Joins("JOIN salons ON salons.id = reviews.salon_id").
			Where("salons.owner_id = ? AND reviews.deleted_at IS NULL", actorID).
			Select("ROUND(AVG(reviews.rating)::numeric, 1)").Scan(&stats.AverageRating)
	}

	// Month-over-month booking growth
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	firstOfLastMonth := firstOfMonth.AddDate(0, -1, 0)

	var thisMonth, lastMonth int64
	config.DB.Model(&models.Booking{}).
		Where("user_id = ? AND created_at >= ? AND deleted_at IS NULL", actorID, firstOfMonth).
		Count(&thisMonth)
	config.DB.Model(&models.Booking{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ? AND deleted_at IS NULL",
			actorID, firstOfLastMonth, firstOfMonth).
		Count(&lastMonth)

	switch {
	case lastMonth > 0:
		growth := int((thisMonth - lastMonth) * 100 / lastMonth)
		if growth > 0 {
			stats.MonthlyGrowth = growth
		}
	case thisMonth > 0:
		stats.MonthlyGrowth = 100
	}

	c.JSON(http.StatusOK, stats)
}
