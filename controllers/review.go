// controllers/review.go
package controllers

import (
	"errors"
	"net/http"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateReviewInput defines the expected JSON structure for creating a review
type CreateReviewInput struct {
	BookingID string `json:"bookingId" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// GetReviews lists a salon's reviews (public)
func GetReviews(c *gin.Context) {
	salonID := c.Query("salonId")
	if salonID == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "salonId is required")
		return
	}
	salonUUID, err := uuid.Parse(salonID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	var reviews []models.Review
	if err := config.DB.Preload("User").
		Where("salon_id = ?", salonUUID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// CreateReview lets a customer review a salon after a completed booking,
// then refreshes the salon's average rating.
func CreateReview(c *gin.Context) {
	actorID, ok := utils.ActorID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	bookingUUID, err := uuid.Parse(input.BookingID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, "id = ?", bookingUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if booking.UserID != actorID {
		utils.RespondWithError(c, http.StatusForbidden, "Can only review your own bookings")
		return
	}
	if booking.Status != models.BookingCompleted {
		utils.RespondWithError(c, http.StatusBadRequest, "Can only review completed bookings")
		return
	}

	var existing models.Review
	if err := config.DB.Where("booking_id = ?", bookingUUID).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Booking already reviewed")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	review := models.Review{
		SalonID:   booking.SalonID,
		UserID:    actorID,
		BookingID: bookingUUID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}

	if err := config.DB.Create(&review).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create review")
		return
	}

	// Refresh the salon's average rating
	var avg float64
	config.DB.Model(&models.Review{}).
		Where("salon_id = ? AND deleted_at IS NULL", booking.SalonID).
		Select("COALESCE(AVG(rating), 0)").Scan(&avg)
	config.DB.Model(&models.Salon{}).
		Where("id = ?", booking.SalonID).
		Update("rating", avg)

	c.JSON(http.StatusCreated, review)
}
