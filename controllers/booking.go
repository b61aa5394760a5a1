// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/services"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateBookingInput defines the expected JSON structure for creating a booking
type CreateBookingInput struct {
	SalonID   string `json:"salonId" binding:"required"`
	ServiceID string `json:"serviceId" binding:"required"`
	Date      string `json:"date" binding:"required"`      // "2006-01-02" or RFC 3339
	StartTime string `json:"startTime" binding:"required"` // RFC 3339
	Notes     string `json:"notes"`
}

var bookingService *services.BookingService

// InitBookingService wires the booking service once the DB is connected.
func InitBookingService(svc *services.BookingService) {
	bookingService = svc
}

// GetAvailability returns the open slots for (salonId, serviceId, date)
func GetAvailability(c *gin.Context) {
	salonID := c.Query("salonId")
	serviceID := c.Query("serviceId")
	date := c.Query("date")

	if salonID == "" || serviceID == "" || date == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "salonId, serviceId and date are required")
		return
	}

	salonUUID, err := uuid.Parse(salonID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}
	serviceUUID, err := uuid.Parse(serviceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}
	day, err := utils.ParseDate(date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format")
		return
	}

	result, err := bookingService.Availability(salonUUID, serviceUUID, day)
	if err != nil {
		respondServiceError(c, err, "Failed to compute availability")
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateBooking reserves a slot for the caller
func CreateBooking(c *gin.Context) {
	actorID, ok := utils.ActorID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	salonUUID, err := uuid.Parse(input.SalonID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}
	serviceUUID, err := uuid.Parse(input.ServiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}
	day, err := utils.ParseDate(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format")
		return
	}
	startTime, err := time.Parse(time.RFC3339, input.StartTime)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid start time format")
		return
	}

	booking, err := bookingService.CreateBooking(actorID, salonUUID, serviceUUID, day, startTime, input.Notes)
	if err != nil {
		respondServiceError(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetBookings lists the caller's bookings; with ?salonId= it lists a salon's
// bookings for its owner instead.
func GetBookings(c *gin.Context) {
	actorID, ok := utils.ActorID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	if salonID := c.Query("salonId"); salonID != "" {
		salonUUID, err := uuid.Parse(salonID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
			return
		}

		var salon models.Salon
		if err := config.DB.First(&salon, "id = ?", salonUUID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		if salon.OwnerID != actorID {
			utils.RespondWithError(c, http.StatusForbidden, "Not the owner of this salon")
			return
		}

		var bookings []models.Booking
		if err := config.DB.Preload("User").Preload("Service").
			Where("salon_id = ?", salonUUID).
			Order("start_time DESC").
			Find(&bookings).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
			return
		}
		c.JSON(http.StatusOK, bookings)
		return
	}

	var bookings []models.Booking
	if err := config.DB.Preload("Salon").Preload("Service").
		Where("user_id = ?", actorID).
		Order("start_time DESC").
		Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking retrieves one booking, visible to its customer or the salon owner
func GetBooking(c *gin.Context) {
	actorID, ok := utils.ActorID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Salon").Preload("Service").Preload("User").
		First(&booking, "id = ?", bookingUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	isOwner := booking.Salon != nil && booking.Salon.OwnerID == actorID
	if booking.UserID != actorID && !isOwner {
		utils.RespondWithError(c, http.StatusForbidden, "Not allowed to view this booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateBooking patches a booking's status and/or notes
func UpdateBooking(c *gin.Context) {
	actorID, ok := utils.ActorID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var patch services.BookingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, err := bookingService.UpdateBooking(bookingUUID, actorID, patch)
	if err != nil {
		respondServiceError(c, err, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// DeleteBooking removes a booking unless it is completed
func DeleteBooking(c *gin.Context) {
	actorID, ok := utils.ActorID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	if err := bookingService.DeleteBooking(bookingUUID, actorID); err != nil {
		respondServiceError(c, err, "Failed to delete booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
