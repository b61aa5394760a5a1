// controllers/salon.go
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

// CreateSalonInput defines the expected JSON structure for creating a salon
type CreateSalonInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address" binding:"required"`
	City        string `json:"city" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Email       string `json:"email"`
	ImageURL    string `json:"imageUrl"`
}

// UpdateSalonInput defines the expected JSON structure for updating a salon
type UpdateSalonInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	ImageURL    *string `json:"imageUrl"`
	OpeningHour *int    `json:"openingHour"`
	ClosingHour *int    `json:"closingHour"`
}

type SalonStatusInput struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// GetSalons lists active salons publicly; with ?ownerId= it returns the
// caller's own salons instead.
func GetSalons(c *gin.Context) {
	ownerID := c.Query("ownerId")

	if ownerID != "" {
		actorID, ok := utils.ActorID(c)
		if !ok {
			utils.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		if actorID.String() != ownerID {
			utils.RespondWithError(c, http.StatusForbidden, "Cannot list another owner's salons")
			return
		}

		var salons []models.Salon
		if err := config.DB.Preload("Services", "is_active = ?", true).
			Where("owner_id = ?", actorID).
			Order("created_at DESC").
			Find(&salons).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve salons")
			return
		}
		c.JSON(http.StatusOK, salons)
		return
	}

	var salons []models.Salon
	if err := config.DB.Preload("Services", "is_active = ?", true).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&salons).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve salons")
		return
	}

	c.JSON(http.StatusOK, salons)
}

// CreateSalon creates a new salon owned by the caller
func CreateSalon(c *gin.Context) {
	actorID, ok := utils.ActorID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input CreateSalonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	salon := models.Salon{
		OwnerID:     actorID,
		Name:        input.Name,
		Description: input.Description,
		Address:     input.Address,
		City:        input.City,
		Phone:       input.Phone,
		Email:       input.Email,
		ImageURL:    input.ImageURL,
		OpeningHour: models.DefaultOpeningHour,
		ClosingHour: models.DefaultClosingHour,
		IsActive:    true,
	}

	if err := config.DB.Create(&salon).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create salon")
		return
	}

	c.JSON(http.StatusCreated, salon)
}

// GetSalon retrieves one of the caller's salons by ID
func GetSalon(c *gin.Context) {
	actorID, ok := utils.ActorID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	salonUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	var salon models.Salon
	if err := config.DB.Preload("Services").First(&salon, "id = ?", salonUUID).Error; err != nil {
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

	c.JSON(http.StatusOK, salon)
}

// UpdateSalon updates an existing salon owned by the caller
func UpdateSalon(c *gin.Context) {
	actorID, ok := utils.ActorID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	salonUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	var input UpdateSalonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
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

	// Update fields if provided
	if input.Name != nil {
		salon.Name = *input.Name
	}
	if input.Description != nil {
		salon.Description = *input.Description
	}
	if input.Address != nil {
		salon.Address = *input.Address
	}
	if input.City != nil {
		salon.City = *input.City
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		salon.Phone = *input.Phone
	}
	if input.Email != nil {
		salon.Email = *input.Email
	}
	if input.ImageURL != nil {
		salon.ImageURL = *input.ImageURL
	}
	if input.OpeningHour != nil {
		salon.OpeningHour = *input.OpeningHour
	}
	if input.ClosingHour != nil {
		salon.ClosingHour = *input.ClosingHour
	}
	if salon.OpeningHour < 0 || salon.ClosingHour > 24 || salon.OpeningHour >= salon.ClosingHour {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid business hours")
		return
	}

	if err := config.DB.Save(&salon).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update salon")
		return
	}

	c.JSON(http.StatusOK, salon)
}

// UpdateSalonStatus toggles a salon's public visibility
func UpdateSalonStatus(c *gin.Context) {
	actorID, ok := utils.ActorID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	salonUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	var input SalonStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Status must be a boolean")
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

	if err := config.DB.Model(&salon).Update("is_active", *input.IsActive).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "salon": salon})
}

// GetSalonServices lists the active services of a salon (public)
func GetSalonServices(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	var services []models.Service
	if err := config.DB.Where("salon_id = ? AND is_active = ?", salonUUID, true).
		Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, services)
}
