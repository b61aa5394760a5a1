// services/sweeper_service.go
package services

import (
	"time"

	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SweeperService cancels PENDING bookings whose start time has passed
// without the owner ever confirming them. Stale pendings would otherwise
// keep blocking slots that can no longer be served.
type SweeperService struct {
	db *gorm.DB
}

func NewSweeperService(db *gorm.DB) *SweeperService {
	return &SweeperService{db: db}
}

func (s *SweeperService) StartScheduler() {
	c := cron.New()

	// Run every 15 minutes
	c.AddFunc("*/15 * * * *", s.CancelStaleBookings)

	c.Start()
	utils.GetLogger().Info("booking sweeper started")
}

func (s *SweeperService) CancelStaleBookings() {
	result := s.db.Model(&models.Booking{}).
		Where("status = ? AND start_time < ?", models.BookingPending, time.Now()).
		Update("status", models.BookingCancelled)

	if result.Error != nil {
		utils.GetLogger().Error("failed to cancel stale bookings", zap.Error(result.Error))
		return
	}
	if result.RowsAffected > 0 {
		utils.GetLogger().Info("cancelled stale pending bookings",
			zap.Int64("count", result.RowsAffected))
	}
}
