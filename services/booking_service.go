// services/booking_service.go
package services

import (
	"errors"
	"time"

	"salonbook-backend/models"
	"salonbook-backend/scheduling"
	"salonbook-backend/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

type SalonHours struct {
	Opening int `json:"opening"`
	Closing int `json:"closing"`
}

type AvailabilityResult struct {
	AvailableSlots  []scheduling.Interval `json:"availableSlots"`
	ServiceDuration int                   `json:"serviceDuration"`
	SalonHours      SalonHours            `json:"salonHours"`
}

// BookingPatch carries the optional fields of a booking update. A present
// field overwrites; an absent field leaves the prior value untouched.
type BookingPatch struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// Availability computes the open slots for (salon, service, date): generate
// the candidate grid over the salon's hours, then drop past, spilled-over
// and already-booked candidates.
func (s *BookingService) Availability(salonID, serviceID uuid.UUID, date time.Time) (*AvailabilityResult, error) {
	service, salon, err := s.resolveServiceSalon(salonID, serviceID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	day := utils.BeginningOfDay(date)
	// A whole day before today can never contain a future slot; surface a
	// clear validation error instead of an empty list.
	if utils.IsPastDay(day, now) {
		return nil, Validation("date must be today or in the future")
	}

	booked, err := s.activeIntervals(salonID, day)
	if err != nil {
		return nil, err
	}

	candidates := scheduling.GenerateSlots(day, salon.OpeningHour, salon.ClosingHour, service.Duration)
	slots := scheduling.FilterAvailable(candidates, booked, salon.ClosingHour, now)

	return &AvailabilityResult{
		AvailableSlots:  slots,
		ServiceDuration: service.Duration,
		SalonHours:      SalonHours{Opening: salon.OpeningHour, Closing: salon.ClosingHour},
	}, nil
}

// CreateBooking validates the request and inserts a PENDING booking. The
// overlap re-check and the insert run in one transaction holding the salon
// row lock, so two concurrent requests for the same salon serialize; the
// partial exclusion constraint on active bookings backstops anything that
// slips past (see config.ConnectDB).
func (s *BookingService) CreateBooking(actorID, salonID, serviceID uuid.UUID, date, startTime time.Time, notes string) (*models.Booking, error) {
	service, salon, err := s.resolveServiceSalon(salonID, serviceID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if startTime.Before(now) {
		return nil, Validation("booking must start in the future")
	}

	day := utils.BeginningOfDay(date)
	endTime := startTime.Add(time.Duration(service.Duration) * time.Minute)

	booking := models.Booking{
		ID:         uuid.New(),
		SalonID:    salon.ID,
		ServiceID:  service.ID,
		UserID:     actorID,
		Date:       day,
		StartTime:  startTime,
		EndTime:    endTime,
		Status:     models.BookingPending,
		TotalPrice: service.Price,
		Notes:      notes,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Serialize concurrent attempts for the same salon.
		var locked models.Salon
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&locked, "id = ?", salon.ID).Error; err != nil {
			return err
		}

		var overlapping int64
		if err := tx.Model(&models.Booking{}).
			Where("salon_id = ? AND date = ? AND status IN ?", salon.ID, day, models.ActiveBookingStatuses).
			Where("start_time < ? AND end_time > ?", endTime, startTime).
			Count(&overlapping).Error; err != nil {
			return err
		}
		if overlapping > 0 {
			return Conflict("slot no longer available")
		}

		return tx.Create(&booking).Error
	})
	if err != nil {
		if isOverlapConstraintError(err) {
			return nil, Conflict("slot no longer available")
		}
		return nil, err
	}

	utils.GetLogger().Info("booking created",
		zap.String("booking", booking.ID.String()),
		zap.String("salon", salon.ID.String()),
		zap.Time("start", startTime))

	return &booking, nil
}

// UpdateBooking applies a patch to a booking on behalf of actorID. Status
// transitions are checked against both the transition table and the actor's
// rights; notes may be changed by either party.
func (s *BookingService) UpdateBooking(bookingID, actorID uuid.UUID, patch BookingPatch) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Salon").Preload("Service").
		First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("booking not found")
		}
		return nil, err
	}

	isOwner := booking.Salon != nil && booking.Salon.OwnerID == actorID
	isCustomer := booking.UserID == actorID
	if !isOwner && !isCustomer {
		return nil, Forbidden("not allowed to modify this booking")
	}

	if patch.Status != nil {
		target := *patch.Status
		if !models.ValidStatus(target) {
			return nil, Validation("unknown booking status")
		}
		if !ActorMaySetStatus(isOwner, isCustomer, target) {
			return nil, Forbidden("not allowed to set this status")
		}
		if !CanTransition(booking.Status, target) {
			return nil, InvalidState("cannot move booking from " + booking.Status + " to " + target)
		}
		booking.Status = target
	}
	if patch.Notes != nil {
		booking.Notes = *patch.Notes
	}

	if err := s.db.Save(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// DeleteBooking removes a booking on behalf of actorID. Completed bookings
// are kept for the billing and review trail and cannot be deleted.
func (s *BookingService) DeleteBooking(bookingID, actorID uuid.UUID) error {
	var booking models.Booking
	if err := s.db.Preload("Salon").First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("booking not found")
		}
		return err
	}

	isOwner := booking.Salon != nil && booking.Salon.OwnerID == actorID
	if !isOwner && booking.UserID != actorID {
		return Forbidden("not allowed to delete this booking")
	}
	if booking.Status == models.BookingCompleted {
		return InvalidState("cannot delete a completed booking")
	}

	return s.db.Delete(&booking).Error
}

// resolveServiceSalon loads the service and its salon, enforcing the
// pairing and active-flag preconditions shared by the availability and
// creation paths.
func (s *BookingService) resolveServiceSalon(salonID, serviceID uuid.UUID) (*models.Service, *models.Salon, error) {
	var service models.Service
	if err := s.db.First(&service, "id = ?", serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, NotFound("service not found")
		}
		return nil, nil, err
	}
	if service.SalonID != salonID {
		return nil, nil, InvalidState("service does not belong to this salon")
	}
	if !service.IsActive {
		return nil, nil, InvalidState("service is not active")
	}

	var salon models.Salon
	if err := s.db.First(&salon, "id = ?", salonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, NotFound("salon not found")
		}
		return nil, nil, err
	}
	if !salon.IsActive {
		return nil, nil, InvalidState("salon is not active")
	}

	return &service, &salon, nil
}

// activeIntervals returns the [start, end) intervals of every PENDING or
// CONFIRMED booking for the salon on the given day, read fresh at decision
// time.
func (s *BookingService) activeIntervals(salonID uuid.UUID, day time.Time) ([]scheduling.Interval, error) {
	var bookings []models.Booking
	if err := s.db.
		Where("salon_id = ? AND date = ? AND status IN ?", salonID, day, models.ActiveBookingStatuses).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	intervals := make([]scheduling.Interval, 0, len(bookings))
	for _, b := range bookings {
		intervals = append(intervals, scheduling.Interval{Start: b.StartTime, End: b.EndTime})
	}
	return intervals, nil
}

// isOverlapConstraintError recognizes the postgres failures the exclusion
// constraint and transaction isolation produce under concurrent inserts:
// 23P01 (exclusion violation) and 40001 (serialization failure).
func isOverlapConstraintError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23P01" || pgErr.Code == "40001"
	}
	return false
}
