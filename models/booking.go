package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking statuses. PENDING and CONFIRMED block availability; CANCELLED and
// COMPLETED are terminal and never block.
const (
	BookingPending   = "PENDING"
	BookingConfirmed = "CONFIRMED"
	BookingCancelled = "CANCELLED"
	BookingCompleted = "COMPLETED"
)

// ActiveBookingStatuses are the statuses that hold a time slot.
var ActiveBookingStatuses = []string{BookingPending, BookingConfirmed}

type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SalonID   uuid.UUID `gorm:"type:uuid;index;not null" json:"salonId"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`

	Date      time.Time `gorm:"index;not null" json:"date"` // calendar day, midnight
	StartTime time.Time `gorm:"not null" json:"startTime"`
	EndTime   time.Time `gorm:"not null" json:"endTime"` // StartTime + service duration

	Status     string  `gorm:"type:varchar(20);default:'PENDING';not null" json:"status"`
	TotalPrice float64 `gorm:"type:decimal(10,2);not null" json:"totalPrice"`
	Notes      string  `json:"notes"`

	Salon   *Salon   `gorm:"foreignKey:SalonID" json:"salon,omitempty"`
	Service *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`

	gorm.Model `json:"-"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

// IsActive reports whether the booking currently holds its slot.
func (b *Booking) IsActive() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

// IsTerminal reports whether the booking can never change status again.
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingCancelled || b.Status == BookingCompleted
}

// ValidStatus reports whether s is one of the four booking statuses.
func ValidStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}
