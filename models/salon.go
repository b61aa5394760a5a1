package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Default business hours applied to every calendar day. There is no
// per-weekday schedule or holiday calendar.
const (
	DefaultOpeningHour = 9
	DefaultClosingHour = 18
)

type Salon struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID uuid.UUID `gorm:"type:uuid;index;not null" json:"ownerId"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Address     string `gorm:"not null" json:"address"`
	City        string `gorm:"not null" json:"city"`
	Phone       string `gorm:"not null" json:"phone"`
	Email       string `json:"email"`
	ImageURL    string `json:"imageUrl"`

	OpeningHour int     `gorm:"default:9" json:"openingHour"`
	ClosingHour int     `gorm:"default:18" json:"closingHour"`
	Rating      float64 `gorm:"type:decimal(3,1);default:0.0" json:"rating"`
	IsActive    bool    `gorm:"default:true" json:"isActive"`

	Services []Service `gorm:"foreignKey:SalonID" json:"services,omitempty"`
	Bookings []Booking `gorm:"foreignKey:SalonID" json:"-"`
	Reviews  []Review  `gorm:"foreignKey:SalonID" json:"-"`

	gorm.Model `json:"-"`
}

func (s *Salon) BeforeCreate(tx *gorm.DB) (err error) {
	s.ID = uuid.New()
	if s.OpeningHour == 0 && s.ClosingHour == 0 {
		s.OpeningHour = DefaultOpeningHour
		s.ClosingHour = DefaultClosingHour
	}
	return
}
