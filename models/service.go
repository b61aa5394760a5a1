package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null" json:"salonId"`

	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Duration    int     `gorm:"not null" json:"duration"` // in minutes
	Category    string  `gorm:"default:'General'" json:"category"`
	IsActive    bool    `gorm:"default:true" json:"isActive"`

	Salon    *Salon    `gorm:"foreignKey:SalonID" json:"salon,omitempty"`
	Bookings []Booking `gorm:"foreignKey:ServiceID" json:"-"`

	gorm.Model `json:"-"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	s.ID = uuid.New()
	return
}
