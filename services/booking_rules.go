package services

import "salonbook-backend/models"

// CanTransition reports whether a booking may move from one status to
// another. CANCELLED and COMPLETED are terminal.
func CanTransition(from, to string) bool {
	switch from {
	case models.BookingPending:
		return to == models.BookingConfirmed || to == models.BookingCancelled
	case models.BookingConfirmed:
		return to == models.BookingCancelled || to == models.BookingCompleted
	default:
		return false
	}
}

// ActorMaySetStatus reports whether the acting party is allowed to request
// the target status at all. The salon owner may confirm, cancel or
// complete; the booking's customer may only cancel their own booking.
func ActorMaySetStatus(isOwner, isCustomer bool, to string) bool {
	if isOwner {
		switch to {
		case models.BookingConfirmed, models.BookingCancelled, models.BookingCompleted:
			return true
		}
		return false
	}
	if isCustomer {
		return to == models.BookingCancelled
	}
	return false
}
