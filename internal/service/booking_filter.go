package service

import (
	"time"

	"shareit-backend/internal/domain"
)

// filterByState classifies bookings against now. CURRENT, PAST and FUTURE
// partition the timeline over the half-open [start, end) window and are
// pairwise exclusive at any instant. Input order is preserved; nothing is
// re-sorted here.
func filterByState(bookings []domain.Booking, state domain.BookingState, now time.Time) []domain.Booking {
	if state == domain.BookingStateAll {
		return bookings
	}
	filtered := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if matchesState(b, state, now) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

func matchesState(b domain.Booking, state domain.BookingState, now time.Time) bool {
	switch state {
	case domain.BookingStateCurrent:
		return b.Start.Before(now) && b.End.After(now)
	case domain.BookingStatePast:
		return b.End.Before(now)
	case domain.BookingStateFuture:
		return b.Start.After(now)
	case domain.BookingStateWaiting:
		return b.Status == domain.BookingStatusWaiting
	case domain.BookingStateRejected:
		return b.Status == domain.BookingStatusRejected
	default:
		return true
	}
}
