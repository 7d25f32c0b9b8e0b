package domain

import (
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingStatusWaiting  BookingStatus = "WAITING"
	BookingStatusApproved BookingStatus = "APPROVED"
	BookingStatusRejected BookingStatus = "REJECTED"
)

// Booking reserves an item for the half-open window [Start, End).
// OwnerID is a snapshot of the item's owner taken at creation; ownership of
// an item never changes after creation.
type Booking struct {
	ID       int32         `json:"id"`
	ItemID   int32         `json:"item_id"`
	BookerID int32         `json:"booker_id"`
	OwnerID  int32         `json:"owner_id"`
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	Status   BookingStatus `json:"status"`
}

// BookingBrief is the short form attached to item detail views.
type BookingBrief struct {
	ID       int32 `json:"id"`
	BookerID int32 `json:"booker_id"`
}

// BookingState is a query keyword classifying bookings relative to "now".
type BookingState string

const (
	BookingStateAll      BookingState = "ALL"
	BookingStateCurrent  BookingState = "CURRENT"
	BookingStatePast     BookingState = "PAST"
	BookingStateFuture   BookingState = "FUTURE"
	BookingStateWaiting  BookingState = "WAITING"
	BookingStateRejected BookingState = "REJECTED"
)

// ParseBookingState resolves a case-insensitive state keyword. The error
// message is a wire contract and must stay exactly as is.
func ParseBookingState(s string) (BookingState, error) {
	switch BookingState(strings.ToUpper(s)) {
	case BookingStateAll, BookingStateCurrent, BookingStatePast,
		BookingStateFuture, BookingStateWaiting, BookingStateRejected:
		return BookingState(strings.ToUpper(s)), nil
	default:
		return "", Validationf("Unknown state: UNSUPPORTED_STATUS")
	}
}
