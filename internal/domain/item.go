package domain

type Item struct {
	ID          int32  `json:"id"`
	OwnerID     int32  `json:"owner_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int32 `json:"request_id,omitempty"`

	// Populated on detail views. Last/next bookings only for the owner.
	Comments    []Comment     `json:"comments,omitempty"`
	LastBooking *BookingBrief `json:"last_booking,omitempty"`
	NextBooking *BookingBrief `json:"next_booking,omitempty"`
}

// ItemUpdate carries a partial update. Nil fields are left unchanged.
type ItemUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}
