package memory

import (
	"context"
	"sort"

	"shareit-backend/internal/domain"
)

type bookingRepo struct {
	st *state
}

func (r *bookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	r.st.nextBookingID++
	b.ID = r.st.nextBookingID
	r.st.bookings[b.ID] = *b
	return nil
}

func (r *bookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	b, ok := r.st.bookings[id]
	if !ok {
		return nil, domain.NotFoundf("booking with id=%d not found", id)
	}
	return &b, nil
}

// UpdateStatus checks and writes under the store mutex, so only one of two
// concurrent transitions from the same source status can succeed.
func (r *bookingRepo) UpdateStatus(ctx context.Context, id int32, from, to domain.BookingStatus) (bool, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	b, ok := r.st.bookings[id]
	if !ok || b.Status != from {
		return false, nil
	}
	b.Status = to
	r.st.bookings[id] = b
	return true, nil
}

func (r *bookingRepo) where(match func(domain.Booking) bool) []domain.Booking {
	var bookings []domain.Booking
	for _, b := range r.st.bookings {
		if match(b) {
			bookings = append(bookings, b)
		}
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID < bookings[j].ID })
	return bookings
}

func (r *bookingRepo) ListByBooker(ctx context.Context, bookerID int32, from, size int32) ([]domain.Booking, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	bookings := r.where(func(b domain.Booking) bool { return b.BookerID == bookerID })
	return pageSlice(bookings, from, size), nil
}

func (r *bookingRepo) ListByOwner(ctx context.Context, ownerID int32, from, size int32) ([]domain.Booking, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	bookings := r.where(func(b domain.Booking) bool { return b.OwnerID == ownerID })
	return pageSlice(bookings, from, size), nil
}

func (r *bookingRepo) ListByItem(ctx context.Context, itemID int32) ([]domain.Booking, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	return r.where(func(b domain.Booking) bool { return b.ItemID == itemID }), nil
}
