package service

import (
	"context"
	"time"

	"shareit-backend/internal/clock"
	"shareit-backend/internal/domain"
	"shareit-backend/internal/logger"
	"shareit-backend/internal/repository"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	clk         clock.Clock
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	clk clock.Clock,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		clk:         clk,
	}
}

// validateNewBooking checks a candidate booking against the resolved item and
// booker. It has no side effects; nothing is persisted on failure.
//
// The ownership conflict is reported as not-found rather than forbidden. That
// is a deliberate contract of this API, kept from the system it replaces.
func validateNewBooking(item *domain.Item, booker *domain.User, start, end time.Time) error {
	if booker.ID == item.OwnerID {
		return domain.NotFoundf("user with id=%d is the owner of the item", booker.ID)
	}
	if !item.Available {
		return domain.Validationf("item with id=%d is not available for booking", item.ID)
	}
	if !start.Before(end) {
		return domain.Validationf("booking start must be before its end")
	}
	return nil
}

func (s *bookingService) AddBooking(ctx context.Context, bookerID, itemID int32, start, end time.Time) (*domain.Booking, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	booker, err := s.userRepo.GetByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	if err := validateNewBooking(item, booker, start, end); err != nil {
		logger.Warn("booking rejected", "item_id", itemID, "booker_id", bookerID, "error", err)
		return nil, err
	}

	// Every booking enters the lifecycle in WAITING; there is no other way
	// to create one.
	booking := &domain.Booking{
		ItemID:   item.ID,
		BookerID: booker.ID,
		OwnerID:  item.OwnerID,
		Start:    start,
		End:      end,
		Status:   domain.BookingStatusWaiting,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	logger.Info("booking created", "booking_id", booking.ID, "item_id", item.ID, "booker_id", booker.ID)
	return booking, nil
}

func (s *bookingService) ApproveBooking(ctx context.Context, ownerID, bookingID int32, approved bool) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.OwnerID != ownerID {
		return nil, domain.NotFoundf("user with id=%d is not the owner of the item", ownerID)
	}

	target := domain.BookingStatusRejected
	if approved {
		target = domain.BookingStatusApproved
	}
	// Compare-and-set: the transition only lands if the stored status is
	// still WAITING, so a concurrent decision cannot be overwritten.
	ok, err := s.bookingRepo.UpdateStatus(ctx, booking.ID, domain.BookingStatusWaiting, target)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.Warn("booking not awaiting decision", "booking_id", booking.ID)
		return nil, domain.Validationf("booking with id=%d does not await a decision", booking.ID)
	}
	booking.Status = target
	logger.Info("booking decided", "booking_id", booking.ID, "status", booking.Status)
	return booking, nil
}

func (s *bookingService) GetByID(ctx context.Context, userID, bookingID int32) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.BookerID != userID && booking.OwnerID != userID {
		return nil, domain.NotFoundf("user with id=%d has no relation to this booking", userID)
	}
	return booking, nil
}

func (s *bookingService) GetAllByBooker(ctx context.Context, bookerID int32, state string, from, size int32) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.ListByBooker(ctx, bookerID, from, size)
	if err != nil {
		return nil, err
	}
	return s.filter(bookings, state)
}

func (s *bookingService) GetAllByOwner(ctx context.Context, ownerID int32, state string, from, size int32) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.ListByOwner(ctx, ownerID, from, size)
	if err != nil {
		return nil, err
	}
	return s.filter(bookings, state)
}

// filter applies the state keyword to an unfiltered booking list. An empty
// unfiltered list is an error, not an empty result; callers of this API
// depend on that.
func (s *bookingService) filter(bookings []domain.Booking, state string) ([]domain.Booking, error) {
	if len(bookings) == 0 {
		return nil, domain.NotFoundf("no bookings found")
	}
	st, err := domain.ParseBookingState(state)
	if err != nil {
		return nil, err
	}
	return filterByState(bookings, st, s.clk.Now()), nil
}
