// Package memory implements the repository interfaces on explicit in-process
// state. It backs tests and the storage.type=memory composition.
package memory

import (
	"strings"
	"sync"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/repository"
)

// state owns all entity maps behind one mutex. The mutex also makes the
// booking status compare-and-set atomic, matching the guarantee the postgres
// store gets from a conditional UPDATE.
type state struct {
	mu sync.Mutex

	users    map[int32]domain.User
	items    map[int32]domain.Item
	bookings map[int32]domain.Booking
	requests map[int32]domain.ItemRequest
	comments map[int32]domain.Comment

	nextUserID    int32
	nextItemID    int32
	nextBookingID int32
	nextRequestID int32
	nextCommentID int32
}

type Store struct {
	repository.UserRepository
	repository.ItemRepository
	repository.BookingRepository
	repository.ItemRequestRepository
	repository.CommentRepository
}

func NewStore() *Store {
	st := &state{
		users:    make(map[int32]domain.User),
		items:    make(map[int32]domain.Item),
		bookings: make(map[int32]domain.Booking),
		requests: make(map[int32]domain.ItemRequest),
		comments: make(map[int32]domain.Comment),
	}
	return &Store{
		UserRepository:        &userRepo{st},
		ItemRepository:        &itemRepo{st},
		BookingRepository:     &bookingRepo{st},
		ItemRequestRepository: &requestRepo{st},
		CommentRepository:     &commentRepo{st},
	}
}

func pageSlice[T any](list []T, from, size int32) []T {
	if size <= 0 {
		return list
	}
	offset := int((from / size) * size)
	if offset >= len(list) {
		return nil
	}
	end := offset + int(size)
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end]
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
