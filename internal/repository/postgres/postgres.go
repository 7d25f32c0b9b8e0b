package postgres

import (
	"database/sql"

	"shareit-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ItemRepository
	repository.BookingRepository
	repository.ItemRequestRepository
	repository.CommentRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		UserRepository:        NewUserRepository(db),
		ItemRepository:        NewItemRepository(db),
		BookingRepository:     NewBookingRepository(db),
		ItemRequestRepository: NewItemRequestRepository(db),
		CommentRepository:     NewCommentRepository(db),
	}
}

// pageOffset maps the from/size query parameters to a row offset using the
// page index formula page = from / size.
func pageOffset(from, size int32) int32 {
	if size <= 0 {
		return 0
	}
	return (from / size) * size
}
