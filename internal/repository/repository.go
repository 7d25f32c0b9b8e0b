package repository

import (
	"context"

	"shareit-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int32) error
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id int32) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id int32) error
	ListByOwner(ctx context.Context, ownerID int32, from, size int32) ([]domain.Item, error)
	ListByRequest(ctx context.Context, requestID int32) ([]domain.Item, error)
	Search(ctx context.Context, text string, from, size int32) ([]domain.Item, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	// UpdateStatus transitions the booking from one status to another and
	// reports whether the stored row actually matched the expected source
	// status. This is the compare-and-set two concurrent decisions race on.
	UpdateStatus(ctx context.Context, id int32, from, to domain.BookingStatus) (bool, error)
	ListByBooker(ctx context.Context, bookerID int32, from, size int32) ([]domain.Booking, error)
	ListByOwner(ctx context.Context, ownerID int32, from, size int32) ([]domain.Booking, error)
	ListByItem(ctx context.Context, itemID int32) ([]domain.Booking, error)
}

type ItemRequestRepository interface {
	Create(ctx context.Context, request *domain.ItemRequest) error
	GetByID(ctx context.Context, id int32) (*domain.ItemRequest, error)
	ListByRequester(ctx context.Context, requesterID int32) ([]domain.ItemRequest, error)
	// ListOthers returns requests created by everyone except the given user.
	ListOthers(ctx context.Context, userID int32, from, size int32) ([]domain.ItemRequest, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByItem(ctx context.Context, itemID int32) ([]domain.Comment, error)
}
