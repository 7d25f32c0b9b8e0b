package service

import (
	"context"
	"time"

	"shareit-backend/internal/domain"
)

type UserService interface {
	CreateUser(ctx context.Context, name, email string) (*domain.User, error)
	GetUser(ctx context.Context, id int32) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, id int32, upd domain.UserUpdate) (*domain.User, error)
	DeleteUser(ctx context.Context, id int32) error
}

// ItemInput carries the fields of a new item. Available is a pointer so a
// missing flag can be told apart from an explicit false.
type ItemInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   *int32 `json:"request_id"`
}

type ItemService interface {
	AddItem(ctx context.Context, ownerID int32, input ItemInput) (*domain.Item, error)
	UpdateItem(ctx context.Context, userID, itemID int32, upd domain.ItemUpdate) (*domain.Item, error)
	GetItem(ctx context.Context, userID, itemID int32) (*domain.Item, error)
	ListByOwner(ctx context.Context, ownerID int32, from, size int32) ([]domain.Item, error)
	Search(ctx context.Context, text string, from, size int32) ([]domain.Item, error)
	DeleteItem(ctx context.Context, itemID int32) error
	AddComment(ctx context.Context, userID, itemID int32, text string) (*domain.Comment, error)
}

type BookingService interface {
	AddBooking(ctx context.Context, bookerID, itemID int32, start, end time.Time) (*domain.Booking, error)
	ApproveBooking(ctx context.Context, ownerID, bookingID int32, approved bool) (*domain.Booking, error)
	GetByID(ctx context.Context, userID, bookingID int32) (*domain.Booking, error)
	GetAllByBooker(ctx context.Context, bookerID int32, state string, from, size int32) ([]domain.Booking, error)
	GetAllByOwner(ctx context.Context, ownerID int32, state string, from, size int32) ([]domain.Booking, error)
}

type ItemRequestService interface {
	CreateRequest(ctx context.Context, userID int32, description string) (*domain.ItemRequest, error)
	GetRequest(ctx context.Context, userID, requestID int32) (*domain.ItemRequest, error)
	ListOwn(ctx context.Context, requesterID int32) ([]domain.ItemRequest, error)
	ListOthers(ctx context.Context, userID int32, from, size int32) ([]domain.ItemRequest, error)
}
