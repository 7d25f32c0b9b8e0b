package service

import (
	"context"
	"strings"

	"shareit-backend/internal/clock"
	"shareit-backend/internal/domain"
	"shareit-backend/internal/logger"
	"shareit-backend/internal/repository"
)

type itemService struct {
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
	commentRepo repository.CommentRepository
	requestRepo repository.ItemRequestRepository
	clk         clock.Clock
}

func NewItemService(
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	bookingRepo repository.BookingRepository,
	commentRepo repository.CommentRepository,
	requestRepo repository.ItemRequestRepository,
	clk clock.Clock,
) ItemService {
	return &itemService{
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		commentRepo: commentRepo,
		requestRepo: requestRepo,
		clk:         clk,
	}
}

func (s *itemService) AddItem(ctx context.Context, ownerID int32, input ItemInput) (*domain.Item, error) {
	if input.Name == "" {
		return nil, domain.Validationf("item name is required")
	}
	if input.Description == "" {
		return nil, domain.Validationf("item description is required")
	}
	if input.Available == nil {
		return nil, domain.Validationf("item availability is required")
	}
	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if input.RequestID != nil {
		if _, err := s.requestRepo.GetByID(ctx, *input.RequestID); err != nil {
			return nil, err
		}
	}

	item := &domain.Item{
		OwnerID:     owner.ID,
		Name:        input.Name,
		Description: input.Description,
		Available:   *input.Available,
		RequestID:   input.RequestID,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	logger.Info("item created", "item_id", item.ID, "owner_id", owner.ID)
	return item, nil
}

func (s *itemService) UpdateItem(ctx context.Context, userID, itemID int32, upd domain.ItemUpdate) (*domain.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != userID {
		return nil, domain.Forbiddenf("only the owner may edit the item")
	}
	if upd.Name != nil {
		item.Name = *upd.Name
	}
	if upd.Description != nil {
		item.Description = *upd.Description
	}
	if upd.Available != nil {
		item.Available = *upd.Available
	}
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	logger.Info("item updated", "item_id", item.ID)
	return item, nil
}

func (s *itemService) GetItem(ctx context.Context, userID, itemID int32) (*domain.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	item.Comments = comments
	if item.OwnerID == userID {
		if err := s.attachBookingBriefs(ctx, item); err != nil {
			return nil, err
		}
	}
	return item, nil
}

// attachBookingBriefs fills the owner-only last/next booking summaries:
// the most recent approved booking already started, and the earliest one yet
// to start.
func (s *itemService) attachBookingBriefs(ctx context.Context, item *domain.Item) error {
	bookings, err := s.bookingRepo.ListByItem(ctx, item.ID)
	if err != nil {
		return err
	}
	now := s.clk.Now()
	var last, next *domain.Booking
	for i := range bookings {
		b := &bookings[i]
		if b.Status != domain.BookingStatusApproved {
			continue
		}
		if b.Start.Before(now) {
			if last == nil || b.Start.After(last.Start) {
				last = b
			}
		} else {
			if next == nil || b.Start.Before(next.Start) {
				next = b
			}
		}
	}
	if last != nil {
		item.LastBooking = &domain.BookingBrief{ID: last.ID, BookerID: last.BookerID}
	}
	if next != nil {
		item.NextBooking = &domain.BookingBrief{ID: next.ID, BookerID: next.BookerID}
	}
	return nil
}

func (s *itemService) ListByOwner(ctx context.Context, ownerID int32, from, size int32) ([]domain.Item, error) {
	return s.itemRepo.ListByOwner(ctx, ownerID, from, size)
}

func (s *itemService) Search(ctx context.Context, text string, from, size int32) ([]domain.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []domain.Item{}, nil
	}
	return s.itemRepo.Search(ctx, text, from, size)
}

func (s *itemService) DeleteItem(ctx context.Context, itemID int32) error {
	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		return err
	}
	logger.Info("item deleted", "item_id", itemID)
	return nil
}

func (s *itemService) AddComment(ctx context.Context, userID, itemID int32, text string) (*domain.Comment, error) {
	if text == "" {
		return nil, domain.Validationf("comment text is required")
	}
	bookings, err := s.bookingRepo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	// Commenting requires a finished booking of this item by the author.
	var finished *domain.Booking
	now := s.clk.Now()
	for i := range bookings {
		b := &bookings[i]
		if b.BookerID == userID && b.End.Before(now) {
			finished = b
			break
		}
	}
	if finished == nil {
		return nil, domain.Validationf("user with id=%d has no bookings allowing a comment", userID)
	}
	if finished.Status != domain.BookingStatusApproved {
		return nil, domain.Validationf("booking status is %s, commenting is not allowed", finished.Status)
	}

	author, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ItemID:     item.ID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Text:       text,
		Created:    now,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	logger.Info("comment created", "comment_id", comment.ID, "item_id", item.ID)
	return comment, nil
}
