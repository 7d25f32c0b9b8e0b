package service

import (
	"context"
	"testing"
	"time"

	"shareit-backend/internal/clock"
	"shareit-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type itemServiceMocks struct {
	itemRepo    *MockItemRepo
	userRepo    *MockUserRepo
	bookingRepo *MockBookingRepo
	commentRepo *MockCommentRepo
	requestRepo *MockRequestRepo
}

func newItemServiceForTest() (ItemService, itemServiceMocks) {
	m := itemServiceMocks{
		itemRepo:    new(MockItemRepo),
		userRepo:    new(MockUserRepo),
		bookingRepo: new(MockBookingRepo),
		commentRepo: new(MockCommentRepo),
		requestRepo: new(MockRequestRepo),
	}
	svc := NewItemService(m.itemRepo, m.userRepo, m.bookingRepo, m.commentRepo, m.requestRepo, clock.NewFixed(testNow))
	return svc, m
}

func boolPtr(b bool) *bool { return &b }

func TestItemService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, m := newItemServiceForTest()
		m.userRepo.On("GetByID", ctx, int32(10)).Return(&domain.User{ID: 10}, nil)
		m.itemRepo.On("Create", ctx, mock.AnythingOfType("*domain.Item")).Return(nil)

		item, err := svc.AddItem(ctx, 10, ItemInput{Name: "Drill", Description: "Cordless", Available: boolPtr(true)})
		assert.NoError(t, err)
		assert.Equal(t, int32(10), item.OwnerID)
		assert.True(t, item.Available)
		assert.Nil(t, item.RequestID)
	})

	t.Run("RequiredFields", func(t *testing.T) {
		svc, m := newItemServiceForTest()

		_, err := svc.AddItem(ctx, 10, ItemInput{Description: "Cordless", Available: boolPtr(true)})
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = svc.AddItem(ctx, 10, ItemInput{Name: "Drill", Available: boolPtr(true)})
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = svc.AddItem(ctx, 10, ItemInput{Name: "Drill", Description: "Cordless"})
		assert.ErrorIs(t, err, domain.ErrValidation)

		m.userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("UnknownOwner", func(t *testing.T) {
		svc, m := newItemServiceForTest()
		m.userRepo.On("GetByID", ctx, int32(99)).Return(nil, domain.NotFoundf("user with id=99 not found"))

		_, err := svc.AddItem(ctx, 99, ItemInput{Name: "Drill", Description: "Cordless", Available: boolPtr(true)})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		m.itemRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("AnswersRequest", func(t *testing.T) {
		svc, m := newItemServiceForTest()
		reqID := int32(7)
		m.userRepo.On("GetByID", ctx, int32(10)).Return(&domain.User{ID: 10}, nil)
		m.requestRepo.On("GetByID", ctx, reqID).Return(&domain.ItemRequest{ID: reqID}, nil)
		m.itemRepo.On("Create", ctx, mock.AnythingOfType("*domain.Item")).Return(nil)

		item, err := svc.AddItem(ctx, 10, ItemInput{Name: "Drill", Description: "Cordless", Available: boolPtr(true), RequestID: &reqID})
		assert.NoError(t, err)
		assert.NotNil(t, item.RequestID)
		assert.Equal(t, reqID, *item.RequestID)
	})

	t.Run("UnknownRequest", func(t *testing.T) {
		svc, m := newItemServiceForTest()
		reqID := int32(404)
		m.userRepo.On("GetByID", ctx, int32(10)).Return(&domain.User{ID: 10}, nil)
		m.requestRepo.On("GetByID", ctx, reqID).Return(nil, domain.NotFoundf("item request with id=404 not found"))

		_, err := svc.AddItem(ctx, 10, ItemInput{Name: "Drill", Description: "Cordless", Available: boolPtr(true), RequestID: &reqID})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestItemService_UpdateItem(t *testing.T) {
	ctx := context.Background()
	stored := func() *domain.Item {
		return &domain.Item{ID: 2, OwnerID: 10, Name: "Drill", Description: "Cordless", Available: true}
	}
	strPtr := func(s string) *string { return &s }

	t.Run("PartialUpdate", func(t *testing.T) {
		svc, m := newItemServiceForTest()
		m.itemRepo.On("GetByID", ctx, int32(2)).Return(stored(), nil)
		m.itemRepo.On("Update", ctx, mock.AnythingOfType("*domain.Item")).Return(nil)

		item, err := svc.UpdateItem(ctx, 10, 2, domain.ItemUpdate{Available: boolPtr(false)})
		assert.NoError(t, err)
		assert.False(t, item.Available)
		assert.Equal(t, "Drill", item.Name)
		assert.Equal(t, "Cordless", item.Description)
	})

	t.Run("NonOwnerForbidden", func(t *testing.T) {
		svc, m := newItemServiceForTest()
		m.itemRepo.On("GetByID", ctx, int32(2)).Return(stored(), nil)

		_, err := svc.UpdateItem(ctx, 1, 2, domain.ItemUpdate{Name: strPtr("Hammer")})
		assert.ErrorIs(t, err, domain.ErrForbidden)
		m.itemRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestItemService_GetItem(t *testing.T) {
	ctx := context.Background()
	comments := []domain.Comment{{ID: 1, ItemID: 2, Text: "works great"}}
	bookings := []domain.Booking{
		{ID: 1, ItemID: 2, BookerID: 1, Start: testNow.Add(-72 * time.Hour), End: testNow.Add(-48 * time.Hour), Status: domain.BookingStatusApproved},
		{ID: 2, ItemID: 2, BookerID: 3, Start: testNow.Add(-24 * time.Hour), End: testNow.Add(-12 * time.Hour), Status: domain.BookingStatusApproved},
		{ID: 3, ItemID: 2, BookerID: 1, Start: testNow.Add(24 * time.Hour), End: testNow.Add(48 * time.Hour), Status: domain.BookingStatusApproved},
		{ID: 4, ItemID: 2, BookerID: 3, Start: testNow.Add(72 * time.Hour), End: testNow.Add(96 * time.Hour), Status: domain.BookingStatusWaiting},
	}

	t.Run("OwnerSeesBookingBriefs", func(t *testing.T) {
		svc, m := newItemServiceForTest()
		m.itemRepo.On("GetByID", ctx, int32(2)).Return(&domain.Item{ID: 2, OwnerID: 10}, nil)
		m.commentRepo.On("ListByItem", ctx, int32(2)).Return(comments, nil)
		m.bookingRepo.On("ListByItem", ctx, int32(2)).Return(bookings, nil)

		item, err := svc.GetItem(ctx, 10, 2)
		assert.NoError(t, err)
		assert.Len(t, item.Comments, 1)
		// Last is the most recent approved start before now; next is the
		// earliest approved start after now. The WAITING one is skipped.
		assert.Equal(t, &domain.BookingBrief{ID: 2, BookerID: 3}, item.LastBooking)
		assert.Equal(t, &domain.BookingBrief{ID: 3, BookerID: 1}, item.NextBooking)
	})

	t.Run("NonOwnerSeesNoBriefs", func(t *testing.T) {
		svc, m := newItemServiceForTest()
		m.itemRepo.On("GetByID", ctx, int32(2)).Return(&domain.Item{ID: 2, OwnerID: 10}, nil)
		m.commentRepo.On("ListByItem", ctx, int32(2)).Return(comments, nil)

		item, err := svc.GetItem(ctx, 1, 2)
		assert.NoError(t, err)
		assert.Nil(t, item.LastBooking)
		assert.Nil(t, item.NextBooking)
		m.bookingRepo.AssertNotCalled(t, "ListByItem", mock.Anything, mock.Anything)
	})
}

func TestItemService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("BlankTextShortCircuits", func(t *testing.T) {
		svc, m := newItemServiceForTest()

		items, err := svc.Search(ctx, "   ", 0, 20)
		assert.NoError(t, err)
		assert.Empty(t, items)
		m.itemRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("DelegatesToRepo", func(t *testing.T) {
		svc, m := newItemServiceForTest()
		m.itemRepo.On("Search", ctx, "drill", int32(0), int32(20)).Return([]domain.Item{{ID: 2}}, nil)

		items, err := svc.Search(ctx, "drill", 0, 20)
		assert.NoError(t, err)
		assert.Len(t, items, 1)
	})
}

func TestItemService_AddComment(t *testing.T) {
	ctx := context.Background()
	finished := []domain.Booking{
		{ID: 1, ItemID: 2, BookerID: 1, Start: testNow.Add(-48 * time.Hour), End: testNow.Add(-24 * time.Hour), Status: domain.BookingStatusApproved},
	}

	t.Run("Success", func(t *testing.T) {
		svc, m := newItemServiceForTest()
		m.bookingRepo.On("ListByItem", ctx, int32(2)).Return(finished, nil)
		m.userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1, Name: "Alice"}, nil)
		m.itemRepo.On("GetByID", ctx, int32(2)).Return(&domain.Item{ID: 2, OwnerID: 10}, nil)
		m.commentRepo.On("Create", ctx, mock.AnythingOfType("*domain.Comment")).Return(nil)

		c, err := svc.AddComment(ctx, 1, 2, "works great")
		assert.NoError(t, err)
		assert.Equal(t, "Alice", c.AuthorName)
		assert.True(t, c.Created.Equal(testNow))
	})

	t.Run("EmptyText", func(t *testing.T) {
		svc, _ := newItemServiceForTest()

		_, err := svc.AddComment(ctx, 1, 2, "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("NoFinishedBooking", func(t *testing.T) {
		svc, m := newItemServiceForTest()
		ongoing := []domain.Booking{
			{ID: 1, ItemID: 2, BookerID: 1, Start: testNow.Add(-time.Hour), End: testNow.Add(time.Hour), Status: domain.BookingStatusApproved},
		}
		m.bookingRepo.On("ListByItem", ctx, int32(2)).Return(ongoing, nil)

		_, err := svc.AddComment(ctx, 1, 2, "too soon")
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "no bookings allowing a comment")
	})

	t.Run("BookingNotApproved", func(t *testing.T) {
		svc, m := newItemServiceForTest()
		rejected := []domain.Booking{
			{ID: 1, ItemID: 2, BookerID: 1, Start: testNow.Add(-48 * time.Hour), End: testNow.Add(-24 * time.Hour), Status: domain.BookingStatusRejected},
		}
		m.bookingRepo.On("ListByItem", ctx, int32(2)).Return(rejected, nil)

		_, err := svc.AddComment(ctx, 1, 2, "never happened")
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "commenting is not allowed")
	})

	t.Run("StrangerCannotComment", func(t *testing.T) {
		svc, m := newItemServiceForTest()
		m.bookingRepo.On("ListByItem", ctx, int32(2)).Return(finished, nil)

		_, err := svc.AddComment(ctx, 5, 2, "drive-by")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
