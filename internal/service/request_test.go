package service

import (
	"context"
	"testing"

	"shareit-backend/internal/clock"
	"shareit-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRequestServiceForTest() (ItemRequestService, *MockRequestRepo, *MockUserRepo, *MockItemRepo) {
	requestRepo := new(MockRequestRepo)
	userRepo := new(MockUserRepo)
	itemRepo := new(MockItemRepo)
	svc := NewItemRequestService(requestRepo, userRepo, itemRepo, clock.NewFixed(testNow))
	return svc, requestRepo, userRepo, itemRepo
}

func TestItemRequestService_CreateRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, requestRepo, userRepo, _ := newRequestServiceForTest()
		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1}, nil)
		requestRepo.On("Create", ctx, mock.AnythingOfType("*domain.ItemRequest")).Return(nil)

		req, err := svc.CreateRequest(ctx, 1, "need a ladder")
		assert.NoError(t, err)
		assert.Equal(t, int32(1), req.RequesterID)
		assert.True(t, req.Created.Equal(testNow))
	})

	t.Run("UnknownUserBeforeValidation", func(t *testing.T) {
		// The requester is resolved before the description is checked, so
		// an unknown user wins even with a blank description.
		svc, _, userRepo, _ := newRequestServiceForTest()
		userRepo.On("GetByID", ctx, int32(99)).Return(nil, domain.NotFoundf("user with id=99 not found"))

		_, err := svc.CreateRequest(ctx, 99, "")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("EmptyDescription", func(t *testing.T) {
		svc, requestRepo, userRepo, _ := newRequestServiceForTest()
		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1}, nil)

		_, err := svc.CreateRequest(ctx, 1, "")
		assert.ErrorIs(t, err, domain.ErrValidation)
		requestRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestItemRequestService_GetRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("AttachesItems", func(t *testing.T) {
		svc, requestRepo, userRepo, itemRepo := newRequestServiceForTest()
		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1}, nil)
		requestRepo.On("GetByID", ctx, int32(7)).Return(&domain.ItemRequest{ID: 7, RequesterID: 2}, nil)
		itemRepo.On("ListByRequest", ctx, int32(7)).Return([]domain.Item{{ID: 3}}, nil)

		req, err := svc.GetRequest(ctx, 1, 7)
		assert.NoError(t, err)
		assert.Len(t, req.Items, 1)
	})

	t.Run("UnknownCaller", func(t *testing.T) {
		svc, requestRepo, userRepo, _ := newRequestServiceForTest()
		userRepo.On("GetByID", ctx, int32(99)).Return(nil, domain.NotFoundf("user with id=99 not found"))

		_, err := svc.GetRequest(ctx, 99, 7)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		requestRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestItemRequestService_Lists(t *testing.T) {
	ctx := context.Background()

	t.Run("ListOwn", func(t *testing.T) {
		svc, requestRepo, userRepo, itemRepo := newRequestServiceForTest()
		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1}, nil)
		requestRepo.On("ListByRequester", ctx, int32(1)).Return([]domain.ItemRequest{{ID: 7, RequesterID: 1}}, nil)
		itemRepo.On("ListByRequest", ctx, int32(7)).Return([]domain.Item{{ID: 3}}, nil)

		reqs, err := svc.ListOwn(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, reqs, 1)
		assert.Len(t, reqs[0].Items, 1)
	})

	t.Run("ListOthers", func(t *testing.T) {
		svc, requestRepo, userRepo, itemRepo := newRequestServiceForTest()
		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1}, nil)
		requestRepo.On("ListOthers", ctx, int32(1), int32(0), int32(10)).Return([]domain.ItemRequest{{ID: 8, RequesterID: 2}}, nil)
		itemRepo.On("ListByRequest", ctx, int32(8)).Return([]domain.Item{}, nil)

		reqs, err := svc.ListOthers(ctx, 1, 0, 10)
		assert.NoError(t, err)
		assert.Len(t, reqs, 1)
		assert.Empty(t, reqs[0].Items)
	})
}
