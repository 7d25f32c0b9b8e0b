package service

import (
	"context"

	"shareit-backend/internal/clock"
	"shareit-backend/internal/domain"
	"shareit-backend/internal/logger"
	"shareit-backend/internal/repository"
)

type itemRequestService struct {
	requestRepo repository.ItemRequestRepository
	userRepo    repository.UserRepository
	itemRepo    repository.ItemRepository
	clk         clock.Clock
}

func NewItemRequestService(
	requestRepo repository.ItemRequestRepository,
	userRepo repository.UserRepository,
	itemRepo repository.ItemRepository,
	clk clock.Clock,
) ItemRequestService {
	return &itemRequestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		itemRepo:    itemRepo,
		clk:         clk,
	}
}

func (s *itemRequestService) CreateRequest(ctx context.Context, userID int32, description string) (*domain.ItemRequest, error) {
	requester, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if description == "" {
		return nil, domain.Validationf("request description is required")
	}
	request := &domain.ItemRequest{
		RequesterID: requester.ID,
		Description: description,
		Created:     s.clk.Now(),
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	logger.Info("item request created", "request_id", request.ID, "requester_id", requester.ID)
	return request, nil
}

func (s *itemRequestService) GetRequest(ctx context.Context, userID, requestID int32) (*domain.ItemRequest, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if err := s.attachItems(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *itemRequestService) ListOwn(ctx context.Context, requesterID int32) ([]domain.ItemRequest, error) {
	if _, err := s.userRepo.GetByID(ctx, requesterID); err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	for i := range requests {
		if err := s.attachItems(ctx, &requests[i]); err != nil {
			return nil, err
		}
	}
	return requests, nil
}

func (s *itemRequestService) ListOthers(ctx context.Context, userID int32, from, size int32) ([]domain.ItemRequest, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.ListOthers(ctx, userID, from, size)
	if err != nil {
		return nil, err
	}
	for i := range requests {
		if err := s.attachItems(ctx, &requests[i]); err != nil {
			return nil, err
		}
	}
	return requests, nil
}

func (s *itemRequestService) attachItems(ctx context.Context, request *domain.ItemRequest) error {
	items, err := s.itemRepo.ListByRequest(ctx, request.ID)
	if err != nil {
		return err
	}
	request.Items = items
	return nil
}
