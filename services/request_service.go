package services

import (
	"context"
	"errors"

	"gin-shareit/dto"
	"gin-shareit/models"
	"gin-shareit/repositories"

	"gorm.io/gorm"
)

type IItemRequestService interface {
	Create(ctx context.Context, userID uint, input dto.CreateItemRequestInput) (*dto.ItemRequestResponse, error)
	FindOwn(ctx context.Context, userID uint, page dto.PageQuery) ([]dto.ItemRequestWithItemsResponse, error)
	FindOthers(ctx context.Context, userID uint, page dto.PageQuery) ([]dto.ItemRequestWithItemsResponse, error)
	FindByID(ctx context.Context, userID uint, requestID uint) (*dto.ItemRequestWithItemsResponse, error)
}

type ItemRequestService struct {
	repository repositories.IItemRequestRepository
	items      repositories.IItemRepository
	users      IUserService
	clock      Clock
}

func NewItemRequestService(
	repository repositories.IItemRequestRepository,
	items repositories.IItemRepository,
	users IUserService,
	clock Clock,
) IItemRequestService {
	return &ItemRequestService{repository: repository, items: items, users: users, clock: clock}
}

func (s *ItemRequestService) Create(ctx context.Context, userID uint, input dto.CreateItemRequestInput) (*dto.ItemRequestResponse, error) {
	if _, err := s.users.Require(ctx, userID); err != nil {
		return nil, err
	}
	request, err := s.repository.Create(ctx, models.ItemRequest{
		Description: input.Description,
		RequestorID: userID,
		Created:     s.clock.Now(),
	})
	if err != nil {
		return nil, err
	}
	res := dto.NewItemRequestResponse(*request)
	return &res, nil
}

func (s *ItemRequestService) FindOwn(ctx context.Context, userID uint, page dto.PageQuery) ([]dto.ItemRequestWithItemsResponse, error) {
	if _, err := s.users.Require(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.repository.FindByRequestor(ctx, userID, repositories.NewPage(page.From, page.Size))
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, requests)
}

func (s *ItemRequestService) FindOthers(ctx context.Context, userID uint, page dto.PageQuery) ([]dto.ItemRequestWithItemsResponse, error) {
	if _, err := s.users.Require(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.repository.FindOthers(ctx, userID, repositories.NewPage(page.From, page.Size))
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, requests)
}

func (s *ItemRequestService) FindByID(ctx context.Context, userID uint, requestID uint) (*dto.ItemRequestWithItemsResponse, error) {
	if _, err := s.users.Require(ctx, userID); err != nil {
		return nil, err
	}
	request, err := s.repository.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFoundf("request %d not found", requestID)
		}
		return nil, err
	}
	out, err := s.withItems(ctx, []models.ItemRequest{*request})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (s *ItemRequestService) withItems(ctx context.Context, requests []models.ItemRequest) ([]dto.ItemRequestWithItemsResponse, error) {
	ids := make([]uint, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.ID)
	}
	items, err := s.items.FindByRequestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byRequest := make(map[uint][]models.Item)
	for _, item := range items {
		if item.RequestID != nil {
			byRequest[*item.RequestID] = append(byRequest[*item.RequestID], item)
		}
	}

	out := make([]dto.ItemRequestWithItemsResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, dto.NewItemRequestWithItemsResponse(r, byRequest[r.ID]))
	}
	return out, nil
}
