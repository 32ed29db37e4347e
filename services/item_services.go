package services

import (
	"context"
	"errors"
	"strings"

	"gin-shareit/dto"
	"gin-shareit/models"
	"gin-shareit/repositories"

	"gorm.io/gorm"
)

type IItemService interface {
	Create(ctx context.Context, userID uint, input dto.CreateItemInput) (*dto.ItemResponse, error)
	Update(ctx context.Context, userID uint, itemID uint, input dto.UpdateItemInput) (*dto.ItemResponse, error)
	FindByID(ctx context.Context, userID uint, itemID uint) (*dto.ItemDetailResponse, error)
	FindByOwner(ctx context.Context, userID uint, page dto.PageQuery) ([]dto.ItemDetailResponse, error)
	Search(ctx context.Context, userID uint, text string, page dto.PageQuery) ([]dto.ItemResponse, error)
	AddComment(ctx context.Context, userID uint, itemID uint, input dto.CreateCommentInput) (*dto.CommentResponse, error)
}

type ItemService struct {
	repository repositories.IItemRepository
	users      IUserService
	requests   repositories.IItemRequestRepository
	bookings   repositories.IBookingRepository
	comments   repositories.ICommentRepository
	clock      Clock
}

func NewItemService(
	repository repositories.IItemRepository,
	users IUserService,
	requests repositories.IItemRequestRepository,
	bookings repositories.IBookingRepository,
	comments repositories.ICommentRepository,
	clock Clock,
) IItemService {
	return &ItemService{
		repository: repository,
		users:      users,
		requests:   requests,
		bookings:   bookings,
		comments:   comments,
		clock:      clock,
	}
}

func (s *ItemService) Create(ctx context.Context, userID uint, input dto.CreateItemInput) (*dto.ItemResponse, error) {
	if _, err := s.users.Require(ctx, userID); err != nil {
		return nil, err
	}
	if input.RequestID != nil {
		if err := s.requireRequest(ctx, *input.RequestID); err != nil {
			return nil, err
		}
	}

	newItem := models.Item{
		Name:        input.Name,
		Description: input.Description,
		Available:   *input.Available,
		OwnerID:     userID,
		RequestID:   input.RequestID,
	}
	item, err := s.repository.Create(ctx, newItem)
	if err != nil {
		return nil, err
	}
	res := dto.NewItemResponse(*item)
	return &res, nil
}

func (s *ItemService) Update(ctx context.Context, userID uint, itemID uint, input dto.UpdateItemInput) (*dto.ItemResponse, error) {
	if _, err := s.users.Require(ctx, userID); err != nil {
		return nil, err
	}
	targetItem, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if targetItem.OwnerID != userID {
		return nil, ErrInvalidf("user %d is not the owner of item %d", userID, itemID)
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Available != nil {
		updates["available"] = *input.Available
	}
	if input.RequestID != nil {
		if err := s.requireRequest(ctx, *input.RequestID); err != nil {
			return nil, err
		}
		updates["request_id"] = *input.RequestID
	}

	item, err := s.repository.Update(ctx, itemID, updates)
	if err != nil {
		return nil, itemError(err, itemID)
	}
	res := dto.NewItemResponse(*item)
	return &res, nil
}

func (s *ItemService) FindByID(ctx context.Context, userID uint, itemID uint) (*dto.ItemDetailResponse, error) {
	if _, err := s.users.Require(ctx, userID); err != nil {
		return nil, err
	}
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	// 予約情報はオーナーにだけ見せる
	details, err := s.withDetails(ctx, []models.Item{*item}, item.OwnerID == userID)
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *ItemService) FindByOwner(ctx context.Context, userID uint, page dto.PageQuery) ([]dto.ItemDetailResponse, error) {
	if _, err := s.users.Require(ctx, userID); err != nil {
		return nil, err
	}
	items, err := s.repository.FindByOwner(ctx, userID, repositories.NewPage(page.From, page.Size))
	if err != nil {
		return nil, err
	}
	return s.withDetails(ctx, items, true)
}

func (s *ItemService) Search(ctx context.Context, userID uint, text string, page dto.PageQuery) ([]dto.ItemResponse, error) {
	if _, err := s.users.Require(ctx, userID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return []dto.ItemResponse{}, nil
	}
	items, err := s.repository.Search(ctx, text, repositories.NewPage(page.From, page.Size))
	if err != nil {
		return nil, err
	}
	return dto.NewItemResponses(items), nil
}

// AddComment は予約を終えたユーザーだけがコメントできる
func (s *ItemService) AddComment(ctx context.Context, userID uint, itemID uint, input dto.CreateCommentInput) (*dto.CommentResponse, error) {
	if _, err := s.users.Require(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.findItem(ctx, itemID); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	finished, err := s.bookings.ExistsFinished(ctx, userID, itemID, now)
	if err != nil {
		return nil, err
	}
	if !finished {
		return nil, ErrInvalidf("user %d has no completed booking of item %d", userID, itemID)
	}

	comment, err := s.comments.Create(ctx, models.Comment{
		Text:     input.Text,
		ItemID:   itemID,
		AuthorID: userID,
		Created:  now,
	})
	if err != nil {
		return nil, err
	}
	res := dto.NewCommentResponse(*comment)
	return &res, nil
}

func (s *ItemService) findItem(ctx context.Context, itemID uint) (*models.Item, error) {
	item, err := s.repository.FindByID(ctx, itemID)
	if err != nil {
		return nil, itemError(err, itemID)
	}
	return item, nil
}

func (s *ItemService) requireRequest(ctx context.Context, requestID uint) error {
	if _, err := s.requests.FindByID(ctx, requestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFoundf("request %d not found", requestID)
		}
		return err
	}
	return nil
}

// withDetails はコメントと、withBookings なら直近・次回の予約をまとめて付与する
func (s *ItemService) withDetails(ctx context.Context, items []models.Item, withBookings bool) ([]dto.ItemDetailResponse, error) {
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	comments, err := s.comments.FindByItemIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	commentsByItem := make(map[uint][]dto.CommentResponse)
	for _, c := range comments {
		commentsByItem[c.ItemID] = append(commentsByItem[c.ItemID], dto.NewCommentResponse(c))
	}

	var last, next map[uint]models.Booking
	if withBookings {
		now := s.clock.Now()
		if last, err = s.bookings.FindLastForItems(ctx, ids, now); err != nil {
			return nil, err
		}
		if next, err = s.bookings.FindNextForItems(ctx, ids, now); err != nil {
			return nil, err
		}
	}

	out := make([]dto.ItemDetailResponse, 0, len(items))
	for _, item := range items {
		detail := dto.NewItemDetailResponse(item)
		if c, ok := commentsByItem[item.ID]; ok {
			detail.Comments = c
		}
		if b, ok := last[item.ID]; ok {
			detail.LastBooking = dto.NewBookingShortResponse(&b)
		}
		if b, ok := next[item.ID]; ok {
			detail.NextBooking = dto.NewBookingShortResponse(&b)
		}
		out = append(out, detail)
	}
	return out, nil
}

func itemError(err error, itemID uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFoundf("item %d not found", itemID)
	}
	return err
}
