package controllers

import (
	"context"

	"gin-shareit/dto"
	"gin-shareit/models"

	"github.com/stretchr/testify/mock"
)

type mockUserService struct{ mock.Mock }

func (m *mockUserService) Create(ctx context.Context, input dto.CreateUserInput) (*dto.UserResponse, error) {
	args := m.Called(ctx, input)
	res, _ := args.Get(0).(*dto.UserResponse)
	return res, args.Error(1)
}

func (m *mockUserService) FindByID(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	args := m.Called(ctx, userID)
	res, _ := args.Get(0).(*dto.UserResponse)
	return res, args.Error(1)
}

func (m *mockUserService) FindAll(ctx context.Context) ([]dto.UserResponse, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]dto.UserResponse)
	return res, args.Error(1)
}

func (m *mockUserService) Update(ctx context.Context, userID uint, input dto.UpdateUserInput) (*dto.UserResponse, error) {
	args := m.Called(ctx, userID, input)
	res, _ := args.Get(0).(*dto.UserResponse)
	return res, args.Error(1)
}

func (m *mockUserService) Delete(ctx context.Context, userID uint) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockUserService) Require(ctx context.Context, userID uint) (*models.User, error) {
	args := m.Called(ctx, userID)
	res, _ := args.Get(0).(*models.User)
	return res, args.Error(1)
}

type mockBookingService struct{ mock.Mock }

func (m *mockBookingService) Create(ctx context.Context, userID uint, input dto.CreateBookingInput) (*dto.BookingResponse, error) {
	args := m.Called(ctx, userID, input)
	res, _ := args.Get(0).(*dto.BookingResponse)
	return res, args.Error(1)
}

func (m *mockBookingService) Approve(ctx context.Context, userID uint, bookingID uint, approved bool) (*dto.BookingResponse, error) {
	args := m.Called(ctx, userID, bookingID, approved)
	res, _ := args.Get(0).(*dto.BookingResponse)
	return res, args.Error(1)
}

func (m *mockBookingService) FindByID(ctx context.Context, userID uint, bookingID uint) (*dto.BookingResponse, error) {
	args := m.Called(ctx, userID, bookingID)
	res, _ := args.Get(0).(*dto.BookingResponse)
	return res, args.Error(1)
}

func (m *mockBookingService) FindForBooker(ctx context.Context, userID uint, state models.BookingState, page dto.PageQuery) ([]dto.BookingResponse, error) {
	args := m.Called(ctx, userID, state, page)
	res, _ := args.Get(0).([]dto.BookingResponse)
	return res, args.Error(1)
}

func (m *mockBookingService) FindForOwner(ctx context.Context, userID uint, state models.BookingState, page dto.PageQuery) ([]dto.BookingResponse, error) {
	args := m.Called(ctx, userID, state, page)
	res, _ := args.Get(0).([]dto.BookingResponse)
	return res, args.Error(1)
}

type mockItemService struct{ mock.Mock }

func (m *mockItemService) Create(ctx context.Context, userID uint, input dto.CreateItemInput) (*dto.ItemResponse, error) {
	args := m.Called(ctx, userID, input)
	res, _ := args.Get(0).(*dto.ItemResponse)
	return res, args.Error(1)
}

func (m *mockItemService) Update(ctx context.Context, userID uint, itemID uint, input dto.UpdateItemInput) (*dto.ItemResponse, error) {
	args := m.Called(ctx, userID, itemID, input)
	res, _ := args.Get(0).(*dto.ItemResponse)
	return res, args.Error(1)
}

func (m *mockItemService) FindByID(ctx context.Context, userID uint, itemID uint) (*dto.ItemDetailResponse, error) {
	args := m.Called(ctx, userID, itemID)
	res, _ := args.Get(0).(*dto.ItemDetailResponse)
	return res, args.Error(1)
}

func (m *mockItemService) FindByOwner(ctx context.Context, userID uint, page dto.PageQuery) ([]dto.ItemDetailResponse, error) {
	args := m.Called(ctx, userID, page)
	res, _ := args.Get(0).([]dto.ItemDetailResponse)
	return res, args.Error(1)
}

func (m *mockItemService) Search(ctx context.Context, userID uint, text string, page dto.PageQuery) ([]dto.ItemResponse, error) {
	args := m.Called(ctx, userID, text, page)
	res, _ := args.Get(0).([]dto.ItemResponse)
	return res, args.Error(1)
}

func (m *mockItemService) AddComment(ctx context.Context, userID uint, itemID uint, input dto.CreateCommentInput) (*dto.CommentResponse, error) {
	args := m.Called(ctx, userID, itemID, input)
	res, _ := args.Get(0).(*dto.CommentResponse)
	return res, args.Error(1)
}
