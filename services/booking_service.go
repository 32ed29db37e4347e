package services

import (
	"context"
	"errors"

	"gin-shareit/dto"
	"gin-shareit/models"
	"gin-shareit/repositories"

	"gorm.io/gorm"
)

type IBookingService interface {
	Create(ctx context.Context, userID uint, input dto.CreateBookingInput) (*dto.BookingResponse, error)
	Approve(ctx context.Context, userID uint, bookingID uint, approved bool) (*dto.BookingResponse, error)
	FindByID(ctx context.Context, userID uint, bookingID uint) (*dto.BookingResponse, error)
	FindForBooker(ctx context.Context, userID uint, state models.BookingState, page dto.PageQuery) ([]dto.BookingResponse, error)
	FindForOwner(ctx context.Context, userID uint, state models.BookingState, page dto.PageQuery) ([]dto.BookingResponse, error)
}

type BookingService struct {
	repository repositories.IBookingRepository
	items      repositories.IItemRepository
	users      IUserService
	clock      Clock
}

func NewBookingService(
	repository repositories.IBookingRepository,
	items repositories.IItemRepository,
	users IUserService,
	clock Clock,
) IBookingService {
	return &BookingService{repository: repository, items: items, users: users, clock: clock}
}

func (s *BookingService) Create(ctx context.Context, userID uint, input dto.CreateBookingInput) (*dto.BookingResponse, error) {
	if _, err := s.users.Require(ctx, userID); err != nil {
		return nil, err
	}
	start, end := input.Start.UTC(), input.End.UTC()
	if !start.Before(end) {
		return nil, ErrInvalid("booking start must be before its end")
	}

	item, err := s.items.FindByID(ctx, input.ItemID)
	if err != nil {
		return nil, itemError(err, input.ItemID)
	}
	if !item.Available {
		return nil, ErrInvalidf("item %d is not available", item.ID)
	}
	if item.OwnerID == userID {
		return nil, ErrNotFoundf("item %d can not be booked by its owner", item.ID)
	}

	booking, err := s.repository.Create(ctx, models.Booking{
		Start:    start,
		End:      end,
		ItemID:   item.ID,
		BookerID: userID,
		Status:   models.StatusWaiting,
	})
	if err != nil {
		return nil, err
	}
	res := dto.NewBookingResponse(*booking)
	return &res, nil
}

// Approve は WAITING の予約を承認または却下する。並行する承認は一方だけが成功する
func (s *BookingService) Approve(ctx context.Context, userID uint, bookingID uint, approved bool) (*dto.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Item.OwnerID != userID {
		return nil, ErrNotFoundf("booking %d not found for owner %d", bookingID, userID)
	}
	if booking.Status != models.StatusWaiting {
		return nil, ErrInvalidf("booking %d is already %s", bookingID, booking.Status)
	}

	status := models.StatusRejected
	if approved {
		status = models.StatusApproved
	}
	updated, err := s.repository.UpdateStatus(ctx, bookingID, models.StatusWaiting, status)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrInvalidf("booking %d is no longer waiting", bookingID)
	}

	booking, err = s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	res := dto.NewBookingResponse(*booking)
	return &res, nil
}

func (s *BookingService) FindByID(ctx context.Context, userID uint, bookingID uint) (*dto.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.BookerID != userID && booking.Item.OwnerID != userID {
		return nil, ErrNotFoundf("booking %d not found for user %d", bookingID, userID)
	}
	res := dto.NewBookingResponse(*booking)
	return &res, nil
}

func (s *BookingService) FindForBooker(ctx context.Context, userID uint, state models.BookingState, page dto.PageQuery) ([]dto.BookingResponse, error) {
	return s.findAll(ctx, userID, repositories.BookingFilter{BookerID: userID, State: state}, page)
}

func (s *BookingService) FindForOwner(ctx context.Context, userID uint, state models.BookingState, page dto.PageQuery) ([]dto.BookingResponse, error) {
	return s.findAll(ctx, userID, repositories.BookingFilter{OwnerID: userID, State: state}, page)
}

func (s *BookingService) findAll(ctx context.Context, userID uint, filter repositories.BookingFilter, page dto.PageQuery) ([]dto.BookingResponse, error) {
	if _, err := s.users.Require(ctx, userID); err != nil {
		return nil, err
	}
	filter.Now = s.clock.Now()
	bookings, err := s.repository.FindAll(ctx, filter, repositories.NewPage(page.From, page.Size))
	if err != nil {
		return nil, err
	}
	return dto.NewBookingResponses(bookings), nil
}

func (s *BookingService) findBooking(ctx context.Context, bookingID uint) (*models.Booking, error) {
	booking, err := s.repository.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFoundf("booking %d not found", bookingID)
		}
		return nil, err
	}
	return booking, nil
}
