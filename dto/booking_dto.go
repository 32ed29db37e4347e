package dto

import "gin-shareit/models"

type CreateBookingInput struct {
	ItemID uint     `json:"itemId" binding:"required,min=1"`
	Start  DateTime `json:"start" binding:"required,future"`
	End    DateTime `json:"end" binding:"required,future"`
}

type ApproveBookingQuery struct {
	Approved *bool `form:"approved" binding:"required"`
}

type BookingListQuery struct {
	State string `form:"state,default=ALL"`
	PageQuery
}

type BookingResponse struct {
	ID     uint                 `json:"id"`
	Start  DateTime             `json:"start"`
	End    DateTime             `json:"end"`
	Status models.BookingStatus `json:"status"`
	Item   ItemResponse         `json:"item"`
	Booker UserShortResponse    `json:"booker"`
}

// BookingShortResponse はアイテム詳細に埋め込む予約
type BookingShortResponse struct {
	ID       uint `json:"id"`
	BookerID uint `json:"bookerId"`
}

func NewBookingResponse(b models.Booking) BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		Start:  NewDateTime(b.Start),
		End:    NewDateTime(b.End),
		Status: b.Status,
		Item:   NewItemResponse(b.Item),
		Booker: NewUserShortResponse(b.Booker),
	}
}

func NewBookingResponses(bookings []models.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, NewBookingResponse(b))
	}
	return out
}

func NewBookingShortResponse(b *models.Booking) *BookingShortResponse {
	if b == nil {
		return nil
	}
	return &BookingShortResponse{ID: b.ID, BookerID: b.BookerID}
}
