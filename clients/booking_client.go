package clients

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"gin-shareit/dto"
	"gin-shareit/models"
)

const bookingsPath = "/bookings"

type IBookingClient interface {
	Create(ctx context.Context, userID uint, input dto.CreateBookingInput) (*Response, error)
	Approve(ctx context.Context, userID uint, bookingID uint, approved bool) (*Response, error)
	FindByID(ctx context.Context, userID uint, bookingID uint) (*Response, error)
	FindForBooker(ctx context.Context, userID uint, state models.BookingState, page dto.PageQuery) (*Response, error)
	FindForOwner(ctx context.Context, userID uint, state models.BookingState, page dto.PageQuery) (*Response, error)
}

// bookingBody は開始・終了を RFC3339 のオフセット付きで送る
type bookingBody struct {
	ItemID uint   `json:"itemId"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

func newBookingBody(input dto.CreateBookingInput) bookingBody {
	return bookingBody{
		ItemID: input.ItemID,
		Start:  input.Start.Format(time.RFC3339Nano),
		End:    input.End.Format(time.RFC3339Nano),
	}
}

type BookingClient struct {
	base *BaseClient
}

func NewBookingClient(base *BaseClient) IBookingClient {
	return &BookingClient{base: base}
}

func (c *BookingClient) Create(ctx context.Context, userID uint, input dto.CreateBookingInput) (*Response, error) {
	return c.base.Do(ctx, Call{Method: http.MethodPost, Path: bookingsPath, UserID: userID, Body: newBookingBody(input)})
}

func (c *BookingClient) Approve(ctx context.Context, userID uint, bookingID uint, approved bool) (*Response, error) {
	return c.base.Do(ctx, Call{
		Method: http.MethodPatch,
		Path:   idPath(bookingsPath, bookingID),
		UserID: userID,
		Query:  url.Values{"approved": {strconv.FormatBool(approved)}},
	})
}

func (c *BookingClient) FindByID(ctx context.Context, userID uint, bookingID uint) (*Response, error) {
	return c.base.Do(ctx, Call{Method: http.MethodGet, Path: idPath(bookingsPath, bookingID), UserID: userID})
}

func (c *BookingClient) FindForBooker(ctx context.Context, userID uint, state models.BookingState, page dto.PageQuery) (*Response, error) {
	return c.list(ctx, bookingsPath, userID, state, page)
}

func (c *BookingClient) FindForOwner(ctx context.Context, userID uint, state models.BookingState, page dto.PageQuery) (*Response, error) {
	return c.list(ctx, bookingsPath+"/owner", userID, state, page)
}

func (c *BookingClient) list(ctx context.Context, path string, userID uint, state models.BookingState, page dto.PageQuery) (*Response, error) {
	q := pageQuery(page.From, page.Size)
	q.Set("state", string(state))
	return c.base.Do(ctx, Call{Method: http.MethodGet, Path: path, UserID: userID, Query: q})
}
