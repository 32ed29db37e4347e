package gateway

import (
	"gin-shareit/clients"
	"gin-shareit/controllers"
	"gin-shareit/dto"
	"gin-shareit/middlewares"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	client clients.IBookingClient
}

func NewBookingHandler(client clients.IBookingClient) *BookingHandler {
	return &BookingHandler{client: client}
}

func (h *BookingHandler) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/bookings", middlewares.SharerUserID())
	g.POST("", h.Create)
	g.GET("", h.FindForBooker)
	g.GET("/owner", h.FindForOwner)
	g.GET("/:id", h.FindByID)
	g.PATCH("/:id", h.Approve)
}

func (h *BookingHandler) Create(ctx *gin.Context) {
	var input dto.CreateBookingInput
	if !controllers.BindJSON(ctx, &input) {
		return
	}
	res, err := h.client.Create(ctx.Request.Context(), middlewares.UserID(ctx), input)
	relay(ctx, res, err)
}

func (h *BookingHandler) Approve(ctx *gin.Context) {
	bookingID, ok := controllers.ParseID(ctx, "id")
	if !ok {
		return
	}
	var query dto.ApproveBookingQuery
	if !controllers.BindQuery(ctx, &query) {
		return
	}
	res, err := h.client.Approve(ctx.Request.Context(), middlewares.UserID(ctx), bookingID, *query.Approved)
	relay(ctx, res, err)
}

func (h *BookingHandler) FindByID(ctx *gin.Context) {
	bookingID, ok := controllers.ParseID(ctx, "id")
	if !ok {
		return
	}
	res, err := h.client.FindByID(ctx.Request.Context(), middlewares.UserID(ctx), bookingID)
	relay(ctx, res, err)
}

func (h *BookingHandler) FindForBooker(ctx *gin.Context) {
	var query dto.BookingListQuery
	if !controllers.BindQuery(ctx, &query) {
		return
	}
	state, ok := controllers.ParseState(ctx, query.State)
	if !ok {
		return
	}
	res, err := h.client.FindForBooker(ctx.Request.Context(), middlewares.UserID(ctx), state, query.PageQuery)
	relay(ctx, res, err)
}

func (h *BookingHandler) FindForOwner(ctx *gin.Context) {
	var query dto.BookingListQuery
	if !controllers.BindQuery(ctx, &query) {
		return
	}
	state, ok := controllers.ParseState(ctx, query.State)
	if !ok {
		return
	}
	res, err := h.client.FindForOwner(ctx.Request.Context(), middlewares.UserID(ctx), state, query.PageQuery)
	relay(ctx, res, err)
}
