package controllers

import (
	"context"
	"net/http"

	"gin-shareit/dto"
	"gin-shareit/middlewares"
	"gin-shareit/models"
	"gin-shareit/services"

	"github.com/gin-gonic/gin"
)

type IBookingController interface {
	Create(ctx *gin.Context)
	Approve(ctx *gin.Context)
	FindByID(ctx *gin.Context)
	FindForBooker(ctx *gin.Context)
	FindForOwner(ctx *gin.Context)
}

type BookingController struct {
	service services.IBookingService
}

func NewBookingController(service services.IBookingService) IBookingController {
	return &BookingController{service: service}
}

func (c *BookingController) Create(ctx *gin.Context) {
	var input dto.CreateBookingInput
	if !BindJSON(ctx, &input) {
		return
	}

	booking, err := c.service.Create(ctx.Request.Context(), middlewares.UserID(ctx), input)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, booking)
}

func (c *BookingController) Approve(ctx *gin.Context) {
	bookingID, ok := ParseID(ctx, "id")
	if !ok {
		return
	}
	var query dto.ApproveBookingQuery
	if !BindQuery(ctx, &query) {
		return
	}

	booking, err := c.service.Approve(ctx.Request.Context(), middlewares.UserID(ctx), bookingID, *query.Approved)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, booking)
}

func (c *BookingController) FindByID(ctx *gin.Context) {
	bookingID, ok := ParseID(ctx, "id")
	if !ok {
		return
	}

	booking, err := c.service.FindByID(ctx.Request.Context(), middlewares.UserID(ctx), bookingID)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, booking)
}

func (c *BookingController) FindForBooker(ctx *gin.Context) {
	c.list(ctx, c.service.FindForBooker)
}

func (c *BookingController) FindForOwner(ctx *gin.Context) {
	c.list(ctx, c.service.FindForOwner)
}

type bookingLister func(ctx context.Context, userID uint, state models.BookingState, page dto.PageQuery) ([]dto.BookingResponse, error)

func (c *BookingController) list(ctx *gin.Context, find bookingLister) {
	var query dto.BookingListQuery
	if !BindQuery(ctx, &query) {
		return
	}
	state, ok := ParseState(ctx, query.State)
	if !ok {
		return
	}

	bookings, err := find(ctx.Request.Context(), middlewares.UserID(ctx), state, query.PageQuery)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, bookings)
}
