package controllers

import (
	"net/http"

	"gin-shareit/dto"
	"gin-shareit/middlewares"
	"gin-shareit/services"

	"github.com/gin-gonic/gin"
)

type IItemRequestController interface {
	Create(ctx *gin.Context)
	FindOwn(ctx *gin.Context)
	FindOthers(ctx *gin.Context)
	FindByID(ctx *gin.Context)
}

type ItemRequestController struct {
	service services.IItemRequestService
}

func NewItemRequestController(service services.IItemRequestService) IItemRequestController {
	return &ItemRequestController{service: service}
}

func (c *ItemRequestController) Create(ctx *gin.Context) {
	var input dto.CreateItemRequestInput
	if !BindJSON(ctx, &input) {
		return
	}

	request, err := c.service.Create(ctx.Request.Context(), middlewares.UserID(ctx), input)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, request)
}

func (c *ItemRequestController) FindOwn(ctx *gin.Context) {
	var page dto.PageQuery
	if !BindQuery(ctx, &page) {
		return
	}

	requests, err := c.service.FindOwn(ctx.Request.Context(), middlewares.UserID(ctx), page)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, requests)
}

func (c *ItemRequestController) FindOthers(ctx *gin.Context) {
	var page dto.PageQuery
	if !BindQuery(ctx, &page) {
		return
	}

	requests, err := c.service.FindOthers(ctx.Request.Context(), middlewares.UserID(ctx), page)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, requests)
}

func (c *ItemRequestController) FindByID(ctx *gin.Context) {
	requestID, ok := ParseID(ctx, "id")
	if !ok {
		return
	}

	request, err := c.service.FindByID(ctx.Request.Context(), middlewares.UserID(ctx), requestID)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, request)
}
