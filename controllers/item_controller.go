package controllers

import (
	"net/http"

	"gin-shareit/dto"
	"gin-shareit/middlewares"
	"gin-shareit/services"

	"github.com/gin-gonic/gin"
)

type IItemController interface {
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	FindByID(ctx *gin.Context)
	FindByOwner(ctx *gin.Context)
	Search(ctx *gin.Context)
	AddComment(ctx *gin.Context)
}

type ItemController struct {
	service services.IItemService
}

func NewItemController(service services.IItemService) IItemController {
	return &ItemController{service: service}
}

func (c *ItemController) Create(ctx *gin.Context) {
	var input dto.CreateItemInput
	if !BindJSON(ctx, &input) {
		return
	}

	item, err := c.service.Create(ctx.Request.Context(), middlewares.UserID(ctx), input)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

func (c *ItemController) Update(ctx *gin.Context) {
	itemID, ok := ParseID(ctx, "id")
	if !ok {
		return
	}
	var input dto.UpdateItemInput
	if !BindJSON(ctx, &input) {
		return
	}

	item, err := c.service.Update(ctx.Request.Context(), middlewares.UserID(ctx), itemID, input)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

func (c *ItemController) FindByID(ctx *gin.Context) {
	itemID, ok := ParseID(ctx, "id")
	if !ok {
		return
	}

	item, err := c.service.FindByID(ctx.Request.Context(), middlewares.UserID(ctx), itemID)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

func (c *ItemController) FindByOwner(ctx *gin.Context) {
	var page dto.PageQuery
	if !BindQuery(ctx, &page) {
		return
	}

	items, err := c.service.FindByOwner(ctx.Request.Context(), middlewares.UserID(ctx), page)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

func (c *ItemController) Search(ctx *gin.Context) {
	var query dto.SearchItemsQuery
	if !BindQuery(ctx, &query) {
		return
	}

	items, err := c.service.Search(ctx.Request.Context(), middlewares.UserID(ctx), query.Text, query.PageQuery)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

func (c *ItemController) AddComment(ctx *gin.Context) {
	itemID, ok := ParseID(ctx, "id")
	if !ok {
		return
	}
	var input dto.CreateCommentInput
	if !BindJSON(ctx, &input) {
		return
	}

	comment, err := c.service.AddComment(ctx.Request.Context(), middlewares.UserID(ctx), itemID, input)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, comment)
}
