package gateway

import (
	"gin-shareit/clients"
	"gin-shareit/controllers"
	"gin-shareit/dto"
	"gin-shareit/middlewares"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	client clients.IItemClient
}

func NewItemHandler(client clients.IItemClient) *ItemHandler {
	return &ItemHandler{client: client}
}

func (h *ItemHandler) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/items", middlewares.SharerUserID())
	g.POST("", h.Create)
	g.GET("", h.FindByOwner)
	g.GET("/search", h.Search)
	g.GET("/:id", h.FindByID)
	g.PATCH("/:id", h.Update)
	g.POST("/:id/comment", h.AddComment)
}

func (h *ItemHandler) Create(ctx *gin.Context) {
	var input dto.CreateItemInput
	if !controllers.BindJSON(ctx, &input) {
		return
	}
	res, err := h.client.Create(ctx.Request.Context(), middlewares.UserID(ctx), input)
	relay(ctx, res, err)
}

func (h *ItemHandler) Update(ctx *gin.Context) {
	itemID, ok := controllers.ParseID(ctx, "id")
	if !ok {
		return
	}
	var input dto.UpdateItemInput
	if !controllers.BindJSON(ctx, &input) {
		return
	}
	res, err := h.client.Update(ctx.Request.Context(), middlewares.UserID(ctx), itemID, input)
	relay(ctx, res, err)
}

func (h *ItemHandler) FindByID(ctx *gin.Context) {
	itemID, ok := controllers.ParseID(ctx, "id")
	if !ok {
		return
	}
	res, err := h.client.FindByID(ctx.Request.Context(), middlewares.UserID(ctx), itemID)
	relay(ctx, res, err)
}

func (h *ItemHandler) FindByOwner(ctx *gin.Context) {
	var page dto.PageQuery
	if !controllers.BindQuery(ctx, &page) {
		return
	}
	res, err := h.client.FindByOwner(ctx.Request.Context(), middlewares.UserID(ctx), page)
	relay(ctx, res, err)
}

func (h *ItemHandler) Search(ctx *gin.Context) {
	var query dto.SearchItemsQuery
	if !controllers.BindQuery(ctx, &query) {
		return
	}
	res, err := h.client.Search(ctx.Request.Context(), middlewares.UserID(ctx), query)
	relay(ctx, res, err)
}

func (h *ItemHandler) AddComment(ctx *gin.Context) {
	itemID, ok := controllers.ParseID(ctx, "id")
	if !ok {
		return
	}
	var input dto.CreateCommentInput
	if !controllers.BindJSON(ctx, &input) {
		return
	}
	res, err := h.client.AddComment(ctx.Request.Context(), middlewares.UserID(ctx), itemID, input)
	relay(ctx, res, err)
}
