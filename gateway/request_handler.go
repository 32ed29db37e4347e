package gateway

import (
	"gin-shareit/clients"
	"gin-shareit/controllers"
	"gin-shareit/dto"
	"gin-shareit/middlewares"

	"github.com/gin-gonic/gin"
)

type ItemRequestHandler struct {
	client clients.IItemRequestClient
}

func NewItemRequestHandler(client clients.IItemRequestClient) *ItemRequestHandler {
	return &ItemRequestHandler{client: client}
}

func (h *ItemRequestHandler) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/requests", middlewares.SharerUserID())
	g.POST("", h.Create)
	g.GET("", h.FindOwn)
	g.GET("/all", h.FindOthers)
	g.GET("/:id", h.FindByID)
}

func (h *ItemRequestHandler) Create(ctx *gin.Context) {
	var input dto.CreateItemRequestInput
	if !controllers.BindJSON(ctx, &input) {
		return
	}
	res, err := h.client.Create(ctx.Request.Context(), middlewares.UserID(ctx), input)
	relay(ctx, res, err)
}

func (h *ItemRequestHandler) FindOwn(ctx *gin.Context) {
	var page dto.PageQuery
	if !controllers.BindQuery(ctx, &page) {
		return
	}
	res, err := h.client.FindOwn(ctx.Request.Context(), middlewares.UserID(ctx), page)
	relay(ctx, res, err)
}

func (h *ItemRequestHandler) FindOthers(ctx *gin.Context) {
	var page dto.PageQuery
	if !controllers.BindQuery(ctx, &page) {
		return
	}
	res, err := h.client.FindOthers(ctx.Request.Context(), middlewares.UserID(ctx), page)
	relay(ctx, res, err)
}

func (h *ItemRequestHandler) FindByID(ctx *gin.Context) {
	requestID, ok := controllers.ParseID(ctx, "id")
	if !ok {
		return
	}
	res, err := h.client.FindByID(ctx.Request.Context(), middlewares.UserID(ctx), requestID)
	relay(ctx, res, err)
}
