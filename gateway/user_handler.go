package gateway

import (
	"gin-shareit/clients"
	"gin-shareit/controllers"
	"gin-shareit/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	client clients.IUserClient
}

func NewUserHandler(client clients.IUserClient) *UserHandler {
	return &UserHandler{client: client}
}

func (h *UserHandler) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/users")
	g.POST("", h.Create)
	g.GET("", h.FindAll)
	g.GET("/:id", h.FindByID)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *UserHandler) Create(ctx *gin.Context) {
	var input dto.CreateUserInput
	if !controllers.BindJSON(ctx, &input) {
		return
	}
	res, err := h.client.Create(ctx.Request.Context(), input)
	relay(ctx, res, err)
}

func (h *UserHandler) FindAll(ctx *gin.Context) {
	res, err := h.client.FindAll(ctx.Request.Context())
	relay(ctx, res, err)
}

func (h *UserHandler) FindByID(ctx *gin.Context) {
	userID, ok := controllers.ParseID(ctx, "id")
	if !ok {
		return
	}
	res, err := h.client.FindByID(ctx.Request.Context(), userID)
	relay(ctx, res, err)
}

func (h *UserHandler) Update(ctx *gin.Context) {
	userID, ok := controllers.ParseID(ctx, "id")
	if !ok {
		return
	}
	var input dto.UpdateUserInput
	if !controllers.BindJSON(ctx, &input) {
		return
	}
	res, err := h.client.Update(ctx.Request.Context(), userID, input)
	relay(ctx, res, err)
}

func (h *UserHandler) Delete(ctx *gin.Context) {
	userID, ok := controllers.ParseID(ctx, "id")
	if !ok {
		return
	}
	res, err := h.client.Delete(ctx.Request.Context(), userID)
	relay(ctx, res, err)
}
