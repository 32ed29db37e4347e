package controllers

import (
	"net/http"

	"gin-shareit/dto"
	"gin-shareit/services"

	"github.com/gin-gonic/gin"
)

type IUserController interface {
	Create(ctx *gin.Context)
	FindByID(ctx *gin.Context)
	FindAll(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type UserController struct {
	service services.IUserService
}

func NewUserController(service services.IUserService) IUserController {
	return &UserController{service: service}
}

func (c *UserController) Create(ctx *gin.Context) {
	var input dto.CreateUserInput
	if !BindJSON(ctx, &input) {
		return
	}

	user, err := c.service.Create(ctx.Request.Context(), input)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

func (c *UserController) FindByID(ctx *gin.Context) {
	userID, ok := ParseID(ctx, "id")
	if !ok {
		return
	}

	user, err := c.service.FindByID(ctx.Request.Context(), userID)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

func (c *UserController) FindAll(ctx *gin.Context) {
	users, err := c.service.FindAll(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

func (c *UserController) Update(ctx *gin.Context) {
	userID, ok := ParseID(ctx, "id")
	if !ok {
		return
	}
	var input dto.UpdateUserInput
	if !BindJSON(ctx, &input) {
		return
	}

	user, err := c.service.Update(ctx.Request.Context(), userID, input)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

func (c *UserController) Delete(ctx *gin.Context) {
	userID, ok := ParseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), userID); err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.Status(http.StatusOK)
}
