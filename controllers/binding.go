package controllers

import (
	"strconv"

	"gin-shareit/constants"
	"gin-shareit/models"
	"gin-shareit/services"

	"github.com/gin-gonic/gin"
)

// ParseID はパスパラメータを正の ID として読む
func ParseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		_ = ctx.Error(services.ErrInvalid(constants.ErrInvalidID))
		return 0, false
	}
	return uint(id), true
}

func BindJSON(ctx *gin.Context, obj any) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		_ = ctx.Error(services.FromBindError(err))
		return false
	}
	return true
}

func BindQuery(ctx *gin.Context, obj any) bool {
	if err := ctx.ShouldBindQuery(obj); err != nil {
		_ = ctx.Error(services.FromBindError(err))
		return false
	}
	return true
}

func ParseState(ctx *gin.Context, raw string) (models.BookingState, bool) {
	state, ok := models.ParseBookingState(raw)
	if !ok {
		_ = ctx.Error(services.ErrUnknownState(raw))
		return "", false
	}
	return state, true
}
