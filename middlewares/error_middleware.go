package middlewares

import (
	"errors"
	"log"
	"net/http"

	"gin-shareit/constants"
	"gin-shareit/services"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Errors []services.FieldError `json:"errors"`
}

// ErrorHandler は ctx.Error で積まれた最後のエラーをレスポンスに変換する
func ErrorHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		if len(ctx.Errors) == 0 || ctx.Writer.Written() {
			return
		}
		err := ctx.Errors.Last().Err

		var api *services.APIError
		if !errors.As(err, &api) {
			log.Printf("[ERROR] %s %s request_id=%s: %v",
				ctx.Request.Method, ctx.Request.URL.Path, ctx.GetString(constants.CtxRequestIDKey), err)
			ctx.JSON(http.StatusInternalServerError, ErrorResponse{
				Errors: []services.FieldError{{Message: constants.ErrUnexpected}},
			})
			return
		}

		// 不明な状態だけは単一の error フィールドで返す
		if api.Code == services.CodeUnknownState {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": api.Message})
			return
		}

		status := services.ToHTTPStatus(api)
		if status >= http.StatusInternalServerError {
			log.Printf("[ERROR] %s %s request_id=%s: %v",
				ctx.Request.Method, ctx.Request.URL.Path, ctx.GetString(constants.CtxRequestIDKey), api)
		} else {
			log.Printf("[WARN] %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, api)
		}

		fields := api.Fields
		if len(fields) == 0 {
			fields = []services.FieldError{{Message: api.Message}}
		}
		ctx.JSON(status, ErrorResponse{Errors: fields})
	}
}

// Recovery は panic を ErrInternal として積む。ErrorHandler より内側に登録する
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(ctx *gin.Context, recovered any) {
		_ = ctx.Error(services.ErrInternal(constants.ErrUnexpected))
		ctx.Abort()
	})
}
