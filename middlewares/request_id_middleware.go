package middlewares

import (
	"context"
	"fmt"
	"time"

	"gin-shareit/constants"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

// RequestID は X-Request-ID を引き継ぎ、無ければ ULID を採番する
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(constants.HeaderRequestID)
		if requestID == "" {
			requestID = ulid.Make().String()
			ctx.Request.Header.Set(constants.HeaderRequestID, requestID)
		}
		ctx.Set(constants.CtxRequestIDKey, requestID)
		ctx.Request = ctx.Request.WithContext(WithRequestID(ctx.Request.Context(), requestID))
		ctx.Header(constants.HeaderRequestID, requestID)

		ctx.Next()
	}
}

type requestIDKey struct{}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext は RequestID が付けた ID を返す。無ければ空文字
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestLogger は gin.Logger の出力にリクエスト ID を加える
func RequestLogger() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(p gin.LogFormatterParams) string {
		return fmt.Sprintf("[GIN] %v | %3d | %13v | %15s | %-7s %#v | %v\n%s",
			p.TimeStamp.Format(time.RFC3339),
			p.StatusCode,
			p.Latency,
			p.ClientIP,
			p.Method,
			p.Path,
			p.Keys[constants.CtxRequestIDKey],
			p.ErrorMessage,
		)
	})
}
