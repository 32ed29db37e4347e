package middlewares

import (
	"log"
	"strconv"
	"strings"

	"gin-shareit/constants"
	"gin-shareit/services"

	"github.com/gin-gonic/gin"
)

// SharerUserID は X-Sharer-User-Id を検証して呼び出し元のユーザー ID をコンテキストに入れる
func SharerUserID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := strings.TrimSpace(ctx.GetHeader(constants.HeaderSharerUserID))
		if header == "" {
			_ = ctx.Error(services.ErrInvalid(constants.ErrMissingUserHeader))
			ctx.Abort()
			return
		}

		userID, err := strconv.ParseUint(header, 10, 64)
		if err != nil || userID == 0 {
			_ = ctx.Error(services.ErrInvalid(constants.ErrInvalidUserHeader))
			ctx.Abort()
			return
		}

		ctx.Set(constants.CtxUserIDKey, uint(userID))

		ctx.Next()
	}
}

// UserID は SharerUserID が設定したユーザー ID を返す
func UserID(ctx *gin.Context) uint {
	return ctx.GetUint(constants.CtxUserIDKey)
}

// RequireServiceToken はゲートウェイが発行したトークンを検証する
// トークンの sub とヘッダーのユーザー ID が一致しない呼び出しは拒否する
func RequireServiceToken(tokenService services.ITokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader(constants.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			_ = ctx.Error(services.ErrUnauthorized(constants.ErrUnauthorized))
			ctx.Abort()
			return
		}

		subject, err := tokenService.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			log.Printf("[WARN] service token rejected: %v", err)
			_ = ctx.Error(services.ErrUnauthorized(constants.ErrUnauthorized))
			ctx.Abort()
			return
		}

		expected := ""
		if subject != 0 {
			expected = strconv.FormatUint(uint64(subject), 10)
		}
		if strings.TrimSpace(ctx.GetHeader(constants.HeaderSharerUserID)) != expected {
			_ = ctx.Error(services.ErrUnauthorized(constants.ErrUnauthorized))
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}
