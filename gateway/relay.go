package gateway

import (
	"gin-shareit/clients"

	"github.com/gin-gonic/gin"
)

// relay はサーバーのステータスとボディをそのまま返す
func relay(ctx *gin.Context, res *clients.Response, err error) {
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	if len(res.Body) == 0 {
		ctx.Status(res.Status)
		return
	}
	contentType := res.ContentType
	if contentType == "" {
		contentType = gin.MIMEJSON
	}
	ctx.Data(res.Status, contentType, res.Body)
}
