package gateway

import (
	"net/http"

	"gin-shareit/clients"
	"gin-shareit/dto"
	"gin-shareit/infra"
	"gin-shareit/middlewares"
	"gin-shareit/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter は入力を検証してからサーバーへ転送するルーターを作る
// httpClient が nil なら既定のタイムアウト付きクライアントを使う
func NewRouter(cfg *infra.Config, httpClient *http.Client) *gin.Engine {
	dto.RegisterValidators()

	var tokens services.ITokenService
	if cfg.ServiceSecret != "" {
		tokens = services.NewTokenService(cfg.ServiceSecret, services.NewClock())
	}
	base := clients.NewBaseClient(cfg.ServerURL, httpClient, tokens)

	r := gin.New()
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger())
	r.Use(middlewares.ErrorHandler())
	r.Use(middlewares.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "X-Sharer-User-Id", "X-Request-ID"},
		ExposeHeaders:   []string{"X-Request-ID"},
	}))

	NewUserHandler(clients.NewUserClient(base)).RegisterRoutes(r)
	NewItemHandler(clients.NewItemClient(base)).RegisterRoutes(r)
	NewBookingHandler(clients.NewBookingClient(base)).RegisterRoutes(r)
	NewItemRequestHandler(clients.NewItemRequestClient(base)).RegisterRoutes(r)

	return r
}
