package main

import (
	"gin-shareit/controllers"
	"gin-shareit/dto"
	"gin-shareit/infra"
	"gin-shareit/middlewares"
	"gin-shareit/repositories"
	"gin-shareit/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB, cfg *infra.Config, clock services.Clock) *gin.Engine {
	dto.RegisterValidators()

	userRepository := repositories.NewUserRepository(db)
	itemRepository := repositories.NewItemRepository(db)
	bookingRepository := repositories.NewBookingRepository(db)
	requestRepository := repositories.NewItemRequestRepository(db)
	commentRepository := repositories.NewCommentRepository(db)

	userService := services.NewUserService(userRepository, infra.NewUserCache(cfg.UserCacheTTL))
	itemService := services.NewItemService(itemRepository, userService, requestRepository, bookingRepository, commentRepository, clock)
	bookingService := services.NewBookingService(bookingRepository, itemRepository, userService, clock)
	requestService := services.NewItemRequestService(requestRepository, itemRepository, userService, clock)

	userController := controllers.NewUserController(userService)
	itemController := controllers.NewItemController(itemService)
	bookingController := controllers.NewBookingController(bookingService)
	requestController := controllers.NewItemRequestController(requestService)

	r := gin.New()
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger())
	r.Use(middlewares.ErrorHandler())
	r.Use(middlewares.Recovery())
	r.Use(cors.Default())

	api := r.Group("")
	// ゲートウェイ以外からの呼び出しを拒否する
	if cfg.ServiceSecret != "" {
		api.Use(middlewares.RequireServiceToken(services.NewTokenService(cfg.ServiceSecret, clock)))
	}

	userRouter := api.Group("/users")
	itemRouter := api.Group("/items", middlewares.SharerUserID())
	bookingRouter := api.Group("/bookings", middlewares.SharerUserID())
	requestRouter := api.Group("/requests", middlewares.SharerUserID())

	userRouter.POST("", userController.Create)
	userRouter.GET("", userController.FindAll)
	userRouter.GET("/:id", userController.FindByID)
	userRouter.PATCH("/:id", userController.Update)
	userRouter.DELETE("/:id", userController.Delete)

	itemRouter.POST("", itemController.Create)
	itemRouter.GET("", itemController.FindByOwner)
	itemRouter.GET("/search", itemController.Search)
	itemRouter.GET("/:id", itemController.FindByID)
	itemRouter.PATCH("/:id", itemController.Update)
	itemRouter.POST("/:id/comment", itemController.AddComment)

	bookingRouter.POST("", bookingController.Create)
	bookingRouter.GET("", bookingController.FindForBooker)
	bookingRouter.GET("/owner", bookingController.FindForOwner)
	bookingRouter.GET("/:id", bookingController.FindByID)
	bookingRouter.PATCH("/:id", bookingController.Approve)

	requestRouter.POST("", requestController.Create)
	requestRouter.GET("", requestController.FindOwn)
	requestRouter.GET("/all", requestController.FindOthers)
	requestRouter.GET("/:id", requestController.FindByID)

	return r
}
