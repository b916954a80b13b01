package routes

import (
	"jobtracker_backend/internal/handlers"
	"jobtracker_backend/internal/logger"
	"jobtracker_backend/ws"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует все HTTP и WebSocket маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	wsHandler *ws.WebSocketHandler,
	authMW gin.HandlerFunc,
) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.HealthHandler.RegisterRoutes(api)
		appHandlers.AuthHandler.RegisterRoutes(api, authMW)
		appHandlers.JobHandler.RegisterRoutes(api, authMW)
		appHandlers.ApplicationHandler.RegisterRoutes(api, authMW)

		api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	wsGroup := api.Group("/ws")
	wsGroup.Use(authMW)
	{
		wsGroup.GET("", wsHandler.ServeWS)
	}
	logger.Info("WebSocket route /api/v1/ws registered")
}
