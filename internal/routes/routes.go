package routes

import (
	"net/http"

	"gymfit_backend/internal/auth"
	"gymfit_backend/internal/handlers"
	"gymfit_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every HTTP route onto the engine.
func RegisterRoutes(router *gin.Engine, appHandlers *handlers.AppHandlers, tokens *auth.TokenService) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authMW := middleware.AuthMiddleware(tokens)

	api := router.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api, authMW)
		appHandlers.MemberHandler.RegisterRoutes(api, authMW)
		appHandlers.TrainerHandler.RegisterRoutes(api, authMW)
	}
}
