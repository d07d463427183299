package routes

import (
	coreport "github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/core"
	"github.com/amirhossein-jamali/ai-marketplace/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/ai-marketplace/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers mounted under /api
type Handlers struct {
	Stats  *handler.StatsHandler
	Users  *handler.UserHandler
	Models *handler.ModelHandler
	Prompt *handler.PromptHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, uploadDir string) {
	api := router.Group("/api")
	{
		api.GET("/stats", h.Stats.GetStats)

		models := api.Group("/models")
		{
			models.GET("", h.Models.ListModels)
			models.POST("", h.Models.UploadModel)
			models.GET("/top/:limit", h.Models.TopModels)
			models.GET("/:id", h.Models.GetModel)
			models.POST("/:id/infer", h.Models.RunInference)
		}
		api.GET("/inferences", h.Models.ListInferences)

		prompts := api.Group("/prompts")
		{
			prompts.GET("", h.Prompt.ListPrompts)
			prompts.POST("", h.Prompt.CreatePrompt)
			prompts.GET("/:id", h.Prompt.GetPrompt)
			prompts.POST("/:id/purchase", h.Prompt.PurchasePrompt)
		}
		api.GET("/purchases", h.Prompt.ListPurchases)

		api.GET("/leaderboard/earners/:limit", h.Users.TopEarners)

		users := api.Group("/users")
		{
			users.POST("", h.Users.RegisterUser)
			// :user is a username here and a numeric creator id below
			users.GET("/:user", h.Users.GetUser)
			users.GET("/:user/models", h.Users.GetUserModels)
		}

		api.POST("/wallet/connect", h.Users.ConnectWallet)
	}

	if uploadDir != "" {
		router.Static("/uploads", uploadDir)
	}

	router.NoRoute(middleware.NotFound())
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string) {
	// Apply middlewares in the correct order
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins...))
}
