package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"comment-pilot/cmd/api/auth"
	"comment-pilot/cmd/api/handlers"
	"comment-pilot/cmd/api/middleware"
	"comment-pilot/db"
	"comment-pilot/eventbus"
	"comment-pilot/generator"
	"comment-pilot/repositories"
	"comment-pilot/wizard"
	_ "comment-pilot/docs"
)

// Deps carries the long-lived dependencies the routes close over.
type Deps struct {
	OAuthClient *auth.GoogleOAuthClient
	JWTManager  *auth.JWTManager
	Sessions    *wizard.Store
	Generator   *generator.Generator
	Bus         eventbus.Publisher
}

func New(deps Deps) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestLoggingMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := db.Client().Ping(ctx, nil); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/auth/google/login", handlers.LoginHandler(deps.OAuthClient))
		api.GET("/auth/google/callback", handlers.CallbackHandler(deps.OAuthClient, deps.JWTManager))
		api.GET("/templates", handlers.TemplatesHandler())

		repo := repositories.NewPostedCommentRepository(db.Database())

		authed := api.Group("", middleware.SessionAuthMiddleware(deps.JWTManager))
		{
			authed.GET("/videos/search", handlers.SearchVideosHandler())
			authed.GET("/videos/by-url", handlers.VideoByURLHandler())
			authed.GET("/channels/:id/uploads", handlers.ChannelUploadsHandler())

			sessions := authed.Group("/wizard/sessions")
			sessions.POST("", handlers.CreateSessionHandler(deps.Sessions))
			sessions.GET("/:id", handlers.GetSessionHandler(deps.Sessions))
			sessions.DELETE("/:id", handlers.DiscardSessionHandler(deps.Sessions))
			sessions.POST("/:id/videos", handlers.AddVideoHandler(deps.Sessions))
			sessions.DELETE("/:id/videos/:videoId", handlers.RemoveVideoHandler(deps.Sessions))
			sessions.PUT("/:id/videos/:videoId/sentiment", handlers.SetSentimentHandler(deps.Sessions))
			sessions.POST("/:id/next", handlers.NextStageHandler(deps.Sessions))
			sessions.POST("/:id/prev", handlers.PrevStageHandler(deps.Sessions))
			sessions.POST("/:id/reset", handlers.ResetSessionHandler(deps.Sessions))
			sessions.POST("/:id/quick", handlers.StartQuickHandler(deps.Sessions, deps.Generator))
			sessions.POST("/:id/customize", handlers.StartCustomizeHandler(deps.Sessions))
			sessions.PUT("/:id/define", handlers.DefineHandler(deps.Sessions))
			sessions.POST("/:id/generate", handlers.GenerateCurrentHandler(deps.Sessions, deps.Generator))
			sessions.POST("/:id/videos/:videoId/regenerate", handlers.RegenerateHandler(deps.Sessions, deps.Generator))
			sessions.PUT("/:id/videos/:videoId/comment", handlers.EditCommentHandler(deps.Sessions))
			sessions.POST("/:id/videos/:videoId/post", handlers.PostCommentHandler(deps.Sessions, repo, deps.Bus))

			authed.GET("/comments", handlers.ListCommentsHandler(repo))
			authed.PATCH("/comments/:id", handlers.UpdateCommentHandler(repo))
			authed.GET("/analytics/stats", handlers.StatsHandler(repo))
			authed.POST("/analytics/sync", handlers.SyncEngagementHandler(repo, deps.Bus))
		}
	}

	return r
}
