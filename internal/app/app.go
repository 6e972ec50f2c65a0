package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHTTP "clipstream/internal/controller/http"
	"clipstream/internal/repo/persistent"
	"clipstream/internal/usecase"
	"clipstream/pkg/config"
	"clipstream/pkg/jwt"
	"clipstream/pkg/logger"
	"clipstream/pkg/middleware"
	"clipstream/pkg/queue"
	"clipstream/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "clipstream/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	videoRepo := persistent.NewVideoRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	tweetRepo := persistent.NewTweetRepository(db)
	likeRepo := persistent.NewLikeRepository(db)
	subscriptionRepo := persistent.NewSubscriptionRepository(db)
	playlistRepo := persistent.NewPlaylistRepository(db)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, s3Client, log)
	videoUseCase := usecase.NewVideoUseCase(videoRepo, likeRepo, s3Client, redisClient, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, videoRepo, likeRepo, queueClient, log)
	tweetUseCase := usecase.NewTweetUseCase(tweetRepo, userRepo, likeRepo, log)
	likeUseCase := usecase.NewLikeUseCase(likeRepo, videoRepo, commentRepo, tweetRepo, redisClient, queueClient, log)
	subscriptionUseCase := usecase.NewSubscriptionUseCase(subscriptionRepo, userRepo, queueClient, log)
	playlistUseCase := usecase.NewPlaylistUseCase(playlistRepo, videoRepo, userRepo, log)
	statsUseCase := usecase.NewStatsUseCase(userRepo, videoRepo, likeRepo, subscriptionRepo, log)

	// Initialize HTTP handlers
	authHandler := apiHTTP.NewAuthHandler(authUseCase, log)
	videoHandler := apiHTTP.NewVideoHandler(videoUseCase, log)
	commentHandler := apiHTTP.NewCommentHandler(commentUseCase, log)
	tweetHandler := apiHTTP.NewTweetHandler(tweetUseCase, log)
	likeHandler := apiHTTP.NewLikeHandler(likeUseCase, log)
	subscriptionHandler := apiHTTP.NewSubscriptionHandler(subscriptionUseCase, log)
	playlistHandler := apiHTTP.NewPlaylistHandler(playlistUseCase, log)
	statsHandler := apiHTTP.NewStatsHandler(statsUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	rateLimit := middleware.RateLimitMiddleware(redisClient, 100, time.Minute)

	// Public endpoints. Optional auth so logged-in viewers still get
	// view dedup and per-user like status, and so the rate limiter can
	// key on the user instead of the IP.
	public := api.Group("")
	public.Use(middleware.OptionalAuthMiddleware(jwtService), rateLimit)
	{
		public.POST("/auth/register", authHandler.Register)
		public.POST("/auth/login", authHandler.Login)
		public.POST("/auth/refresh", authHandler.Refresh)

		public.GET("/videos", videoHandler.List)
		public.GET("/videos/:id", videoHandler.Get)
		public.GET("/videos/:id/comments", commentHandler.ListByVideo)
		public.GET("/videos/:id/likes", likeHandler.VideoLikeCount)

		public.GET("/users/:user_id/videos", videoHandler.ListByOwner)
		public.GET("/users/:user_id/tweets", tweetHandler.ListByOwner)
		public.GET("/users/:user_id/playlists", playlistHandler.ListByOwner)

		public.GET("/tweets", tweetHandler.List)
		public.GET("/playlists/:id", playlistHandler.Get)

		public.GET("/channels/:channel_id/stats", statsHandler.ChannelStats)
		public.GET("/channels/:channel_id/subscribers", subscriptionHandler.ListSubscribers)
		public.GET("/channels/:channel_id/subscribers/count", subscriptionHandler.CountSubscribers)
	}

	// Authenticated endpoints
	private := api.Group("")
	private.Use(middleware.AuthMiddleware(jwtService), rateLimit)
	{
		private.POST("/auth/logout", authHandler.Logout)
		private.GET("/auth/me", authHandler.Me)
		private.PATCH("/auth/me", authHandler.UpdateMe)
		private.POST("/auth/me/avatar", authHandler.UploadAvatar)

		private.POST("/videos", videoHandler.Upload)
		private.PATCH("/videos/:id", videoHandler.Update)
		private.DELETE("/videos/:id", videoHandler.Delete)
		private.PATCH("/videos/:id/publish", videoHandler.TogglePublish)
		private.GET("/videos/:id/liked", likeHandler.IsVideoLiked)

		private.POST("/videos/:id/comments", commentHandler.Add)
		private.PATCH("/comments/:id", commentHandler.Update)
		private.DELETE("/comments/:id", commentHandler.Delete)

		private.POST("/tweets", tweetHandler.Create)
		private.PATCH("/tweets/:id", tweetHandler.Update)
		private.DELETE("/tweets/:id", tweetHandler.Delete)

		private.POST("/likes/videos/:id", likeHandler.ToggleVideoLike)
		private.POST("/likes/comments/:id", likeHandler.ToggleCommentLike)
		private.POST("/likes/tweets/:id", likeHandler.ToggleTweetLike)
		private.GET("/likes/videos", likeHandler.ListLikedVideos)

		private.POST("/subscriptions/:channel_id", subscriptionHandler.Toggle)
		private.GET("/subscriptions/:channel_id", subscriptionHandler.IsSubscribed)
		private.GET("/subscriptions", subscriptionHandler.ListChannels)

		private.POST("/playlists", playlistHandler.Create)
		private.PATCH("/playlists/:id", playlistHandler.Update)
		private.DELETE("/playlists/:id", playlistHandler.Delete)
		private.POST("/playlists/:id/videos/:video_id", playlistHandler.AddVideo)
		private.DELETE("/playlists/:id/videos/:video_id", playlistHandler.RemoveVideo)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("API server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Server exited")
}
