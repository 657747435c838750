package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/Rightupnext/South-mirror-backend/config"
	"github.com/Rightupnext/South-mirror-backend/controllers"
	"github.com/Rightupnext/South-mirror-backend/middleware"
	"github.com/Rightupnext/South-mirror-backend/services"
)

// SetupRouter builds the gin.Engine with every route registered. All
// dependencies are constructed once here and injected into the controllers;
// tests call this with an in-memory database and stub services.
func SetupRouter(cfg *config.Config, db *gorm.DB, rdb *redis.Client, mailer services.Mailer, uploader services.Uploader) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RecoveryMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")

	authController := controllers.NewAuthController(db, rdb, cfg)
	api.POST("/auth/register", authController.Register)
	api.POST("/auth/login", authController.Login)
	api.GET("/auth/google", authController.GoogleLogin)
	api.GET("/auth/google/callback", authController.GoogleCallback)
	api.GET("/auth/logout", middleware.Authenticate(cfg.JWTSecret, rdb), authController.Logout)

	subscriberController := controllers.NewSubscriberController(db)
	api.POST("/subscribe", subscriberController.Subscribe)

	SetupUserRoutes(api, cfg, db, rdb, uploader)
	SetupBlogRoutes(api, cfg, db, rdb, mailer, uploader)
	SetupCategoryRoutes(api, cfg, db, rdb)
	SetupCommentRoutes(api, cfg, db, rdb)
	SetupBlogLikeRoutes(api, cfg, db, rdb)

	return r
}
