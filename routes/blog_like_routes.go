package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/Rightupnext/South-mirror-backend/config"
	"github.com/Rightupnext/South-mirror-backend/controllers"
	"github.com/Rightupnext/South-mirror-backend/middleware"
)

func SetupBlogLikeRoutes(api *gin.RouterGroup, cfg *config.Config, db *gorm.DB, rdb *redis.Client) {
	likeController := controllers.NewBlogLikeController(db)
	auth := middleware.Authenticate(cfg.JWTSecret, rdb)

	grp := api.Group("/blog-like")
	{
		grp.POST("", auth, likeController.DoLike)
		grp.GET("/:blogid", likeController.LikeCount)
	}
}
