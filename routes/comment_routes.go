package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/Rightupnext/South-mirror-backend/config"
	"github.com/Rightupnext/South-mirror-backend/controllers"
	"github.com/Rightupnext/South-mirror-backend/middleware"
)

func SetupCommentRoutes(api *gin.RouterGroup, cfg *config.Config, db *gorm.DB, rdb *redis.Client) {
	commentController := controllers.NewCommentController(db)
	auth := middleware.Authenticate(cfg.JWTSecret, rdb)

	grp := api.Group("/comment")
	{
		grp.POST("", auth, commentController.AddComment)
		grp.GET("", auth, middleware.OnlyAdmin(), commentController.GetAllComments)
		grp.GET("/count/:blogid", commentController.CommentCount)
		grp.GET("/:blogid", commentController.GetComments)
		grp.DELETE("/:commentid", auth, commentController.DeleteComment)
	}
}
