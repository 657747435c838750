package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/Rightupnext/South-mirror-backend/config"
	"github.com/Rightupnext/South-mirror-backend/controllers"
	"github.com/Rightupnext/South-mirror-backend/middleware"
	"github.com/Rightupnext/South-mirror-backend/services"
)

func SetupBlogRoutes(api *gin.RouterGroup, cfg *config.Config, db *gorm.DB, rdb *redis.Client, mailer services.Mailer, uploader services.Uploader) {
	notifier := services.NewNotifier(db, mailer)
	blogController := controllers.NewBlogController(db, uploader, notifier, cfg.FrontendURL)
	auth := middleware.Authenticate(cfg.JWTSecret, rdb)

	grp := api.Group("/blog")
	{
		grp.POST("", auth, blogController.AddBlog)
		grp.GET("", auth, blogController.ShowAllBlog)
		grp.GET("/search", blogController.Search)
		grp.GET("/related/:category/:blog", blogController.GetRelatedBlog)
		grp.GET("/category/:category", blogController.GetBlogByCategory)
		grp.GET("/:slug", blogController.GetBlog)
		// same wildcard position as the public fetch, so the param is named
		// :slug even though it carries the numeric id
		grp.GET("/:slug/edit", auth, blogController.EditBlog)
		grp.PUT("/:blogid", auth, blogController.UpdateBlog)
		grp.DELETE("/:blogid", auth, blogController.DeleteBlog)
		grp.PATCH("/:blogid/visibility", auth, blogController.ToggleVisibility)
	}
}
