package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/Rightupnext/South-mirror-backend/config"
	"github.com/Rightupnext/South-mirror-backend/controllers"
	"github.com/Rightupnext/South-mirror-backend/middleware"
)

func SetupCategoryRoutes(api *gin.RouterGroup, cfg *config.Config, db *gorm.DB, rdb *redis.Client) {
	categoryController := controllers.NewCategoryController(db)
	auth := middleware.Authenticate(cfg.JWTSecret, rdb)
	admin := middleware.OnlyAdmin()

	grp := api.Group("/category")
	{
		grp.POST("/add", auth, admin, categoryController.AddCategory)
		grp.GET("/show/:categoryid", auth, admin, categoryController.ShowCategory)
		grp.PUT("/update/:categoryid", auth, admin, categoryController.UpdateCategory)
		grp.DELETE("/delete/:categoryid", auth, admin, categoryController.DeleteCategory)
		grp.GET("/all", categoryController.GetAllCategory)
	}
}
