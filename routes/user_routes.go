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

func SetupUserRoutes(api *gin.RouterGroup, cfg *config.Config, db *gorm.DB, rdb *redis.Client, uploader services.Uploader) {
	userController := controllers.NewUserController(db, uploader)
	auth := middleware.Authenticate(cfg.JWTSecret, rdb)
	admin := middleware.OnlyAdmin()

	grp := api.Group("/user", auth)
	{
		grp.GET("", admin, userController.GetAllUsers)
		grp.GET("/:userid", userController.GetUser)
		grp.PUT("/:userid", userController.UpdateUser)
		grp.DELETE("/:userid", admin, userController.DeleteUser)
	}
}
