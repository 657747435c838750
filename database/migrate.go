package database

import (
	"gorm.io/gorm"

	"github.com/Rightupnext/South-mirror-backend/models"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Blog{},
		&models.Comment{},
		&models.BlogLike{},
		&models.Subscriber{},
	)
}
