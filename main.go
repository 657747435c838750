package main

import (
	"context"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Rightupnext/South-mirror-backend/config"
	"github.com/Rightupnext/South-mirror-backend/database"
	"github.com/Rightupnext/South-mirror-backend/routes"
	"github.com/Rightupnext/South-mirror-backend/services"
	"github.com/Rightupnext/South-mirror-backend/utils"
)

func main() {
	cfg := config.LoadConfig()

	if err := utils.InitLogger(); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
	// No FK constraints: deleting a category leaves posts referencing it in
	// place, matching the reference-by-id model.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	log.Println("Connected to PostgreSQL")

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	log.Println("Migration complete")

	if err := database.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	// Redis backs token revocation only; the server runs without it.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		log.Println("Connected to Redis")
	} else {
		log.Println("REDIS_ADDR not set, token revocation disabled")
	}

	mailer := services.NewSMTPMailer(cfg)

	uploader, err := services.NewCloudinaryUploader(cfg)
	if err != nil {
		log.Fatalf("failed to init cloudinary: %v", err)
	}

	r := routes.SetupRouter(cfg, db, rdb, mailer, uploader)

	log.Printf("Server is running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
