package main

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sharpfade/barber-booking/internal/cache"
	"github.com/sharpfade/barber-booking/internal/config"
	"github.com/sharpfade/barber-booking/internal/db"
	"github.com/sharpfade/barber-booking/internal/middleware"
	"github.com/sharpfade/barber-booking/internal/routes"
	"github.com/sharpfade/barber-booking/internal/storage"
)

func main() {
	// .env é opcional (produção usa env vars direto)
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()

	database := db.NewDB(cfg, logger)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:        database,
		Config:    cfg,
		Logger:    logger,
		SlotCache: cache.NewSlotCache(rdb, logger),
		Gallery:   storage.NewGalleryStorage(cfg),
	})

	logger.Info("api listening", zap.String("addr", cfg.Addr()))

	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
