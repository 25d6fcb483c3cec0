package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Aayush349/skybm-backend/internal/config"
	"github.com/Aayush349/skybm-backend/internal/controller"
	"github.com/Aayush349/skybm-backend/internal/media"
	"github.com/Aayush349/skybm-backend/internal/repository"
	"github.com/Aayush349/skybm-backend/internal/server"
	"github.com/Aayush349/skybm-backend/internal/service"
	"github.com/Aayush349/skybm-backend/pkg/logger"
)

func main() {
	// .env is optional; deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "json")
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info().Msg("Starting skybm-backend...")

	db, err := repository.Connect(cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("Connected to MongoDB")

	mediaService, err := media.NewCloudinaryService(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize media service")
	}

	blogRepo := repository.NewBlogRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)

	blogService := service.NewBlogService(blogRepo, log)
	galleryService := service.NewGalleryService(galleryRepo, mediaService, log)

	srv := server.New(log).WithCORS(cfg.Server.AllowedOrigins)

	api := srv.Engine().Group("/api")
	controller.NewBlogController(blogService).Register(api)
	controller.NewGalleryController(galleryService).Register(api)
	controller.NewHealthController().Register(srv.Engine())

	go func() {
		if err := srv.Start(cfg.Server.Port); err != nil {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
