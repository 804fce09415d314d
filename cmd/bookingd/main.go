package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"artist-booking-backend/config"
	"artist-booking-backend/internal/api"
	"artist-booking-backend/internal/auth"
	"artist-booking-backend/internal/availability"
	"artist-booking-backend/internal/booking"
	"artist-booking-backend/internal/db"
	"artist-booking-backend/internal/logging"
	"artist-booking-backend/internal/metrics"
	"artist-booking-backend/internal/mw"
	"artist-booking-backend/internal/notification"
	"artist-booking-backend/internal/storage"
	"artist-booking-backend/internal/store"
)

func main() {
	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}

	logger, err := logging.New(cfg.Log.Development, cfg.Log.Level)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	logger.Info("configuration loaded", zap.String("path", configPath))

	if cfg.Auth.JWTSecret == "" {
		logger.Fatal("JWT secret must be configured; set JWT_SECRET")
	}
	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	loc, err := time.LoadLocation(cfg.Server.Timezone)
	if err != nil {
		logger.Fatal("invalid server timezone", zap.String("timezone", cfg.Server.Timezone), zap.Error(err))
	}

	// Initialize database
	gormDB, err := db.Init(&cfg.Database, cfg.Log.Development, logger)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}

	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics.Register()
	appStore := store.NewGormStore(gormDB)
	avail := availability.NewService(appStore, logger.Named("availability"))

	webpushOptions := &webpush.Options{
		VAPIDPublicKey:  cfg.Push.PublicKey,
		VAPIDPrivateKey: cfg.Push.PrivateKey,
		Subscriber:      cfg.Push.Subject,
		TTL:             cfg.Push.TTL,
	}

	senders := buildSenders(cfg, gormDB, webpushOptions, logger)
	pool := notification.NewWorkerPool(cfg.WorkerPool.Size, cfg.WorkerPool.QueueSize, logger.Named("notification"), senders...)
	pool.SetSendTimeout(cfg.WorkerPool.SendTimeout())
	pool.Start(ctx)

	var uploader storage.Uploader
	if cfg.Storage.Bucket != "" {
		gcs, err := storage.NewGCSUploader(ctx, cfg.Storage.Bucket, cfg.Storage.CredentialsFile)
		if err != nil {
			logger.Fatal("failed to initialize object storage", zap.Error(err))
		}
		defer gcs.Close()
		uploader = gcs
	} else {
		logger.Warn("storage bucket not configured, media uploads disabled")
	}

	handler := api.NewHandler(api.Deps{
		Store:        appStore,
		Availability: avail,
		Bookings:     booking.NewService(appStore, avail, pool, logger.Named("booking")),
		Uploader:     uploader,
		Cache:        mw.NewResponseCache(time.Duration(cfg.Server.CacheTTLSeconds) * time.Second),
		WebPush:      webpushOptions,
		Logger:       logger,
		Location:     loc,
	})
	router := api.NewRouter(handler, api.RouterConfig{
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		RateLimitPerSec: cfg.Server.RateLimitPerSec,
		RateLimitBurst:  cfg.Server.RateLimitBurst,
	}, auth.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("HTTP server starting", zap.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server ListenAndServe", zap.Error(err))
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	logger.Info("shutdown signal received, stopping services")

	// Create a deadline to wait for.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server Shutdown", zap.Error(err))
	}
	cancel()
	pool.Wait()

	logger.Info("server gracefully stopped")
}
