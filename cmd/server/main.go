package main

import (
	"context"
	"os"
	"time"

	"estatehub/server/config"
	"estatehub/server/internal/api"
	"estatehub/server/internal/database"
	"estatehub/server/internal/metrics"
	"estatehub/server/internal/notify"
	"estatehub/server/internal/processor"
	"estatehub/server/internal/queue"
	"estatehub/server/internal/ratelimit"
	"estatehub/server/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	// Local runs keep settings in a .env file; absence is fine.
	if err := godotenv.Load(); err == nil {
		logger.Info("Loaded environment from .env")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	// Load the listing snapshot once; it is immutable for the process
	// lifetime and a new deploy picks up a new export.
	logger.Infof("Loading snapshot from: %s", cfg.Data.Dir)
	s, err := store.NewStore(cfg.Data.Dir, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load listing snapshot")
	}

	// Initialize the leads database
	db, err := database.NewDatabase(cfg.Data.DBPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize leads database")
	}

	logger.Info("Running database migrations...")
	if err := db.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	// Start the inquiry persistence pipeline
	inquiryQueue := queue.NewInquiryQueue(cfg.InquiryProcessing.QueueSize, logger)
	batchProcessor := processor.NewBatchProcessor(db.GetDB(), inquiryQueue, cfg, logger)
	batchProcessor.Start()
	inquiryQueue.Start()
	defer func() {
		inquiryQueue.Close()
		batchProcessor.Stop()
	}()

	notifier := notify.NewService(logger, cfg.Contact.TelegramBotToken, cfg.Contact.TelegramChatID)
	if notifier.Enabled() {
		logger.Info("Telegram inquiry alerts enabled")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	limiter := ratelimit.NewMemoryStore(ctx, cfg.Contact.RateLimitPerMinute, time.Minute)

	handler := api.NewHandler(s, db, inquiryQueue, notifier, cfg.Contact.WhatsAppNumber, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(metrics.Middleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	api.SetupRoutes(router, handler, ratelimit.Middleware(limiter))

	logger.Infof("Starting server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
