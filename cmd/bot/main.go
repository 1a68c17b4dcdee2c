package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"weatherbot/internal/config"
	"weatherbot/internal/conversation"
	"weatherbot/internal/database"
	"weatherbot/internal/dispatch"
	"weatherbot/internal/handler"
	"weatherbot/internal/logger"
	"weatherbot/internal/middleware"
	"weatherbot/internal/repository/sqlstore"
	"weatherbot/internal/service"
	"weatherbot/internal/state"
	"weatherbot/internal/weather"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting Weather Bot", zap.String("db_driver", cfg.Database.Driver))

	// Connect to database with retries
	db, err := database.Connect(cfg.Database.Driver, cfg.DSN(), database.DefaultOptions, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	log.Info("Database connection established")

	// Run migrations
	if err := database.Migrate(db, log); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	userRepo := sqlstore.NewUserRepo(db)
	placeRepo := sqlstore.NewPlaceRepo(db)

	// Initialize services
	accountService := service.NewAccountService(userRepo)
	placeService := service.NewPlaceService(placeRepo)
	weatherClient := weather.NewClient(cfg.Weather, nil)

	controller := conversation.NewController(
		accountService,
		placeService,
		weatherClient,
		state.NewMemoryStore(),
		log,
	)

	// Updates are sharded by chat and handled synchronously by the workers
	drained := make(chan struct{})
	bot, err := tele.NewBot(tele.Settings{
		Token:       cfg.Telegram.BotToken,
		Synchronous: true,
		Poller: &dispatch.Poller{
			Inner:   &tele.LongPoller{Timeout: cfg.Telegram.PollTimeout},
			Workers: cfg.Telegram.Workers,
			Buffer:  cfg.Telegram.Workers * 4,
			Logger:  log,
			Done:    drained,
		},
		OnError: func(err error, c tele.Context) {
			if c == nil {
				log.Error("Bot error", zap.Error(err))
				return
			}
			log.Error("Handler failed", zap.Error(err), zap.Int("update_id", c.Update().ID))
		},
	})
	if err != nil {
		log.Fatal("Failed to create bot", zap.Error(err))
	}

	log.Info("Telegram bot initialized", zap.String("username", bot.Me.Username))

	bot.Use(middleware.Recover(log), middleware.Logging(log))

	// Initialize handler
	h := handler.NewHandler(bot, controller, cfg.Telegram.HandlerTimeout, log)
	h.RegisterHandlers()

	log.Info("Handlers registered")

	// Start bot in background
	go func() {
		log.Info("Bot started successfully", zap.Int("workers", cfg.Telegram.Workers))
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	log.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	<-drained

	log.Info("Bot stopped gracefully")
}
