package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_notification_bot/internal/app"
	"homework_notification_bot/internal/infra/config"
	"homework_notification_bot/internal/infra/logger"
	"homework_notification_bot/internal/infra/practicum"
	"homework_notification_bot/internal/infra/scheduler"
	"homework_notification_bot/internal/infra/telegram"

	"gopkg.in/telebot.v3"
)

func main() {
	fmt.Println("Homework Notification Bot starting...")

	mainLogger := log.New(os.Stdout, "MAIN: ", log.LstdFlags|log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		// Missing required configuration is fatal: exit before any network call.
		mainLogger.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	appLogger := logger.Component("main")
	appLogger.Infof("Configuration loaded. LogLevel: %s, Environment: %s, PollInterval: %s", cfg.LogLevel, cfg.Environment, cfg.PollInterval)

	// Initialize Telegram Bot
	pref := telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) { // Global error handler
			log.Printf("ERROR (telebot): %v", err)
			if c != nil && c.Sender() != nil && c.Chat() != nil {
				log.Printf("ERROR (telebot context): Message: %s, Sender: %d, Chat: %d", c.Text(), c.Sender().ID, c.Chat().ID)
			}
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		appLogger.Fatalf("Could not create Telegram bot: %v", err)
	}
	telegramClient := telegram.NewTelebotAdapter(bot)
	appLogger.Info("Telegram client initialized.")

	// Initialize the status API client
	statusClient := practicum.NewClient(cfg.Endpoint, cfg.PracticumToken, cfg.RequestTimeout, logger.Component("practicum"))
	appLogger.Info("Practicum status client initialized.")

	// Initialize the poller service
	pollerService := app.NewPollerService(
		statusClient,
		telegramClient,
		logger.Component("poller"),
		cfg.TelegramChatID,
		cfg.PollInterval,
	)
	appLogger.Info("Poller service initialized.")

	// Register Handlers
	telegram.RegisterBotCommands(bot, pollerService, cfg.TelegramChatID, logger.Component("telegram"))
	appLogger.Info("Bot command handlers registered.")

	// Initialize the daily summary scheduler
	summaryScheduler := scheduler.NewSummaryScheduler(
		pollerService,
		telegramClient,
		logger.Component("scheduler"),
		cfg.CronSpecDailySummary,
		cfg.TelegramChatID,
	)
	summaryScheduler.Start()

	appLogger.Info("Application setup complete. Bot and poller are starting...")

	ctx, cancel := context.WithCancel(context.Background())
	go pollerService.Run(ctx)

	// Start bot in a goroutine so it doesn't block graceful shutdown handling
	go bot.Start()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	appLogger.Info("Shutting down application...")
	cancel()
	summaryScheduler.Stop()
	bot.Stop()
	appLogger.Info("Application shut down gracefully.")
}
