package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aburaya/english-trainer-bot/internal/config"
	"github.com/aburaya/english-trainer-bot/internal/delivery/telegram"
	"github.com/aburaya/english-trainer-bot/internal/infra/postgres"
	"github.com/aburaya/english-trainer-bot/internal/infra/tts"
	"github.com/aburaya/english-trainer-bot/internal/logger"
	"github.com/aburaya/english-trainer-bot/internal/repository"
	"github.com/aburaya/english-trainer-bot/internal/service"
	"github.com/aburaya/english-trainer-bot/internal/storage"
)

func main() {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zapLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zapLogger.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		zapLogger.Fatal("failed to create bot api", zap.Error(err))
	}

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "بدء البوت"},
		{Command: "train", Description: "ابدأ التمرين"},
		{Command: "next", Description: "سؤال تالي"},
		{Command: "skip", Description: "تخطي السؤال"},
		{Command: "hint", Description: "تلميح"},
		{Command: "speak", Description: "نطق الجملة الحالية"},
		{Command: "level", Description: "اختيار المستوى"},
		{Command: "direction", Description: "اتجاه الترجمة"},
		{Command: "report", Description: "ملخص آخر ٧ أيام"},
		{Command: "help", Description: "المساعدة"},
	}

	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zapLogger.Warn("failed to set bot commands", zap.Error(err))
	}

	zapLogger.Info("authorized on account", zap.String("username", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB.URL, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		zapLogger.Fatal("failed to create postgres pool", zap.Error(err))
	}
	defer pool.Close()

	// Initialize repositories and services.
	vocabRepo := repository.NewVocabularyRepository(cfg.VocabJSONPath)
	attemptRepo := repository.NewAttemptRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	sessions := storage.NewSessionStore()

	trainerService := service.NewTrainerService(
		sessions,
		vocabRepo,
		attemptRepo,
		service.NewGrader(),
		zapLogger,
	)
	reportService := service.NewReportService(attemptRepo)
	userService := service.NewUserService(userRepo)
	reminderService := service.NewReminderService(userRepo, cfg.Reminder.Spec, zapLogger)

	handler := telegram.NewHandler(
		bot,
		zapLogger,
		trainerService,
		reportService,
		userService,
		tts.NewClient(),
	)
	reminderService.SetNotifier(handler)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return handler.Run(ctx)
	})

	if cfg.Reminder.Enabled {
		g.Go(func() error {
			reminderService.Start(ctx)
			return nil
		})
	}

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		zapLogger.Fatal("bot stopped", zap.Error(err))
	}

	zapLogger.Info("shutdown signal received")
}
