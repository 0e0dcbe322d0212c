package telegram

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aburaya/english-trainer-bot/internal/domain/entities"
	"github.com/aburaya/english-trainer-bot/internal/service"
)

type TrainerService interface {
	StartSession(userID int64)
	SetLevel(userID int64, level entities.Level)
	SetDirection(userID int64, direction entities.Direction)
	Train(userID int64) (*service.Prompt, error)
	Skip(userID int64) (*service.Prompt, error)
	Answer(ctx context.Context, userID int64, text string) (*service.AnswerResult, error)
	Hint(userID int64) (string, entities.Lang, error)
	Speech(userID int64) (string, entities.Lang, error)
}

type ReportService interface {
	GetSummary(ctx context.Context, userID int64) (*service.ReportSummary, error)
}

type UserService interface {
	EnsureUser(ctx context.Context, userID, chatID int64) error
}

// queueSize bounds the per-user update backlog; an overflowing queue
// drops the update rather than stalling other users.
const queueSize = 32

type Handler struct {
	bot           *tgbotapi.BotAPI
	logger        *zap.Logger
	trainer       TrainerService
	reportService ReportService
	userService   UserService
	synthesizer   service.Synthesizer

	mu     sync.Mutex
	queues map[int64]chan tgbotapi.Update
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	trainer TrainerService,
	reportService ReportService,
	userService UserService,
	synthesizer service.Synthesizer,
) *Handler {
	return &Handler{
		bot:           bot,
		logger:        logger,
		trainer:       trainer,
		reportService: reportService,
		userService:   userService,
		synthesizer:   synthesizer,
		queues:        make(map[int64]chan tgbotapi.Update),
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.dispatch(ctx, update)
		}
	}
}

// dispatch funnels each user's updates through a dedicated queue so a
// single user's messages are handled strictly in arrival order while
// different users are processed concurrently.
func (h *Handler) dispatch(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || update.Message.From == nil {
		h.logger.Debug("update without message")
		return
	}

	userID := update.Message.From.ID

	h.mu.Lock()
	queue, ok := h.queues[userID]
	if !ok {
		queue = make(chan tgbotapi.Update, queueSize)
		h.queues[userID] = queue

		go func() {
			for upd := range queue {
				h.handleUpdate(ctx, upd)
			}
		}()
	}
	h.mu.Unlock()

	select {
	case queue <- update:
	default:
		h.logger.Warn("user queue full, dropping update",
			zap.Int64("user_id", userID),
		)
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	from := update.Message.From
	chatID := update.Message.Chat.ID

	if err := h.userService.EnsureUser(ctx, from.ID, chatID); err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", from.ID),
			zap.Error(err),
		)
	}

	if update.Message.IsCommand() {
		h.handleCommand(ctx, update)
		return
	}

	_ = h.withErrorHandling(h.handleAnswer(from.ID, update.Message.Text))(ctx, chatID)
}

func (h *Handler) handleCommand(ctx context.Context, update tgbotapi.Update) {
	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID
	args := update.Message.CommandArguments()

	switch update.Message.Command() {
	case "start":
		h.trainer.StartSession(userID)
		h.send(newPlainMessage(chatID, msgWelcome))

	case "help":
		h.send(newPlainMessage(chatID, msgHelp))

	case "level":
		h.handleLevel(chatID, userID, args)

	case "direction":
		h.handleDirection(chatID, userID, args)

	case "train":
		_ = h.withErrorHandling(h.handleTrain(userID))(ctx, chatID)

	case "next", "skip":
		_ = h.withErrorHandling(h.handleSkip(userID))(ctx, chatID)

	case "hint":
		h.handleHint(chatID, userID)

	case "speak":
		_ = h.withErrorHandling(h.handleSpeak(userID))(ctx, chatID)

	case "report":
		_ = h.withErrorHandling(h.handleReport(userID))(ctx, chatID)

	default:
		h.send(newPlainMessage(chatID, msgIdleGuidance))
	}
}

// SendReminder implements service.ReminderNotifier.
func (h *Handler) SendReminder(chatID int64, text string) error {
	_, err := h.bot.Send(newPlainMessage(chatID, text))
	return err
}

func (h *Handler) sendError(chatID int64, text string) {
	h.send(newPlainMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
