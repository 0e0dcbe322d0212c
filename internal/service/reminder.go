package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type IdleUserRepo interface {
	GetIdleChatIDs(ctx context.Context, since time.Time) ([]int64, error)
}

// ReminderNotifier delivers a reminder text to a chat.
type ReminderNotifier interface {
	SendReminder(chatID int64, text string) error
}

// ReminderService nudges users who have not practiced for a day.
type ReminderService struct {
	users    IdleUserRepo
	notifier ReminderNotifier
	spec     string
	logger   *zap.Logger
}

func NewReminderService(users IdleUserRepo, spec string, logger *zap.Logger) *ReminderService {
	return &ReminderService{
		users:  users,
		spec:   spec,
		logger: logger,
	}
}

// SetNotifier sets the notifier (called after the handler is created).
func (s *ReminderService) SetNotifier(notifier ReminderNotifier) {
	s.notifier = notifier
}

const reminderText = "⏰ تذكير: لم تتدرب اليوم. استخدم /train للمتابعة!"

// Start runs the cron scheduler until the context is cancelled.
func (s *ReminderService) Start(ctx context.Context) {
	s.logger.Info("reminder service started", zap.String("spec", s.spec))

	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(s.spec, func() {
		if err := s.sendReminders(ctx); err != nil {
			s.logger.Error("failed to send reminders", zap.Error(err))
		}
	})
	if err != nil {
		s.logger.Error("failed to add cron job", zap.Error(err))
		return
	}

	c.Start()

	<-ctx.Done()

	c.Stop()
	s.logger.Info("reminder service stopped")
}

func (s *ReminderService) sendReminders(ctx context.Context) error {
	since := time.Now().UTC().Add(-24 * time.Hour)

	chatIDs, err := s.users.GetIdleChatIDs(ctx, since)
	if err != nil {
		return err
	}

	sent := 0
	for _, chatID := range chatIDs {
		if err := s.notifier.SendReminder(chatID, reminderText); err != nil {
			s.logger.Error("failed to send reminder",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	s.logger.Info("reminders processed",
		zap.Int("total_sent", sent),
		zap.Int("candidates", len(chatIDs)),
	)

	return nil
}
