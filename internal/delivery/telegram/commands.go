package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aburaya/english-trainer-bot/internal/domain/entities"
	"github.com/aburaya/english-trainer-bot/internal/repository"
	"github.com/aburaya/english-trainer-bot/internal/service"
)

// handleLevel sets the user's level; without a valid argument it
// replies with usage examples.
func (h *Handler) handleLevel(chatID, userID int64, args string) {
	level, err := entities.ParseLevel(args)
	if err != nil {
		h.send(newPlainMessage(chatID, msgUseLevel))
		return
	}

	h.trainer.SetLevel(userID, level)
	h.send(newPlainMessage(chatID, formatLevelSet(level)))
}

// handleDirection sets the translation direction.
func (h *Handler) handleDirection(chatID, userID int64, args string) {
	direction, err := entities.ParseDirection(args)
	if err != nil {
		h.send(newPlainMessage(chatID, msgUseDirection))
		return
	}

	h.trainer.SetDirection(userID, direction)
	h.send(newPlainMessage(chatID, formatDirectionSet(direction)))
}

// handleTrain selects the current question and sends the prompt.
func (h *Handler) handleTrain(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		prompt, err := h.trainer.Train(userID)
		if err != nil {
			if errors.Is(err, repository.ErrEmptyLevel) {
				h.send(newPlainMessage(chatID, msgLevelUnavailable))
				return nil
			}
			return err
		}

		h.send(newMarkdownMessage(chatID, formatPrompt(prompt)))
		return nil
	}
}

// handleSkip advances past the current question without grading.
func (h *Handler) handleSkip(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		prompt, err := h.trainer.Skip(userID)
		if err != nil {
			if errors.Is(err, repository.ErrEmptyLevel) {
				h.send(newPlainMessage(chatID, msgLevelUnavailable))
				return nil
			}
			return err
		}

		h.send(newMarkdownMessage(chatID, formatPrompt(prompt)))
		return nil
	}
}

// handleHint replies with a partial-answer hint; it never changes the
// session state.
func (h *Handler) handleHint(chatID, userID int64) {
	hint, lang, err := h.trainer.Hint(userID)
	if err != nil {
		h.send(newPlainMessage(chatID, msgStartFirst))
		return
	}

	h.send(newPlainMessage(chatID, formatHint(hint, lang)))
}

// handleSpeak synthesizes the current prompt sentence. A synthesis
// failure degrades to a text-only reply, never a user-visible error.
func (h *Handler) handleSpeak(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, lang, err := h.trainer.Speech(userID)
		if err != nil {
			h.send(newPlainMessage(chatID, msgStartFirst))
			return nil
		}

		if !h.sendAudio(ctx, chatID, text, lang) {
			h.send(newPlainMessage(chatID, "🔊 "+text))
		}
		return nil
	}
}

// handleReport sends the 7-day windowed attempt summary.
func (h *Handler) handleReport(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		summary, err := h.reportService.GetSummary(ctx, userID)
		if err != nil {
			return err
		}

		h.send(newPlainMessage(chatID, formatReport(summary)))
		return nil
	}
}

// handleAnswer grades a free-text reply. While idle the reply is a
// guidance message instead.
func (h *Handler) handleAnswer(userID int64, text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		res, err := h.trainer.Answer(ctx, userID, text)
		if err != nil {
			if errors.Is(err, service.ErrNoActiveItem) {
				h.send(newPlainMessage(chatID, msgIdleGuidance))
				return nil
			}
			return err
		}

		if !res.Correct {
			h.send(newPlainMessage(chatID, formatIncorrect(res)))
			return nil
		}

		// English audio of the learned word, best-effort.
		h.sendAudio(ctx, chatID, res.English, entities.LangEnglish)

		h.send(newPlainMessage(chatID, formatCorrect(res)))

		if res.Next != nil {
			h.send(newMarkdownMessage(chatID, formatPrompt(res.Next)))
		}
		return nil
	}
}

// sendAudio synthesizes and sends an audio reply. Returns false when
// synthesis or sending failed, so callers can fall back to text.
func (h *Handler) sendAudio(ctx context.Context, chatID int64, text string, lang entities.Lang) bool {
	audio, err := h.synthesizer.Synthesize(ctx, text, lang)
	if err != nil {
		h.logger.Warn("speech synthesis failed",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return false
	}

	msg := tgbotapi.NewAudio(chatID, tgbotapi.FileBytes{
		Name:  "tts.mp3",
		Bytes: audio,
	})
	msg.Title = "TTS (" + string(lang) + ")"
	msg.Caption = text

	if _, err := h.bot.Send(msg); err != nil {
		h.logger.Error("failed to send audio",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return false
	}

	return true
}
