package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/aburaya/english-trainer-bot/internal/domain/entities"
)

// ErrNoActiveItem is returned when a command needs a current question
// but the user has not started training yet.
var ErrNoActiveItem = errors.New("no active item")

type VocabularyRepo interface {
	SelectItem(level entities.Level, cursor int) (entities.VocabItem, error)
}

type AttemptRepo interface {
	Append(ctx context.Context, attempt *entities.Attempt) error
}

type SessionStore interface {
	With(userID int64, fn func(*entities.Session))
}

// TrainerService is the per-user conversation state machine: it
// selects questions, grades free-text answers and records attempts.
type TrainerService struct {
	sessions SessionStore
	vocab    VocabularyRepo
	attempts AttemptRepo
	grader   *Grader
	logger   *zap.Logger
	now      func() time.Time
}

func NewTrainerService(
	sessions SessionStore,
	vocab VocabularyRepo,
	attempts AttemptRepo,
	grader *Grader,
	logger *zap.Logger,
) *TrainerService {
	return &TrainerService{
		sessions: sessions,
		vocab:    vocab,
		attempts: attempts,
		grader:   grader,
		logger:   logger,
		now:      time.Now,
	}
}

// Prompt is one question presented to the learner.
type Prompt struct {
	Level     entities.Level
	Direction entities.Direction
	Item      entities.VocabItem
	Text      string // the sentence to translate, in the prompt language
}

// AnswerResult is the outcome of grading one free-text reply.
type AnswerResult struct {
	Correct  bool
	Score    float64 // 0-100, one decimal
	Expected string  // correct answer text, shown on failure
	Examples []string
	English  string  // English text of the item, spoken on success
	Next     *Prompt // next question, set only on a correct answer
}

// StartSession resets the user's session to the defaults.
func (s *TrainerService) StartSession(userID int64) {
	s.sessions.With(userID, func(sess *entities.Session) {
		sess.Reset()
	})
}

// SetLevel changes the user's level and restarts its cycle at the
// first item. A pending question keeps the old item until the next
// /train or /next.
func (s *TrainerService) SetLevel(userID int64, level entities.Level) {
	s.sessions.With(userID, func(sess *entities.Session) {
		sess.SetLevel(level)
	})
}

// SetDirection changes the user's translation direction.
func (s *TrainerService) SetDirection(userID int64, direction entities.Direction) {
	s.sessions.With(userID, func(sess *entities.Session) {
		sess.Direction = direction
	})
}

// Train selects the item at the session cursor and enters the
// awaiting-answer state.
func (s *TrainerService) Train(userID int64) (*Prompt, error) {
	var (
		prompt *Prompt
		err    error
	)

	s.sessions.With(userID, func(sess *entities.Session) {
		prompt, err = s.enterQuestion(sess)
	})

	return prompt, err
}

// Skip advances the cursor without grading and presents the next item.
func (s *TrainerService) Skip(userID int64) (*Prompt, error) {
	var (
		prompt *Prompt
		err    error
	)

	s.sessions.With(userID, func(sess *entities.Session) {
		sess.Cursor++
		prompt, err = s.enterQuestion(sess)
	})

	return prompt, err
}

// enterQuestion selects the current item and moves the session into
// the awaiting-answer state. Caller must hold the session.
func (s *TrainerService) enterQuestion(sess *entities.Session) (*Prompt, error) {
	item, err := s.vocab.SelectItem(sess.Level, sess.Cursor)
	if err != nil {
		return nil, err
	}

	sess.Current = &item
	sess.State = entities.StateAwaitingAnswer

	return &Prompt{
		Level:     sess.Level,
		Direction: sess.Direction,
		Item:      item,
		Text:      item.TextIn(sess.Direction.PromptLang()),
	}, nil
}

// Answer grades a free-text reply against the current question. The
// attempt is recorded whether or not it is correct; a correct answer
// advances the cursor and chains straight into the next question,
// an incorrect one leaves the question in place for a retry.
func (s *TrainerService) Answer(ctx context.Context, userID int64, text string) (*AnswerResult, error) {
	var (
		result *AnswerResult
		err    error
	)

	s.sessions.With(userID, func(sess *entities.Session) {
		if sess.State != entities.StateAwaitingAnswer || sess.Current == nil {
			err = ErrNoActiveItem
			return
		}

		item := *sess.Current
		lang := sess.Direction.AnswerLang()
		expected := item.TextIn(lang)

		correct, score := s.grader.Grade(expected, text, lang)

		s.recordAttempt(ctx, userID, expected, text, score)

		result = &AnswerResult{
			Correct:  correct,
			Score:    score,
			Expected: expected,
			Examples: item.Examples,
			English:  item.English,
		}

		if !correct {
			return
		}

		sess.Cursor++

		next, qerr := s.enterQuestion(sess)
		if qerr != nil {
			// Nothing selectable; fall back to idle.
			sess.Current = nil
			sess.State = entities.StateIdle
			s.logger.Warn("no next question after correct answer",
				zap.Int64("user_id", userID),
				zap.Error(qerr),
			)
			return
		}

		result.Next = next
	})

	return result, err
}

// recordAttempt appends the graded attempt. A storage failure must not
// abort the reply: the user still gets their verdict.
func (s *TrainerService) recordAttempt(ctx context.Context, userID int64, expected, given string, score float64) {
	attempt := &entities.Attempt{
		UserID:       userID,
		ExpectedText: expected,
		GivenText:    given,
		Score:        score,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.attempts.Append(ctx, attempt); err != nil {
		s.logger.Error("failed to record attempt",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
}

// Hint returns a short prefix of the normalized expected answer. It is
// a side query and never changes state.
func (s *TrainerService) Hint(userID int64) (string, entities.Lang, error) {
	var (
		hint string
		lang entities.Lang
		err  error
	)

	s.sessions.With(userID, func(sess *entities.Session) {
		if sess.Current == nil {
			err = ErrNoActiveItem
			return
		}

		lang = sess.Direction.AnswerLang()
		answer := Normalize(sess.Current.TextIn(lang), lang)

		if lang == entities.LangEnglish {
			// First word only for English answers.
			if i := firstSpace(answer); i >= 0 {
				answer = answer[:i]
			}
		}

		hint = prefixRunes(answer, 3) + "..."
	})

	return hint, lang, err
}

// Speech returns the text and language of the current prompt sentence
// for synthesis. It never changes state.
func (s *TrainerService) Speech(userID int64) (string, entities.Lang, error) {
	var (
		text string
		lang entities.Lang
		err  error
	)

	s.sessions.With(userID, func(sess *entities.Session) {
		if sess.Current == nil {
			err = ErrNoActiveItem
			return
		}

		lang = sess.Direction.PromptLang()
		text = sess.Current.TextIn(lang)
	})

	return text, lang, err
}

func firstSpace(s string) int {
	for i, r := range s {
		if r == ' ' {
			return i
		}
	}
	return -1
}

func prefixRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
