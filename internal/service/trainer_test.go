package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/aburaya/english-trainer-bot/internal/domain/entities"
	"github.com/aburaya/english-trainer-bot/internal/storage"
)

type fakeVocab struct {
	items map[entities.Level][]entities.VocabItem
}

func (f *fakeVocab) SelectItem(level entities.Level, cursor int) (entities.VocabItem, error) {
	items := f.items[level]
	if len(items) == 0 {
		return entities.VocabItem{}, errors.New("no items")
	}
	return items[cursor%len(items)], nil
}

type fakeAttempts struct {
	appended []*entities.Attempt
	err      error
}

func (f *fakeAttempts) Append(_ context.Context, attempt *entities.Attempt) error {
	if f.err != nil {
		return f.err
	}
	f.appended = append(f.appended, attempt)
	return nil
}

func newTestTrainer(attempts *fakeAttempts) *TrainerService {
	vocab := &fakeVocab{items: map[entities.Level][]entities.VocabItem{
		entities.LevelBeginner: {
			{English: "data", Arabic: "بيانات", Examples: []string{"We collect data."}},
			{English: "report", Arabic: "تقرير"},
			{English: "chart", Arabic: "مخطط"},
		},
		entities.LevelAdvanced: {
			{English: "standard deviation", Arabic: "الانحراف المعياري"},
		},
	}}

	return NewTrainerService(
		storage.NewSessionStore(),
		vocab,
		attempts,
		NewGrader(),
		zap.NewNop(),
	)
}

const userID = int64(42)

func TestTrainerTrain(t *testing.T) {
	s := newTestTrainer(&fakeAttempts{})

	prompt, err := s.Train(userID)
	if err != nil {
		t.Fatalf("Train() error: %v", err)
	}

	if prompt.Item.English != "data" {
		t.Errorf("first item = %q, want %q", prompt.Item.English, "data")
	}
	if prompt.Text != "data" {
		t.Errorf("en2ar prompt text = %q, want English side", prompt.Text)
	}
	if prompt.Level != entities.LevelBeginner || prompt.Direction != entities.DirectionENToAR {
		t.Errorf("defaults = (%s, %s), want (beginner, en2ar)", prompt.Level, prompt.Direction)
	}
}

func TestTrainerAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("correct answer advances and chains into the next question", func(t *testing.T) {
		attempts := &fakeAttempts{}
		s := newTestTrainer(attempts)

		if _, err := s.Train(userID); err != nil {
			t.Fatal(err)
		}

		res, err := s.Answer(ctx, userID, "بيانات")
		if err != nil {
			t.Fatalf("Answer() error: %v", err)
		}

		if !res.Correct || res.Score != 100.0 {
			t.Errorf("got (%v, %v), want (true, 100.0)", res.Correct, res.Score)
		}
		if res.Next == nil || res.Next.Item.English != "report" {
			t.Errorf("next item = %+v, want report", res.Next)
		}
		if len(res.Examples) != 1 {
			t.Errorf("examples = %v, want the item's example", res.Examples)
		}
		if len(attempts.appended) != 1 {
			t.Fatalf("appended %d attempts, want 1", len(attempts.appended))
		}
		if a := attempts.appended[0]; a.UserID != userID || a.ExpectedText != "بيانات" || a.Score != 100.0 {
			t.Errorf("attempt = %+v", a)
		}
	})

	t.Run("incorrect answer keeps the question and is still logged", func(t *testing.T) {
		attempts := &fakeAttempts{}
		s := newTestTrainer(attempts)

		if _, err := s.Train(userID); err != nil {
			t.Fatal(err)
		}

		res, err := s.Answer(ctx, userID, "مخطط")
		if err != nil {
			t.Fatalf("Answer() error: %v", err)
		}

		if res.Correct {
			t.Error("expected incorrect verdict")
		}
		if res.Next != nil {
			t.Error("incorrect answer must not advance")
		}
		if res.Expected != "بيانات" {
			t.Errorf("expected text = %q", res.Expected)
		}
		if len(attempts.appended) != 1 {
			t.Errorf("appended %d attempts, want 1 (failures are logged too)", len(attempts.appended))
		}

		// Retry against the same item.
		prompt, err := s.Train(userID)
		if err != nil {
			t.Fatal(err)
		}
		if prompt.Item.English != "data" {
			t.Errorf("cursor moved after incorrect answer: item = %q", prompt.Item.English)
		}
	})

	t.Run("free text while idle yields guidance error", func(t *testing.T) {
		attempts := &fakeAttempts{}
		s := newTestTrainer(attempts)

		_, err := s.Answer(ctx, userID, "بيانات")
		if !errors.Is(err, ErrNoActiveItem) {
			t.Errorf("err = %v, want ErrNoActiveItem", err)
		}
		if len(attempts.appended) != 0 {
			t.Error("no attempt should be recorded while idle")
		}
	})

	t.Run("storage failure does not abort the verdict", func(t *testing.T) {
		attempts := &fakeAttempts{err: errors.New("db down")}
		s := newTestTrainer(attempts)

		if _, err := s.Train(userID); err != nil {
			t.Fatal(err)
		}

		res, err := s.Answer(ctx, userID, "بيانات")
		if err != nil {
			t.Fatalf("Answer() error: %v", err)
		}
		if !res.Correct {
			t.Error("verdict must survive a persistence failure")
		}
	})
}

func TestTrainerSkip(t *testing.T) {
	attempts := &fakeAttempts{}
	s := newTestTrainer(attempts)

	if _, err := s.Train(userID); err != nil {
		t.Fatal(err)
	}

	prompt, err := s.Skip(userID)
	if err != nil {
		t.Fatalf("Skip() error: %v", err)
	}

	if prompt.Item.English != "report" {
		t.Errorf("after skip item = %q, want %q", prompt.Item.English, "report")
	}
	if len(attempts.appended) != 0 {
		t.Error("skip must not record an attempt")
	}
}

func TestTrainerSetLevel(t *testing.T) {
	s := newTestTrainer(&fakeAttempts{})

	// Move the cursor forward, then switch level.
	if _, err := s.Train(userID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Skip(userID); err != nil {
		t.Fatal(err)
	}

	s.SetLevel(userID, entities.LevelAdvanced)

	prompt, err := s.Train(userID)
	if err != nil {
		t.Fatal(err)
	}
	if prompt.Item.English != "standard deviation" {
		t.Errorf("after level switch item = %q, want the level's first item", prompt.Item.English)
	}
}

func TestTrainerHint(t *testing.T) {
	t.Run("without an active item", func(t *testing.T) {
		s := newTestTrainer(&fakeAttempts{})

		_, _, err := s.Hint(userID)
		if !errors.Is(err, ErrNoActiveItem) {
			t.Errorf("err = %v, want ErrNoActiveItem", err)
		}
	})

	t.Run("arabic answer prefix", func(t *testing.T) {
		s := newTestTrainer(&fakeAttempts{})
		if _, err := s.Train(userID); err != nil {
			t.Fatal(err)
		}

		hint, lang, err := s.Hint(userID)
		if err != nil {
			t.Fatal(err)
		}
		if lang != entities.LangArabic {
			t.Errorf("lang = %s, want ar", lang)
		}
		if hint != "بيا..." {
			t.Errorf("hint = %q, want %q", hint, "بيا...")
		}
	})

	t.Run("english answer uses first word only", func(t *testing.T) {
		s := newTestTrainer(&fakeAttempts{})
		s.SetLevel(userID, entities.LevelAdvanced)
		s.SetDirection(userID, entities.DirectionARToEN)
		if _, err := s.Train(userID); err != nil {
			t.Fatal(err)
		}

		hint, lang, err := s.Hint(userID)
		if err != nil {
			t.Fatal(err)
		}
		if lang != entities.LangEnglish {
			t.Errorf("lang = %s, want en", lang)
		}
		if hint != "sta..." {
			t.Errorf("hint = %q, want %q", hint, "sta...")
		}
	})
}

func TestTrainerSpeech(t *testing.T) {
	s := newTestTrainer(&fakeAttempts{})

	if _, _, err := s.Speech(userID); !errors.Is(err, ErrNoActiveItem) {
		t.Errorf("err = %v, want ErrNoActiveItem", err)
	}

	if _, err := s.Train(userID); err != nil {
		t.Fatal(err)
	}

	text, lang, err := s.Speech(userID)
	if err != nil {
		t.Fatal(err)
	}
	if text != "data" || lang != entities.LangEnglish {
		t.Errorf("speech = (%q, %s), want the prompt sentence in its language", text, lang)
	}
}
