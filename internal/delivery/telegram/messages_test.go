package telegram

import (
	"strings"
	"testing"
	"time"

	"github.com/aburaya/english-trainer-bot/internal/domain/entities"
	"github.com/aburaya/english-trainer-bot/internal/service"
)

func TestFormatPrompt(t *testing.T) {
	p := &service.Prompt{
		Level:     entities.LevelBeginner,
		Direction: entities.DirectionENToAR,
		Item:      entities.VocabItem{English: "data", Arabic: "بيانات"},
		Text:      "data",
	}

	got := formatPrompt(p)
	if !strings.Contains(got, "`data`") {
		t.Errorf("prompt %q does not contain the sentence", got)
	}
	if !strings.Contains(got, "ترجم إلى العربية") {
		t.Errorf("prompt %q does not name the target language", got)
	}
}

func TestFormatCorrectLimitsExamples(t *testing.T) {
	res := &service.AnswerResult{
		Correct:  true,
		Examples: []string{"one", "two", "three"},
	}

	got := formatCorrect(res)
	if strings.Contains(got, "three") {
		t.Errorf("reply %q should include at most two examples", got)
	}
	if !strings.Contains(got, "one") || !strings.Contains(got, "two") {
		t.Errorf("reply %q is missing examples", got)
	}
}

func TestFormatIncorrectIncludesAnswer(t *testing.T) {
	res := &service.AnswerResult{
		Correct:  false,
		Score:    42.3,
		Expected: "بيانات",
	}

	got := formatIncorrect(res)
	if !strings.Contains(got, "بيانات") {
		t.Errorf("reply %q does not reveal the correct answer", got)
	}
	if !strings.Contains(got, "42.3") {
		t.Errorf("reply %q does not show the score", got)
	}
}

func TestFormatReport(t *testing.T) {
	t.Run("empty summary", func(t *testing.T) {
		got := formatReport(&service.ReportSummary{})
		if got != msgNoAttempts {
			t.Errorf("formatReport() = %q, want the no-attempts notice", got)
		}
	})

	t.Run("with attempts", func(t *testing.T) {
		summary := &service.ReportSummary{
			Count:        3,
			AverageScore: 76.6,
			Recent: []*entities.Attempt{
				{ExpectedText: "بيانات", GivenText: "بيانا", Score: 90.9, CreatedAt: time.Now()},
			},
		}

		got := formatReport(summary)
		if !strings.Contains(got, "3") || !strings.Contains(got, "76.6") {
			t.Errorf("report %q is missing aggregates", got)
		}
		if !strings.Contains(got, "بيانا") {
			t.Errorf("report %q is missing the recent attempts", got)
		}
	})
}
