package service

import (
	"testing"

	"github.com/aburaya/english-trainer-bot/internal/domain/entities"
)

func TestGraderGrade(t *testing.T) {
	g := NewGrader()

	t.Run("identical answer scores 100", func(t *testing.T) {
		correct, score := g.Grade("بيانات", "بيانات", entities.LangArabic)
		if !correct {
			t.Error("expected correct verdict")
		}
		if score != 100.0 {
			t.Errorf("score = %v, want 100.0", score)
		}
	})

	t.Run("identical after normalization scores 100", func(t *testing.T) {
		correct, score := g.Grade("standard deviation", "  Standard   Deviation! ", entities.LangEnglish)
		if !correct {
			t.Error("expected correct verdict")
		}
		if score != 100.0 {
			t.Errorf("score = %v, want 100.0", score)
		}
	})

	t.Run("one character short still passes", func(t *testing.T) {
		correct, score := g.Grade("بيانات", "بيانا", entities.LangArabic)
		if !correct {
			t.Error("expected correct verdict above threshold")
		}
		if score <= 0 || score >= 100 {
			t.Errorf("score = %v, want strictly between 0 and 100", score)
		}
	})

	t.Run("unrelated word fails", func(t *testing.T) {
		correct, score := g.Grade("بيانات", "تقرير", entities.LangArabic)
		if correct {
			t.Error("expected incorrect verdict")
		}
		if score >= 85 {
			t.Errorf("score = %v, want well below the threshold", score)
		}
	})

	t.Run("empty input scores zero", func(t *testing.T) {
		for _, given := range []string{"", "   ", "!!!"} {
			correct, score := g.Grade("data", given, entities.LangEnglish)
			if correct {
				t.Errorf("given %q: expected incorrect verdict", given)
			}
			if score != 0.0 {
				t.Errorf("given %q: score = %v, want 0.0", given, score)
			}
		}
	})

	t.Run("symmetric in its arguments", func(t *testing.T) {
		pairs := [][2]string{
			{"dashboard", "dashbord"},
			{"time series", "time serie"},
			{"insight", "insights"},
		}
		for _, p := range pairs {
			_, ab := g.Grade(p[0], p[1], entities.LangEnglish)
			_, ba := g.Grade(p[1], p[0], entities.LangEnglish)
			if ab != ba {
				t.Errorf("grade(%q,%q)=%v but grade(%q,%q)=%v", p[0], p[1], ab, p[1], p[0], ba)
			}
		}
	})
}

func TestRatio(t *testing.T) {
	t.Run("equal strings", func(t *testing.T) {
		if r := ratio([]rune("abc"), []rune("abc")); r != 1.0 {
			t.Errorf("ratio = %v, want 1.0", r)
		}
	})

	t.Run("disjoint strings", func(t *testing.T) {
		if r := ratio([]rune("abc"), []rune("xyz")); r != 0.0 {
			t.Errorf("ratio = %v, want 0.0", r)
		}
	})

	t.Run("matching blocks on both sides of a gap", func(t *testing.T) {
		// "abXcd" vs "abYcd": blocks "ab" and "cd", M=4, T=10.
		if r := ratio([]rune("abXcd"), []rune("abYcd")); r != 0.8 {
			t.Errorf("ratio = %v, want 0.8", r)
		}
	})
}

func TestLongestCommonSubstring(t *testing.T) {
	ai, bi, size := longestCommonSubstring([]rune("foobarbaz"), []rune("xxbarxx"))
	if size != 3 || string([]rune("foobarbaz")[ai:ai+size]) != "bar" || bi != 2 {
		t.Errorf("got ai=%d bi=%d size=%d, want the 'bar' block", ai, bi, size)
	}

	if _, _, size := longestCommonSubstring(nil, []rune("abc")); size != 0 {
		t.Errorf("empty input: size = %d, want 0", size)
	}
}
