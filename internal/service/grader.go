package service

import (
	"math"

	"github.com/aburaya/english-trainer-bot/internal/domain/entities"
)

// Grader decides whether a free-text answer matches the expected one,
// using fuzzy matching rather than exact equality.
type Grader struct {
	threshold float64 // similarity threshold (0.0 - 1.0)
}

// NewGrader creates a Grader with the standard acceptance threshold:
// minor spelling drift passes, a full-word difference does not.
func NewGrader() *Grader {
	return &Grader{threshold: 0.85}
}

// Grade normalizes both strings for the given language and computes a
// Ratcliff/Obershelp similarity ratio. If either side normalizes to
// the empty string the verdict is (false, 0). The returned score is
// the ratio as a 0-100 percentage rounded to one decimal.
func (g *Grader) Grade(expected, given string, lang entities.Lang) (bool, float64) {
	a := Normalize(expected, lang)
	b := Normalize(given, lang)

	if a == "" || b == "" {
		return false, 0.0
	}

	r := ratio([]rune(a), []rune(b))
	score := math.Round(r*1000) / 10

	return r >= g.threshold, score
}

// ratio is the Ratcliff/Obershelp similarity: 2*M/T where M is the
// total length of matching blocks found by recursively extracting the
// longest common substring, and T is the combined length of both
// inputs. Symmetric, 1.0 for equal strings, degrades smoothly with
// edit distance.
func ratio(a, b []rune) float64 {
	t := len(a) + len(b)
	if t == 0 {
		return 0.0
	}

	return 2.0 * float64(matchingTotal(a, b)) / float64(t)
}

func matchingTotal(a, b []rune) int {
	i, j, k := longestCommonSubstring(a, b)
	if k == 0 {
		return 0
	}

	return k + matchingTotal(a[:i], b[:j]) + matchingTotal(a[i+k:], b[j+k:])
}

// longestCommonSubstring returns the start offsets and length of the
// longest contiguous run of runes common to a and b. Of equal-length
// runs the earliest in a (then in b) wins.
func longestCommonSubstring(a, b []rune) (ai, bi, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}

	// prev[j+1] is the length of the common run ending at a[i-1], b[j].
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := range a {
		for j := range b {
			if a[i] == b[j] {
				curr[j+1] = prev[j] + 1
				if curr[j+1] > size {
					size = curr[j+1]
					ai = i - size + 1
					bi = j - size + 1
				}
			} else {
				curr[j+1] = 0
			}
		}
		prev, curr = curr, prev
	}

	return ai, bi, size
}
