package service

import (
	"strings"

	"github.com/aburaya/english-trainer-bot/internal/domain/entities"
)

// Normalize canonicalizes a string in the given language before
// comparison. Both normalizers are idempotent and deterministic.
func Normalize(s string, lang entities.Lang) string {
	if lang == entities.LangArabic {
		return NormalizeArabic(s)
	}
	return NormalizeEnglish(s)
}

// NormalizeEnglish lowercases, strips everything except letters,
// digits, whitespace and hyphens, and collapses whitespace.
func NormalizeEnglish(s string) string {
	s = strings.ToLower(s)

	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= '0' && r <= '9':
			return r
		case r == '-':
			return r
		default:
			return ' '
		}
	}, s)

	return strings.Join(strings.Fields(s), " ")
}

// NormalizeArabic strips everything outside the Arabic block, digits
// and whitespace, removes diacritics, folds common letter variants
// (alef forms, alef maksura, taa marbuta) and collapses whitespace.
// These are standard orthographic normalizations that make spelling
// variants compare equal.
func NormalizeArabic(s string) string {
	// Remove diacritics (harakat) and tatweel; drop everything outside
	// the Arabic block and ASCII digits.
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 0x064B && r <= 0x065F: // harakat
			return -1
		case r == 0x0640: // tatweel (kashida)
			return -1
		case r >= 0x0600 && r <= 0x06FF:
			return r
		case r >= '0' && r <= '9':
			return r
		default:
			return ' '
		}
	}, s)

	// Fold common Arabic character variants.
	replacements := map[rune]rune{
		'أ': 'ا', // alef with hamza above
		'إ': 'ا', // alef with hamza below
		'آ': 'ا', // alef with madda
		'ى': 'ي', // alef maksura to yeh
		'ة': 'ه', // taa marbuta to heh
	}

	s = strings.Map(func(r rune) rune {
		if folded, ok := replacements[r]; ok {
			return folded
		}
		return r
	}, s)

	return strings.Join(strings.Fields(s), " ")
}
