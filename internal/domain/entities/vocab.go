// Package entities contains domain entities used across the application.
package entities

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownLevel = errors.New("unknown level")

// Level is a difficulty tier partitioning the vocabulary dataset.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Levels returns all levels in their fixed order.
func Levels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// ParseLevel parses a user-supplied level name (case-insensitive).
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelBeginner:
		return LevelBeginner, nil
	case LevelIntermediate:
		return LevelIntermediate, nil
	case LevelAdvanced:
		return LevelAdvanced, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// Lang identifies the language of a text for normalization and TTS.
type Lang string

const (
	LangEnglish Lang = "en"
	LangArabic  Lang = "ar"
)

// Direction determines which language is the prompt and which is the
// expected answer.
type Direction string

const (
	DirectionENToAR Direction = "en2ar" // prompt English, answer Arabic
	DirectionARToEN Direction = "ar2en" // prompt Arabic, answer English
)

var ErrUnknownDirection = errors.New("unknown direction")

// ParseDirection parses a user-supplied direction (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case DirectionENToAR:
		return DirectionENToAR, nil
	case DirectionARToEN:
		return DirectionARToEN, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
}

// PromptLang returns the language shown to the learner.
func (d Direction) PromptLang() Lang {
	if d == DirectionARToEN {
		return LangArabic
	}
	return LangEnglish
}

// AnswerLang returns the language the learner must answer in.
func (d Direction) AnswerLang() Lang {
	if d == DirectionARToEN {
		return LangEnglish
	}
	return LangArabic
}

// VocabItem is a single vocabulary entry. Immutable once loaded.
type VocabItem struct {
	English  string   `json:"en"`       // English text
	Arabic   string   `json:"ar"`       // Arabic translation
	Examples []string `json:"examples"` // example sentences, possibly empty
}

// TextIn returns the item's text in the given language.
func (v VocabItem) TextIn(lang Lang) string {
	if lang == LangArabic {
		return v.Arabic
	}
	return v.English
}
