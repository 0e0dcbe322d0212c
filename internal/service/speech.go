package service

import (
	"context"

	"github.com/aburaya/english-trainer-bot/internal/domain/entities"
)

// Synthesizer converts text in a given language into audio bytes.
// Synthesis is best-effort: callers degrade to a text-only reply when
// it fails.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, lang entities.Lang) ([]byte, error)
}
