package repository

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/aburaya/english-trainer-bot/internal/domain/entities"
)

var ErrEmptyLevel = errors.New("no items for level")

// VocabularyRepository provides read-only access to the vocabulary
// dataset, grouped by difficulty level. The dataset is loaded once at
// startup and never mutated afterwards.
type VocabularyRepository struct {
	items map[entities.Level][]entities.VocabItem
}

// NewVocabularyRepository loads the dataset from a JSON file. On any
// failure (missing file, malformed JSON, missing levels or fields) it
// substitutes the built-in fallback dataset: the trainer must never
// fail to produce a question.
func NewVocabularyRepository(path string) *VocabularyRepository {
	items, err := loadDataset(path)
	if err != nil {
		items = fallbackDataset()
	}

	return &VocabularyRepository{items: items}
}

// SelectItem returns the item at cursor for the given level, wrapping
// around so training is cyclic. Returns ErrEmptyLevel if the level has
// no items (should not happen after fallback substitution).
func (r *VocabularyRepository) SelectItem(level entities.Level, cursor int) (entities.VocabItem, error) {
	items := r.items[level]
	if len(items) == 0 {
		return entities.VocabItem{}, ErrEmptyLevel
	}

	return items[cursor%len(items)], nil
}

// Count returns the number of items at the given level.
func (r *VocabularyRepository) Count(level entities.Level) int {
	return len(r.items[level])
}

func loadDataset(path string) (map[entities.Level][]entities.VocabItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string][]entities.VocabItem
	if err = json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	items := make(map[entities.Level][]entities.VocabItem, len(raw))
	for name, list := range raw {
		level, err := entities.ParseLevel(name)
		if err != nil {
			return nil, err
		}
		items[level] = list
	}

	if err = validateDataset(items); err != nil {
		return nil, err
	}

	return items, nil
}

// validateDataset checks that all three levels are present, each
// non-empty, and that every item carries both text fields.
func validateDataset(items map[entities.Level][]entities.VocabItem) error {
	for _, level := range entities.Levels() {
		list, ok := items[level]
		if !ok || len(list) == 0 {
			return errors.New("dataset: missing or empty level " + string(level))
		}
		for _, item := range list {
			if item.English == "" || item.Arabic == "" {
				return errors.New("dataset: item with empty text at level " + string(level))
			}
		}
	}

	return nil
}
