package repository

import (
	"encoding/json"
	"fmt"

	"github.com/PrathameshWCE/Offcentre/internal/model"
	"github.com/PrathameshWCE/Offcentre/internal/store"
)

// FeedbackRepository хранит журнал обратной связи под ключом "feedback".
type FeedbackRepository struct {
	store store.Store
}

// NewFeedbackRepository создает новый репозиторий обратной связи.
func NewFeedbackRepository(s store.Store) *FeedbackRepository {
	return &FeedbackRepository{store: s}
}

// List возвращает все записи журнала.
func (r *FeedbackRepository) List() ([]model.FeedbackEntry, error) {
	raw, ok, err := r.store.Get(KeyFeedback)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.FeedbackEntry{}, nil
	}
	var entries []model.FeedbackEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: журнал обратной связи: %v", ErrMalformed, err)
	}
	return entries, nil
}

// Append добавляет запись в конец журнала.
func (r *FeedbackRepository) Append(entry model.FeedbackEntry) error {
	entries, err := r.List()
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("не удалось сериализовать журнал обратной связи: %w", err)
	}
	return r.store.Set(KeyFeedback, raw)
}
