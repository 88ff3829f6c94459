package repository

import (
	"encoding/json"
	"fmt"

	"github.com/PrathameshWCE/Offcentre/internal/model"
	"github.com/PrathameshWCE/Offcentre/internal/store"
)

// BookmarkRepository обеспечивает доступ к коллекциям закладок.
// Каждая коллекция хранится целиком под ключом bookmarks_<email>;
// все мутации - чтение-изменение-запись полного списка.
type BookmarkRepository struct {
	store store.Store
}

// NewBookmarkRepository создает новый репозиторий закладок.
func NewBookmarkRepository(s store.Store) *BookmarkRepository {
	return &BookmarkRepository{store: s}
}

// List возвращает все закладки пользователя в порядке их создания.
func (r *BookmarkRepository) List(email string) ([]model.Bookmark, error) {
	raw, ok, err := r.store.Get(BookmarksKey(email))
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.Bookmark{}, nil
	}
	var bookmarks []model.Bookmark
	if err := json.Unmarshal(raw, &bookmarks); err != nil {
		return nil, fmt.Errorf("%w: закладки %s: %v", ErrMalformed, email, err)
	}
	return bookmarks, nil
}

// Save записывает полную коллекцию закладок пользователя.
func (r *BookmarkRepository) Save(email string, bookmarks []model.Bookmark) error {
	raw, err := json.Marshal(bookmarks)
	if err != nil {
		return fmt.Errorf("не удалось сериализовать закладки: %w", err)
	}
	return r.store.Set(BookmarksKey(email), raw)
}

// Clear удаляет коллекцию закладок пользователя целиком.
func (r *BookmarkRepository) Clear(email string) error {
	return r.store.Remove(BookmarksKey(email))
}

// Migrate переносит коллекцию под новый ключ при смене email пользователя.
func (r *BookmarkRepository) Migrate(oldEmail, newEmail string) error {
	raw, ok, err := r.store.Get(BookmarksKey(oldEmail))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := r.store.Set(BookmarksKey(newEmail), raw); err != nil {
		return err
	}
	return r.store.Remove(BookmarksKey(oldEmail))
}
