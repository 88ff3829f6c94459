package repository

import (
	"encoding/json"
	"fmt"

	"github.com/PrathameshWCE/Offcentre/internal/model"
	"github.com/PrathameshWCE/Offcentre/internal/store"
)

// PostRepository хранит опубликованные публикации под ключом "posts".
type PostRepository struct {
	store store.Store
}

// NewPostRepository создает новый репозиторий публикаций.
func NewPostRepository(s store.Store) *PostRepository {
	return &PostRepository{store: s}
}

// List возвращает все публикации в порядке их создания.
func (r *PostRepository) List() ([]model.Post, error) {
	raw, ok, err := r.store.Get(KeyPosts)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.Post{}, nil
	}
	var posts []model.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, fmt.Errorf("%w: публикации: %v", ErrMalformed, err)
	}
	return posts, nil
}

// Append добавляет публикацию в конец журнала.
func (r *PostRepository) Append(post model.Post) error {
	posts, err := r.List()
	if err != nil {
		return err
	}
	posts = append(posts, post)
	raw, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("не удалось сериализовать публикации: %w", err)
	}
	return r.store.Set(KeyPosts, raw)
}
