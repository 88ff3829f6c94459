package repository

import (
	"encoding/json"
	"fmt"

	"github.com/PrathameshWCE/Offcentre/internal/model"
	"github.com/PrathameshWCE/Offcentre/internal/store"
)

// CredentialsRepository хранит сохраненные учетные данные ("запомнить меня")
// и зеркальную копию текущего пользователя для восстановления сессии после перезагрузки.
type CredentialsRepository struct {
	store store.Store
}

// NewCredentialsRepository создает новый репозиторий учетных данных.
func NewCredentialsRepository(s store.Store) *CredentialsRepository {
	return &CredentialsRepository{store: s}
}

// GetSaved возвращает сохраненные учетные данные либо nil, если их нет.
func (r *CredentialsRepository) GetSaved() (*model.SavedCredentials, error) {
	raw, ok, err := r.store.Get(KeySavedCredentials)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var creds model.SavedCredentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, fmt.Errorf("%w: сохраненные учетные данные: %v", ErrMalformed, err)
	}
	return &creds, nil
}

// SaveCredentials записывает учетные данные.
func (r *CredentialsRepository) SaveCredentials(creds model.SavedCredentials) error {
	raw, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("не удалось сериализовать учетные данные: %w", err)
	}
	return r.store.Set(KeySavedCredentials, raw)
}

// ClearCredentials удаляет сохраненные учетные данные.
func (r *CredentialsRepository) ClearCredentials() error {
	return r.store.Remove(KeySavedCredentials)
}

// GetCurrentUser возвращает зеркальную копию вошедшего пользователя либо nil.
func (r *CredentialsRepository) GetCurrentUser() (*model.User, error) {
	raw, ok, err := r.store.Get(KeyCurrentUser)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var user model.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("%w: текущий пользователь: %v", ErrMalformed, err)
	}
	return &user, nil
}

// SetCurrentUser записывает зеркальную копию вошедшего пользователя.
func (r *CredentialsRepository) SetCurrentUser(user model.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("не удалось сериализовать пользователя: %w", err)
	}
	return r.store.Set(KeyCurrentUser, raw)
}

// ClearCurrentUser удаляет зеркальную копию при выходе.
func (r *CredentialsRepository) ClearCurrentUser() error {
	return r.store.Remove(KeyCurrentUser)
}
