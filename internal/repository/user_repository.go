package repository

import (
	"encoding/json"
	"fmt"

	"github.com/PrathameshWCE/Offcentre/internal/model"
	"github.com/PrathameshWCE/Offcentre/internal/store"
)

// UserRepository обеспечивает доступ к списку пользователей в хранилище (ключ "users").
type UserRepository struct {
	store store.Store
}

// NewUserRepository создает новый репозиторий пользователей.
func NewUserRepository(s store.Store) *UserRepository {
	return &UserRepository{store: s}
}

// GetAll возвращает всех зарегистрированных пользователей.
func (r *UserRepository) GetAll() ([]model.User, error) {
	raw, ok, err := r.store.Get(KeyUsers)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.User{}, nil
	}
	var users []model.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("%w: список пользователей: %v", ErrMalformed, err)
	}
	return users, nil
}

// FindByEmail ищет пользователя по email. Возвращает nil, если не найден.
func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	users, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Add добавляет нового пользователя в список.
func (r *UserRepository) Add(user model.User) error {
	users, err := r.GetAll()
	if err != nil {
		return err
	}
	users = append(users, user)
	return r.saveAll(users)
}

// Update заменяет запись пользователя с тем же ID.
func (r *UserRepository) Update(user model.User) error {
	users, err := r.GetAll()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = user
			return r.saveAll(users)
		}
	}
	return fmt.Errorf("пользователь %s не найден", user.ID)
}

func (r *UserRepository) saveAll(users []model.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("не удалось сериализовать список пользователей: %w", err)
	}
	return r.store.Set(KeyUsers, raw)
}
