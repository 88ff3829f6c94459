package service

import (
	"github.com/PrathameshWCE/Offcentre/internal/model"
	"github.com/PrathameshWCE/Offcentre/internal/repository"
)

// ProfileUpdate - изменяемые поля профиля.
type ProfileUpdate struct {
	Name     string
	Email    string
	Location string
}

// ProfileService редактирует профиль пользователя.
type ProfileService struct {
	userRepo     *repository.UserRepository
	credsRepo    *repository.CredentialsRepository
	bookmarkRepo *repository.BookmarkRepository
}

// NewProfileService создает новый сервис профиля.
func NewProfileService(userRepo *repository.UserRepository, credsRepo *repository.CredentialsRepository,
	bookmarkRepo *repository.BookmarkRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo, credsRepo: credsRepo, bookmarkRepo: bookmarkRepo}
}

// Update применяет изменения профиля. Email - ключ раздела закладок, поэтому при его
// смене коллекция закладок переносится под новый ключ, а не остается сиротой.
func (s *ProfileService) Update(user *model.User, update ProfileUpdate) (*model.User, error) {
	if user == nil {
		return nil, ErrNotSignedIn
	}
	if update.Name == "" {
		return nil, validationErr("name", "обязательное поле")
	}
	if update.Email == "" {
		return nil, validationErr("email", "обязательное поле")
	}

	if update.Email != user.Email {
		existing, err := s.userRepo.FindByEmail(update.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrDuplicateEmail
		}
		if err := s.bookmarkRepo.Migrate(user.Email, update.Email); err != nil {
			return nil, err
		}
	}

	updated := *user
	updated.Name = update.Name
	updated.Email = update.Email
	updated.Location = update.Location
	if err := s.userRepo.Update(updated); err != nil {
		return nil, err
	}
	if err := s.credsRepo.SetCurrentUser(updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
