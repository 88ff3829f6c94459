package service

import (
	"github.com/PrathameshWCE/Offcentre/internal/model"
	"github.com/PrathameshWCE/Offcentre/internal/repository"
	"github.com/google/uuid"
)

// AuthService отвечает за регистрацию, вход и выход пользователей.
// Учетные данные сравниваются как непрозрачные строки; хеширование вне рамок проекта.
type AuthService struct {
	userRepo  *repository.UserRepository
	credsRepo *repository.CredentialsRepository
}

// NewAuthService создает новый сервис аутентификации.
func NewAuthService(userRepo *repository.UserRepository, credsRepo *repository.CredentialsRepository) *AuthService {
	return &AuthService{userRepo: userRepo, credsRepo: credsRepo}
}

// Register создает нового пользователя и сразу выполняет вход.
// Возвращает ErrDuplicateEmail, если email уже занят; в этом случае ничего не создается.
func (s *AuthService) Register(name, email, password, location string) (*model.User, error) {
	if name == "" {
		return nil, validationErr("name", "обязательное поле")
	}
	if email == "" {
		return nil, validationErr("email", "обязательное поле")
	}
	if password == "" {
		return nil, validationErr("password", "обязательное поле")
	}
	if location == "" {
		return nil, validationErr("location", "обязательное поле")
	}

	existing, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	user := model.User{
		ID:       uuid.New().String(),
		Name:     name,
		Email:    email,
		Password: password,
		Location: location,
		Badge:    "Localite",
	}
	if err := s.userRepo.Add(user); err != nil {
		return nil, err
	}

	// При регистрации учетные данные сохраняются автоматически для последующего автовхода.
	if err := s.credsRepo.SaveCredentials(model.SavedCredentials{
		Email:    email,
		Password: password,
		Remember: true,
	}); err != nil {
		return nil, err
	}
	if err := s.credsRepo.SetCurrentUser(user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login проверяет пару email+пароль и выполняет вход.
// При remember учетные данные сохраняются для предзаполнения формы, иначе - стираются.
func (s *AuthService) Login(email, password string, remember bool) (*model.User, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}
	var user *model.User
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			user = &users[i]
			break
		}
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if remember {
		if err := s.credsRepo.SaveCredentials(model.SavedCredentials{
			Email:    email,
			Password: password,
			Remember: true,
		}); err != nil {
			return nil, err
		}
	} else {
		if err := s.credsRepo.ClearCredentials(); err != nil {
			return nil, err
		}
	}

	if err := s.credsRepo.SetCurrentUser(*user); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout завершает сессию. Сохраненные учетные данные стираются только если
// "запомнить меня" не было активно на момент выхода.
func (s *AuthService) Logout() error {
	saved, err := s.credsRepo.GetSaved()
	if err != nil {
		return err
	}
	if err := s.credsRepo.ClearCurrentUser(); err != nil {
		return err
	}
	if saved == nil || !saved.Remember {
		return s.credsRepo.ClearCredentials()
	}
	return nil
}

// SavedCredentials возвращает учетные данные для предзаполнения формы входа
// либо nil, если "запомнить меня" не активно.
func (s *AuthService) SavedCredentials() (*model.SavedCredentials, error) {
	saved, err := s.credsRepo.GetSaved()
	if err != nil {
		return nil, err
	}
	if saved == nil || !saved.Remember {
		return nil, nil
	}
	return saved, nil
}

// CurrentUser возвращает вошедшего пользователя (восстановление сессии) либо nil.
func (s *AuthService) CurrentUser() (*model.User, error) {
	return s.credsRepo.GetCurrentUser()
}
