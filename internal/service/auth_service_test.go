package service

import (
	"errors"
	"testing"

	"github.com/PrathameshWCE/Offcentre/internal/repository"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	s := newTestStore(t)
	return NewAuthService(repository.NewUserRepository(s), repository.NewCredentialsRepository(s))
}

func TestRegisterCreatesAndSignsIn(t *testing.T) {
	a := newAuthService(t)

	user, err := a.Register("Asha", "asha@example.com", "secret", "Pune")
	if err != nil {
		t.Fatalf("Register вернул ошибку: %v", err)
	}
	if user.ID == "" {
		t.Error("пользователь должен получить идентификатор")
	}
	if user.Badge != "Localite" {
		t.Errorf("новый пользователь получает бейдж Localite, получено %s", user.Badge)
	}

	// Регистрация сразу выполняет вход
	current, err := a.CurrentUser()
	if err != nil {
		t.Fatalf("CurrentUser вернул ошибку: %v", err)
	}
	if current == nil || current.Email != "asha@example.com" {
		t.Errorf("после регистрации пользователь должен быть вошедшим, получено %+v", current)
	}
}

func TestRegisterAutoSavesCredentials(t *testing.T) {
	a := newAuthService(t)

	a.Register("Asha", "asha@example.com", "secret", "Pune")

	// Регистрация автоматически включает "запомнить меня"
	saved, err := a.SavedCredentials()
	if err != nil {
		t.Fatalf("SavedCredentials вернул ошибку: %v", err)
	}
	if saved == nil || saved.Email != "asha@example.com" || !saved.Remember {
		t.Errorf("учетные данные должны сохраняться при регистрации, получено %+v", saved)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	a := newAuthService(t)

	a.Register("Asha", "asha@example.com", "secret", "Pune")

	// When: повторная регистрация с тем же email
	_, err := a.Register("Другой", "asha@example.com", "other", "Mumbai")

	// Then: отказ без изменения существующей записи
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("ожидалась ErrDuplicateEmail, получено %v", err)
	}
	user, loginErr := a.Login("asha@example.com", "secret", false)
	if loginErr != nil {
		t.Fatalf("исходный пароль должен остаться действительным: %v", loginErr)
	}
	if user.Name != "Asha" {
		t.Errorf("исходная запись не должна меняться, получено %s", user.Name)
	}
}

func TestRegisterRequiresAllFields(t *testing.T) {
	a := newAuthService(t)

	var vErr *ValidationError
	if _, err := a.Register("", "a@b.c", "p", "Pune"); !errors.As(err, &vErr) {
		t.Errorf("пустое имя должно отклоняться, получено %v", err)
	}
	if _, err := a.Register("A", "", "p", "Pune"); !errors.As(err, &vErr) {
		t.Errorf("пустой email должен отклоняться, получено %v", err)
	}
	if _, err := a.Register("A", "a@b.c", "", "Pune"); !errors.As(err, &vErr) {
		t.Errorf("пустой пароль должен отклоняться, получено %v", err)
	}
	if _, err := a.Register("A", "a@b.c", "p", ""); !errors.As(err, &vErr) {
		t.Errorf("пустая локация должна отклоняться, получено %v", err)
	}
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	a := newAuthService(t)

	a.Register("Asha", "asha@example.com", "secret", "Pune")
	a.Logout()

	if _, err := a.Login("asha@example.com", "wrong", false); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("неверный пароль должен давать ErrInvalidCredentials, получено %v", err)
	}
	if _, err := a.Login("nobody@example.com", "secret", false); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("незнакомый email должен давать ErrInvalidCredentials, получено %v", err)
	}
}

func TestLoginWithoutRememberClearsCredentials(t *testing.T) {
	a := newAuthService(t)

	// Given: регистрация сохранила учетные данные автоматически
	a.Register("Asha", "asha@example.com", "secret", "Pune")
	a.Logout()

	// When: вход без "запомнить меня"
	if _, err := a.Login("asha@example.com", "secret", false); err != nil {
		t.Fatalf("Login вернул ошибку: %v", err)
	}

	// Then: сохраненные данные стерты
	saved, _ := a.SavedCredentials()
	if saved != nil {
		t.Errorf("вход без remember должен стирать данные, получено %+v", saved)
	}
}

func TestLogoutKeepsRememberedCredentials(t *testing.T) {
	a := newAuthService(t)

	a.Register("Asha", "asha@example.com", "secret", "Pune")
	a.Logout()
	a.Login("asha@example.com", "secret", true)

	// When: выход при активном "запомнить меня"
	if err := a.Logout(); err != nil {
		t.Fatalf("Logout вернул ошибку: %v", err)
	}

	// Then: сессия завершена, но данные для автозаполнения остались
	current, _ := a.CurrentUser()
	if current != nil {
		t.Errorf("после выхода пользователь должен быть nil, получено %+v", current)
	}
	saved, _ := a.SavedCredentials()
	if saved == nil || saved.Password != "secret" {
		t.Errorf("данные при remember должны пережить выход, получено %+v", saved)
	}
}

func TestLogoutClearsCredentialsWithoutRemember(t *testing.T) {
	a := newAuthService(t)

	a.Register("Asha", "asha@example.com", "secret", "Pune")
	a.Logout()
	a.Login("asha@example.com", "secret", false)

	if err := a.Logout(); err != nil {
		t.Fatalf("Logout вернул ошибку: %v", err)
	}

	saved, _ := a.SavedCredentials()
	if saved != nil {
		t.Errorf("без remember выход стирает данные, получено %+v", saved)
	}
}

func TestCurrentUserSurvivesRestart(t *testing.T) {
	s := newTestStore(t)
	a := NewAuthService(repository.NewUserRepository(s), repository.NewCredentialsRepository(s))

	a.Register("Asha", "asha@example.com", "secret", "Pune")

	// Новый сервис над тем же хранилищем видит ту же сессию
	a2 := NewAuthService(repository.NewUserRepository(s), repository.NewCredentialsRepository(s))
	current, err := a2.CurrentUser()
	if err != nil {
		t.Fatalf("CurrentUser вернул ошибку: %v", err)
	}
	if current == nil || current.Email != "asha@example.com" {
		t.Errorf("сессия должна восстанавливаться из хранилища, получено %+v", current)
	}
}
