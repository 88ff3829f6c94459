package service

import "errors"

// Ошибки аутентификации и доступа. Сообщение показывается пользователю как есть,
// состояние при этих ошибках не меняется.
var (
	ErrDuplicateEmail     = errors.New("этот email уже зарегистрирован")
	ErrInvalidCredentials = errors.New("неверный email или пароль")
	ErrNotSignedIn        = errors.New("требуется вход в систему")
)

// ValidationError - ошибка проверки пользовательского ввода.
// Ввод с такой ошибкой не сохраняется.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

func validationErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
