package repository

import "errors"

// Ключи хранилища. Форматы значений описаны рядом с соответствующими репозиториями.
const (
	KeyUsers            = "users"
	KeySavedCredentials = "savedCredentials"
	KeyCurrentUser      = "currentUser"
	KeyPosts            = "posts"
	KeyFeedback         = "feedback"

	bookmarksKeyPrefix = "bookmarks_"
)

// ErrMalformed сигнализирует, что сохраненный блоб не соответствует ожидаемой форме.
// Непригодные данные отвергаются на границе чтения, а не доверяются дальше по коду.
var ErrMalformed = errors.New("хранилище содержит данные неожиданной формы")

// BookmarksKey возвращает ключ коллекции закладок для указанного email.
func BookmarksKey(email string) string {
	return bookmarksKeyPrefix + email
}
