package model

// User представляет зарегистрированного пользователя.
// Email служит ключом раздела хранилища (закладки хранятся под ключом bookmarks_<email>).
// Пароль хранится и сравнивается открытым текстом: хеширование сознательно вне рамок проекта.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Location string `json:"location"`
	Badge    string `json:"badge"` // метка-бейдж профиля, по умолчанию "Localite"
}

// SavedCredentials представляет сохраненные учетные данные для функции "запомнить меня".
type SavedCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}
