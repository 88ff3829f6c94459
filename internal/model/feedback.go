package model

import "time"

// FeedbackEntry представляет запись журнала обратной связи со стартовой страницы.
type FeedbackEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	User      string    `json:"user"` // имя вошедшего пользователя либо "Anonymous"
	Timestamp time.Time `json:"timestamp"`
}
