package service

import (
	"time"

	"github.com/PrathameshWCE/Offcentre/internal/model"
	"github.com/PrathameshWCE/Offcentre/internal/repository"
	"github.com/google/uuid"
)

// FeedbackService принимает обратную связь со стартовой страницы.
type FeedbackService struct {
	feedbackRepo *repository.FeedbackRepository
	now          func() time.Time
}

// NewFeedbackService создает новый сервис обратной связи.
func NewFeedbackService(feedbackRepo *repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{feedbackRepo: feedbackRepo, now: time.Now}
}

// Submit проверяет и записывает отзыв. Пользователь не обязателен:
// анонимные отзывы помечаются как "Anonymous".
func (s *FeedbackService) Submit(user *model.User, name, email, message string) error {
	if name == "" {
		return validationErr("name", "обязательное поле")
	}
	if email == "" {
		return validationErr("email", "обязательное поле")
	}
	if message == "" {
		return validationErr("message", "обязательное поле")
	}
	userLabel := "Anonymous"
	if user != nil {
		userLabel = user.Name
	}
	return s.feedbackRepo.Append(model.FeedbackEntry{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Message:   message,
		User:      userLabel,
		Timestamp: s.now(),
	})
}
