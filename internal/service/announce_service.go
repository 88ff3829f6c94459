package service

import "github.com/PrathameshWCE/Offcentre/internal/repository"

// AnnounceService содержит логику подписки на анонсы новых публикаций (Telegram-бот).
type AnnounceService struct {
	subRepo *repository.SubscriptionRepository
}

// NewAnnounceService создает новый сервис анонсов.
func NewAnnounceService(subRepo *repository.SubscriptionRepository) *AnnounceService {
	return &AnnounceService{subRepo: subRepo}
}

// Subscribe оформляет подписку чата на анонсы.
func (s *AnnounceService) Subscribe(chatID int64) error {
	return s.subRepo.Subscribe(chatID)
}

// Unsubscribe отменяет подписку чата.
func (s *AnnounceService) Unsubscribe(chatID int64) error {
	return s.subRepo.Unsubscribe(chatID)
}

// GetSubscriberIDs возвращает идентификаторы чатов всех подписчиков.
func (s *AnnounceService) GetSubscriberIDs() ([]int64, error) {
	return s.subRepo.GetAllChatIDs()
}
