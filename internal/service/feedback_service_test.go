package service

import (
	"errors"
	"testing"
	"time"

	"github.com/PrathameshWCE/Offcentre/internal/repository"
)

func newFeedbackFixture(t *testing.T) (*FeedbackService, *repository.FeedbackRepository) {
	t.Helper()
	repo := repository.NewFeedbackRepository(newTestStore(t))
	return NewFeedbackService(repo), repo
}

func TestSubmitStoresEntry(t *testing.T) {
	svc, repo := newFeedbackFixture(t)
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return at }

	err := svc.Submit(testUser(), "Asha", "asha@example.com", "Отличная идея с картой!")
	if err != nil {
		t.Fatalf("Submit вернул ошибку: %v", err)
	}

	entries, err := repo.List()
	if err != nil {
		t.Fatalf("List вернул ошибку: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("ожидалась одна запись, получено %d", len(entries))
	}
	if entries[0].User != "X" {
		t.Errorf("запись должна помечаться именем пользователя, получено %s", entries[0].User)
	}
	if !entries[0].Timestamp.Equal(at) {
		t.Errorf("ожидалось время %v, получено %v", at, entries[0].Timestamp)
	}
}

func TestSubmitAnonymous(t *testing.T) {
	svc, repo := newFeedbackFixture(t)

	// Отзыв без вошедшего пользователя допустим
	if err := svc.Submit(nil, "Гость", "guest@example.com", "Нашел пару новых мест."); err != nil {
		t.Fatalf("Submit вернул ошибку: %v", err)
	}

	entries, _ := repo.List()
	if entries[0].User != "Anonymous" {
		t.Errorf("анонимный отзыв помечается Anonymous, получено %s", entries[0].User)
	}
}

func TestSubmitRequiresAllFields(t *testing.T) {
	svc, repo := newFeedbackFixture(t)

	var vErr *ValidationError
	if err := svc.Submit(nil, "", "a@b.c", "текст"); !errors.As(err, &vErr) {
		t.Errorf("пустое имя должно отклоняться, получено %v", err)
	}
	if err := svc.Submit(nil, "A", "", "текст"); !errors.As(err, &vErr) {
		t.Errorf("пустой email должен отклоняться, получено %v", err)
	}
	if err := svc.Submit(nil, "A", "a@b.c", ""); !errors.As(err, &vErr) {
		t.Errorf("пустое сообщение должно отклоняться, получено %v", err)
	}

	entries, _ := repo.List()
	if len(entries) != 0 {
		t.Errorf("отклоненные отзывы не должны сохраняться, получено %+v", entries)
	}
}
