package service

import (
	"sort"
	"strings"
	"time"

	"github.com/PrathameshWCE/Offcentre/internal/model"
	"github.com/PrathameshWCE/Offcentre/internal/repository"
)

// Режимы сортировки списка закладок.
const (
	BookmarkSortRecent = "recent" // по времени создания, новые выше (по умолчанию)
	BookmarkSortName   = "name"
	BookmarkSortRating = "rating"
)

// BookmarkService переключает членство мест в коллекции закладок пользователя.
// Инвариант: не более одной закладки на пару (email, id места).
type BookmarkService struct {
	bookmarkRepo *repository.BookmarkRepository
	now          func() time.Time
}

// NewBookmarkService создает новый сервис закладок.
func NewBookmarkService(bookmarkRepo *repository.BookmarkRepository) *BookmarkService {
	return &BookmarkService{bookmarkRepo: bookmarkRepo, now: time.Now}
}

// Toggle переключает закладку места: существующая удаляется, отсутствующая создается
// как снимок текущей записи каталога. Без вошедшего пользователя возвращает
// ErrNotSignedIn и ничего не меняет. Второй результат - true, если место теперь в закладках.
func (s *BookmarkService) Toggle(user *model.User, place *model.Place) (bool, error) {
	if user == nil {
		return false, ErrNotSignedIn
	}
	bookmarks, err := s.bookmarkRepo.List(user.Email)
	if err != nil {
		return false, err
	}
	for i, b := range bookmarks {
		if b.PlaceID == place.ID {
			bookmarks = append(bookmarks[:i], bookmarks[i+1:]...)
			return false, s.bookmarkRepo.Save(user.Email, bookmarks)
		}
	}
	bookmarks = append(bookmarks, model.NewBookmark(place, s.now()))
	return true, s.bookmarkRepo.Save(user.Email, bookmarks)
}

// IsBookmarked сообщает, есть ли место в закладках пользователя.
func (s *BookmarkService) IsBookmarked(user *model.User, placeID string) (bool, error) {
	if user == nil {
		return false, nil
	}
	bookmarks, err := s.bookmarkRepo.List(user.Email)
	if err != nil {
		return false, err
	}
	for _, b := range bookmarks {
		if b.PlaceID == placeID {
			return true, nil
		}
	}
	return false, nil
}

// ClearAll удаляет все закладки пользователя. Подтверждение - забота вызывающей стороны.
func (s *BookmarkService) ClearAll(user *model.User) error {
	if user == nil {
		return ErrNotSignedIn
	}
	return s.bookmarkRepo.Clear(user.Email)
}

// List возвращает закладки пользователя, отфильтрованные регистронезависимым
// поиском по имени/городу/штату/тегам и упорядоченные по выбранному режиму.
func (s *BookmarkService) List(user *model.User, query, sortMode string) ([]model.Bookmark, error) {
	if user == nil {
		return nil, ErrNotSignedIn
	}
	bookmarks, err := s.bookmarkRepo.List(user.Email)
	if err != nil {
		return nil, err
	}

	if query != "" {
		q := strings.ToLower(query)
		filtered := []model.Bookmark{}
		for _, b := range bookmarks {
			if bookmarkMatches(&b, q) {
				filtered = append(filtered, b)
			}
		}
		bookmarks = filtered
	}

	switch sortMode {
	case BookmarkSortName:
		sort.SliceStable(bookmarks, func(i, j int) bool {
			return bookmarks[i].Name < bookmarks[j].Name
		})
	case BookmarkSortRating:
		sort.SliceStable(bookmarks, func(i, j int) bool {
			return bookmarks[i].Rating > bookmarks[j].Rating
		})
	default: // BookmarkSortRecent
		sort.SliceStable(bookmarks, func(i, j int) bool {
			return bookmarks[i].BookmarkedAt.After(bookmarks[j].BookmarkedAt)
		})
	}
	return bookmarks, nil
}

func bookmarkMatches(b *model.Bookmark, q string) bool {
	if strings.Contains(strings.ToLower(b.Name), q) ||
		strings.Contains(strings.ToLower(b.City), q) ||
		strings.Contains(strings.ToLower(b.State), q) {
		return true
	}
	for _, tag := range b.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
