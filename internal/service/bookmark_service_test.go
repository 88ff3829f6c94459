package service

import (
	"testing"
	"time"

	"github.com/PrathameshWCE/Offcentre/internal/catalog"
	"github.com/PrathameshWCE/Offcentre/internal/model"
	"github.com/PrathameshWCE/Offcentre/internal/repository"
	"github.com/PrathameshWCE/Offcentre/internal/store"
)

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("не удалось открыть тестовое хранилище: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newBookmarkService(t *testing.T) *BookmarkService {
	t.Helper()
	return NewBookmarkService(repository.NewBookmarkRepository(newTestStore(t)))
}

func testUser() *model.User {
	return &model.User{ID: "u1", Name: "X", Email: "x@example.com", Password: "p"}
}

func mustPlace(t *testing.T, id string) *model.Place {
	t.Helper()
	p, err := catalog.New().ByID(id)
	if err != nil {
		t.Fatalf("место %s должно существовать в каталоге: %v", id, err)
	}
	return p
}

func TestToggleRequiresSignIn(t *testing.T) {
	s := newBookmarkService(t)

	_, err := s.Toggle(nil, mustPlace(t, "1"))
	if err != ErrNotSignedIn {
		t.Errorf("без входа ожидалась ErrNotSignedIn, получено %v", err)
	}
}

func TestToggleAddsAndRemoves(t *testing.T) {
	s := newBookmarkService(t)
	user := testUser()

	// When: первое переключение добавляет закладку
	added, err := s.Toggle(user, mustPlace(t, "1"))
	if err != nil {
		t.Fatalf("Toggle вернул ошибку: %v", err)
	}
	if !added {
		t.Error("первое переключение должно добавить закладку")
	}

	// When: повторное переключение удаляет ее
	added, err = s.Toggle(user, mustPlace(t, "1"))
	if err != nil {
		t.Fatalf("Toggle вернул ошибку: %v", err)
	}
	if added {
		t.Error("повторное переключение должно удалить закладку")
	}

	// Then: коллекция вернулась к исходному состоянию
	list, _ := s.List(user, "", "")
	if len(list) != 0 {
		t.Errorf("двойное переключение должно вернуть пустую коллекцию, получено %+v", list)
	}
}

func TestToggleKeepsPairUnique(t *testing.T) {
	s := newBookmarkService(t)
	user := testUser()

	// Любая последовательность переключений не создает дубликатов пары (email, id)
	s.Toggle(user, mustPlace(t, "1"))
	s.Toggle(user, mustPlace(t, "2"))
	s.Toggle(user, mustPlace(t, "1"))
	s.Toggle(user, mustPlace(t, "1"))

	list, _ := s.List(user, "", "")
	seen := map[string]int{}
	for _, b := range list {
		seen[b.PlaceID]++
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("место %s встречается %d раз", id, n)
		}
	}
}

func TestBookmarkScenario(t *testing.T) {
	s := newBookmarkService(t)
	user := testUser()

	// Given: пользователь сохранил места 1 и 2, затем убрал 1
	s.Toggle(user, mustPlace(t, "1"))
	s.Toggle(user, mustPlace(t, "2"))
	s.Toggle(user, mustPlace(t, "1"))

	// Then: остается ровно место 2
	list, err := s.List(user, "", "")
	if err != nil {
		t.Fatalf("List вернул ошибку: %v", err)
	}
	if len(list) != 1 || list[0].PlaceID != "2" {
		t.Errorf("ожидалась только закладка 2, получено %+v", list)
	}
}

func TestClearAll(t *testing.T) {
	s := newBookmarkService(t)
	user := testUser()

	s.Toggle(user, mustPlace(t, "1"))
	s.Toggle(user, mustPlace(t, "2"))

	if err := s.ClearAll(user); err != nil {
		t.Fatalf("ClearAll вернул ошибку: %v", err)
	}
	list, _ := s.List(user, "", "")
	if len(list) != 0 {
		t.Errorf("после очистки коллекция должна быть пустой, получено %+v", list)
	}
}

func TestBookmarkSnapshotIsDenormalized(t *testing.T) {
	s := newBookmarkService(t)
	user := testUser()

	place := mustPlace(t, "1")
	s.Toggle(user, place)

	// Изменение исходной записи не затрагивает сохраненный снимок
	place.Name = "Renamed"
	place.Tags[0] = "changed"

	list, _ := s.List(user, "", "")
	if list[0].Name != "Hidden Waterfall Trail" {
		t.Errorf("снимок не должен меняться вслед за источником, получено %s", list[0].Name)
	}
	if list[0].Tags[0] != "adventure" {
		t.Errorf("теги снимка не должны меняться вслед за источником, получено %v", list[0].Tags)
	}
}

func TestListSortModes(t *testing.T) {
	s := newBookmarkService(t)
	user := testUser()

	// Управляем временем, чтобы порядок recent был детерминированным
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	step := 0
	s.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Hour)
	}

	s.Toggle(user, mustPlace(t, "1")) // 4.8
	s.Toggle(user, mustPlace(t, "2")) // 4.6
	s.Toggle(user, mustPlace(t, "3")) // 4.9

	// recent: последняя добавленная - первая
	list, _ := s.List(user, "", BookmarkSortRecent)
	if list[0].PlaceID != "3" || list[2].PlaceID != "1" {
		t.Errorf("recent должен ставить новые выше, получено %+v", list)
	}

	// name: лексикографически
	list, _ = s.List(user, "", BookmarkSortName)
	if list[0].Name != "Cozy Corner Café" {
		t.Errorf("name должен сортировать по имени, получено %s", list[0].Name)
	}

	// rating: по убыванию
	list, _ = s.List(user, "", BookmarkSortRating)
	if list[0].PlaceID != "3" || list[2].PlaceID != "2" {
		t.Errorf("rating должен сортировать по убыванию, получено %+v", list)
	}
}

func TestListQueryMatchesTags(t *testing.T) {
	s := newBookmarkService(t)
	user := testUser()

	s.Toggle(user, mustPlace(t, "1")) // теги adventure/nature/trek
	s.Toggle(user, mustPlace(t, "2")) // теги chill/café/food

	list, _ := s.List(user, "TREK", "")
	if len(list) != 1 || list[0].PlaceID != "1" {
		t.Errorf("поиск по тегу должен быть регистронезависимым, получено %+v", list)
	}

	list, _ = s.List(user, "goa", "")
	if len(list) != 0 {
		t.Errorf("непересекающийся запрос должен дать пустой список, получено %+v", list)
	}
}
