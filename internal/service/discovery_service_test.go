package service

import (
	"testing"

	"github.com/PrathameshWCE/Offcentre/internal/catalog"
	"github.com/PrathameshWCE/Offcentre/internal/model"
)

func newDiscovery() *DiscoveryService {
	return NewDiscoveryService(catalog.New())
}

func placeIDs(places []model.Place) []string {
	ids := make([]string, len(places))
	for i, p := range places {
		ids[i] = p.ID
	}
	return ids
}

func TestSearchNoFiltersMatchesAll(t *testing.T) {
	d := newDiscovery()

	places := d.Search(SearchFilter{})

	if len(places) != len(catalog.New().All()) {
		t.Errorf("пустые фильтры должны совпадать со всем каталогом, получено %d мест", len(places))
	}
	// Каталожный порядок без сортировки
	if places[0].ID != "1" || places[1].ID != "2" {
		t.Errorf("ожидался каталожный порядок, получено %v", placeIDs(places))
	}
}

func TestSearchByCategoryTag(t *testing.T) {
	d := newDiscovery()

	// Given: каталог с A(Pune, adventure) и B(Mumbai, café)
	// When: фильтр по тегу adventure
	places := d.Search(SearchFilter{Tag: "adventure"})

	// Then: ровно места с этим тегом
	if len(places) != 1 || places[0].ID != "1" {
		t.Errorf("ожидалось место 1, получено %v", placeIDs(places))
	}
}

func TestSearchByCitySubstring(t *testing.T) {
	d := newDiscovery()

	places := d.Search(SearchFilter{City: "mumbai"})

	// Регистронезависимая подстрока: оба места Мумбаи
	if len(places) != 2 || places[0].ID != "2" || places[1].ID != "3" {
		t.Errorf("ожидались места 2 и 3, получено %v", placeIDs(places))
	}
}

func TestSearchByStateSubstring(t *testing.T) {
	d := newDiscovery()

	places := d.Search(SearchFilter{State: "goa"})

	if len(places) != 1 || places[0].ID != "4" {
		t.Errorf("ожидалось место 4, получено %v", placeIDs(places))
	}
}

func TestSearchCombinedFilters(t *testing.T) {
	d := newDiscovery()

	// Фильтры независимы и применяются совместно
	places := d.Search(SearchFilter{State: "maharashtra", Tag: "chill"})

	if len(places) != 1 || places[0].ID != "2" {
		t.Errorf("ожидалось место 2, получено %v", placeIDs(places))
	}
}

func TestSearchRadiusGatesResults(t *testing.T) {
	d := newDiscovery()

	// Given: точка в Мумбаи и радиус 30 км
	pin := &model.PinnedLocation{Latitude: 19.0760, Longitude: 72.8777}

	// When: поиск с активным географическим фильтром
	places := d.Search(SearchFilter{Pin: pin, RadiusKm: 30})

	// Then: только места в пределах радиуса (кафе и Gateway of India)
	ids := placeIDs(places)
	if len(ids) != 2 || ids[0] != "2" || ids[1] != "3" {
		t.Errorf("ожидались места 2 и 3 в радиусе 30 км, получено %v", ids)
	}

	// Широкий радиус покрывает всю Махараштру, но не Гоа (~440 км)
	places = d.Search(SearchFilter{Pin: pin, RadiusKm: 200})
	if len(places) != 7 {
		t.Errorf("радиус 200 км должен покрывать все места кроме Гоа, получено %v", placeIDs(places))
	}
	for _, p := range places {
		if p.ID == "4" {
			t.Errorf("место 4 (Гоа) не должно попадать в радиус 200 км")
		}
	}
}

func TestSearchSortByRatingStable(t *testing.T) {
	d := newDiscovery()

	places := d.Search(SearchFilter{Sort: SortRating})

	// Рейтинг не возрастает
	for i := 1; i < len(places); i++ {
		if places[i].Rating > places[i-1].Rating {
			t.Fatalf("рейтинг должен не возрастать: %v", placeIDs(places))
		}
	}
	// При равном рейтинге сохраняется каталожный порядок:
	// места 2 и 5 имеют рейтинг 4.6, место 2 идет раньше
	pos := map[string]int{}
	for i, p := range places {
		pos[p.ID] = i
	}
	if pos["2"] > pos["5"] {
		t.Errorf("сортировка должна быть стабильной, получено %v", placeIDs(places))
	}
}

func TestSearchSortByName(t *testing.T) {
	d := newDiscovery()

	places := d.Search(SearchFilter{Sort: SortName})

	for i := 1; i < len(places); i++ {
		if places[i].Name < places[i-1].Name {
			t.Fatalf("имена должны идти по возрастанию: %v", placeIDs(places))
		}
	}
}

func TestSearchNoMatches(t *testing.T) {
	d := newDiscovery()

	places := d.Search(SearchFilter{City: "Delhi"})

	if len(places) != 0 {
		t.Errorf("ожидался пустой результат, получено %v", placeIDs(places))
	}
}
