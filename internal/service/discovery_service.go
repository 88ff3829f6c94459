package service

import (
	"sort"
	"strings"

	"github.com/PrathameshWCE/Offcentre/internal/catalog"
	"github.com/PrathameshWCE/Offcentre/internal/geo"
	"github.com/PrathameshWCE/Offcentre/internal/model"
)

// Режимы сортировки результатов поиска.
const (
	SortCatalog = ""       // каталожный порядок
	SortRating  = "rating" // по рейтингу, по убыванию
	SortName    = "name"   // по имени, лексикографически
)

// SearchFilter описывает три независимые оси фильтрации плюс режим сортировки.
// Пустое текстовое поле и пустой тег означают "совпадает все".
type SearchFilter struct {
	State    string
	City     string
	Tag      string // единственный выбранный тег; новый выбор заменяет прежний
	Pin      *model.PinnedLocation
	RadiusKm float64 // имеет смысл только вместе с Pin
	Sort     string
}

// DiscoveryService - движок фильтрации каталога: чистая проекция без побочных эффектов,
// пересчитываемая при каждом изменении фильтров.
type DiscoveryService struct {
	catalog *catalog.Catalog
}

// NewDiscoveryService создает новый сервис поиска мест.
func NewDiscoveryService(c *catalog.Catalog) *DiscoveryService {
	return &DiscoveryService{catalog: c}
}

// Tags возвращает все теги каталога для элементов выбора категории.
func (s *DiscoveryService) Tags() []string {
	return s.catalog.Tags()
}

// Search возвращает места, удовлетворяющие всем активным фильтрам.
// Текстовые фильтры - регистронезависимые подстроки; географический фильтр
// отбирает места в пределах RadiusKm от закрепленной точки.
func (s *DiscoveryService) Search(f SearchFilter) []model.Place {
	result := []model.Place{}
	for _, p := range s.catalog.All() {
		if !matchesSubstring(p.State, f.State) {
			continue
		}
		if !matchesSubstring(p.City, f.City) {
			continue
		}
		if f.Tag != "" && !p.HasTag(f.Tag) {
			continue
		}
		if f.Pin != nil {
			dist := geo.DistanceKm(f.Pin.Latitude, f.Pin.Longitude, p.Latitude, p.Longitude)
			if dist > f.RadiusKm {
				continue
			}
		}
		result = append(result, p)
	}
	sortPlaces(result, f.Sort)
	return result
}

func matchesSubstring(value, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(filter))
}

// sortPlaces переупорядочивает результат. Сортировка стабильная:
// при равенстве ключа сохраняется каталожный порядок.
func sortPlaces(places []model.Place, mode string) {
	switch mode {
	case SortRating:
		sort.SliceStable(places, func(i, j int) bool {
			return places[i].Rating > places[j].Rating
		})
	case SortName:
		sort.SliceStable(places, func(i, j int) bool {
			return places[i].Name < places[j].Name
		})
	}
}
