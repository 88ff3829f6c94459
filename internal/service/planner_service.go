package service

import (
	"sync"

	"github.com/PrathameshWCE/Offcentre/internal/catalog"
	"github.com/PrathameshWCE/Offcentre/internal/geo"
	"github.com/PrathameshWCE/Offcentre/internal/model"
)

// Границы формы планировщика выходных.
const (
	PlannerMinDays = 1
	PlannerMaxDays = 7
)

// PlannerQuery - параметры подбора мест на выходные.
type PlannerQuery struct {
	Days       int
	DistanceKm float64
	Tags       []string
	Origin     *model.PinnedLocation // точка отсчета; nil - центр карты по умолчанию
}

// Suggestion - предложенное место с расстоянием от точки отсчета.
type Suggestion struct {
	Place      model.Place `json:"place"`
	DistanceKm float64     `json:"distanceKm"`
}

// PlannerService подбирает места для плана на выходные и хранит набор
// отмеченных мест каждого пользователя (только в памяти процесса).
type PlannerService struct {
	catalog *catalog.Catalog

	mu      sync.Mutex
	planned map[string]map[string]bool // email -> набор id мест
}

// NewPlannerService создает новый сервис планировщика.
func NewPlannerService(c *catalog.Catalog) *PlannerService {
	return &PlannerService{catalog: c, planned: make(map[string]map[string]bool)}
}

// Suggest возвращает места, чей набор тегов пересекается с выбранными тегами,
// в пределах указанного расстояния от точки отсчета. Результат упорядочен
// жадной цепочкой "ближайший следующий" - удобный порядок объезда.
func (s *PlannerService) Suggest(q PlannerQuery) ([]Suggestion, error) {
	if q.Days < PlannerMinDays || q.Days > PlannerMaxDays {
		return nil, validationErr("days", "от 1 до 7 дней")
	}
	if len(q.Tags) < MinTags {
		return nil, validationErr("tags", "выберите не менее двух тегов")
	}
	if q.DistanceKm <= 0 {
		return nil, validationErr("distance", "расстояние должно быть положительным")
	}

	originLat, originLng := catalog.DefaultCenterLat, catalog.DefaultCenterLng
	if q.Origin != nil {
		originLat, originLng = q.Origin.Latitude, q.Origin.Longitude
	}

	wanted := map[string]bool{}
	for _, t := range q.Tags {
		wanted[t] = true
	}

	candidates := []Suggestion{}
	for _, p := range s.catalog.All() {
		if !hasAnyTag(&p, wanted) {
			continue
		}
		dist := geo.DistanceKm(originLat, originLng, p.Latitude, p.Longitude)
		if dist > q.DistanceKm {
			continue
		}
		candidates = append(candidates, Suggestion{Place: p, DistanceKm: dist})
	}
	return orderByProximity(candidates), nil
}

func hasAnyTag(p *model.Place, wanted map[string]bool) bool {
	for _, t := range p.Tags {
		if wanted[t] {
			return true
		}
	}
	return false
}

// orderByProximity строит порядок объезда: начинает с ближайшего к точке отсчета
// места и каждый раз выбирает ближайшее к предыдущему (наивный алгоритм).
func orderByProximity(candidates []Suggestion) []Suggestion {
	if len(candidates) < 2 {
		return candidates
	}
	ordered := []Suggestion{}
	used := make([]bool, len(candidates))

	// Ближайшее к точке отсчета - начало маршрута.
	first := 0
	for i := range candidates {
		if candidates[i].DistanceKm < candidates[first].DistanceKm {
			first = i
		}
	}
	ordered = append(ordered, candidates[first])
	used[first] = true

	for len(ordered) < len(candidates) {
		last := ordered[len(ordered)-1].Place
		minIndex := -1
		minDist := 0.0
		for i, c := range candidates {
			if used[i] {
				continue
			}
			dist := geo.DistanceKm(last.Latitude, last.Longitude, c.Place.Latitude, c.Place.Longitude)
			if minIndex < 0 || dist < minDist {
				minIndex = i
				minDist = dist
			}
		}
		ordered = append(ordered, candidates[minIndex])
		used[minIndex] = true
	}
	return ordered
}

// TogglePlanned переключает место в плане пользователя. Возвращает true, если
// место теперь в плане.
func (s *PlannerService) TogglePlanned(user *model.User, placeID string) (bool, error) {
	if user == nil {
		return false, ErrNotSignedIn
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.planned[user.Email]
	if !ok {
		set = make(map[string]bool)
		s.planned[user.Email] = set
	}
	if set[placeID] {
		delete(set, placeID)
		return false, nil
	}
	set[placeID] = true
	return true, nil
}

// Planned возвращает id мест, отмеченных пользователем в плане.
func (s *PlannerService) Planned(user *model.User) ([]string, error) {
	if user == nil {
		return nil, ErrNotSignedIn
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := []string{}
	for id := range s.planned[user.Email] {
		ids = append(ids, id)
	}
	return ids, nil
}
