package catalog

import (
	"errors"

	"github.com/PrathameshWCE/Offcentre/internal/model"
)

// ErrNotFound возвращается при запросе места с неизвестным идентификатором.
// Раньше вместо ошибки подставлялась первая запись каталога - это маскировало битые ссылки.
var ErrNotFound = errors.New("место не найдено")

// Центр карты по умолчанию (географический центр Индии).
const (
	DefaultCenterLat = 22.5937
	DefaultCenterLng = 78.9629
)

// PlaceReviews - отзывы о месте, разделенные на блоги и советы.
type PlaceReviews struct {
	Blogs []model.Review
	Tips  []model.Review
}

// Catalog - неизменяемый каталог мест. Данные поставляются как конфигурация и не вычисляются.
type Catalog struct {
	places  []model.Place
	reviews map[string]PlaceReviews
}

// New создает каталог со встроенным набором мест.
func New() *Catalog {
	return &Catalog{places: places, reviews: reviews}
}

// All возвращает все места в каталожном порядке. Возвращается копия: каталог неизменяем.
func (c *Catalog) All() []model.Place {
	out := make([]model.Place, len(c.places))
	copy(out, c.places)
	return out
}

// ByID возвращает место по идентификатору либо ErrNotFound.
func (c *Catalog) ByID(id string) (*model.Place, error) {
	for i := range c.places {
		if c.places[i].ID == id {
			p := c.places[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// Reviews возвращает отзывы о месте (пустые списки, если отзывов нет).
func (c *Catalog) Reviews(id string) PlaceReviews {
	return c.reviews[id]
}

// Tags возвращает все теги, встречающиеся в каталоге, без повторов, в порядке появления.
func (c *Catalog) Tags() []string {
	seen := map[string]bool{}
	tags := []string{}
	for _, p := range c.places {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags
}
