package service

import (
	"sort"

	"github.com/PrathameshWCE/Offcentre/internal/catalog"
	"github.com/PrathameshWCE/Offcentre/internal/model"
)

// Режимы сортировки отзывов на странице места.
const (
	ReviewSortUpvotes = "upvotes" // по умолчанию
	ReviewSortRecent  = "recent"
)

// PlaceDetails - страница места: запись каталога и отзывы в выбранном порядке.
type PlaceDetails struct {
	Place model.Place    `json:"place"`
	Blogs []model.Review `json:"blogs"`
	Tips  []model.Review `json:"tips"`
}

// PlaceService отдает подробные данные о местах каталога.
type PlaceService struct {
	catalog *catalog.Catalog
}

// NewPlaceService создает новый сервис мест.
func NewPlaceService(c *catalog.Catalog) *PlaceService {
	return &PlaceService{catalog: c}
}

// GetByID возвращает место по идентификатору либо catalog.ErrNotFound.
func (s *PlaceService) GetByID(id string) (*model.Place, error) {
	return s.catalog.ByID(id)
}

// Details возвращает место и его отзывы, отсортированные по выбранному режиму.
func (s *PlaceService) Details(id, reviewSort string) (*PlaceDetails, error) {
	place, err := s.catalog.ByID(id)
	if err != nil {
		return nil, err
	}
	reviews := s.catalog.Reviews(id)
	details := &PlaceDetails{
		Place: *place,
		Blogs: sortReviews(reviews.Blogs, reviewSort),
		Tips:  sortReviews(reviews.Tips, reviewSort),
	}
	return details, nil
}

func sortReviews(reviews []model.Review, mode string) []model.Review {
	out := make([]model.Review, len(reviews))
	copy(out, reviews)
	switch mode {
	case ReviewSortRecent:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PostedAt.After(out[j].PostedAt)
		})
	default: // ReviewSortUpvotes
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Upvotes > out[j].Upvotes
		})
	}
	return out
}
