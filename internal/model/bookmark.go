package model

import "time"

// Bookmark представляет сохраненный пользователем снимок места.
// Это денормализованная копия полей Place: последующие изменения каталога
// на существующие закладки не влияют. Идентичность закладки - пара (email, PlaceID):
// в коллекции пользователя не бывает двух закладок одного места.
type Bookmark struct {
	PlaceID      string    `json:"id"`
	Name         string    `json:"name"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Tags         []string  `json:"tags"`
	Rating       float64   `json:"rating"`
	Image        string    `json:"image"`
	Description  string    `json:"description"`
	BookmarkedAt time.Time `json:"bookmarkedAt"`
}

// NewBookmark создает закладку-снимок из записи каталога.
func NewBookmark(p *Place, at time.Time) Bookmark {
	tags := make([]string, len(p.Tags))
	copy(tags, p.Tags)
	return Bookmark{
		PlaceID:      p.ID,
		Name:         p.Name,
		City:         p.City,
		State:        p.State,
		Tags:         tags,
		Rating:       p.Rating,
		Image:        p.Image,
		Description:  p.Description,
		BookmarkedAt: at,
	}
}
