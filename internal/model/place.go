package model

import "strings"

// Place представляет место каталога: скрытую локацию, которую приложение
// предлагает пользователям вокруг закрепленной точки.
type Place struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Latitude    float64  `json:"lat"`
	Longitude   float64  `json:"lng"`
	Tags        []string `json:"tags"`
	Rating      float64  `json:"rating"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
}

// HasTag сообщает, помечено ли место данным тегом (без учета регистра).
func (p *Place) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
