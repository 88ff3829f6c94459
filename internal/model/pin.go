package model

// PinnedLocation представляет закрепленную пользователем точку отсчета для поиска по радиусу.
// В рамках поисковой сессии существует не более одной точки; повторный клик по карте
// заменяет ее целиком.
type PinnedLocation struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Label     string  `json:"label"`
}

// Marker представляет маркер места для отрисовки на карте.
type Marker struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Label     string  `json:"label"`
	Icon      string  `json:"icon"` // "pin" для точки пользователя, "place" для мест каталога
}

// RadiusDisc представляет диск радиуса поиска вокруг закрепленной точки.
// Radius задается в метрах - так его ожидает картографический слой.
type RadiusDisc struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Radius    float64 `json:"radius"`
}

// MapOverlays - декларативный набор слоев, который поисковая сессия отдает карте на отрисовку.
type MapOverlays struct {
	Pin     *Marker     `json:"pin,omitempty"`
	Disc    *RadiusDisc `json:"disc,omitempty"`
	Markers []Marker    `json:"markers"`
	Zoom    float64     `json:"zoom"`
}
