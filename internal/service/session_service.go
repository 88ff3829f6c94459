package service

import (
	"sync"

	"github.com/PrathameshWCE/Offcentre/internal/model"
)

// Границы элементов управления поиском.
const (
	DefaultRadiusKm = 50.0
	MinRadiusKm     = 5.0
	MaxRadiusKm     = 200.0

	DefaultZoom = 1.0
	MinZoom     = 0.6
	MaxZoom     = 1.5
	ZoomStep    = 0.2
)

// Состояния взаимодействия "точка/радиус".
const (
	StateNoPin            = "no_pin"
	StatePinPendingRadius = "pin_pending_radius" // открыт диалог выбора радиуса
	StatePinActive        = "pin_active"
)

// SearchSession - состояние поисковой сессии одного пользователя: закрепленная точка,
// подтвержденный радиус и масштаб карты. Живет только в памяти процесса и
// сбрасывается при уходе со страницы поиска.
type SearchSession struct {
	State         string
	Pin           *model.PinnedLocation
	RadiusKm      float64 // последний подтвержденный радиус
	PendingRadius float64 // предзаполненное значение в открытом диалоге
	Zoom          float64
}

// SessionService управляет поисковыми сессиями по ключу сессии (email либо анонимный ключ).
type SessionService struct {
	mu       sync.Mutex
	sessions map[string]*SearchSession
}

// NewSessionService создает новый сервис поисковых сессий.
func NewSessionService() *SessionService {
	return &SessionService{sessions: make(map[string]*SearchSession)}
}

func newSearchSession() *SearchSession {
	return &SearchSession{
		State:         StateNoPin,
		RadiusKm:      DefaultRadiusKm,
		PendingRadius: DefaultRadiusKm,
		Zoom:          DefaultZoom,
	}
}

// Get возвращает сессию по ключу, создавая новую при первом обращении.
func (s *SessionService) Get(key string) SearchSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.session(key)
}

func (s *SessionService) session(key string) *SearchSession {
	sess, ok := s.sessions[key]
	if !ok {
		sess = newSearchSession()
		s.sessions[key] = sess
	}
	return sess
}

// ClickMap обрабатывает клик по карте: точка заменяется целиком (истории нет),
// открывается диалог радиуса с предзаполненным последним подтвержденным значением.
func (s *SessionService) ClickMap(key string, lat, lng float64) SearchSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(key)
	sess.Pin = &model.PinnedLocation{Latitude: lat, Longitude: lng, Label: "My Location"}
	sess.State = StatePinPendingRadius
	sess.PendingRadius = sess.RadiusKm
	return *sess
}

// ReopenRadius повторно открывает диалог радиуса для уже закрепленной точки.
func (s *SessionService) ReopenRadius(key string) SearchSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(key)
	if sess.Pin != nil {
		sess.State = StatePinPendingRadius
		sess.PendingRadius = sess.RadiusKm
	}
	return *sess
}

// ConfirmRadius подтверждает выбранный радиус. Значение ограничивается диапазоном
// [MinRadiusKm, MaxRadiusKm], который обеспечивает слайдер.
func (s *SessionService) ConfirmRadius(key string, radiusKm float64) SearchSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(key)
	if sess.State != StatePinPendingRadius {
		return *sess
	}
	sess.RadiusKm = clamp(radiusKm, MinRadiusKm, MaxRadiusKm)
	sess.PendingRadius = sess.RadiusKm
	sess.State = StatePinActive
	return *sess
}

// CancelRadius закрывает диалог без изменения радиуса; точка остается закрепленной.
func (s *SessionService) CancelRadius(key string) SearchSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(key)
	if sess.State == StatePinPendingRadius {
		sess.State = StatePinActive
		sess.PendingRadius = sess.RadiusKm
	}
	return *sess
}

// ClearPin снимает точку и возвращает радиус к значению по умолчанию.
func (s *SessionService) ClearPin(key string) SearchSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(key)
	sess.Pin = nil
	sess.State = StateNoPin
	sess.RadiusKm = DefaultRadiusKm
	sess.PendingRadius = DefaultRadiusKm
	return *sess
}

// ZoomIn увеличивает масштаб карты на один шаг.
func (s *SessionService) ZoomIn(key string) SearchSession {
	return s.adjustZoom(key, ZoomStep)
}

// ZoomOut уменьшает масштаб карты на один шаг.
func (s *SessionService) ZoomOut(key string) SearchSession {
	return s.adjustZoom(key, -ZoomStep)
}

func (s *SessionService) adjustZoom(key string, delta float64) SearchSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(key)
	sess.Zoom = clamp(sess.Zoom+delta, MinZoom, MaxZoom)
	return *sess
}

// Reset сбрасывает сессию (уход со страницы поиска).
func (s *SessionService) Reset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, key)
}

// ActivePin возвращает закрепленную точку и радиус, когда географический фильтр активен.
// В состоянии NoPin возвращается (nil, 0): радиус без точки смысла не имеет.
func (s *SessionService) ActivePin(key string) (*model.PinnedLocation, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(key)
	if sess.Pin == nil {
		return nil, 0
	}
	pin := *sess.Pin
	return &pin, sess.RadiusKm
}

// Overlays собирает декларативный набор слоев карты из состояния сессии
// и отфильтрованного списка мест: маркер точки, диск радиуса и маркеры мест.
func (s *SessionService) Overlays(key string, places []model.Place) model.MapOverlays {
	s.mu.Lock()
	sess := s.session(key)
	overlays := model.MapOverlays{Zoom: sess.Zoom, Markers: []model.Marker{}}
	if sess.Pin != nil {
		overlays.Pin = &model.Marker{
			Latitude:  sess.Pin.Latitude,
			Longitude: sess.Pin.Longitude,
			Label:     sess.Pin.Label,
			Icon:      "pin",
		}
		overlays.Disc = &model.RadiusDisc{
			Latitude:  sess.Pin.Latitude,
			Longitude: sess.Pin.Longitude,
			Radius:    sess.RadiusKm * 1000, // км -> метры для картографического слоя
		}
	}
	s.mu.Unlock()

	for _, p := range places {
		overlays.Markers = append(overlays.Markers, model.Marker{
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Label:     p.Name,
			Icon:      "place",
		})
	}
	return overlays
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
