package handler

import (
	"net/http"

	"github.com/PrathameshWCE/Offcentre/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchPlaces обработчик для GET /api/places - фильтрованный список мест плюс слои карты.
// Оси фильтрации: state, city, tag (строки запроса) и активная точка с радиусом из сессии.
func (h *Handler) SearchPlaces(c *gin.Context) {
	key := h.sessionKey(c)
	pin, radius := h.SessionService.ActivePin(key)

	filter := service.SearchFilter{
		State:    c.Query("state"),
		City:     c.Query("city"),
		Tag:      c.Query("tag"),
		Pin:      pin,
		RadiusKm: radius,
		Sort:     c.Query("sort"),
	}
	places := h.DiscoveryService.Search(filter)
	overlays := h.SessionService.Overlays(key, places)
	sess := h.SessionService.Get(key)

	c.JSON(http.StatusOK, gin.H{
		"places":   places,
		"overlays": overlays,
		"state":    sess.State,
		"radius":   sess.RadiusKm,
	})
}

// PlaceDetails обработчик для GET /api/places/:id - страница места с отзывами.
func (h *Handler) PlaceDetails(c *gin.Context) {
	details, err := h.PlaceService.Details(c.Param("id"), c.Query("sort"))
	if err != nil {
		h.fail(c, err)
		return
	}
	bookmarked, err := h.BookmarkService.IsBookmarked(h.optionalUser(c), details.Place.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"place":      details.Place,
		"blogs":      details.Blogs,
		"tips":       details.Tips,
		"bookmarked": bookmarked,
	})
}

// Tags обработчик для GET /api/tags - все теги каталога.
func (h *Handler) Tags(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tags": h.DiscoveryService.Tags()})
}

type mapClickRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MapClick обработчик для POST /api/map/click - закрепление точки и открытие диалога радиуса.
func (h *Handler) MapClick(c *gin.Context) {
	var req mapClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}
	sess := h.SessionService.ClickMap(h.sessionKey(c), req.Lat, req.Lng)
	c.JSON(http.StatusOK, sessionResponse(sess))
}

type radiusRequest struct {
	RadiusKm float64 `json:"radius"`
}

// ConfirmRadius обработчик для POST /api/map/radius - подтверждение радиуса из диалога.
func (h *Handler) ConfirmRadius(c *gin.Context) {
	var req radiusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}
	sess := h.SessionService.ConfirmRadius(h.sessionKey(c), req.RadiusKm)
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// CancelRadius обработчик для POST /api/map/radius/cancel - закрытие диалога без изменений.
func (h *Handler) CancelRadius(c *gin.Context) {
	sess := h.SessionService.CancelRadius(h.sessionKey(c))
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// ClearPin обработчик для POST /api/map/clear - снятие точки, радиус возвращается к 50 км.
func (h *Handler) ClearPin(c *gin.Context) {
	sess := h.SessionService.ClearPin(h.sessionKey(c))
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// Zoom обработчик для POST /api/map/zoom?dir=in|out.
func (h *Handler) Zoom(c *gin.Context) {
	key := h.sessionKey(c)
	var sess service.SearchSession
	switch c.Query("dir") {
	case "in":
		sess = h.SessionService.ZoomIn(key)
	case "out":
		sess = h.SessionService.ZoomOut(key)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "dir должен быть in или out"})
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess))
}

func sessionResponse(sess service.SearchSession) gin.H {
	resp := gin.H{
		"state":         sess.State,
		"radius":        sess.RadiusKm,
		"pendingRadius": sess.PendingRadius,
		"zoom":          sess.Zoom,
	}
	if sess.Pin != nil {
		resp["pin"] = sess.Pin
	}
	return resp
}
