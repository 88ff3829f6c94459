package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListBookmarks обработчик для GET /api/bookmarks?q=&sort= - закладки пользователя.
func (h *Handler) ListBookmarks(c *gin.Context) {
	user := h.currentUser(c)
	bookmarks, err := h.BookmarkService.List(user, c.Query("q"), c.Query("sort"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarks": bookmarks, "total": len(bookmarks)})
}

// ToggleBookmark обработчик для POST /api/bookmarks/:placeID/toggle.
func (h *Handler) ToggleBookmark(c *gin.Context) {
	place, err := h.PlaceService.GetByID(c.Param("placeID"))
	if err != nil {
		h.fail(c, err)
		return
	}
	bookmarked, err := h.BookmarkService.Toggle(h.currentUser(c), place)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked})
}

// ClearBookmarks обработчик для DELETE /api/bookmarks - полная очистка коллекции.
// Подтверждение запрашивает клиент до отправки запроса.
func (h *Handler) ClearBookmarks(c *gin.Context) {
	if err := h.BookmarkService.ClearAll(h.currentUser(c)); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
