package handler

import (
	"net/http"

	"github.com/PrathameshWCE/Offcentre/internal/model"
	"github.com/PrathameshWCE/Offcentre/internal/service"

	"github.com/gin-gonic/gin"
)

type postRequest struct {
	Type      string                  `json:"type"`
	Category  string                  `json:"category"`
	PlaceName string                  `json:"placeName"`
	Location  string                  `json:"location"`
	Content   string                  `json:"content"`
	Tags      []string                `json:"tags"`
	Media     []string                `json:"media"`
	Adventure *model.AdventureDetails `json:"adventure"`
}

// PublishPost обработчик для POST /api/posts - публикация совета или блога.
func (h *Handler) PublishPost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}
	post, err := h.PostService.Publish(h.currentUser(c), service.PostDraft{
		Type:      req.Type,
		Category:  req.Category,
		PlaceName: req.PlaceName,
		Location:  req.Location,
		Content:   req.Content,
		Tags:      req.Tags,
		Media:     req.Media,
		Adventure: req.Adventure,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// ListPosts обработчик для GET /api/posts.
func (h *Handler) ListPosts(c *gin.Context) {
	posts, err := h.PostService.List()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

type plannerRequest struct {
	Days       int      `json:"days"`
	DistanceKm float64  `json:"distance"`
	Tags       []string `json:"tags"`
}

// PlannerSuggest обработчик для POST /api/planner - подбор мест на выходные.
// Точкой отсчета служит закрепленная точка поисковой сессии, если она есть.
func (h *Handler) PlannerSuggest(c *gin.Context) {
	var req plannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}
	pin, _ := h.SessionService.ActivePin(h.sessionKey(c))
	suggestions, err := h.PlannerService.Suggest(service.PlannerQuery{
		Days:       req.Days,
		DistanceKm: req.DistanceKm,
		Tags:       req.Tags,
		Origin:     pin,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// PlannerToggle обработчик для POST /api/planner/:placeID/toggle.
func (h *Handler) PlannerToggle(c *gin.Context) {
	place, err := h.PlaceService.GetByID(c.Param("placeID"))
	if err != nil {
		h.fail(c, err)
		return
	}
	planned, err := h.PlannerService.TogglePlanned(h.currentUser(c), place.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"planned": planned})
}

// PlannerList обработчик для GET /api/planner - id отмеченных мест.
func (h *Handler) PlannerList(c *gin.Context) {
	ids, err := h.PlannerService.Planned(h.currentUser(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"planned": ids})
}

type feedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SubmitFeedback обработчик для POST /api/feedback - запись в журнал обратной связи.
func (h *Handler) SubmitFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}
	if err := h.FeedbackService.Submit(h.optionalUser(c), req.Name, req.Email, req.Message); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "ok"})
}

type accountRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Location string `json:"location"`
}

// Account обработчик для GET /api/account - профиль вошедшего пользователя.
func (h *Handler) Account(c *gin.Context) {
	c.JSON(http.StatusOK, h.currentUser(c))
}

// UpdateAccount обработчик для PUT /api/account - редактирование профиля.
func (h *Handler) UpdateAccount(c *gin.Context) {
	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}
	user, err := h.ProfileService.Update(h.currentUser(c), service.ProfileUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Location: req.Location,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
