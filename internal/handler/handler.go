package handler

import (
	"errors"
	"net/http"

	"github.com/PrathameshWCE/Offcentre/internal/catalog"
	"github.com/PrathameshWCE/Offcentre/internal/model"
	"github.com/PrathameshWCE/Offcentre/internal/repository"
	"github.com/PrathameshWCE/Offcentre/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler структурирует зависимости сервисов для обработки HTTP-запросов.
type Handler struct {
	AuthService      *service.AuthService
	DiscoveryService *service.DiscoveryService
	SessionService   *service.SessionService
	BookmarkService  *service.BookmarkService
	PlaceService     *service.PlaceService
	PostService      *service.PostService
	PlannerService   *service.PlannerService
	FeedbackService  *service.FeedbackService
	ProfileService   *service.ProfileService
	UserRepo         *repository.UserRepository
}

// RegisterRoutes регистрирует все маршруты приложения.
// Поиск, вход и страницы мест открыты; закладки, публикации, планировщик
// и профиль требуют вошедшего пользователя.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.POST("/signup", h.SignUp)
		api.POST("/login", h.Login)
		api.POST("/logout", h.Logout)
		api.GET("/session", h.Session)
		api.GET("/credentials", h.SavedCredentials)

		api.GET("/places", h.SearchPlaces)
		api.GET("/places/:id", h.PlaceDetails)
		api.GET("/tags", h.Tags)

		api.POST("/map/click", h.MapClick)
		api.POST("/map/radius", h.ConfirmRadius)
		api.POST("/map/radius/cancel", h.CancelRadius)
		api.POST("/map/clear", h.ClearPin)
		api.POST("/map/zoom", h.Zoom)

		api.POST("/feedback", h.SubmitFeedback)

		authed := api.Group("/", h.requireUser)
		{
			authed.GET("/bookmarks", h.ListBookmarks)
			authed.POST("/bookmarks/:placeID/toggle", h.ToggleBookmark)
			authed.DELETE("/bookmarks", h.ClearBookmarks)

			authed.POST("/posts", h.PublishPost)
			authed.GET("/posts", h.ListPosts)

			authed.POST("/planner", h.PlannerSuggest)
			authed.POST("/planner/:placeID/toggle", h.PlannerToggle)
			authed.GET("/planner", h.PlannerList)

			authed.GET("/account", h.Account)
			authed.PUT("/account", h.UpdateAccount)
		}
	}
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// requireUser - шлюз для маршрутов, требующих вошедшего пользователя.
// Сессия передается явно заголовком X-User-Email и разрешается через хранилище.
func (h *Handler) requireUser(c *gin.Context) {
	email := c.GetHeader("X-User-Email")
	if email == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": service.ErrNotSignedIn.Error()})
		return
	}
	user, err := h.UserRepo.FindByEmail(email)
	if err != nil {
		h.fail(c, err)
		c.Abort()
		return
	}
	if user == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": service.ErrNotSignedIn.Error()})
		return
	}
	c.Set("user", user)
	c.Next()
}

func (h *Handler) currentUser(c *gin.Context) *model.User {
	if v, ok := c.Get("user"); ok {
		return v.(*model.User)
	}
	return nil
}

// optionalUser разрешает пользователя для незакрытых маршрутов (поиск, обратная связь).
func (h *Handler) optionalUser(c *gin.Context) *model.User {
	email := c.GetHeader("X-User-Email")
	if email == "" {
		return nil
	}
	user, err := h.UserRepo.FindByEmail(email)
	if err != nil {
		return nil
	}
	return user
}

// sessionKey - ключ поисковой сессии: email вошедшего пользователя либо анонимный ключ клиента.
func (h *Handler) sessionKey(c *gin.Context) string {
	if email := c.GetHeader("X-User-Email"); email != "" {
		return email
	}
	if key := c.GetHeader("X-Session-Key"); key != "" {
		return key
	}
	return c.ClientIP()
}

// fail переводит ошибку сервиса в HTTP-ответ.
func (h *Handler) fail(c *gin.Context, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "field": vErr.Field})
	case errors.Is(err, service.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrNotSignedIn):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "внутренняя ошибка хранилища"})
	}
}
