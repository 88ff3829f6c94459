package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Location string `json:"location"`
}

// SignUp обработчик для POST /api/signup - регистрация с автоматическим входом.
func (h *Handler) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}
	user, err := h.AuthService.Register(req.Name, req.Email, req.Password, req.Location)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

// Login обработчик для POST /api/login.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}
	user, err := h.AuthService.Login(req.Email, req.Password, req.Remember)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Logout обработчик для POST /api/logout.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.AuthService.Logout(); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Session обработчик для GET /api/session - восстановление сессии после перезагрузки.
func (h *Handler) Session(c *gin.Context) {
	user, err := h.AuthService.CurrentUser()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// SavedCredentials обработчик для GET /api/credentials - предзаполнение формы входа.
func (h *Handler) SavedCredentials(c *gin.Context) {
	creds, err := h.AuthService.SavedCredentials()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"credentials": creds})
}
