package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	iauth "github.com/elsmrh/sami-yaya/internal/auth"
	"github.com/elsmrh/sami-yaya/internal/middleware"
	"github.com/elsmrh/sami-yaya/pkg/errors"
	"github.com/elsmrh/sami-yaya/pkg/metrics"
	"github.com/elsmrh/sami-yaya/pkg/response"
)

// AuthHandler manages the admin login/logout flow.
type AuthHandler struct {
	sessions *iauth.SessionService
}

func NewAuthHandler(sessions *iauth.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type loginRequest struct {
	Password string `json:"password" validate:"required"`
}

// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	token, err := h.sessions.Login(req.Password)
	if err != nil {
		// All failures collapse to the same 401; the caller learns nothing
		// about why the credential was rejected.
		metrics.AuthAttempts.WithLabelValues("failure").Inc()
		response.Error(c, errors.ErrInvalidCredentials)
		return
	}

	metrics.AuthAttempts.WithLabelValues("success").Inc()
	response.Success(c, http.StatusOK, gin.H{"token": token})
}

// POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString(middleware.CtxTokenKey)
	if token == "" {
		response.Error(c, errors.ErrUnauthorized)
		return
	}

	h.sessions.Logout(token)
	response.Success(c, http.StatusOK, nil)
}
