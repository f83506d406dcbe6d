package auth

import (
	"errors"
	"net/http"

	"gympro/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Login
// @Description  Authorizes a super-admin, manager, or member credential attempt.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body auth.Attempt true "Credential attempt"
// @Success      200 {object} auth.LoginResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var attempt Attempt
	if err := c.ShouldBindJSON(&attempt); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	session, token, err := h.service.Authorize(c.Request.Context(), attempt)
	if err != nil {
		status := http.StatusUnauthorized
		if errors.Is(err, ErrGymNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, Session: *session})
}

// @Summary      Logout
// @Description  Clears the persisted session.
// @Tags         auth
// @Produce      json
// @Success      200 {object} api.MessageResponse
// @Router       /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to clear session"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Logged out"})
}

// @Summary      Current session
// @Description  Returns the persisted session, or an unauthenticated shell when none exists.
// @Tags         auth
// @Produce      json
// @Success      200 {object} auth.Session
// @Router       /auth/session [get]
func (h *Handler) CurrentSession(c *gin.Context) {
	session, err := h.service.CurrentSession(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to read session"})
		return
	}

	c.JSON(http.StatusOK, session)
}
