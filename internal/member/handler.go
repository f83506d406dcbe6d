package member

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"gympro/internal/api"
	"gympro/internal/gym"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Register a member
// @Description  Creates a member in the manager's gym and records the joining payment.
// @Tags         manager,members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body member.RegisterRequest true "Member payload"
// @Success      201 {object} member.Member
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /manager/members [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if details := api.BindingErrors(err); details != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": details})
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	m, err := h.service.Register(c.Request.Context(), c.GetString("gym_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, gym.ErrNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym not found"})
		case errors.Is(err, ErrInvalidDate):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid join date"})
		case errors.Is(err, ErrDuplicateID):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Member ID already exists"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to register member"})
		}
		return
	}

	c.JSON(http.StatusCreated, m)
}

// @Summary      List members of the manager's gym
// @Tags         manager,members
// @Produce      json
// @Security     BearerAuth
// @Param        search   query string false "Name or id substring"
// @Param        status   query string false "ALL | ACTIVE | EXPIRED | EXPIRING_SOON"
// @Param        duration query int    false "Exact plan length in days"
// @Success      200 {array} member.View
// @Router       /manager/members [get]
func (h *Handler) List(c *gin.Context) {
	duration := 0
	if raw := c.Query("duration"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid duration filter"})
			return
		}
		duration = d
	}

	views, err := h.service.List(c.Request.Context(), c.GetString("gym_id"), ListFilter{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Duration: duration,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch members"})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary      Get one member
// @Tags         manager,members
// @Produce      json
// @Security     BearerAuth
// @Param        memberID path string true "Member ID"
// @Success      200 {object} member.View
// @Failure      404 {object} api.ErrorResponse
// @Router       /manager/members/{memberID} [get]
func (h *Handler) Get(c *gin.Context) {
	view, err := h.service.Get(c.Request.Context(), c.GetString("gym_id"), c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member not found"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary      Update a member profile
// @Tags         manager,members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        memberID path string true "Member ID"
// @Param        request body member.UpdateProfileRequest true "Profile payload"
// @Success      200 {object} member.Member
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /manager/members/{memberID} [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	m, err := h.service.UpdateProfile(c.Request.Context(), c.GetString("gym_id"), c.Param("memberID"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update member"})
		return
	}

	c.JSON(http.StatusOK, m)
}

// @Summary      Extend a member's plan
// @Description  Pushes expiry out by the requested days and records the membership fee.
// @Tags         manager,members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        memberID path string true "Member ID"
// @Param        request body member.ExtendPlanRequest true "Extension payload"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /manager/members/{memberID}/extend [post]
func (h *Handler) ExtendPlan(c *gin.Context) {
	var req ExtendPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	m, amount, err := h.service.ExtendPlan(c.Request.Context(), c.GetString("gym_id"), c.Param("memberID"), req.Days, req.Fee)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDays):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Extension days must be positive"})
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member not found"})
		case errors.Is(err, gym.ErrNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to extend plan"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Plan extended by %d days. Payment of %.0f recorded.", req.Days, amount),
		"member":  m,
		"amount":  amount,
	})
}

// @Summary      Record a supplement sale
// @Tags         manager,members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        memberID path string true "Member ID"
// @Param        request body member.SupplementRequest true "Supplement payload"
// @Success      200 {object} member.Member
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /manager/members/{memberID}/supplements [post]
func (h *Handler) AddSupplement(c *gin.Context) {
	var req SupplementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	m, err := h.service.AddSupplement(c.Request.Context(), c.GetString("gym_id"), c.Param("memberID"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to record supplement"})
		return
	}

	c.JSON(http.StatusOK, m)
}

// @Summary      Upload a member photo
// @Description  Accepts the profile photo or a transformation before/after blob.
// @Tags         manager,members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        memberID path string true "Member ID"
// @Param        request body member.PhotoUploadRequest true "Photo payload"
// @Success      200 {object} member.Member
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /manager/members/{memberID}/photos [post]
func (h *Handler) UploadPhoto(c *gin.Context) {
	var req PhotoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	m, err := h.service.SetPhoto(c.Request.Context(), c.GetString("gym_id"), c.Param("memberID"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member not found"})
		case errors.Is(err, ErrInvalidPhoto):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Unknown photo kind"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to store photo"})
		}
		return
	}

	c.JSON(http.StatusOK, m)
}

// @Summary      Member self view
// @Description  The logged-in member's own record with derived status.
// @Tags         member
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} member.View
// @Failure      404 {object} api.ErrorResponse
// @Router       /me [get]
func (h *Handler) Me(c *gin.Context) {
	view, err := h.service.Get(c.Request.Context(), c.GetString("gym_id"), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member not found"})
		return
	}

	c.JSON(http.StatusOK, view)
}
