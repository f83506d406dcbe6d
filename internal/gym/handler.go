package gym

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

// @Summary      Create a gym tenant
// @Description  Super-admin only: registers a new gym account on the platform.
// @Tags         admin,gyms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body gym.CreateGymRequest true "Gym payload"
// @Success      201 {object} gym.Gym
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /admin/gyms [post]
func (h *Handler) CreateGym(c *gin.Context) {
	var req CreateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if details := api.BindingErrors(err); details != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": details})
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	g, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid join date"})
		case errors.Is(err, ErrDuplicateID):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Gym ID already exists"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create gym"})
		}
		return
	}

	c.JSON(http.StatusCreated, g)
}

// @Summary      List gym tenants
// @Tags         admin,gyms
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} gym.Gym
// @Router       /admin/gyms [get]
func (h *Handler) ListGyms(c *gin.Context) {
	gyms, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch gyms"})
		return
	}

	c.JSON(http.StatusOK, gyms)
}

// @Summary      Update a gym tenant
// @Description  Overwrites tenant fields; subscription expiry is recomputed from joinDate + planDays.
// @Tags         admin,gyms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        gymID path string true "Gym ID"
// @Param        request body gym.UpdateGymRequest true "Gym payload"
// @Success      200 {object} gym.Gym
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/gyms/{gymID} [put]
func (h *Handler) UpdateGym(c *gin.Context) {
	var req UpdateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	g, err := h.service.Update(c.Request.Context(), c.Param("gymID"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym not found"})
		case errors.Is(err, ErrInvalidDate):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid join date"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update gym"})
		}
		return
	}

	c.JSON(http.StatusOK, g)
}

// @Summary      Toggle gym status
// @Description  Flips ACTIVE and PAUSED. Paused tenants are locked out of login.
// @Tags         admin,gyms
// @Produce      json
// @Security     BearerAuth
// @Param        gymID path string true "Gym ID"
// @Success      200 {object} gym.Gym
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/gyms/{gymID}/status [post]
func (h *Handler) ToggleStatus(c *gin.Context) {
	g, err := h.service.ToggleStatus(c.Request.Context(), c.Param("gymID"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to toggle status"})
		return
	}

	c.JSON(http.StatusOK, g)
}

// @Summary      Delete a gym tenant
// @Description  Removes the tenant record. Members and ledger entries are not cascaded.
// @Tags         admin,gyms
// @Produce      json
// @Security     BearerAuth
// @Param        gymID path string true "Gym ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/gyms/{gymID} [delete]
func (h *Handler) DeleteGym(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("gymID")); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete gym"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Gym deleted"})
}

// @Summary      Platform stats
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} gym.PlatformStats
// @Router       /admin/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// @Summary      Get gym terms
// @Tags         manager
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} gym.Gym
// @Failure      404 {object} api.ErrorResponse
// @Router       /manager/terms [get]
func (h *Handler) GetTerms(c *gin.Context) {
	g, err := h.service.GetByID(c.Request.Context(), c.GetString("gym_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"termsAndConditions": g.TermsAndConditions})
}

// @Summary      Update gym terms
// @Description  Manager-editable free text; the only tenant field managers may change.
// @Tags         manager
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body gym.UpdateTermsRequest true "Terms payload"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /manager/terms [put]
func (h *Handler) UpdateTerms(c *gin.Context) {
	var req UpdateTermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if _, err := h.service.UpdateTerms(c.Request.Context(), c.GetString("gym_id"), req.TermsAndConditions); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update terms"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Gym terms updated"})
}
