package trainer

import (
	"net/http"

	"gympro/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// @Summary      List trainers for the manager's gym
// @Tags         manager,trainers
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} trainer.Trainer
// @Router       /manager/trainers [get]
func (h *Handler) List(c *gin.Context) {
	trainers, err := h.repo.ListByGym(c.Request.Context(), c.GetString("gym_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch trainers"})
		return
	}

	c.JSON(http.StatusOK, trainers)
}

// @Summary      Add a trainer to the manager's gym
// @Tags         manager,trainers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body trainer.CreateTrainerRequest true "Trainer details"
// @Success      201 {object} trainer.Trainer
// @Failure      400 {object} api.ErrorResponse
// @Router       /manager/trainers [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request body"})
		return
	}

	t := Trainer{
		ID:        "TR-" + uuid.NewString(),
		Name:      req.Name,
		Phone:     req.Phone,
		Specialty: req.Specialty,
		GymID:     c.GetString("gym_id"),
	}
	if err := h.repo.Insert(c.Request.Context(), t); err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to save trainer"})
		return
	}

	c.JSON(http.StatusCreated, t)
}
