package notify

import (
	"net/http"

	"gympro/internal/api"
	"gympro/internal/gym"
	"gympro/internal/member"
	"gympro/internal/settings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service  *Service
	members  member.Service
	gyms     gym.Repository
	settings settings.Repository
}

func NewHandler(service *Service, members member.Service, gyms gym.Repository, settingsRepo settings.Repository) *Handler {
	return &Handler{service: service, members: members, gyms: gyms, settings: settingsRepo}
}

// @Summary      Queue expiry reminders for members whose plan ends soon
// @Description  Enqueues one reminder per EXPIRING_SOON member that has an email on file.
// @Tags         manager,reminders
// @Produce      json
// @Security     BearerAuth
// @Success      202 {object} map[string]int
// @Failure      409 {object} api.ErrorResponse
// @Router       /manager/reminders [post]
func (h *Handler) QueueReminders(c *gin.Context) {
	ctx := c.Request.Context()
	gymID := c.GetString("gym_id")

	cfg, err := h.settings.Get(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load settings"})
		return
	}
	if !cfg.AutoNotifyWhatsApp {
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Automatic notifications are disabled"})
		return
	}

	g, err := h.gyms.GetByID(ctx, gymID)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym ID not found in our records"})
		return
	}

	expiring, err := h.members.List(ctx, gymID, member.ListFilter{Status: string(member.StatusExpiringSoon)})
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch members"})
		return
	}

	queued, skipped := 0, 0
	for _, v := range expiring {
		if v.Email == "" {
			skipped++
			continue
		}
		if err := h.service.QueueExpiryReminder(ctx, v.Email, v.Name, gymID, g.Name, v.ExpiryDate); err != nil {
			skipped++
			continue
		}
		queued++
	}

	c.JSON(http.StatusAccepted, gin.H{"queued": queued, "skipped": skipped})
}
