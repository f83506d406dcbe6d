package ledger

import (
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

// @Summary      Financial rollup for the manager's gym
// @Description  Sums ledger totals and category subtotals over a time window.
// @Tags         manager,finance
// @Produce      json
// @Security     BearerAuth
// @Param        range query string false "TODAY | MONTH | SPECIFIC | RANGE (default MONTH)"
// @Param        date  query string false "Date for SPECIFIC, 2006-01-02"
// @Param        start query string false "Range start, 2006-01-02"
// @Param        end   query string false "Range end, 2006-01-02"
// @Success      200 {object} ledger.Rollup
// @Failure      400 {object} api.ErrorResponse
// @Router       /manager/finance [get]
func (h *Handler) Finance(c *gin.Context) {
	window, err := ParseWindow(
		c.Query("range"),
		c.Query("date"),
		c.Query("start"),
		c.Query("end"),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid time window"})
		return
	}

	rollup, err := h.service.Rollup(c.Request.Context(), c.GetString("gym_id"), window)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to compute rollup"})
		return
	}

	c.JSON(http.StatusOK, rollup)
}

// @Summary      Full transaction list for the manager's gym
// @Tags         manager,finance
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} ledger.PaymentRecord
// @Router       /manager/transactions [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	records, err := h.service.ListByGym(c.Request.Context(), c.GetString("gym_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch transactions"})
		return
	}

	c.JSON(http.StatusOK, records)
}
