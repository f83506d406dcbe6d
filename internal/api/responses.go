// Package api holds the response envelopes and binding helpers shared by
// every handler package.
package api

// ErrorResponse wraps a user-facing failure message. Login handlers put the
// exact product error strings here; everything else uses short summaries.
type ErrorResponse struct {
	Error string `json:"error" example:"Gym ID not found in our records"`
}

// MessageResponse acknowledges a mutation that returns no entity, such as
// logout or a tenant delete.
type MessageResponse struct {
	Message string `json:"message" example:"Gym deleted"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
