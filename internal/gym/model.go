package gym

import "time"

type Status string

const (
	StatusActive Status = "ACTIVE"
	StatusPaused Status = "PAUSED"
)

// Pricing is the per-tenant membership price table, keyed by plan length.
type Pricing struct {
	OneMonth     float64 `json:"oneMonth"`
	TwoMonths    float64 `json:"twoMonths"`
	ThreeMonths  float64 `json:"threeMonths"`
	SixMonths    float64 `json:"sixMonths"`
	TwelveMonths float64 `json:"twelveMonths"`
}

// Gym is a tenant account on the platform. SubscriptionExpiry is always
// derived from CreatedAt + SubscriptionPlanDays, never edited directly.
type Gym struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Address              string    `json:"address"`
	City                 string    `json:"city"`
	IDProof              string    `json:"idProof"`
	Password             string    `json:"password"`
	Status               Status    `json:"status"`
	CreatedAt            time.Time `json:"createdAt"`
	SubscriptionPlanDays int       `json:"subscriptionPlanDays"`
	SubscriptionExpiry   time.Time `json:"subscriptionExpiry"`
	TermsAndConditions   string    `json:"termsAndConditions"`
	Pricing              Pricing   `json:"pricing"`
	SubscriptionDue      float64   `json:"subscriptionDue"`
	LastPaymentDate      time.Time `json:"lastPaymentDate"`
}

// SubscriptionExpired reports whether the tenant's platform subscription has
// lapsed as of now.
func (g *Gym) SubscriptionExpired(now time.Time) bool {
	return g.SubscriptionExpiry.Before(now)
}

// PlatformStats is the super-admin overview rollup.
type PlatformStats struct {
	Total  int     `json:"total"`
	Active int     `json:"active"`
	Paused int     `json:"paused"`
	Due    float64 `json:"due"`
}

type CreateGymRequest struct {
	ID       string  `json:"id"`
	Name     string  `json:"name" binding:"required"`
	Address  string  `json:"address"`
	City     string  `json:"city"`
	IDProof  string  `json:"idProof"`
	Password string  `json:"password" binding:"required"`
	JoinDate string  `json:"joinDate" binding:"required"`
	PlanDays int     `json:"planDays" binding:"required,min=1"`
	Pricing  Pricing `json:"pricing"`
}

type UpdateGymRequest struct {
	Name     string  `json:"name" binding:"required"`
	Address  string  `json:"address"`
	City     string  `json:"city"`
	IDProof  string  `json:"idProof"`
	Password string  `json:"password" binding:"required"`
	JoinDate string  `json:"joinDate" binding:"required"`
	PlanDays int     `json:"planDays" binding:"required,min=1"`
	Pricing  Pricing `json:"pricing"`
}

type UpdateTermsRequest struct {
	TermsAndConditions string `json:"termsAndConditions" binding:"required"`
}
