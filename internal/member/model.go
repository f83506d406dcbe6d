package member

import (
	"time"

	"gympro/internal/ledger"
)

// TransformationPhotos holds the optional before/after pair as opaque
// base64-encoded blobs.
type TransformationPhotos struct {
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
}

type SupplementBill struct {
	ID       string    `json:"id"`
	ItemName string    `json:"itemName"`
	Qty      int       `json:"qty"`
	Days     int       `json:"days"`
	Amount   float64   `json:"amount"`
	Date     time.Time `json:"date"`
}

// Member belongs to exactly one gym. ExpiryDate is always derived from the
// last join/extension reference date plus the plan duration.
type Member struct {
	ID                   string                 `json:"id"`
	Name                 string                 `json:"name"`
	Phone                string                 `json:"phone"`
	Email                string                 `json:"email,omitempty"`
	Password             string                 `json:"password"`
	JoinDate             time.Time              `json:"joinDate"`
	PlanDurationDays     int                    `json:"planDurationDays"`
	ExpiryDate           time.Time              `json:"expiryDate"`
	Age                  int                    `json:"age"`
	Weight               float64                `json:"weight"`
	Height               float64                `json:"height"`
	Address              string                 `json:"address"`
	AmountPaid           float64                `json:"amountPaid"`
	ProfilePhoto         string                 `json:"profilePhoto"`
	TransformationPhotos TransformationPhotos   `json:"transformationPhotos"`
	SupplementBills      []SupplementBill       `json:"supplementBills"`
	PaymentHistory       []ledger.PaymentRecord `json:"paymentHistory"`
	GymID                string                 `json:"gymId"`
	IsActive             bool                   `json:"isActive"`
}

// View decorates a member with the derived membership status for list and
// badge rendering.
type View struct {
	Member
	Status Status `json:"status"`
}

type RegisterRequest struct {
	ID               string  `json:"id"`
	Name             string  `json:"name" binding:"required"`
	Phone            string  `json:"phone" binding:"required"`
	Email            string  `json:"email" binding:"omitempty,email"`
	Password         string  `json:"password"`
	JoinDate         string  `json:"joinDate" binding:"required"`
	PlanDurationDays int     `json:"planDurationDays" binding:"required,min=1"`
	Age              int     `json:"age"`
	Weight           float64 `json:"weight"`
	Height           float64 `json:"height"`
	Address          string  `json:"address"`
	AmountPaid       float64 `json:"amountPaid" binding:"min=0"`
	ProfilePhoto     string  `json:"profilePhoto"`
}

type UpdateProfileRequest struct {
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email" binding:"omitempty,email"`
	Age          int     `json:"age"`
	Weight       float64 `json:"weight"`
	Height       float64 `json:"height"`
	Address      string  `json:"address"`
	Password     string  `json:"password" binding:"required"`
	ProfilePhoto string  `json:"profilePhoto"`
}

type ExtendPlanRequest struct {
	Days int `json:"days" binding:"required"`
	// Fee overrides the pricing-table lookup when set.
	Fee *float64 `json:"fee"`
}

type SupplementRequest struct {
	ItemName string  `json:"itemName" binding:"required"`
	Qty      int     `json:"qty" binding:"required,min=1"`
	Days     int     `json:"days"`
	Amount   float64 `json:"amount" binding:"min=0"`
}

type PhotoUploadRequest struct {
	Kind string `json:"kind" binding:"required,oneof=profile before after"`
	Data string `json:"data" binding:"required"`
}

// ListFilter narrows the manager's member list. Search matches name or id
// substrings; Status ACTIVE also admits EXPIRING_SOON; Duration filters by
// exact plan length.
type ListFilter struct {
	Search   string
	Status   string
	Duration int
}
