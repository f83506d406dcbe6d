package ledger

import "time"

type Category string

const (
	CategoryMembership Category = "MEMBERSHIP"
	CategorySupplement Category = "SUPPLEMENT"
)

// All revenue is collected at the desk; there is no online payment path.
const MethodOffline = "OFFLINE"

// PaymentRecord is one append-only ledger entry. Amounts mirror what was
// charged at the triggering event; the ledger is an audit trail, not a source
// of truth.
type PaymentRecord struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	Amount     float64   `json:"amount"`
	Method     string    `json:"method"`
	RecordedBy string    `json:"recordedBy"`
	Category   Category  `json:"category"`
	Details    string    `json:"details"`
	GymID      string    `json:"gymId"`
}

// Rollup is the aggregate for one time window.
type Rollup struct {
	Total        float64         `json:"total"`
	Membership   float64         `json:"membership"`
	Supplements  float64         `json:"supplements"`
	Transactions []PaymentRecord `json:"transactions"`
}
