package member

import (
	"math"
	"time"
)

type Status string

const (
	StatusActive       Status = "ACTIVE"
	StatusExpired      Status = "EXPIRED"
	StatusExpiringSoon Status = "EXPIRING_SOON"
)

// expiringSoonDays is the badge threshold for memberships about to lapse.
const expiringSoonDays = 5

// StatusOf classifies a membership by the ceiling day difference between
// expiry and now. A negative day count is EXPIRED, zero through five days is
// EXPIRING_SOON, anything later is ACTIVE. Pure; callers pass the clock.
func StatusOf(expiry, now time.Time) Status {
	diffDays := math.Ceil(expiry.Sub(now).Hours() / 24)
	if diffDays < 0 {
		return StatusExpired
	}
	if diffDays <= expiringSoonDays {
		return StatusExpiringSoon
	}
	return StatusActive
}
