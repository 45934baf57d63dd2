// Package credits tracks Parcl Labs API credit consumption for a client session.
// Usage metadata arrives in the "account" object of some responses and is folded
// into per-client counters that are safe for concurrent updates.
package credits

import (
	"time"
)

// Redis key layout for published snapshots.
// The session ID replaces %s so independent clients never share counters.
const (
	RedisKeySessionUsed = "parcl:credits:%s:session_used"
	RedisKeyRemaining   = "parcl:credits:%s:remaining"
	RedisKeyLastUpdate  = "parcl:credits:%s:last_update"
)

// Usage is the account metadata attached to a single API response.
// Either field may be absent.
type Usage struct {
	// CreditsUsed is the estimated number of credits consumed by the call.
	CreditsUsed *int64 `json:"est_credits_used,omitempty"`

	// RemainingCredits is the server's estimate of credits left on the account.
	RemainingCredits *int64 `json:"est_remaining_credits,omitempty"`
}

// NewUsage builds a Usage with both fields set.
func NewUsage(used, remaining int64) *Usage {
	return &Usage{CreditsUsed: &used, RemainingCredits: &remaining}
}

// IsEmpty reports whether the usage carries no counter values.
func (u *Usage) IsEmpty() bool {
	return u == nil || (u.CreditsUsed == nil && u.RemainingCredits == nil)
}

// Snapshot is a point-in-time read of a tracker's counters.
type Snapshot struct {
	// SessionID identifies the tracker the snapshot was taken from.
	SessionID string `json:"session_id"`

	// SessionCreditsUsed is the sum of CreditsUsed over every recorded response.
	SessionCreditsUsed int64 `json:"est_session_credits_used"`

	// RemainingCredits is the most recent RemainingCredits value seen.
	RemainingCredits int64 `json:"est_remaining_credits"`

	// TakenAt is when the snapshot was read.
	TakenAt time.Time `json:"taken_at"`
}

// IsLow returns true if remaining credits are known and below threshold.
// A zero RemainingCredits is treated as unknown (no response reported it yet).
func (s Snapshot) IsLow(threshold int64) bool {
	return s.RemainingCredits > 0 && s.RemainingCredits < threshold
}
