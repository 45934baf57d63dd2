package credits

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// Prometheus metrics for credit tracking.
var (
	creditsUsedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parcl_credits_used_total",
		Help: "Estimated Parcl Labs API credits consumed by this process",
	})

	creditsRemaining = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "parcl_credits_remaining",
		Help: "Most recent estimate of remaining Parcl Labs API credits",
	})
)

// publishTimeout bounds a single sink publish.
const publishTimeout = 2 * time.Second

// Sink receives snapshots of a tracker's counters. Publish is never called
// concurrently for one tracker, and snapshots arrive in the order they were
// taken. Snapshots recorded while a publish is in flight are coalesced, so
// a sink sees the latest state but not necessarily every intermediate one.
type Sink interface {
	Publish(ctx context.Context, snap Snapshot) error
}

// Tracker holds the session counters of one client.
type Tracker struct {
	sessionID   string
	sessionUsed atomic.Int64
	remaining   atomic.Int64
	sink        Sink
	logger      zerolog.Logger

	// pubMu guards pending and publishing. pubDone is signalled when the
	// publisher goroutine exits.
	pubMu      sync.Mutex
	pubDone    *sync.Cond
	pending    *Snapshot
	publishing bool
}

// NewTracker creates a tracker with a fresh session ID.
// sink may be nil.
func NewTracker(sink Sink, logger zerolog.Logger) *Tracker {
	t := &Tracker{
		sessionID: uuid.NewString(),
		sink:      sink,
		logger:    logger,
	}
	t.pubDone = sync.NewCond(&t.pubMu)
	return t
}

// SessionID returns the identifier of this tracker's session.
func (t *Tracker) SessionID() string {
	return t.sessionID
}

// Record folds one response's usage into the counters.
// CreditsUsed is added to the session total; RemainingCredits replaces the
// previous value. A nil usage is a no-op. Publishing to the sink happens in
// the background; Record never waits on it.
func (t *Tracker) Record(u *Usage) {
	if u.IsEmpty() {
		return
	}

	if u.CreditsUsed != nil {
		t.sessionUsed.Add(*u.CreditsUsed)
		if *u.CreditsUsed > 0 {
			creditsUsedTotal.Add(float64(*u.CreditsUsed))
		}
	}
	if u.RemainingCredits != nil {
		t.remaining.Store(*u.RemainingCredits)
		creditsRemaining.Set(float64(*u.RemainingCredits))
	}

	snap := t.Snapshot()
	t.logger.Debug().
		Str("session_id", t.sessionID).
		Int64("session_credits_used", snap.SessionCreditsUsed).
		Int64("remaining_credits", snap.RemainingCredits).
		Msg("Credit usage recorded")

	if t.sink != nil {
		t.schedulePublish()
	}
}

// schedulePublish queues the current counters for the sink and starts the
// publisher if it is idle. The snapshot is taken under pubMu, so queued
// snapshots never go backwards.
func (t *Tracker) schedulePublish() {
	t.pubMu.Lock()
	defer t.pubMu.Unlock()

	snap := t.Snapshot()
	t.pending = &snap
	if t.publishing {
		return
	}
	t.publishing = true
	go t.publishLoop()
}

func (t *Tracker) publishLoop() {
	for {
		t.pubMu.Lock()
		snap := t.pending
		t.pending = nil
		if snap == nil {
			t.publishing = false
			t.pubDone.Broadcast()
			t.pubMu.Unlock()
			return
		}
		t.pubMu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		if err := t.sink.Publish(ctx, *snap); err != nil {
			t.logger.Warn().Err(err).Str("session_id", t.sessionID).Msg("Failed to publish credit snapshot")
		}
		cancel()
	}
}

// Flush blocks until every snapshot queued so far has been handed to the sink.
func (t *Tracker) Flush() {
	t.pubMu.Lock()
	for t.publishing {
		t.pubDone.Wait()
	}
	t.pubMu.Unlock()
}

// Snapshot returns the current counters. The two values are read separately,
// so a concurrent Record may land between them.
func (t *Tracker) Snapshot() Snapshot {
	return Snapshot{
		SessionID:          t.sessionID,
		SessionCreditsUsed: t.sessionUsed.Load(),
		RemainingCredits:   t.remaining.Load(),
		TakenAt:            time.Now(),
	}
}

// SessionCreditsUsed returns the credits consumed so far in this session.
func (t *Tracker) SessionCreditsUsed() int64 {
	return t.sessionUsed.Load()
}

// RemainingCredits returns the last reported remaining credits.
func (t *Tracker) RemainingCredits() int64 {
	return t.remaining.Load()
}
