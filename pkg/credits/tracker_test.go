package credits

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type recordingSink struct {
	mu    sync.Mutex
	snaps []Snapshot
	err   error
}

func (s *recordingSink) Publish(_ context.Context, snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snaps = append(s.snaps, snap)
	return s.err
}

func (s *recordingSink) last() (Snapshot, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.snaps) == 0 {
		return Snapshot{}, 0
	}
	return s.snaps[len(s.snaps)-1], len(s.snaps)
}

// gatedSink holds the first Publish until release is closed.
type gatedSink struct {
	recordingSink
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGatedSink() *gatedSink {
	return &gatedSink{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (s *gatedSink) Publish(ctx context.Context, snap Snapshot) error {
	first := false
	s.once.Do(func() { first = true })
	if first {
		close(s.entered)
		<-s.release
	}
	return s.recordingSink.Publish(ctx, snap)
}

func int64Ptr(v int64) *int64 { return &v }

func TestTracker_RecordAccumulates(t *testing.T) {
	tracker := NewTracker(nil, zerolog.Nop())

	tracker.Record(NewUsage(5, 995))
	tracker.Record(NewUsage(3, 992))

	snap := tracker.Snapshot()
	if snap.SessionCreditsUsed != 8 {
		t.Errorf("SessionCreditsUsed = %d, want 8", snap.SessionCreditsUsed)
	}
	if snap.RemainingCredits != 992 {
		t.Errorf("RemainingCredits = %d, want 992", snap.RemainingCredits)
	}
	if snap.SessionID != tracker.SessionID() {
		t.Errorf("SessionID = %q, want %q", snap.SessionID, tracker.SessionID())
	}
}

func TestTracker_RecordNilIsNoop(t *testing.T) {
	sink := &recordingSink{}
	tracker := NewTracker(sink, zerolog.Nop())

	tracker.Record(nil)
	tracker.Record(&Usage{})

	if got := tracker.SessionCreditsUsed(); got != 0 {
		t.Errorf("SessionCreditsUsed = %d, want 0", got)
	}
	if got := tracker.RemainingCredits(); got != 0 {
		t.Errorf("RemainingCredits = %d, want 0", got)
	}
	if len(sink.snaps) != 0 {
		t.Errorf("sink received %d snapshots, want 0", len(sink.snaps))
	}
}

func TestTracker_RecordPartialUsage(t *testing.T) {
	tests := []struct {
		name          string
		usage         *Usage
		wantUsed      int64
		wantRemaining int64
	}{
		{
			name:          "only credits used",
			usage:         &Usage{CreditsUsed: int64Ptr(7)},
			wantUsed:      17,
			wantRemaining: 100,
		},
		{
			name:          "only remaining",
			usage:         &Usage{RemainingCredits: int64Ptr(42)},
			wantUsed:      10,
			wantRemaining: 42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := NewTracker(nil, zerolog.Nop())
			tracker.Record(NewUsage(10, 100))
			tracker.Record(tt.usage)

			if got := tracker.SessionCreditsUsed(); got != tt.wantUsed {
				t.Errorf("SessionCreditsUsed = %d, want %d", got, tt.wantUsed)
			}
			if got := tracker.RemainingCredits(); got != tt.wantRemaining {
				t.Errorf("RemainingCredits = %d, want %d", got, tt.wantRemaining)
			}
		})
	}
}

func TestTracker_ConcurrentRecord(t *testing.T) {
	tracker := NewTracker(nil, zerolog.Nop())

	const workers = 50
	const perWorker = 200

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				tracker.Record(NewUsage(int64(w%3+1), int64(i)))
			}
		}(w)
	}
	wg.Wait()

	var want int64
	for w := 0; w < workers; w++ {
		want += int64(w%3+1) * perWorker
	}
	if got := tracker.SessionCreditsUsed(); got != want {
		t.Errorf("SessionCreditsUsed = %d, want %d (lost updates)", got, want)
	}
}

func TestTracker_IndependentInstances(t *testing.T) {
	a := NewTracker(nil, zerolog.Nop())
	b := NewTracker(nil, zerolog.Nop())

	a.Record(NewUsage(5, 995))

	if b.SessionCreditsUsed() != 0 {
		t.Errorf("second tracker SessionCreditsUsed = %d, want 0", b.SessionCreditsUsed())
	}
	if a.SessionID() == b.SessionID() {
		t.Error("trackers should have distinct session IDs")
	}
}

func TestTracker_PublishesToSink(t *testing.T) {
	sink := &recordingSink{}
	tracker := NewTracker(sink, zerolog.Nop())

	tracker.Record(NewUsage(2, 98))
	tracker.Record(NewUsage(1, 97))
	tracker.Flush()

	last, n := sink.last()
	if n == 0 {
		t.Fatal("sink received no snapshots")
	}
	if last.SessionCreditsUsed != 3 || last.RemainingCredits != 97 {
		t.Errorf("last snapshot = %+v, want used=3 remaining=97", last)
	}
}

func TestTracker_SlowPublishEndsOnLatestState(t *testing.T) {
	sink := newGatedSink()
	tracker := NewTracker(sink, zerolog.Nop())

	tracker.Record(NewUsage(5, 995))
	<-sink.entered

	// The first publish is still in flight.
	tracker.Record(NewUsage(3, 992))
	close(sink.release)
	tracker.Flush()

	want := tracker.Snapshot()
	last, _ := sink.last()
	if last.SessionCreditsUsed != 8 || last.RemainingCredits != 992 {
		t.Errorf("sink holds used=%d remaining=%d, want used=8 remaining=992",
			last.SessionCreditsUsed, last.RemainingCredits)
	}
	if last.SessionCreditsUsed != want.SessionCreditsUsed || last.RemainingCredits != want.RemainingCredits {
		t.Errorf("sink %+v diverges from tracker %+v", last, want)
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()
	for i := 1; i < len(sink.snaps); i++ {
		if sink.snaps[i].SessionCreditsUsed < sink.snaps[i-1].SessionCreditsUsed {
			t.Errorf("snapshot %d went backwards: %d after %d",
				i, sink.snaps[i].SessionCreditsUsed, sink.snaps[i-1].SessionCreditsUsed)
		}
	}
}

func TestTracker_RecordDoesNotWaitForSink(t *testing.T) {
	sink := newGatedSink()
	tracker := NewTracker(sink, zerolog.Nop())
	defer func() {
		close(sink.release)
		tracker.Flush()
	}()

	done := make(chan struct{})
	go func() {
		tracker.Record(NewUsage(1, 99))
		tracker.Record(NewUsage(1, 98))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Record blocked on a stalled sink")
	}
	if got := tracker.SessionCreditsUsed(); got != 2 {
		t.Errorf("SessionCreditsUsed = %d, want 2", got)
	}
}

func TestTracker_ConcurrentRecordPublishesFinalState(t *testing.T) {
	sink := &recordingSink{}
	tracker := NewTracker(sink, zerolog.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.Record(&Usage{CreditsUsed: int64Ptr(1)})
		}()
	}
	wg.Wait()
	tracker.Flush()

	last, _ := sink.last()
	if last.SessionCreditsUsed != 20 {
		t.Errorf("last published SessionCreditsUsed = %d, want 20", last.SessionCreditsUsed)
	}
}

func TestTracker_FlushWithoutSink(t *testing.T) {
	tracker := NewTracker(nil, zerolog.Nop())
	tracker.Record(NewUsage(1, 1))
	tracker.Flush()
}

func TestTracker_SinkErrorDoesNotAffectCounters(t *testing.T) {
	sink := &recordingSink{err: errors.New("redis down")}
	tracker := NewTracker(sink, zerolog.Nop())

	tracker.Record(NewUsage(4, 96))
	tracker.Flush()

	if got := tracker.SessionCreditsUsed(); got != 4 {
		t.Errorf("SessionCreditsUsed = %d, want 4", got)
	}
}

func TestSnapshot_IsLow(t *testing.T) {
	tests := []struct {
		name      string
		remaining int64
		threshold int64
		want      bool
	}{
		{"unknown", 0, 100, false},
		{"below", 50, 100, true},
		{"at threshold", 100, 100, false},
		{"above", 500, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := Snapshot{RemainingCredits: tt.remaining}
			if got := snap.IsLow(tt.threshold); got != tt.want {
				t.Errorf("IsLow(%d) = %v, want %v", tt.threshold, got, tt.want)
			}
		})
	}
}

func TestUsage_IsEmpty(t *testing.T) {
	var nilUsage *Usage
	if !nilUsage.IsEmpty() {
		t.Error("nil usage should be empty")
	}
	if !(&Usage{}).IsEmpty() {
		t.Error("usage without fields should be empty")
	}
	if NewUsage(0, 0).IsEmpty() {
		t.Error("usage with zero-valued fields is not empty")
	}
}
