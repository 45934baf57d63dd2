//go:build integration

package credits

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupRedis starts a Redis container and returns a client
func setupRedis(t *testing.T) (*redis.Client, func()) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	}

	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start Redis container: %v", err)
	}

	endpoint, err := redisContainer.Endpoint(ctx, "")
	if err != nil {
		t.Fatalf("Failed to get Redis endpoint: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: endpoint,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		t.Fatalf("Failed to connect to Redis: %v", err)
	}

	cleanup := func() {
		client.Close()
		redisContainer.Terminate(ctx)
	}

	return client, cleanup
}

func TestRedisSink_Integration_PublishAndLoad(t *testing.T) {
	redisClient, cleanup := setupRedis(t)
	defer cleanup()

	logger := zerolog.New(os.Stderr).Level(zerolog.Disabled)
	sink := NewRedisSink(redisClient, time.Hour)
	tracker := NewTracker(sink, logger)
	ctx := context.Background()

	// Nothing published yet
	empty, err := sink.Load(ctx, tracker.SessionID())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if empty.SessionCreditsUsed != 0 || empty.RemainingCredits != 0 {
		t.Errorf("empty snapshot = %+v, want zero counters", empty)
	}

	tracker.Record(NewUsage(5, 995))
	tracker.Record(NewUsage(3, 992))
	tracker.Flush()

	snap, err := sink.Load(ctx, tracker.SessionID())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if snap.SessionCreditsUsed != 8 {
		t.Errorf("SessionCreditsUsed = %d, want 8", snap.SessionCreditsUsed)
	}
	if snap.RemainingCredits != 992 {
		t.Errorf("RemainingCredits = %d, want 992", snap.RemainingCredits)
	}
	if snap.TakenAt.IsZero() {
		t.Error("TakenAt should be set")
	}

	ttl, err := redisClient.TTL(ctx, "parcl:credits:"+tracker.SessionID()+":session_used").Result()
	if err != nil {
		t.Fatalf("TTL() error = %v", err)
	}
	if ttl <= 0 || ttl > time.Hour {
		t.Errorf("TTL = %v, want (0, 1h]", ttl)
	}
}

func TestRedisSink_Integration_SessionsAreIsolated(t *testing.T) {
	redisClient, cleanup := setupRedis(t)
	defer cleanup()

	sink := NewRedisSink(redisClient, 0)
	a := NewTracker(sink, zerolog.Nop())
	b := NewTracker(sink, zerolog.Nop())
	ctx := context.Background()

	a.Record(NewUsage(10, 90))
	b.Record(NewUsage(1, 500))

	snapA, err := sink.Load(ctx, a.SessionID())
	if err != nil {
		t.Fatalf("Load(a) error = %v", err)
	}
	snapB, err := sink.Load(ctx, b.SessionID())
	if err != nil {
		t.Fatalf("Load(b) error = %v", err)
	}

	if snapA.SessionCreditsUsed != 10 || snapB.SessionCreditsUsed != 1 {
		t.Errorf("sessions leaked: a=%+v b=%+v", snapA, snapB)
	}
}
