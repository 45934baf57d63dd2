//go:build integration

package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/Sternrassler/parcl-client/internal/testutil"
	"github.com/Sternrassler/parcl-client/pkg/cache"
	"github.com/Sternrassler/parcl-client/pkg/credits"
	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupRedisContainer creates a Redis container for integration testing.
func setupRedisContainer(t *testing.T) (*redis.Client, func()) {
	t.Helper()

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

	host, err := redisContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := redisContainer.MappedPort(ctx, "6379")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: host + ":" + port.Port(),
	})

	cleanup := func() {
		client.Close()
		redisContainer.Terminate(ctx)
	}

	return client, cleanup
}

func TestIntegration_CachedPaginationWithCreditSink(t *testing.T) {
	redisClient, cleanup := setupRedisContainer(t)
	defer cleanup()

	const path = "/v1/rental_market_metrics/2900187/gross_yield"
	mock := testutil.NewMockParcl()
	defer mock.Close()
	mock.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		item := []map[string]any{{"date": "2024-01-01", "pct_gross_yield": 5.2, "pct_gross_yield_ma": 5.0}}
		if r.URL.Query().Get("offset") == "1" {
			w.Write([]byte(testutil.PageJSON(item, 2, 1, 1, "", 1, 98)))
			return
		}
		w.Write([]byte(testutil.PageJSON(item, 2, 1, 0, path+"?limit=1&offset=1", 1, 99)))
	})

	sink := credits.NewRedisSink(redisClient, 0)
	c, _ := newTestClient(t, mock, func(cfg *Config) {
		cfg.Cache = cache.NewManager(redisClient)
		cfg.CreditSink = sink
	})
	ctx := context.Background()
	params := MetricsParams{Limit: 1, AutoPaginate: true}

	first, err := c.RentalMetrics().GrossYield(ctx, 2900187, params)
	if err != nil {
		t.Fatalf("first GrossYield() error = %v", err)
	}
	if len(first.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(first.Items))
	}
	if got := mock.GetRequestCount(); got != 2 {
		t.Errorf("requests after first call = %d, want 2", got)
	}

	// Both pages now come from Redis and cost nothing.
	second, err := c.RentalMetrics().GrossYield(ctx, 2900187, params)
	if err != nil {
		t.Fatalf("second GrossYield() error = %v", err)
	}
	if len(second.Items) != 2 {
		t.Errorf("cached items = %d, want 2", len(second.Items))
	}
	if got := mock.GetRequestCount(); got != 2 {
		t.Errorf("requests after second call = %d, want 2", got)
	}

	snap := c.Credits()
	if snap.SessionCreditsUsed != 2 || snap.RemainingCredits != 98 {
		t.Errorf("credits = %+v, want used=2 remaining=98", snap)
	}

	// Close drains the background publisher.
	c.Close()
	stored, err := sink.Load(ctx, c.SessionID())
	if err != nil {
		t.Fatalf("sink.Load() error = %v", err)
	}
	if stored.SessionCreditsUsed != 2 || stored.RemainingCredits != 98 {
		t.Errorf("published snapshot = %+v, want used=2 remaining=98", stored)
	}
}
