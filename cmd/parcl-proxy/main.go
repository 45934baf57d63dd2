package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Sternrassler/parcl-client/pkg/cache"
	"github.com/Sternrassler/parcl-client/pkg/client"
	"github.com/Sternrassler/parcl-client/pkg/credits"
	"github.com/Sternrassler/parcl-client/pkg/logging"
	"github.com/Sternrassler/parcl-client/pkg/metrics"
	"github.com/Sternrassler/parcl-client/pkg/models"
	"github.com/Sternrassler/parcl-client/pkg/pagination"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// requestTimeout bounds one proxied call, pagination included.
const requestTimeout = 60 * time.Second

func main() {
	logCfg := logging.FromEnv()
	if logCfg.Service == "" {
		logCfg.Service = "parcl-proxy"
	}
	logging.Setup(logCfg)

	// Configuration from environment
	port := getEnv("PORT", "8080")
	redisURL := getEnv("REDIS_URL", "")
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", cache.DefaultTTL.String()))
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid CACHE_TTL")
	}

	cfg, err := client.ConfigFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid client configuration")
	}
	cfg.CacheTTL = cacheTTL

	var cacheManager *cache.Manager
	if redisURL != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: redisURL})
		defer redisClient.Close()

		cacheManager = cache.NewManager(redisClient)
		if err := cacheManager.Ping(context.Background()); err != nil {
			log.Fatal().Err(err).Str("redis", redisURL).Msg("Failed to connect to Redis")
		}

		cfg.Cache = cacheManager
		cfg.CreditSink = credits.NewRedisSink(redisClient, 24*time.Hour)
		log.Info().Str("redis", redisURL).Dur("cache_ttl", cacheTTL).Msg("Connected to Redis")
	}

	parcl, err := client.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Parcl client")
	}
	defer parcl.Close()

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           newMux(parcl, cacheManager),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("base_url", parcl.BaseURL()).
			Str("session_id", parcl.SessionID()).
			Msg("Starting Parcl proxy server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

// newMux wires the proxy routes. cacheManager may be nil.
func newMux(parcl *client.Client, cacheManager *cache.Manager) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/ready", readyHandler(cacheManager))
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/credits", creditsHandler(parcl))
	mux.HandleFunc("/markets", marketsHandler(parcl))
	mux.HandleFunc("/snapshot", snapshotHandler(parcl))
	return mux
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}

// readyHandler reports 503 while the response cache is unreachable.
func readyHandler(cacheManager *cache.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cacheManager != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := cacheManager.Ping(ctx); err != nil {
				log.Warn().Err(err).Msg("Readiness check failed")
				http.Error(w, "redis unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	}
}

func creditsHandler(parcl *client.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, parcl.Credits())
	}
}

// marketsHandler proxies market search.
// Query: query, state, location_type, limit, all=true for every page.
func marketsHandler(parcl *client.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		params := client.SearchParams{
			Query:             q.Get("query"),
			StateAbbreviation: q.Get("state"),
			LocationType:      models.LocationType(q.Get("location_type")),
		}
		if v := q.Get("limit"); v != "" {
			limit, err := strconv.Atoi(v)
			if err != nil || limit < 0 {
				http.Error(w, "limit must be a non-negative integer", http.StatusBadRequest)
				return
			}
			params.Limit = limit
		}
		params.AutoPaginate, _ = strconv.ParseBool(q.Get("all"))

		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		page, err := parcl.Search().Markets(ctx, params)
		if err != nil {
			writeError(w, "search.markets", err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

// marketSnapshot is the combined view served by /snapshot.
type marketSnapshot struct {
	ParclID            int64                                       `json:"parcl_id"`
	HousingEventCounts *pagination.Page[models.HousingEventCounts] `json:"housing_event_counts"`
	HousingEventPrices *pagination.Page[models.HousingEventPrices] `json:"housing_event_prices"`
	ForSaleInventory   *pagination.Page[models.ForSaleInventory]   `json:"for_sale_inventory"`
	Credits            credits.Snapshot                            `json:"credits"`
}

// snapshotHandler fetches several metrics of one market concurrently.
// The first failure cancels the remaining fetches.
func snapshotHandler(parcl *client.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parclID, err := strconv.ParseInt(r.URL.Query().Get("parcl_id"), 10, 64)
		if err != nil || parclID <= 0 {
			http.Error(w, "parcl_id must be a positive integer", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		params := client.MetricsParams{AutoPaginate: true}
		snap := marketSnapshot{ParclID: parclID}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			page, err := parcl.MarketMetrics().HousingEventCounts(gctx, parclID, params)
			snap.HousingEventCounts = page
			return err
		})
		g.Go(func() error {
			page, err := parcl.MarketMetrics().HousingEventPrices(gctx, parclID, params)
			snap.HousingEventPrices = page
			return err
		})
		g.Go(func() error {
			page, err := parcl.ForSaleMetrics().ForSaleInventory(gctx, parclID, params)
			snap.ForSaleInventory = page
			return err
		})
		if err := g.Wait(); err != nil {
			writeError(w, "snapshot", err)
			return
		}

		snap.Credits = parcl.Credits()
		writeJSON(w, http.StatusOK, snap)
	}
}

// statusFor maps a client error to the proxy's response status.
func statusFor(err error) int {
	var apiErr *client.APIError
	var rlErr *client.RateLimitError

	switch {
	case errors.Is(err, client.ErrInvalidParameter):
		return http.StatusBadRequest
	case errors.As(err, &rlErr):
		return http.StatusTooManyRequests
	case errors.As(err, &apiErr) && apiErr.ErrorClass() == client.ErrorClassClient:
		return apiErr.StatusCode
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

func writeError(w http.ResponseWriter, operation string, err error) {
	status := statusFor(err)
	log.Warn().Err(err).Str("operation", operation).Int("status", status).Msg("Proxy request failed")
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to write response")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
