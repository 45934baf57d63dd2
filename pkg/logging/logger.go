// Package logging configures zerolog for the Parcl Labs client and proxy.
//
// Binaries call Setup once at startup. Library code asks for a component
// logger with NewLogger; until Setup runs, those loggers only emit warnings
// and errors, so importing the client never floods a host program's stderr
// with per-page debug lines.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogLevel is a level name as accepted in LOG_LEVEL.
type LogLevel string

const (
	LevelTrace LogLevel = "trace"
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"

	// LevelOff silences all output, including request failures.
	LevelOff LogLevel = "off"
)

// Environment variables read by FromEnv.
const (
	EnvLevel   = "LOG_LEVEL"
	EnvPretty  = "LOG_PRETTY"
	EnvService = "LOG_SERVICE"
)

// unconfiguredLevel caps component loggers handed out before Setup.
const unconfiguredLevel = zerolog.WarnLevel

var configured atomic.Bool

// Config holds logger configuration.
type Config struct {
	Level LogLevel

	// Pretty switches from JSON lines to zerolog's console writer.
	Pretty bool

	// Output defaults to os.Stderr.
	Output io.Writer

	// Service, when set, is attached to every line as "service".
	Service string
}

// DefaultConfig returns info-level JSON logging to stderr.
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Output: os.Stderr,
	}
}

// Setup installs the global logger and level. Durations such as retry
// backoff are written in milliseconds.
func Setup(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.DurationFieldUnit = time.Millisecond

	ctx := zerolog.New(out).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	log.Logger = ctx.Logger()
	configured.Store(true)

	return log.Logger
}

// parseLevel maps a level name onto zerolog. Unknown names fall back to info.
func parseLevel(level LogLevel) zerolog.Level {
	name := strings.ToLower(strings.TrimSpace(string(level)))
	switch name {
	case "warning":
		return zerolog.WarnLevel
	case "off", "none":
		return zerolog.Disabled
	}

	parsed, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		return zerolog.InfoLevel
	}
	return parsed
}

// NewLogger returns a child of the global logger tagged with component.
// Before Setup has run it is capped at warn.
func NewLogger(component string) zerolog.Logger {
	logger := log.With().Str("component", component).Logger()
	if !configured.Load() {
		logger = logger.Level(unconfiguredLevel)
	}
	return logger
}

// FromEnv builds a Config from LOG_LEVEL, LOG_PRETTY and LOG_SERVICE.
// Unset or unparsable values keep their DefaultConfig values.
func FromEnv() Config {
	cfg := DefaultConfig()
	if v := strings.TrimSpace(os.Getenv(EnvLevel)); v != "" {
		cfg.Level = LogLevel(strings.ToLower(v))
	}
	if pretty, err := strconv.ParseBool(os.Getenv(EnvPretty)); err == nil {
		cfg.Pretty = pretty
	}
	cfg.Service = os.Getenv(EnvService)
	return cfg
}

// Log Level Guidelines:
//
// Debug: Detailed information for debugging
//   - Cache operations (hit, miss, key, TTL)
//   - Request flow (operation, method, path)
//   - Credit usage after every page
//
// Info: Normal operation events
//   - Multi-page collections completed
//   - Requests that succeeded after a 429 retry
//   - Server startup/shutdown
//
// Warn: Warning conditions that don't prevent operation
//   - 429 responses and retry backoff
//   - Retries exhausted
//   - Cache errors (request goes to the API instead)
//   - Failed credit snapshot publishes
//   - Pagination aborted part way
//
// Error: Error conditions requiring attention
//   - Transport failures
//   - Configuration errors
//
// Context Fields:
//   - service: binary name, set by Setup from LOG_SERVICE
//   - component: library part, set by NewLogger
//   - operation: endpoint name such as market_metrics.housing_stock
//   - status: HTTP status code
//   - attempt: 0-indexed attempt number
//   - backoff: wait before the next retry
//   - error_class: client, server, rate_limit, network, parse
//   - session_id: credit session of the client
//   - session_credits_used / remaining_credits: credit counters
//   - pages / items: pagination totals
//   - ttl: cache entry TTL
