// Package logger holds the process-wide zerolog instance.
//
// Call Setup once during startup, then Get from any package. Component
// returns a child logger tagged with the subsystem name.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the output shape of the shared logger.
type Config struct {
	// Service is stamped on every event as the "service" field.
	Service string
	// Level is the minimum level to emit: trace, debug, info, warn or
	// error. Unknown values fall back to info.
	Level string
	// Console switches from JSON to colourised console output.
	Console bool
	// Writer overrides the destination. Nil means os.Stdout.
	Writer io.Writer
}

var (
	mu     sync.Mutex
	shared zerolog.Logger
	ready  bool
)

// Setup builds the shared logger. The first call wins; later calls return
// the logger built by the first.
func Setup(cfg Config) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if ready {
		return shared
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if cfg.Console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	lvl := levelFromString(cfg.Level)
	zerolog.SetGlobalLevel(lvl)

	ctx := zerolog.New(w).Level(lvl).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	shared = ctx.Logger()
	ready = true
	return shared
}

// Get returns the shared logger. Panics when Setup has not run.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !ready {
		panic("logger: Get called before Setup")
	}
	return shared
}

// Component returns the shared logger tagged with a subsystem name.
func Component(name string) zerolog.Logger {
	return Get().With().Str("component", name).Logger()
}

// Reset discards the shared logger so the next Setup rebuilds it. Test use
// only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	shared = zerolog.Logger{}
	ready = false
}

func levelFromString(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
