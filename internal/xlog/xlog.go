// Package xlog provides conditional debug logging for the journey engine's
// surrounding tooling.
//
// Debug logging is enabled by setting the IDEADATE_DEBUG environment
// variable:
//
//	IDEADATE_DEBUG=1 ideadatectl suggestion-pack --plan plan.yaml
//
// When enabled, debug messages are written to stderr with timestamps. When
// disabled (default), every function here is a no-op with zero overhead.
// The scoring, arc, and constraint packages never import this package: they
// must stay pure and silent per the engine's determinism requirements.
package xlog

import (
	"fmt"
	"log"
	"os"
	"time"
)

var (
	enabled bool
	logger  *log.Logger
)

func init() {
	if os.Getenv("IDEADATE_DEBUG") != "" {
		enabled = true
		logger = log.New(os.Stderr, "[ideadate] ", log.Ltime|log.Lmicroseconds)
	}
}

// Enabled reports whether debug logging is active.
func Enabled() bool {
	return enabled
}

// SetEnabled allows programmatic control, mainly for tests.
func SetEnabled(e bool) {
	enabled = e
	if e && logger == nil {
		logger = log.New(os.Stderr, "[ideadate] ", log.Ltime|log.Lmicroseconds)
	}
}

// Log writes a debug message if enabled.
func Log(format string, args ...any) {
	if !enabled {
		return
	}
	logger.Printf(format, args...)
}

// LogTiming writes a timing message if enabled.
func LogTiming(name string, d time.Duration) {
	if !enabled {
		return
	}
	logger.Printf("%s took %v", name, d)
}

// LogEnterExit logs function entry and exit with timing. Usage:
//
//	defer xlog.LogEnterExit("suggestionPack")()
func LogEnterExit(name string) func() {
	if !enabled {
		return func() {}
	}
	logger.Printf("-> %s", name)
	start := time.Now()
	return func() {
		logger.Printf("<- %s (%v)", name, time.Since(start))
	}
}

// Dump logs a value with its type, for inspecting structured payloads.
func Dump(name string, v any) {
	if !enabled {
		return
	}
	logger.Printf("%s: %T = %+v", name, v, v)
}

// Assert panics with msg if cond is false and debug logging is enabled.
// Used only by CLI/ambient code paths, never inside the pure engine.
func Assert(cond bool, msg string) {
	if !enabled {
		return
	}
	if !cond {
		logger.Printf("ASSERTION FAILED: %s", msg)
		panic(fmt.Sprintf("debug assertion failed: %s", msg))
	}
}
