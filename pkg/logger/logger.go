// Package logger holds the process-wide zerolog instance. Call Init once
// during startup, then Get from anywhere that needs to log.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options selects the output shape of the shared logger.
type Options struct {
	// Level is the minimum severity that gets emitted. One of trace,
	// debug, info, warn, error; anything else falls back to info.
	Level string
	// Pretty switches from JSON lines to a colourised console format.
	Pretty bool
	// Output defaults to os.Stdout when nil.
	Output io.Writer
}

var (
	once    sync.Once
	shared  zerolog.Logger
	hasInit bool
)

// Init builds the shared logger. Only the first call takes effect; later
// calls return the already-built instance.
func Init(opts Options) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		var out io.Writer = os.Stdout
		if opts.Output != nil {
			out = opts.Output
		}
		if opts.Pretty {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		}

		level := parseLevel(opts.Level)
		zerolog.SetGlobalLevel(level)

		shared = zerolog.New(out).
			Level(level).
			With().
			Timestamp().
			Caller().
			Logger()
		hasInit = true
	})
	return shared
}

// Get returns the shared logger and panics when Init has not run yet. The
// panic surfaces wiring mistakes immediately instead of dropping logs.
func Get() zerolog.Logger {
	if !hasInit {
		panic("logger: Get called before Init")
	}
	return shared
}

// Reset discards the shared logger so a following Init rebuilds it. Only
// tests should need this.
func Reset() {
	once = sync.Once{}
	shared = zerolog.Logger{}
	hasInit = false
}

func parseLevel(s string) zerolog.Level {
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
