// Package logging provides zerolog-based structured logging for nordmenu.
//
// Loggers are configured once at command startup and flow through
// context.Context so every component logs with the same session ID.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Output destinations understood by Config.Output.
const (
	OutputStderr = "stderr"
	OutputFile   = "file"
)

// Format values understood by Config.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config describes how the root logger should be constructed.
type Config struct {
	// Level is a zerolog level name ("debug", "info", "warn", "error").
	Level string

	// Format selects console (human-readable) or json output.
	Format string

	// Output selects the destination: "stderr" or "file".
	Output string

	// File is the log file path when Output is "file".
	File string

	// Caller adds the caller file:line to each event.
	Caller bool
}

// LogPathResult reports where logs ended up after applying Config.
// When the configured file cannot be opened the logger falls back to
// stderr and records the reason.
type LogPathResult struct {
	Logger         zerolog.Logger
	UsingFile      bool
	FilePath       string
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file handle, if any.
func (r *LogPathResult) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLoggerWithPath builds the root logger and reports the resolved output path.
// A file open failure is not fatal: the logger falls back to stderr.
func NewLoggerWithPath(cfg Config) LogPathResult {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	result := LogPathResult{}

	var out io.Writer = os.Stderr
	if cfg.Output == OutputFile && cfg.File != "" {
		f, openErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if openErr != nil {
			result.FallbackUsed = true
			result.FallbackReason = openErr.Error()
		} else {
			result.UsingFile = true
			result.FilePath = cfg.File
			result.file = f
			out = f
		}
	}

	if cfg.Format != FormatJSON {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    result.UsingFile,
		}
	}

	logCtx := zerolog.New(out).Level(lvl).With().Timestamp()
	if cfg.Caller {
		logCtx = logCtx.Caller()
	}
	result.Logger = logCtx.Logger()

	return result
}

// NewLogger builds a root logger, discarding path information.
func NewLogger(cfg Config) zerolog.Logger {
	result := NewLoggerWithPath(cfg)
	return result.Logger
}

// ComponentLogger derives a sub-logger tagged with a component name.
func ComponentLogger(base zerolog.Logger, component string) zerolog.Logger {
	return base.With().Str("component", component).Logger()
}

// FromContext returns the logger attached to ctx, or a default
// stderr console logger when none is attached.
func FromContext(ctx context.Context) zerolog.Logger {
	if ctx != nil {
		if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
			return *l
		}
	}
	return defaultLogger()
}

// PrintLogPathMessage tells the user where file logging is going.
func PrintLogPathMessage(w io.Writer, path string) {
	fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user why file logging was not possible.
func PrintFallbackWarning(w io.Writer, reason string) {
	fmt.Fprintf(w, "Warning: could not open log file (%s), logging to stderr\n", reason)
}

func defaultLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}

type contextKey int

const sessionIDKey contextKey = iota

// NewSessionID generates a ULID identifying one interactive run.
// Every log event in the run carries it, which makes interleaved
// sessions in a shared log file separable.
func NewSessionID() string {
	return ulid.Make().String()
}

// ContextWithSessionID attaches a session ID to ctx.
func ContextWithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionIDFromContext returns the session ID attached to ctx, if any.
func SessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}

// GetOrGenerateSessionID returns the session ID from ctx, generating a
// fresh one when the context carries none.
func GetOrGenerateSessionID(ctx context.Context) string {
	if id := SessionIDFromContext(ctx); id != "" {
		return id
	}
	return NewSessionID()
}
