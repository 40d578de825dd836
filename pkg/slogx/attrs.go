package slogx

import (
	"log/slog"
	"time"
)

// Error returns a slog.Attr representing the provided error.
// The attribute key is "error" and the value is the error's message.
// A nil error yields an empty attribute, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}

// Tool names the tool an entry belongs to.
func Tool(name string) slog.Attr {
	return slog.String("tool", name)
}

// Invocation carries the id of a single tool execution.
func Invocation(id string) slog.Attr {
	return slog.String("invocation_id", id)
}

// Elapsed records a duration in milliseconds, the unit the tool logs are read in.
func Elapsed(d time.Duration) slog.Attr {
	return slog.Float64("duration_ms", float64(d.Microseconds())/1000)
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

const (
	// KeyLoggerName is the attribute key used for named loggers.
	KeyLoggerName = "logger"
)

// LoggerName returns an attribute for the logger name.
func LoggerName(name string) slog.Attr {
	return slog.String(KeyLoggerName, name)
}
