// Package logx is the console logger for tool executions.
//
// Output is off unless switched on through the environment, so a library user gets
// a quiet client by default:
//
//	FMP_TOOLS_LOG_TOOL_EXECUTION=true   tool start/end, input, duration
//	FMP_TOOLS_LOG_API_RESULTS=true      result size, token estimate and a preview
//
// The switches are read on every call. Entries go through log/slog; executables decide
// where slog writes (cmd/fmp-tools bridges it into a zerolog console writer).
package logx

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/casualjim/fmp/pkg/slogx"
)

const (
	EnvToolExecution = "FMP_TOOLS_LOG_TOOL_EXECUTION"
	EnvAPIResults    = "FMP_TOOLS_LOG_API_RESULTS"

	previewRunes = 500
	inputRunes   = 1000
)

// ToolExecutionEnabled reports whether tool start/end entries are written.
func ToolExecutionEnabled() bool { return enabled(EnvToolExecution) }

// APIResultsEnabled reports whether result details are written.
func APIResultsEnabled() bool { return enabled(EnvAPIResults) }

func enabled(key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return err == nil && v
}

// EstimateTokens approximates the number of LLM tokens in s at four characters per token.
func EstimateTokens(s string) int {
	n := utf8.RuneCountInString(s)
	return (n + 3) / 4
}

// Logger writes tool execution entries. The zero value logs to slog.Default().
type Logger struct {
	logger *slog.Logger
}

// New returns a Logger writing to l; nil means slog.Default() at the time of each call.
func New(l *slog.Logger) *Logger {
	return &Logger{logger: l}
}

func (l *Logger) slog() *slog.Logger {
	if l == nil || l.logger == nil {
		return slog.Default()
	}
	return l.logger
}

// ToolStart records the beginning of a tool invocation together with its raw input.
func (l *Logger) ToolStart(ctx context.Context, name, invocationID string, input []byte) {
	if !ToolExecutionEnabled() {
		return
	}
	l.slog().LogAttrs(ctx, slog.LevelInfo, "tool start",
		slogx.Tool(name),
		slogx.Invocation(invocationID),
		slog.String("input", slogx.Truncate(string(input), inputRunes)),
	)
}

// ToolEnd records a successful invocation. With API result logging on it adds the
// size of the result, the token estimate and a preview.
func (l *Logger) ToolEnd(ctx context.Context, name, invocationID string, elapsed time.Duration, result string) {
	execution, results := ToolExecutionEnabled(), APIResultsEnabled()
	if !execution && !results {
		return
	}
	attrs := []slog.Attr{
		slogx.Tool(name),
		slogx.Invocation(invocationID),
		slogx.Elapsed(elapsed),
	}
	if results {
		attrs = append(attrs,
			slog.Int("result_chars", utf8.RuneCountInString(result)),
			slog.Int("estimated_tokens", EstimateTokens(result)),
			slog.String("preview", slogx.Truncate(result, previewRunes)),
		)
	}
	l.slog().LogAttrs(ctx, slog.LevelInfo, "tool end", attrs...)
}

// ToolError records a failed invocation.
func (l *Logger) ToolError(ctx context.Context, name, invocationID string, elapsed time.Duration, err error) {
	if !ToolExecutionEnabled() {
		return
	}
	l.slog().LogAttrs(ctx, slog.LevelError, "tool error",
		slogx.Tool(name),
		slogx.Invocation(invocationID),
		slogx.Elapsed(elapsed),
		slogx.Error(err),
	)
}
