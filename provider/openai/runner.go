package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/casualjim/fmp/pkg/slogx"
	"github.com/casualjim/fmp/tool"
	"github.com/fogfish/opts"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultMaxTurns bounds the model round trips of one Run.
const DefaultMaxTurns = 8

// ErrMaxTurns is returned when the model keeps calling tools past the turn limit.
var ErrMaxTurns = errors.New("openai: too many tool turns")

// Runner drives a chat completion until the model stops calling tools.
type Runner struct {
	client       *openai.Client
	model        string
	instructions string
	tools        tool.List
	strict       bool
	maxTurns     int
	logger       *slog.Logger
}

type RunnerOption = opts.Option[Runner]

var (
	// WithInstructions sets the system prompt.
	WithInstructions = opts.ForName[Runner, string]("instructions")
	// WithStrict turns on strict function calling.
	WithStrict = opts.ForName[Runner, bool]("strict")
	// WithMaxTurns overrides DefaultMaxTurns.
	WithMaxTurns = opts.ForName[Runner, int]("maxTurns")
	WithLogger   = opts.ForName[Runner, *slog.Logger]("logger")
)

// WithRequestOptions configures the underlying client, e.g. option.WithAPIKey or option.WithBaseURL.
func WithRequestOptions(options ...option.RequestOption) RunnerOption {
	return opts.Type[Runner](func(r *Runner) error {
		r.client = openai.NewClient(options...)
		return nil
	})
}

// NewRunner creates a runner for model with the given tools.
func NewRunner(model string, defs []tool.Definition, options ...RunnerOption) (*Runner, error) {
	r := Runner{
		model:    model,
		tools:    tool.List(defs),
		maxTurns: DefaultMaxTurns,
	}
	if err := opts.Apply(&r, options); err != nil {
		return nil, err
	}
	if r.client == nil {
		r.client = openai.NewClient()
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	r.logger = r.logger.With(slogx.LoggerName("openai.runner"))
	return &r, nil
}

// Run sends prompt and answers tool calls until the model produces a final
// answer. It returns that answer and the full conversation.
func (r *Runner) Run(ctx context.Context, prompt string) (string, []openai.ChatCompletionMessageParamUnion, error) {
	var history []openai.ChatCompletionMessageParamUnion
	if r.instructions != "" {
		history = append(history, openai.SystemMessage(r.instructions))
	}
	history = append(history, openai.UserMessage(prompt))
	return r.Continue(ctx, history)
}

// Continue is Run for an existing conversation.
func (r *Runner) Continue(ctx context.Context, history []openai.ChatCompletionMessageParamUnion) (string, []openai.ChatCompletionMessageParamUnion, error) {
	tools, err := Tools(r.tools, r.strict)
	if err != nil {
		return "", history, err
	}

	for turn := range r.maxTurns {
		params := openai.ChatCompletionNewParams{
			Messages: openai.F(history),
			Model:    openai.F(r.model),
		}
		if len(tools) > 0 {
			params.Tools = openai.F(tools)
		}

		chat, err := r.client.Chat.Completions.New(ctx, params)
		if err != nil {
			return "", history, err
		}
		if len(chat.Choices) == 0 {
			return "", history, fmt.Errorf("openai: completion %s has no choices", chat.ID)
		}

		msg := chat.Choices[0].Message
		history = append(history, msg)
		if len(msg.ToolCalls) == 0 {
			return msg.Content, history, nil
		}

		r.logger.DebugContext(ctx, "tool calls", slog.Int("turn", turn), slog.Int("calls", len(msg.ToolCalls)))
		history = append(history, HandleToolCalls(ctx, r.tools, msg.ToolCalls)...)
	}
	return "", history, ErrMaxTurns
}
