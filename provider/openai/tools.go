package openai

import (
	"context"
	"fmt"

	"github.com/casualjim/fmp/pkg/jsonx"
	"github.com/casualjim/fmp/tool"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"
)

// Tool converts def into a chat completion function tool. With strict set the
// strict parameter schema is used and the function is marked strict.
func Tool(def tool.Definition, strict bool) (openai.ChatCompletionToolParam, error) {
	jv, err := jsonx.ToDynamicJSON(def.Schema(strict))
	if err != nil {
		return openai.ChatCompletionToolParam{}, fmt.Errorf("failed to convert tool %s schema: %w", def.Name, err)
	}

	fd := openai.FunctionDefinitionParam{
		Name:       openai.String(def.Name),
		Parameters: openai.F(shared.FunctionParameters(jv)),
	}
	if def.Description != "" {
		fd.Description = openai.String(def.Description)
	}
	if strict {
		fd.Strict = openai.Bool(true)
	}
	return openai.ChatCompletionToolParam{
		Type:     openai.F(openai.ChatCompletionToolTypeFunction),
		Function: openai.F(fd),
	}, nil
}

// Tools converts every definition, see Tool.
func Tools(defs []tool.Definition, strict bool) ([]openai.ChatCompletionToolParam, error) {
	out := make([]openai.ChatCompletionToolParam, len(defs))
	for i, def := range defs {
		t, err := Tool(def, strict)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// HandleToolCalls runs the tool calls of an assistant message concurrently and
// returns one tool message per call, in call order. Failures, including calls
// to tools lookup does not know, are reported to the model as "Error: ..." text.
func HandleToolCalls(ctx context.Context, lookup tool.Lookup, calls []openai.ChatCompletionMessageToolCall) []openai.ChatCompletionMessageParamUnion {
	batch := make([]tool.Call, len(calls))
	for i, call := range calls {
		batch[i] = tool.Call{Name: call.Function.Name, Args: []byte(call.Function.Arguments)}
	}
	results := tool.RunAll(ctx, lookup, batch)

	out := make([]openai.ChatCompletionMessageParamUnion, len(calls))
	for i, call := range calls {
		out[i] = openai.ToolMessage(call.ID, results[i])
	}
	return out
}
