// Package anthropic adapts tool definitions to the Anthropic messages API.
package anthropic

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/casualjim/fmp/pkg/jsonx"
	"github.com/casualjim/fmp/tool"
)

// Tool converts def into a tool parameter for a messages request.
func Tool(def tool.Definition) (anthropic.ToolUnionParam, error) {
	schema := def.Schema(false)
	jv, err := jsonx.ToDynamicJSON(schema)
	if err != nil {
		return anthropic.ToolUnionParam{}, fmt.Errorf("failed to convert tool %s schema: %w", def.Name, err)
	}

	tp := anthropic.ToolParam{
		Name: def.Name,
		InputSchema: anthropic.ToolInputSchemaParam{
			Properties: jv["properties"],
			Required:   schema.Required,
		},
	}
	if ap, ok := jv["additionalProperties"]; ok {
		tp.InputSchema.ExtraFields = map[string]any{"additionalProperties": ap}
	}
	if def.Description != "" {
		tp.Description = anthropic.String(def.Description)
	}
	return anthropic.ToolUnionParam{OfTool: &tp}, nil
}

// Tools converts every definition, see Tool.
func Tools(defs []tool.Definition) ([]anthropic.ToolUnionParam, error) {
	out := make([]anthropic.ToolUnionParam, len(defs))
	for i, def := range defs {
		t, err := Tool(def)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// HandleToolUses runs the tool_use blocks of an assistant message concurrently
// and returns a tool_result block for each, in order. Failed calls are marked
// with is_error.
func HandleToolUses(ctx context.Context, lookup tool.Lookup, blocks []anthropic.ContentBlockUnion) []anthropic.ContentBlockParamUnion {
	var uses []anthropic.ContentBlockUnion
	for _, b := range blocks {
		if b.Type == "tool_use" {
			uses = append(uses, b)
		}
	}

	batch := make([]tool.Call, len(uses))
	for i, use := range uses {
		batch[i] = tool.Call{Name: use.Name, Args: use.Input}
	}
	results := tool.RunAll(ctx, lookup, batch)

	out := make([]anthropic.ContentBlockParamUnion, len(uses))
	for i, use := range uses {
		out[i] = anthropic.NewToolResultBlock(use.ID, results[i], tool.IsErrorText(results[i]))
	}
	return out
}

// ToolResultMessage answers the tool uses of msg with a user message. It
// reports false when msg contains no tool use.
func ToolResultMessage(ctx context.Context, lookup tool.Lookup, msg *anthropic.Message) (anthropic.MessageParam, bool) {
	results := HandleToolUses(ctx, lookup, msg.Content)
	if len(results) == 0 {
		return anthropic.MessageParam{}, false
	}
	return anthropic.NewUserMessage(results...), true
}
