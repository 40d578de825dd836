package openai

import (
	"context"
	"errors"
	"testing"

	"github.com/casualjim/fmp/tool"
	"github.com/openai/openai-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quoteInput struct {
	Symbol string `json:"symbol" description:"Ticker"`
	Limit  int    `json:"limit" default:"3"`
}

func testTools() tool.List {
	return tool.List{
		tool.Must(func(_ context.Context, in quoteInput) (map[string]any, error) {
			return map[string]any{"symbol": in.Symbol, "limit": in.Limit}, nil
		}, tool.Name("getQuote"), tool.Description("Quote a ticker")),
		tool.Must(func(_ context.Context, _ quoteInput) (string, error) {
			return "", errors.New("upstream down")
		}, tool.Name("broken")),
	}
}

func TestTool(t *testing.T) {
	defs := testTools()

	p, err := Tool(defs[0], false)
	require.NoError(t, err)
	assert.Equal(t, openai.ChatCompletionToolTypeFunction, p.Type.Value)
	fn := p.Function.Value
	assert.Equal(t, "getQuote", fn.Name.Value)
	assert.Equal(t, "Quote a ticker", fn.Description.Value)
	assert.False(t, fn.Strict.Present)

	params := fn.Parameters.Value
	assert.Equal(t, "object", params["type"])
	assert.Equal(t, []any{"symbol"}, params["required"])
	assert.Equal(t, false, params["additionalProperties"])
	props := params["properties"].(map[string]any)
	assert.Contains(t, props, "symbol")
	assert.Contains(t, props, "limit")
}

func TestTool_Strict(t *testing.T) {
	p, err := Tool(testTools()[0], true)
	require.NoError(t, err)
	fn := p.Function.Value
	assert.True(t, fn.Strict.Value)
	assert.Equal(t, []any{"symbol", "limit"}, fn.Parameters.Value["required"])
	assert.Equal(t, "Quote a ticker", fn.Description.Value)
}

func TestTools(t *testing.T) {
	got, err := Tools(testTools(), false)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "broken", got[1].Function.Value.Name.Value)
	assert.False(t, got[1].Function.Value.Description.Present)
}

func TestHandleToolCalls(t *testing.T) {
	calls := []openai.ChatCompletionMessageToolCall{
		{ID: "call_1", Function: openai.ChatCompletionMessageToolCallFunction{Name: "getQuote", Arguments: `{"symbol":"AAPL"}`}},
		{ID: "call_2", Function: openai.ChatCompletionMessageToolCallFunction{Name: "nope", Arguments: `{}`}},
		{ID: "call_3", Function: openai.ChatCompletionMessageToolCallFunction{Name: "broken", Arguments: `{"symbol":"AAPL"}`}},
		{ID: "call_4", Function: openai.ChatCompletionMessageToolCallFunction{Name: "getQuote", Arguments: `{"limit":2}`}},
	}

	msgs := HandleToolCalls(context.Background(), testTools(), calls)
	require.Len(t, msgs, 4)

	content := func(i int) (string, string) {
		m, ok := msgs[i].(openai.ChatCompletionToolMessageParam)
		require.True(t, ok)
		require.NotEmpty(t, m.Content.Value)
		return m.ToolCallID.Value, m.Content.Value[0].Text.Value
	}

	id, text := content(0)
	assert.Equal(t, "call_1", id)
	assert.JSONEq(t, `{"symbol":"AAPL","limit":3}`, text)

	id, text = content(1)
	assert.Equal(t, "call_2", id)
	assert.Equal(t, "Error: unknown tool nope", text)

	_, text = content(2)
	assert.Equal(t, "Error: upstream down", text)

	_, text = content(3)
	assert.Contains(t, text, "Error: invalid arguments")
}
