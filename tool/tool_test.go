package tool

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoInput struct {
	Text string `json:"text" description:"Text to echo"`
}

func echo(_ context.Context, in echoInput) (string, error) {
	return in.Text, nil
}

func TestNew(t *testing.T) {
	def, err := New(echo, Name("echo"), Description("Echoes text"), Category("test"))
	require.NoError(t, err)
	assert.Equal(t, "echo", def.Name)
	assert.Equal(t, "Echoes text", def.Description)
	assert.Equal(t, "test", def.Category)
	assert.Equal(t, reflect.TypeOf(echoInput{}), def.InputType())
	require.NotNil(t, def.Schema(false))
	require.NotNil(t, def.Schema(true))
	assert.Equal(t, []string{"text"}, def.Schema(false).Required)
}

func TestNew_Names(t *testing.T) {
	tests := []struct {
		name    string
		tool    string
		wantErr error
	}{
		{"simple", "getStockQuote", nil},
		{"snake and dash", "get_quote-v2", nil},
		{"trimmed", "  echo ", nil},
		{"missing", "", ErrMissingName},
		{"blank", "   ", ErrMissingName},
		{"spaces", "get quote", ErrInvalidName},
		{"dots", "quote.get", ErrInvalidName},
		{"too long", "a123456789b123456789c123456789d123456789e123456789f123456789g12345", ErrInvalidName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(echo, Name(tt.tool))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNew_RejectsBadInput(t *testing.T) {
	_, err := New(func(context.Context, string) (string, error) { return "", nil }, Name("bad"))
	require.ErrorIs(t, err, ErrUnsupportedInput)

	_, err = New[echoInput, string](nil, Name("nil"))
	require.Error(t, err)
}

func TestNew_PointerInput(t *testing.T) {
	def, err := New(func(_ context.Context, in *echoInput) (string, error) {
		return in.Text, nil
	}, Name("echoPtr"))
	require.NoError(t, err)
	assert.Equal(t, "hi", def.Run(context.Background(), []byte(`{"text":"hi"}`)))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(echo, Name("echo")) })
	assert.Panics(t, func() { Must(echo) })
}

func TestList_Get(t *testing.T) {
	l := List{Must(echo, Name("a")), Must(echo, Name("b"))}

	d, ok := l.Get("b")
	require.True(t, ok)
	assert.Equal(t, "b", d.Name)

	_, ok = l.Get("c")
	assert.False(t, ok)
}
