package tool

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAll(t *testing.T) {
	type echoInput struct {
		Word string `json:"word"`
	}
	echo := Must(func(_ context.Context, in echoInput) (string, error) {
		if in.Word == "boom" {
			return "", fmt.Errorf("exploded")
		}
		return "echo " + in.Word, nil
	}, Name("echo"))

	out := RunAll(context.Background(), List{echo}, []Call{
		{Name: "echo", Args: []byte(`{"word":"one"}`)},
		{Name: "missing", Args: []byte(`{}`)},
		{Name: "echo", Args: []byte(`{"word":"boom"}`)},
		{Name: "echo", Args: []byte(`{"word":"two"}`)},
	})
	require.Len(t, out, 4)
	assert.Equal(t, "echo one", out[0])
	assert.Equal(t, "Error: unknown tool missing", out[1])
	assert.Equal(t, "Error: exploded", out[2])
	assert.Equal(t, "echo two", out[3])

	assert.Empty(t, RunAll(context.Background(), List{echo}, nil))
}

func TestRunAll_Limit(t *testing.T) {
	var running, peak atomic.Int32
	slow := Must(func(_ context.Context, _ struct{}) (string, error) {
		n := running.Add(1)
		defer running.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		return "ok", nil
	}, Name("slow"))

	calls := make([]Call, MaxParallel*3)
	for i := range calls {
		calls[i] = Call{Name: "slow"}
	}
	out := RunAll(context.Background(), List{slow}, calls)
	assert.Len(t, out, len(calls))
	assert.LessOrEqual(t, peak.Load(), int32(MaxParallel))
	assert.Positive(t, peak.Load())
}
