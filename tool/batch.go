package tool

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// MaxParallel bounds how many calls of one RunAll execute at the same time.
const MaxParallel = 8

// Call is one tool invocation requested by a model.
type Call struct {
	Name string
	Args []byte
}

// RunAll executes calls concurrently and returns their Run output in call
// order. A call to a name lookup does not know yields "Error: unknown tool <name>".
func RunAll(ctx context.Context, lookup Lookup, calls []Call) []string {
	results := make([]string, len(calls))
	var g errgroup.Group
	g.SetLimit(MaxParallel)
	for i, call := range calls {
		def, ok := lookup.Get(call.Name)
		if !ok {
			results[i] = ErrorText(fmt.Errorf("unknown tool %s", call.Name))
			continue
		}
		g.Go(func() error {
			results[i] = def.Run(ctx, call.Args)
			return nil
		})
	}
	_ = g.Wait()
	return results
}
