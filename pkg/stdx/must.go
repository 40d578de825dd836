// Package stdx holds small generic helpers.
package stdx

// Must1 returns v when err is nil and panics otherwise.
//
// It is used by the Must* constructors of the tool and tools packages, where the
// input is fixed at compile time and a failure is a programming error:
//
//	def := stdx.Must1(tool.New(getQuote, tool.Name("getStockQuote")))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
