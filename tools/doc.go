// Package tools exposes the FMP client as a catalog of LLM tools, one per
// endpoint, grouped by category:
//
//	client := api.Must(api.APIKey(key))
//	catalog := tools.NewCatalog(client)
//	out := catalog.Get("getStockQuote").Run(ctx, []byte(`{"symbol":"AAPL"}`))
//
// Tools returning long lists take a limit parameter so results fit in a
// model's context window.
package tools
