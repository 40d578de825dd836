/*
Package tool turns typed Go functions into tools that language models can call.

A tool is a function taking a context and an input struct. The struct doubles
as the tool's parameter schema: Parameters walks its fields and produces the
JSON schema object that function calling APIs expect.

# Defining a tool

	type quoteInput struct {
		Symbol string `json:"symbol" description:"Ticker symbol, e.g. AAPL"`
		Limit  int    `json:"limit" default:"5" minimum:"1"`
		Period string `json:"period,omitempty" enum:"annual,quarter"`
	}

	getQuote := tool.Must(func(ctx context.Context, in quoteInput) (*types.Quote, error) {
		return client.Quote.Get(ctx, in.Symbol)
	},
		tool.Name("getStockQuote"),
		tool.Description("Real-time quote for a ticker"),
		tool.Category("quote"),
	)

Symbol is required, Limit has a default and Period is optional. A pointer
field is optional as well.

# Running a tool

Run takes the raw JSON arguments from the model and always returns text:

	out := getQuote.Run(ctx, []byte(`{"symbol":"AAPL"}`))

The arguments are validated against the schema, absent fields receive their
defaults and the input is decoded into the struct. String results are
returned as they are, everything else as indented JSON. Errors are returned as
"Error: <message>" so the model can read them; use Invoke to keep the error.
RunAll answers the tool calls of one model turn concurrently.

Every invocation gets an id (see InvocationID) and is logged through
pkg/logx when FMP_TOOLS_LOG_TOOL_EXECUTION or FMP_TOOLS_LOG_API_RESULTS is set.

# Strict mode

OpenAI strict function calling requires every property to be listed as
required. Schema(true) returns that variant: fields that are optional or have
a default accept null instead, and Run drops null members before applying
defaults, so both variants accept the same calls.
*/
package tool
