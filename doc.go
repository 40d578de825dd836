/*
Package fmp exposes the Financial Modeling Prep API as tools for LLM agents.

The module is layered:

  - api: a typed client for the FMP REST API, one group per domain
  - tool: turns a typed Go function into a tool with a JSON schema, argument
    validation, defaults and logging
  - tools: the catalog of FMP tools built on api and tool
  - provider/openai, provider/anthropic, provider/mcp: adapters that hand the
    tools to OpenAI function calling, Anthropic tool use and MCP servers

A Toolkit wires the layers together:

	kit, err := fmp.New(api.APIKey(os.Getenv("FMP_API_KEY")))
	if err != nil {
		return err
	}
	defer kit.Close()

	params, err := kit.OpenAI(true)

Tool calls made by a model are answered with openai.HandleToolCalls or
anthropic.HandleToolUses, passing the Toolkit as the lookup. Failures never
escape a tool: they are returned to the model as "Error: <message>".

# Logging

Tool execution and API results are logged through log/slog when the
FMP_TOOLS_LOG_TOOL_EXECUTION and FMP_TOOLS_LOG_API_RESULTS environment
variables are set to true.
*/
package fmp
