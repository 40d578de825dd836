package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/casualjim/fmp/api"
	"github.com/casualjim/fmp/pkg/logx"
	"github.com/casualjim/fmp/tool"
	"github.com/casualjim/fmp/tools"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func init() {
	color.NoColor = true
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(api.EnvAPIKey, "")

	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fmp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func fakeFMP(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/quote/AAPL" || r.URL.Query().Get("apikey") != "file-key" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"Error Message":"not routed"}`))
			return
		}
		_, _ = w.Write([]byte(`[{"symbol":"AAPL","name":"Apple Inc.","price":190.5}]`))
	}))
	t.Cleanup(srv.Close)
	return writeConfig(t, "api_key: file-key\nbase_url: "+srv.URL+"\n")
}

func TestList(t *testing.T) {
	out, err := execute(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "quote\n")
	assert.Contains(t, out, "getStockQuote")
	assert.Contains(t, out, "senate-house\n")
	assert.Contains(t, out, "getHouseTrades")

	out, err = execute(t, "", "list", "--category", "etf")
	require.NoError(t, err)
	assert.Contains(t, out, "getETFHoldings")
	assert.NotContains(t, out, "getStockQuote")

	_, err = execute(t, "", "list", "-c", "crypto-futures")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestSchema(t *testing.T) {
	t.Run("generic", func(t *testing.T) {
		out, err := execute(t, "", "schema", "getStockQuote")
		require.NoError(t, err)
		assert.Equal(t, "object", gjson.Get(out, "type").String())
		assert.Equal(t, "string", gjson.Get(out, "properties.symbol.type").String())
		assert.Equal(t, int64(1), gjson.Get(out, "required.#").Int())
		assert.Equal(t, "symbol", gjson.Get(out, "required.0").String())
	})

	t.Run("openai strict", func(t *testing.T) {
		out, err := execute(t, "", "schema", "getIncomeStatement", "--format", "openai", "--strict")
		require.NoError(t, err)
		assert.Equal(t, "function", gjson.Get(out, "type").String())
		assert.Equal(t, "getIncomeStatement", gjson.Get(out, "function.name").String())
		assert.True(t, gjson.Get(out, "function.strict").Bool())
		assert.False(t, gjson.Get(out, "function.parameters.properties.period.default").Exists())
		assert.Equal(t, "null", gjson.Get(out, "function.parameters.properties.period.anyOf.1.type").String())
	})

	t.Run("anthropic", func(t *testing.T) {
		out, err := execute(t, "", "schema", "getStockQuote", "-f", "anthropic")
		require.NoError(t, err)
		assert.Equal(t, "getStockQuote", gjson.Get(out, "name").String())
		assert.True(t, gjson.Get(out, "input_schema.properties.symbol").Exists())
	})

	t.Run("errors", func(t *testing.T) {
		_, err := execute(t, "", "schema", "getNothing")
		require.ErrorIs(t, err, tools.ErrUnknownTool)

		_, err = execute(t, "", "schema", "getStockQuote", "--format", "yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown format "yaml"`)

		_, err = execute(t, "", "schema")
		require.Error(t, err)
	})
}

func TestCall(t *testing.T) {
	cfg := fakeFMP(t)

	t.Run("inline arguments", func(t *testing.T) {
		out, err := execute(t, "", "--config", cfg, "call", "getStockQuote", `{"symbol":"aapl"}`)
		require.NoError(t, err)
		assert.Equal(t, 190.5, gjson.Get(out, "price").Float())
	})

	t.Run("arguments from stdin", func(t *testing.T) {
		out, err := execute(t, `{"symbol":"AAPL"}`, "--config", cfg, "call", "getStockQuote", "-")
		require.NoError(t, err)
		assert.Equal(t, "Apple Inc.", gjson.Get(out, "name").String())
	})

	t.Run("invalid arguments", func(t *testing.T) {
		_, err := execute(t, "", "--config", cfg, "call", "getStockQuote", `{"ticker":"AAPL"}`)
		require.ErrorIs(t, err, tool.ErrInvalidArguments)
	})

	t.Run("api key flag wins", func(t *testing.T) {
		_, err := execute(t, "", "--config", cfg, "--api-key", "flag-key", "call", "getStockQuote", `{"symbol":"AAPL"}`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("missing api key", func(t *testing.T) {
		_, err := execute(t, "", "call", "getStockQuote", `{"symbol":"AAPL"}`)
		require.ErrorIs(t, err, api.ErrMissingAPIKey)
	})
}

func TestDocs(t *testing.T) {
	out, err := execute(t, "", "docs", "--raw")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# FMP tools\n"))
	assert.Contains(t, out, "\n## financial\n")
	assert.Contains(t, out, "\n### getIncomeStatement\n")
	assert.Contains(t, out, "| `period` | string (annual, quarter) | no | `annual` |")
	assert.Contains(t, out, "| `symbol` | string | yes |  |")
	assert.Contains(t, out, "No parameters.")
	assert.Contains(t, out, "51 tools in 12 categories.")
}

func TestSelectTools(t *testing.T) {
	catalog := tools.NewCatalog(api.Must(api.APIKey("k")))

	defs, err := selectTools(catalog, "", nil)
	require.NoError(t, err)
	assert.Len(t, defs, len(catalog.Names()))

	defs, err = selectTools(catalog, tools.CategoryEconomic, nil)
	require.NoError(t, err)
	assert.Len(t, defs, 2)

	defs, err = selectTools(catalog, tools.CategoryEconomic, []string{"getStockQuote"})
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "getStockQuote", defs[0].Name)

	_, err = selectTools(catalog, "", []string{"getNothing"})
	require.ErrorIs(t, err, tools.ErrUnknownTool)

	_, err = selectTools(catalog, "nope", nil)
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Zero(t, cfg)

	path := writeConfig(t, `
api_key: abc
base_url: http://localhost:9999
timeout: 5s
rate_limit: 120
strict: true
log:
  tool_execution: true
`)
	cfg, err = loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "abc", cfg.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 120, cfg.RateLimit)
	assert.True(t, cfg.Strict)
	require.NotNil(t, cfg.Log.ToolExecution)
	assert.Nil(t, cfg.Log.APIResults)
	assert.Len(t, cfg.clientOptions(""), 4)

	_, err = loadConfig(writeConfig(t, "rate_limit: -1\n"))
	require.Error(t, err)

	_, err = loadConfig(writeConfig(t, "timeout: [nope\n"))
	require.Error(t, err)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestApplyLogGates(t *testing.T) {
	on, off := true, false
	var cfg config
	cfg.Log.ToolExecution = &on
	cfg.Log.APIResults = &off

	t.Setenv(logx.EnvToolExecution, "")
	require.NoError(t, os.Unsetenv(logx.EnvToolExecution))
	t.Setenv(logx.EnvAPIResults, "true")

	cfg.applyLogGates()
	assert.Equal(t, "true", os.Getenv(logx.EnvToolExecution))
	assert.Equal(t, "true", os.Getenv(logx.EnvAPIResults), "environment wins over the file")
}

func TestErrorHint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"Error Message":"Invalid API KEY. Please retry or visit our documentation."}`))
	}))
	t.Cleanup(srv.Close)
	cfg := writeConfig(t, "api_key: wrong-key\nbase_url: "+srv.URL+"\n")

	_, err := execute(t, "", "--config", cfg, "call", "getStockQuote", `{"symbol":"AAPL"}`)
	require.Error(t, err)
	assert.True(t, api.IsUnauthorized(err))
	assert.Contains(t, errorHint(err), "rejected the api key")

	_, err = execute(t, "", "call", "getStockQuote", `{"symbol":"AAPL"}`)
	assert.Contains(t, errorHint(err), api.EnvAPIKey)

	assert.Empty(t, errorHint(tools.ErrUnknownTool))
	assert.Contains(t, errorHint(&api.APIError{StatusCode: http.StatusTooManyRequests}), "rate limit")
}

func TestFirstSentence(t *testing.T) {
	assert.Equal(t, "Gets a quote.", firstSentence("Gets a quote. Returns price and volume."))
	assert.Equal(t, "No period", firstSentence("No period"))
	assert.Equal(t, "v1.2 is kept.", firstSentence("v1.2 is kept."))
}
