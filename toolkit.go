package fmp

import (
	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/casualjim/fmp/api"
	"github.com/casualjim/fmp/provider/anthropic"
	"github.com/casualjim/fmp/provider/mcp"
	"github.com/casualjim/fmp/provider/openai"
	"github.com/casualjim/fmp/tool"
	"github.com/casualjim/fmp/tools"
	"github.com/fogfish/opts"
	"github.com/mark3labs/mcp-go/server"
	openaisdk "github.com/openai/openai-go"
)

// Version is reported by MCP servers created with a Toolkit.
const Version = "0.1.0"

// Toolkit is an FMP client together with the full tool catalog.
type Toolkit struct {
	*tools.Catalog
	Client *api.Client
}

// New creates the client from options and builds the catalog on top of it.
// The client logger, when given, is shared with the tools.
func New(options ...api.Option) (*Toolkit, error) {
	var cfg api.Config
	if err := opts.Apply(&cfg, options); err != nil {
		return nil, err
	}
	client, err := api.New(options...)
	if err != nil {
		return nil, err
	}
	var toolOptions []tool.Option
	if cfg.Logger != nil {
		toolOptions = append(toolOptions, tool.Logger(cfg.Logger))
	}
	return &Toolkit{
		Catalog: tools.NewCatalog(client, toolOptions...),
		Client:  client,
	}, nil
}

// OpenAI returns every tool as an OpenAI function definition.
func (k *Toolkit) OpenAI(strict bool) ([]openaisdk.ChatCompletionToolParam, error) {
	return openai.Tools(k.All(), strict)
}

// Anthropic returns every tool as an Anthropic tool definition.
func (k *Toolkit) Anthropic() ([]anthropicsdk.ToolUnionParam, error) {
	return anthropic.Tools(k.All())
}

// MCPServer returns an MCP server offering every tool.
func (k *Toolkit) MCPServer(name string) (*server.MCPServer, error) {
	return mcp.NewServer(name, Version, k.All()...)
}

// Close releases the connections of the client.
func (k *Toolkit) Close() {
	k.Client.Close()
}

var _ tool.Lookup = (*Toolkit)(nil)
