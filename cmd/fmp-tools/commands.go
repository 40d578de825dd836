package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/casualjim/fmp/pkg/jsonx"
	"github.com/casualjim/fmp/provider/anthropic"
	"github.com/casualjim/fmp/provider/mcp"
	"github.com/casualjim/fmp/provider/openai"
	"github.com/casualjim/fmp/tool"
	"github.com/casualjim/fmp/tools"
	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func (a *app) listCommand() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, done, err := a.catalog(false)
			if err != nil {
				return err
			}
			defer done()
			return writeList(cmd.OutOrStdout(), catalog, category)
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only list this category")
	return cmd
}

func writeList(w io.Writer, catalog *tools.Catalog, category string) error {
	categories := catalog.Categories()
	if category != "" {
		if len(catalog.Category(category)) == 0 {
			return fmt.Errorf("unknown category %q (have %s)", category, strings.Join(categories, ", "))
		}
		categories = []string{category}
	}
	for i, name := range categories {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, color.CyanString(name))
		for _, def := range catalog.Category(name) {
			fmt.Fprintf(w, "  %s  %s\n", color.YellowString("%-30s", def.Name), firstSentence(def.Description))
		}
	}
	return nil
}

func (a *app) schemaCommand() *cobra.Command {
	var (
		format string
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "schema <tool>",
		Short: "Print the parameter schema of a tool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, done, err := a.catalog(false)
			if err != nil {
				return err
			}
			defer done()
			def, ok := catalog.Get(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", tools.ErrUnknownTool, args[0])
			}
			out, err := renderSchema(def, format, strict || a.cfg.Strict)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "generic", "generic, openai or anthropic")
	cmd.Flags().BoolVar(&strict, "strict", false, "strict mode schema")
	return cmd
}

func renderSchema(def tool.Definition, format string, strict bool) (string, error) {
	var v any
	switch format {
	case "generic", "":
		v = def.Schema(strict)
	case "openai":
		p, err := openai.Tool(def, strict)
		if err != nil {
			return "", err
		}
		v = p
	case "anthropic":
		p, err := anthropic.Tool(def)
		if err != nil {
			return "", err
		}
		v = p
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
	return jsonx.Pretty(v)
}

func (a *app) callCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "call <tool> [json-args | -]",
		Short: "Run a tool against the FMP API",
		Long: `Run a tool and print its result. The arguments are a JSON object, given
inline or read from stdin with "-". Without arguments the tool runs with its defaults.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, done, err := a.catalog(true)
			if err != nil {
				return err
			}
			defer done()
			def, ok := catalog.Get(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", tools.ErrUnknownTool, args[0])
			}

			var input []byte
			if len(args) == 2 {
				input = []byte(args[1])
				if args[1] == "-" {
					if input, err = io.ReadAll(cmd.InOrStdin()); err != nil {
						return fmt.Errorf("reading arguments: %w", err)
					}
				}
			}
			out, err := def.Invoke(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func (a *app) serveCommand() *cobra.Command {
	var (
		category string
		names    []string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tools to MCP clients over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, done, err := a.catalog(true)
			if err != nil {
				return err
			}
			defer done()
			defs, err := selectTools(catalog, category, names)
			if err != nil {
				return err
			}
			s, err := mcp.NewServer("fmp-tools", version, defs...)
			if err != nil {
				return err
			}
			a.logger.Info("serving tools over stdio", "tools", len(defs))
			return server.NewStdioServer(s).Listen(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only serve this category")
	cmd.Flags().StringSliceVarP(&names, "tool", "t", nil, "only serve these tools")
	return cmd
}

func selectTools(catalog *tools.Catalog, category string, names []string) ([]tool.Definition, error) {
	switch {
	case len(names) > 0:
		return catalog.Select(names...)
	case category != "":
		defs := catalog.Category(category)
		if len(defs) == 0 {
			return nil, fmt.Errorf("unknown category %q", category)
		}
		return defs, nil
	default:
		return catalog.All(), nil
	}
}

func (a *app) docsCommand() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Render the tool catalog as markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, done, err := a.catalog(false)
			if err != nil {
				return err
			}
			defer done()
			md := catalogMarkdown(catalog)
			if raw {
				_, err = io.WriteString(cmd.OutOrStdout(), md)
				return err
			}
			r, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(100),
			)
			if err != nil {
				return err
			}
			out, err := r.Render(md)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without rendering")
	return cmd
}

func firstSentence(s string) string {
	if i := strings.Index(s, ". "); i >= 0 {
		return s[:i+1]
	}
	return s
}
