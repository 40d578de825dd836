package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/casualjim/fmp/api"
	"github.com/casualjim/fmp/tool"
	"github.com/casualjim/fmp/tools"
	"github.com/fatih/color"
	"github.com/phsym/zeroslog"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// app carries the global flags and what they resolve to.
type app struct {
	configPath string
	apiKey     string
	verbose    bool

	cfg    config
	logger *slog.Logger
	stderr io.Writer
}

func newRootCommand() *cobra.Command {
	a := &app{stderr: os.Stderr}

	root := &cobra.Command{
		Use:   "fmp-tools",
		Short: "Financial Modeling Prep tools for LLM agents",
		Long: `fmp-tools lists, documents and runs the Financial Modeling Prep tools,
and serves them to MCP clients over stdio.

The API key is read from --api-key, the config file or FMP_API_KEY (a .env file
in the working directory is loaded automatically).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(a.configPath)
			if err != nil {
				return err
			}
			cfg.applyLogGates()
			a.cfg = cfg
			a.logger = newLogger(a.stderr, a.verbose)
			slog.SetDefault(a.logger)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.apiKey, "api-key", "", "FMP API key (default $FMP_API_KEY)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		a.listCommand(),
		a.schemaCommand(),
		a.callCommand(),
		a.serveCommand(),
		a.docsCommand(),
	)
	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	zlevel := zerolog.InfoLevel
	if verbose {
		level = slog.LevelDebug
		zlevel = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Stamp}
	zl := zerolog.New(output).Level(zlevel).With().Timestamp().Logger()
	return slog.New(zeroslog.NewHandler(zl, &zeroslog.HandlerOptions{Level: level}))
}

// client builds the FMP client. Offline commands (list, schema, docs) pass
// requireKey=false and never reach the API.
func (a *app) client(requireKey bool) (*api.Client, error) {
	options := append(a.cfg.clientOptions(a.apiKey), api.Logger(a.logger))
	c, err := api.New(options...)
	if errors.Is(err, api.ErrMissingAPIKey) && !requireKey {
		return api.New(append(options, api.APIKey("offline"))...)
	}
	return c, err
}

func (a *app) catalog(requireKey bool) (*tools.Catalog, func(), error) {
	c, err := a.client(requireKey)
	if err != nil {
		return nil, nil, err
	}
	return tools.NewCatalog(c, tool.Logger(a.logger)), c.Close, nil
}

// errorHint suggests a fix for FMP failures a user can act on.
func errorHint(err error) string {
	switch {
	case errors.Is(err, api.ErrMissingAPIKey):
		return "pass --api-key, set api_key in the --config file or export " + api.EnvAPIKey
	case api.IsUnauthorized(err):
		return "FMP rejected the api key; check it, or whether your plan includes this endpoint"
	case api.IsRateLimited(err):
		return "FMP rate limit reached; lower rate_limit in the config or retry later"
	default:
		return ""
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		if hint := errorHint(err); hint != "" {
			fmt.Fprintln(os.Stderr, color.YellowString("hint:"), hint)
		}
		os.Exit(1)
	}
}
