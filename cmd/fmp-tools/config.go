package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/casualjim/fmp/api"
	"github.com/casualjim/fmp/pkg/logx"
	"gopkg.in/yaml.v3"
)

// config is the optional YAML file given with --config.
type config struct {
	APIKey    string        `yaml:"api_key"`
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`
	RateLimit int           `yaml:"rate_limit"`
	UserAgent string        `yaml:"user_agent"`
	Strict    bool          `yaml:"strict"`
	Log       struct {
		ToolExecution *bool `yaml:"tool_execution"`
		APIResults    *bool `yaml:"api_results"`
	} `yaml:"log"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.RateLimit < 0 {
		return cfg, errors.New("config: rate_limit must not be negative")
	}
	return cfg, nil
}

// applyLogGates exports the log switches of the file unless the environment
// already sets them.
func (c config) applyLogGates() {
	set := func(key string, v *bool) {
		if v == nil {
			return
		}
		if _, ok := os.LookupEnv(key); ok {
			return
		}
		_ = os.Setenv(key, strconv.FormatBool(*v))
	}
	set(logx.EnvToolExecution, c.Log.ToolExecution)
	set(logx.EnvAPIResults, c.Log.APIResults)
}

func (c config) clientOptions(apiKey string) []api.Option {
	var options []api.Option
	if apiKey == "" {
		apiKey = c.APIKey
	}
	if apiKey != "" {
		options = append(options, api.APIKey(apiKey))
	}
	if c.BaseURL != "" {
		options = append(options, api.BaseURL(c.BaseURL))
	}
	if c.Timeout > 0 {
		options = append(options, api.Timeout(c.Timeout))
	}
	if c.RateLimit > 0 {
		options = append(options, api.RateLimit(c.RateLimit))
	}
	if c.UserAgent != "" {
		options = append(options, api.UserAgent(c.UserAgent))
	}
	return options
}
