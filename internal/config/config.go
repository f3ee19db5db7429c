package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Catalog   CatalogConfig   `yaml:"catalog" mapstructure:"catalog"`
	Discovery DiscoveryConfig `yaml:"discovery" mapstructure:"discovery"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Enrich    EnrichConfig    `yaml:"enrich" mapstructure:"enrich"`
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// CatalogConfig configures the scheme catalog source.
type CatalogConfig struct {
	// Path points at an external schemes JSON file. Empty means the
	// embedded catalog is used.
	Path string `yaml:"path" mapstructure:"path"`
}

// DiscoveryConfig configures scheme discovery and ranking.
type DiscoveryConfig struct {
	// TopK is how many top-ranked schemes proceed to full assessment.
	TopK int `yaml:"top_k" mapstructure:"top_k"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	Key        string `yaml:"key" mapstructure:"key"`
	HaikuModel string `yaml:"haiku_model" mapstructure:"haiku_model"`
	Model      string `yaml:"model" mapstructure:"model"`
	MaxTokens  int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// EnrichConfig configures the LLM enrichment layer.
type EnrichConfig struct {
	Enabled        bool    `yaml:"enabled" mapstructure:"enabled"`
	MaxConcurrency int     `yaml:"max_concurrency" mapstructure:"max_concurrency"`
	RequestsPerSec float64 `yaml:"requests_per_sec" mapstructure:"requests_per_sec"`
	MaxAttempts    int     `yaml:"max_attempts" mapstructure:"max_attempts"`
	Temperature    float64 `yaml:"temperature" mapstructure:"temperature"`
}

// StoreConfig configures the run persistence backend.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Validate checks that the configuration is usable for the given mode.
// Mode "run" covers the one-shot pipeline commands, "serve" the HTTP API.
func (c *Config) Validate(mode string) error {
	var problems []string

	switch mode {
	case "run":
	case "serve":
		if c.Server.Port <= 0 {
			problems = append(problems, "server.port must be > 0")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if c.Discovery.TopK < 1 || c.Discovery.TopK > 100 {
		problems = append(problems, "discovery.top_k must be between 1 and 100")
	}
	if c.Enrich.Enabled {
		if c.Anthropic.Key == "" {
			problems = append(problems, "anthropic.key is required when enrich.enabled is true")
		}
		if c.Enrich.MaxConcurrency < 1 || c.Enrich.MaxConcurrency > 32 {
			problems = append(problems, "enrich.max_concurrency must be between 1 and 32")
		}
		if c.Enrich.RequestsPerSec <= 0 {
			problems = append(problems, "enrich.requests_per_sec must be > 0")
		}
	}

	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("SAHAYAK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("discovery.top_k", 10)
	v.SetDefault("anthropic.haiku_model", "claude-haiku-4-5-20251001")
	v.SetDefault("anthropic.model", "claude-sonnet-4-5-20250929")
	v.SetDefault("anthropic.max_tokens", 1024)
	v.SetDefault("enrich.enabled", true)
	v.SetDefault("enrich.max_concurrency", 4)
	v.SetDefault("enrich.requests_per_sec", 2.0)
	v.SetDefault("enrich.max_attempts", 3)
	v.SetDefault("enrich.temperature", 0.4)
	v.SetDefault("store.path", "sahayak.db")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
