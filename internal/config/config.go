/**
* Name:        config.go
* Description: layered configuration (defaults -> config.yaml -> AICHAT_* env)
 */
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix     = "AICHAT_"
	configPathEnv = "CONFIG_PATH"
)

type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Session   SessionConfig   `koanf:"session"`
	Predict   PredictConfig   `koanf:"predict"`
	LLM       LLMConfig       `koanf:"llm"`
	Chat      ChatConfig      `koanf:"chat"`
	RateLimit RateLimitConfig `koanf:"ratelimit"`
	Log       LogConfig       `koanf:"log"`
}

type ServerConfig struct {
	Port            int           `koanf:"port"`
	Mode            string        `koanf:"mode"`
	AllowedOrigins  []string      `koanf:"allowed_origins"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Path string `koanf:"path"`
}

// Session lifetime is fixed at 24h (auth.SessionTTL) and not configurable.
type SessionConfig struct {
	// 비어 있으면 누구나 가입 가능
	InviteCode string `koanf:"invite_code"`
}

type PredictConfig struct {
	Interpreter string        `koanf:"interpreter"`
	ModelsDir   string        `koanf:"models_dir"`
	Timeout     time.Duration `koanf:"timeout"`
	Breaker     BreakerConfig `koanf:"breaker"`
}

type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	OpenTimeout  time.Duration `koanf:"open_timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

type LLMConfig struct {
	APIKey     string        `koanf:"api_key"`
	BaseURL    string        `koanf:"base_url"`
	Model      string        `koanf:"model"`
	ModelLabel string        `koanf:"model_label"`
	MaxTokens  int           `koanf:"max_tokens"`
	Timeout    time.Duration `koanf:"timeout"`
}

type ChatConfig struct {
	ConversationTTL time.Duration `koanf:"conversation_ttl"`
	HistoryLimit    int           `koanf:"history_limit"`
	Owner           string        `koanf:"owner"`
	PortfolioURL    string        `koanf:"portfolio_url"`
}

type RateLimitConfig struct {
	Enabled bool    `koanf:"enabled"`
	RPS     float64 `koanf:"rps"`
	Burst   int     `koanf:"burst"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Mode:            "release",
			AllowedOrigins:  []string{"*"},
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{Path: "./aichat.db"},
		Predict: PredictConfig{
			Interpreter: "python3",
			ModelsDir:   "./models",
			Timeout:     5 * time.Second,
			Breaker: BreakerConfig{
				MaxRequests:  1,
				Interval:     time.Minute,
				OpenTimeout:  30 * time.Second,
				MinRequests:  5,
				FailureRatio: 0.6,
			},
		},
		LLM: LLMConfig{
			Model:      "gpt-3.5-turbo",
			ModelLabel: "OpenAI_GPT-3.5",
			MaxTokens:  500,
			Timeout:    10 * time.Second,
		},
		Chat: ChatConfig{
			ConversationTTL: 30 * time.Minute,
			HistoryLimit:    10,
			Owner:           "Shubham",
			PortfolioURL:    "https://shubhamkataria2005.github.io/Shubham_Portfolio/",
		},
		RateLimit: RateLimitConfig{Enabled: true, RPS: 5, Burst: 20},
		Log:       LogConfig{Level: "info", Format: "console"},
	}
}

// Load reads .env (if any), then layers struct defaults, an optional YAML file
// and AICHAT_* environment variables, in that order of precedence.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config.Load(): failed to load defaults: %w", err)
	}

	if path := configPath(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config.Load(): failed to load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config.Load(): failed to load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config.Load(): failed to unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port: %d", c.Server.Port)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Predict.Timeout <= 0 {
		return fmt.Errorf("predict.timeout must be positive")
	}
	if c.Predict.Interpreter == "" {
		return fmt.Errorf("predict.interpreter is required")
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func configPath() string {
	if p := os.Getenv(configPathEnv); p != "" {
		return p
	}
	if _, err := os.Stat("config.yaml"); err == nil {
		return "config.yaml"
	}
	return ""
}

// envKey maps AICHAT_PREDICT_MODELS_DIR -> predict.models_dir. Only the first
// underscore after the section name is a separator.
func envKey(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	section, rest, found := strings.Cut(key, "_")
	if !found {
		return key
	}
	if section == "predict" && strings.HasPrefix(rest, "breaker_") {
		return "predict.breaker." + strings.TrimPrefix(rest, "breaker_")
	}
	return section + "." + rest
}
