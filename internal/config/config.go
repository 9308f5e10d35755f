// File path: internal/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/nicodishanthj/legacybridge/internal/common"
)

// Config carries the runtime settings for the demo service. Values are read
// from config.yaml when present and overridden by matching environment
// variables.
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`

	// Conversion backend settings.
	BackendURL     string        `mapstructure:"BACKEND_URL"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	Simulate       bool          `mapstructure:"SIMULATE"`

	// Direct OpenAI mode, used when no backend is reachable.
	OpenAIKey   string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel string `mapstructure:"OPENAI_MODEL"`

	// Default conversion target ("dotnet" or "spring").
	TargetLanguage string `mapstructure:"TARGET_LANGUAGE"`
}

// Load reads configuration from the given directory and the environment.
// A missing config file is not an error; environment variables suffice.
func Load(path string) (Config, error) {
	logger := common.Logger()
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	// Every key needs a default registered so AutomaticEnv values survive
	// the Unmarshal step.
	viper.SetDefault("SERVER_ADDRESS", ":8084")
	viper.SetDefault("BACKEND_URL", "")
	viper.SetDefault("REQUEST_TIMEOUT", 120*time.Second)
	viper.SetDefault("SIMULATE", false)
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o")
	viper.SetDefault("TARGET_LANGUAGE", "dotnet")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		logger.Debug("config: no config file found, using environment only")
	} else {
		logger.Info("config: loaded file", "path", viper.ConfigFileUsed())
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.BackendURL = strings.TrimRight(strings.TrimSpace(cfg.BackendURL), "/")
	cfg.TargetLanguage = strings.ToLower(strings.TrimSpace(cfg.TargetLanguage))
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 120 * time.Second
	}
	return cfg, nil
}
