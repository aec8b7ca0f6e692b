// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultEnvFile is where NewConfig looks for a dotenv file unless
// the caller overrides it.
const DefaultEnvFile = "config/.env"

// NewConfig loads configuration from environment using viper with typed defaults and validation.
// Variables from envFile are loaded first but never override ones
// already present in the process environment.
func NewConfig(envFile string) (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, v := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, v)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")

	v.SetDefault("github.api_base_url", "https://api.github.com")
	v.SetDefault("github.bot_login", "github-actions[bot]")

	v.SetDefault("http.request_timeout", 15*time.Second)
	v.SetDefault("http.max_attempts", 3)

	v.SetDefault("paths.ledger", "iterations.json")
	v.SetDefault("paths.results", "results.json")
	v.SetDefault("paths.results_dir", "results")
	v.SetDefault("paths.codeowners", ".github/CODEOWNERS")
	v.SetDefault("paths.summary", "bot-comment.md")
	v.SetDefault("paths.algorithm", "the-algorithm.ts")
	v.SetDefault("paths.source_rules", "")

	v.SetDefault("voting.reminder_after", 24*time.Hour)
	v.SetDefault("voting.close_after", 48*time.Hour)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"github.token",
		"github.repository",
		"github.api_base_url",
		"github.bot_login",
		"http.request_timeout",
		"http.max_attempts",
		"paths.ledger",
		"paths.results",
		"paths.results_dir",
		"paths.codeowners",
		"paths.summary",
		"paths.algorithm",
		"paths.source_rules",
		"voting.reminder_after",
		"voting.close_after",
		"pr.body",
		"pr.number",
		"pr.url",
		"pr.author",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}
