package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	GitHub  GitHubConfig  `mapstructure:"github"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Paths   PathsConfig   `mapstructure:"paths"`
	Voting  VotingConfig  `mapstructure:"voting"`
	PR      PRConfig      `mapstructure:"pr"`
}

// Validate ensures fields every mode depends on are present. Platform
// credentials are validated by the GitHub backend, not here, so the
// file-only modes run without a token.
func (c Config) Validate() error {
	if c.Paths.Ledger == "" {
		return errors.New("paths.ledger is required")
	}
	if c.Paths.Results == "" {
		return errors.New("paths.results is required")
	}
	if c.Voting.ReminderAfter <= 0 || c.Voting.CloseAfter <= c.Voting.ReminderAfter {
		return errors.New("voting windows must satisfy 0 < reminder_after < close_after")
	}
	return nil
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// GitHubConfig describes the platform connection. Repository is the
// "owner/repo" slug from GITHUB_REPOSITORY.
type GitHubConfig struct {
	Token      string `mapstructure:"token"`
	Repository string `mapstructure:"repository"`
	APIBaseURL string `mapstructure:"api_base_url"`
	BotLogin   string `mapstructure:"bot_login"`
}

// Split returns the owner and repo halves of the repository slug.
func (g GitHubConfig) Split() (owner, repo string, err error) {
	parts := strings.SplitN(g.Repository, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("github.repository must be owner/repo, got %q", g.Repository)
	}
	return parts[0], parts[1], nil
}

// HTTPConfig contains platform transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	MaxAttempts    int           `mapstructure:"max_attempts"`
}

// PathsConfig locates the pipeline files the engine reads and writes.
type PathsConfig struct {
	Ledger      string `mapstructure:"ledger"`
	Results     string `mapstructure:"results"`
	ResultsDir  string `mapstructure:"results_dir"`
	Codeowners  string `mapstructure:"codeowners"`
	Summary     string `mapstructure:"summary"`
	Algorithm   string `mapstructure:"algorithm"`
	SourceRules string `mapstructure:"source_rules"`
}

// VotingConfig holds the deadline windows.
type VotingConfig struct {
	ReminderAfter time.Duration `mapstructure:"reminder_after"`
	CloseAfter    time.Duration `mapstructure:"close_after"`
}

// PRConfig carries the proposal event payload delivered through the
// environment by the trigger system (PR_BODY, PR_NUMBER, ...).
type PRConfig struct {
	Body   string `mapstructure:"body"`
	Number int    `mapstructure:"number"`
	URL    string `mapstructure:"url"`
	Author string `mapstructure:"author"`
}
