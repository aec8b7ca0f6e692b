package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig("does-not-exist.env")
	require.NoError(t, err)

	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "https://api.github.com", cfg.GitHub.APIBaseURL)
	require.Equal(t, "github-actions[bot]", cfg.GitHub.BotLogin)
	require.Equal(t, "iterations.json", cfg.Paths.Ledger)
	require.Equal(t, ".github/CODEOWNERS", cfg.Paths.Codeowners)
	require.Equal(t, 24*time.Hour, cfg.Voting.ReminderAfter)
	require.Equal(t, 48*time.Hour, cfg.Voting.CloseAfter)
	require.Equal(t, 3, cfg.HTTP.MaxAttempts)
}

func TestNewConfigEnvOverrides(t *testing.T) {
	t.Setenv("VOTING_CLOSE_AFTER", "72h")
	t.Setenv("PATHS_LEDGER", "data/ledger.json")
	t.Setenv("PR_NUMBER", "17")

	cfg, err := NewConfig("does-not-exist.env")
	require.NoError(t, err)
	require.Equal(t, 72*time.Hour, cfg.Voting.CloseAfter)
	require.Equal(t, "data/ledger.json", cfg.Paths.Ledger)
	require.Equal(t, 17, cfg.PR.Number)
}

func TestNewConfigRejectsBadWindows(t *testing.T) {
	t.Setenv("VOTING_CLOSE_AFTER", "12h")

	_, err := NewConfig("does-not-exist.env")
	require.Error(t, err)
}

func TestGitHubConfigSplit(t *testing.T) {
	owner, repo, err := GitHubConfig{Repository: "nwspk/awards"}.Split()
	require.NoError(t, err)
	require.Equal(t, "nwspk", owner)
	require.Equal(t, "awards", repo)

	_, _, err = GitHubConfig{Repository: "nonsense"}.Split()
	require.Error(t, err)

	_, _, err = GitHubConfig{Repository: "/x"}.Split()
	require.Error(t, err)
}
