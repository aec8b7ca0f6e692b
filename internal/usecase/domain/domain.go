// Package domain contains the governance workflow engine: proposal
// intake, vote tallying, deadline handling and merge finalization.
package domain

import (
	"context"
	"time"

	"github.com/nwspk/politech-awards-2026/config"
	"github.com/nwspk/politech-awards-2026/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx      context.Context
	log      *zap.SugaredLogger
	store    repository.Store
	platform repository.Platform
	timeout  time.Duration
	voting   config.VotingConfig
	rules    []SourceRule
}

// New constructs a new usecase layer with its dependencies. Platform
// may be nil for modes that only touch local files.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	store repository.Store,
	platform repository.Platform,
	cfg *config.Config,
	timeout time.Duration,
) (*Usecase, error) {
	rules, err := LoadSourceRules(cfg.Paths.SourceRules)
	if err != nil {
		return nil, err
	}

	return &Usecase{
		ctx:      ctx,
		log:      log,
		store:    store,
		platform: platform,
		timeout:  timeout,
		voting:   cfg.Voting,
		rules:    rules,
	}, nil
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
