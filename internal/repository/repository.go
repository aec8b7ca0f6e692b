// Package repository provides factories for storage and platform backends.
package repository

import (
	"context"
	"fmt"

	"github.com/nwspk/politech-awards-2026/config"
	"github.com/nwspk/politech-awards-2026/internal/repository/github"
	"github.com/nwspk/politech-awards-2026/internal/repository/jsonfile"

	"go.uber.org/zap"
)

// NewStore constructs the storage backend by name.
func NewStore(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Store, error) {
	switch name {
	case "jsonfile":
		return jsonfile.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s", name)
	}
}

// NewPlatform constructs the code-review platform backend by name.
func NewPlatform(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Platform, error) {
	switch name {
	case "github":
		return github.New(ctx, log, cfg)
	default:
		return nil, fmt.Errorf("unknown platform backend: %s", name)
	}
}
