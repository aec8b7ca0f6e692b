// Package jsonfile implements the store against plain files: a JSON
// ledger, JSON result snapshots and a plain-text ownership file.
package jsonfile

import (
	"context"

	"github.com/nwspk/politech-awards-2026/config"

	"go.uber.org/zap"
)

// Store reads and writes the pipeline files. All writes are whole-file
// rewrites; the external trigger system serializes invocations per
// resource, so no file locking is done here.
type Store struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	cfg     config.PathsConfig
}

// New creates a file-backed store.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *Store {
	return &Store{
		baseCtx: ctx,
		log:     log.Named("repo.jsonfile"),
		cfg:     cfg.Paths,
	}
}

// OnStart verifies nothing; files are checked lazily so modes that
// never touch a file do not require it to exist.
func (s *Store) OnStart(_ context.Context) error { return nil }

// OnStop is a no-op; there is nothing to close.
func (s *Store) OnStop(_ context.Context) error { return nil }
