package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nwspk/politech-awards-2026/internal/entities"
)

// LoadResults reads the live scoring-run results. The file is treated
// as already sorted descending by score.
func (s *Store) LoadResults(_ context.Context) ([]entities.ResultEntry, error) {
	data, err := os.ReadFile(s.cfg.Results)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", entities.ErrMissingInput, s.cfg.Results)
		}
		return nil, fmt.Errorf("read results: %w", err)
	}

	var results []entities.ResultEntry
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("parse results %s: %w", s.cfg.Results, err)
	}
	return results, nil
}

// SnapshotResults writes (or overwrites) the per-version archival
// result file and returns its path. Used tentatively at proposal time
// and authoritatively at merge time.
func (s *Store) SnapshotResults(_ context.Context, version string, results []entities.ResultEntry) (string, error) {
	if err := os.MkdirAll(s.cfg.ResultsDir, 0o755); err != nil {
		return "", fmt.Errorf("create results dir: %w", err)
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(s.cfg.ResultsDir, version+".json")
	if err := writeFileAtomic(path, data); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	s.log.Infow("results snapshotted", "path", path, "entries", len(results))
	return path, nil
}

// WriteSummary writes the rendered proposal summary artifact and
// returns its path.
func (s *Store) WriteSummary(_ context.Context, content string) (string, error) {
	if err := os.WriteFile(s.cfg.Summary, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}
	return s.cfg.Summary, nil
}
