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

// LoadLedger reads the full iteration ledger. A missing file is
// ErrMissingInput, a malformed one ErrCorruptLedger.
func (s *Store) LoadLedger(_ context.Context) ([]entities.Iteration, error) {
	data, err := os.ReadFile(s.cfg.Ledger)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", entities.ErrMissingInput, s.cfg.Ledger)
		}
		return nil, fmt.Errorf("read ledger: %w", err)
	}

	var ledger []entities.Iteration
	if err := json.Unmarshal(data, &ledger); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", entities.ErrCorruptLedger, s.cfg.Ledger, err)
	}
	return ledger, nil
}

// SaveLedger rewrites the whole ledger: pretty-printed, trailing
// newline, written to a temp file in the same directory and renamed
// into place.
func (s *Store) SaveLedger(_ context.Context, ledger []entities.Iteration) error {
	data, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(s.cfg.Ledger, data); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	s.log.Infow("ledger saved", "path", s.cfg.Ledger, "entries", len(ledger))
	return nil
}

// writeFileAtomic writes data to a sibling temp file and renames it
// over path, so readers never observe a half-written file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
