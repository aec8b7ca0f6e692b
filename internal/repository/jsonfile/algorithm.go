package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/nwspk/politech-awards-2026/internal/entities"
)

// AlgorithmSource reads the heuristic's source text for data-source
// inference.
func (s *Store) AlgorithmSource(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.cfg.Algorithm)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", entities.ErrMissingInput, s.cfg.Algorithm)
		}
		return "", fmt.Errorf("read algorithm source: %w", err)
	}
	return string(data), nil
}
