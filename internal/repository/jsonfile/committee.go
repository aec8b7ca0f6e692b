package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"github.com/nwspk/politech-awards-2026/internal/entities"
)

// handlePattern matches @handle mentions in the ownership file.
var handlePattern = regexp.MustCompile(`@[\w-]+`)

// Committee parses the ownership file's @handle mentions into the
// authorized voter set. Original case is preserved; callers compare
// case-insensitively.
func (s *Store) Committee(_ context.Context) (entities.Committee, error) {
	data, err := os.ReadFile(s.cfg.Codeowners)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entities.Committee{}, fmt.Errorf("%w: %s", entities.ErrMissingInput, s.cfg.Codeowners)
		}
		return entities.Committee{}, fmt.Errorf("read codeowners: %w", err)
	}

	mentions := handlePattern.FindAllString(string(data), -1)
	members := make([]string, 0, len(mentions))
	seen := make(map[string]struct{}, len(mentions))
	for _, m := range mentions {
		handle := m[1:]
		if _, dup := seen[handle]; dup {
			continue
		}
		seen[handle] = struct{}{}
		members = append(members, handle)
	}

	if len(members) == 0 {
		return entities.Committee{}, fmt.Errorf("%w: %s", entities.ErrEmptyCommittee, s.cfg.Codeowners)
	}
	return entities.Committee{Members: members}, nil
}
