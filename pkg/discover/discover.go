// Package discover locates review files under a target directory.
package discover

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultPattern matches the review files this tool was built for.
const DefaultPattern = "Reviews*.json"

// Locate returns the files directly inside dir whose name matches the
// glob pattern, sorted lexicographically by full path. The match is
// case-sensitive and never recurses into subdirectories. A missing
// directory yields an empty result, not an error.
func Locate(ctx context.Context, dir, pattern string) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug().Str("dir", dir).Msg("directory does not exist, nothing to locate")
			return nil, nil
		}
		return nil, errors.Errorf("reading directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		matched, err := doublestar.Match(pattern, entry.Name())
		if err != nil {
			return nil, errors.Errorf("matching pattern %q: %w", pattern, err)
		}
		if matched {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(paths)

	logger.Debug().Str("dir", dir).Str("pattern", pattern).Int("count", len(paths)).Msg("located review files")
	return paths, nil
}
