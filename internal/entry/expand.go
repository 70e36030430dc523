package entry

import (
	"path/filepath"
	"unicode/utf8"

	"github.com/zhubert/hopper/internal/errors"
	"github.com/zhubert/hopper/internal/logger"
)

// Expand resolves each entry's path as a glob pattern against the
// filesystem and returns the concrete matches in stored order, one entry
// per match, with the source entry's layout carried over.
//
// Deduplication is global and first-wins: a concrete path already produced
// by an earlier entry is dropped silently, even when the later entry names
// a different layout. A pattern with no matches contributes nothing; in
// particular a literal path that does not exist on disk is dropped, not
// reported.
//
// A path that is not valid UTF-8 or not a valid glob pattern aborts the
// whole expansion; partial results are never returned.
func Expand(entries []Entry) ([]Entry, error) {
	log := logger.WithComponent("entry")

	res := make([]Entry, 0, len(entries))
	seen := make(map[string]struct{})

	for _, e := range entries {
		if !utf8.ValidString(e.Path) {
			return nil, errors.PathNotUTF8(e.Path)
		}

		matches, err := filepath.Glob(e.Path)
		if err != nil {
			return nil, errors.BadPattern(e.Path, err)
		}

		for _, match := range matches {
			if _, dup := seen[match]; dup {
				log.Debug("dropping duplicate match", "path", match, "pattern", e.Path)
				continue
			}
			seen[match] = struct{}{}
			res = append(res, e.WithPath(match))
		}
	}

	return res, nil
}
