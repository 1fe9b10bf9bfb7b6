package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrContentDir indicates the content directory could not be read.
var ErrContentDir = errors.New("content directory unreadable")

// Repository enumerates source documents from a backing store.
// The filesystem implementation is the only one today; the interface keeps
// render/index/score logic independent of where documents live.
type Repository interface {
	Scan(ctx context.Context) ([]Document, error)
}

// FSRepository reads documents from a flat directory of markdown files.
type FSRepository struct {
	dir    string
	logger *slog.Logger
}

// NewFSRepository creates a repository over dir.
// A nil logger discards warnings.
func NewFSRepository(dir string, logger *slog.Logger) *FSRepository {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FSRepository{dir: dir, logger: logger}
}

// Scan reads every markdown file in the directory and parses it.
// A single unreadable or malformed file is logged and skipped; it never
// fails the scan. Results are in directory order (callers sort).
func (r *FSRepository) Scan(ctx context.Context) ([]Document, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentDir, err)
	}

	docs := make([]Document, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !isMarkdown(entry.Name()) {
			continue
		}

		path := filepath.Join(r.dir, entry.Name())
		raw, err := os.ReadFile(path) // #nosec G304 -- path is confined to the configured content dir
		if err != nil {
			r.logger.Warn("skipping unreadable document", "path", path, "error", err)
			continue
		}

		doc, err := ParseDocument(entry.Name(), string(raw))
		if err != nil {
			r.logger.Warn("skipping malformed document", "path", path, "error", err)
			continue
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// isMarkdown reports whether name has a markdown extension.
func isMarkdown(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".markdown"
}

// SortByDateDesc sorts docs most recent first, in place.
// The sort is stable; ties keep their insertion order, nothing more is
// promised for equal dates.
func SortByDateDesc(docs []Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].Date.After(docs[j].Date)
	})
}
