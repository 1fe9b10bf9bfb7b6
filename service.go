package postpress

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alnah/go-postpress/internal/index"
	"github.com/alnah/go-postpress/internal/outline"
	"github.com/alnah/go-postpress/internal/pipeline"
	"github.com/alnah/go-postpress/internal/related"
	"github.com/alnah/go-postpress/internal/source"
)

// Service orchestrates the content pipeline: scan, validate, enrich, render,
// and the derived views. It holds no mutable state between calls; every
// operation re-scans the repository and recomputes from scratch.
type Service struct {
	repo     source.Repository
	renderer pipeline.Renderer
	clock    func() time.Time
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithRepository substitutes the document repository, e.g. an alternative
// backing store or a test fixture.
// Panics if repo is nil (programmer error).
func WithRepository(repo source.Repository) Option {
	if repo == nil {
		panic("postpress: WithRepository repository must not be nil")
	}
	return func(s *Service) {
		s.repo = repo
	}
}

// WithClock substitutes the current-date provider used by the future-dating
// rule, so tests can freeze time instead of depending on the wall clock.
// Panics if now is nil (programmer error).
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("postpress: WithClock provider must not be nil")
	}
	return func(s *Service) {
		s.clock = now
	}
}

// WithLogger sets the logger for per-document warnings (skipped files).
// The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Service over contentDir with default configuration.
// Use options to customize behavior.
func New(contentDir string, opts ...Option) *Service {
	s := &Service{
		clock:  time.Now,
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create the filesystem repository if not injected (e.g., by tests)
	if s.repo == nil {
		s.repo = source.NewFSRepository(contentDir, s.logger)
	}
	s.renderer = pipeline.NewGoldmarkRenderer()

	return s
}

// List returns every visible post, most recent first.
func (s *Service) List(ctx context.Context) ([]Post, error) {
	docs, err := s.visibleDocs(ctx)
	if err != nil {
		return nil, err
	}
	return toPosts(docs), nil
}

// Get returns the full rendered content for one post by exact id.
// Direct lookup is not gated by publication rules: a draft or future-dated
// post is still retrievable here, only excluded from listings.
// Returns ErrPostNotFound if no document resolves to id.
func (s *Service) Get(ctx context.Context, id string) (*RenderedPost, error) {
	docs, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, err
	}

	doc, ok := findByID(docs, id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPostNotFound, id)
	}

	contentHTML, err := s.renderer.Render(ctx, doc.Body)
	if err != nil {
		return nil, fmt.Errorf("rendering %q: %w", id, err)
	}

	return &RenderedPost{
		Post:        toPost(doc),
		ContentHTML: contentHTML,
	}, nil
}

// Tags returns the sorted, de-duplicated tags across visible posts.
// De-duplication is exact-string while PostsByTag matches
// case-insensitively; the asymmetry is preserved observed behavior.
func (s *Service) Tags(ctx context.Context) ([]string, error) {
	docs, err := s.visibleDocs(ctx)
	if err != nil {
		return nil, err
	}
	return index.Tags(docs), nil
}

// Categories returns the sorted, de-duplicated categories across visible
// posts.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	docs, err := s.visibleDocs(ctx)
	if err != nil {
		return nil, err
	}
	return index.Categories(docs), nil
}

// PostsByTag returns the visible posts carrying tag, matched
// case-insensitively, in the global most-recent-first order.
func (s *Service) PostsByTag(ctx context.Context, tag string) ([]Post, error) {
	docs, err := s.visibleDocs(ctx)
	if err != nil {
		return nil, err
	}
	return toPosts(index.ByTag(docs, tag)), nil
}

// Related returns up to limit posts ranked by relevance to the post with
// the given id: +2 for a shared category, +1 per shared tag. The target
// itself is never included. If id resolves to no document, the most recent
// limit posts are returned instead.
func (s *Service) Related(ctx context.Context, id string, limit int) ([]Post, error) {
	docs, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, err
	}

	visible := filterVisible(docs, s.clock())
	source.SortByDateDesc(visible)

	target, ok := findByID(docs, id)
	if !ok {
		if len(visible) > limit {
			visible = visible[:limit]
		}
		return toPosts(visible), nil
	}

	candidates := make([]source.Document, 0, len(visible))
	for _, d := range visible {
		if d.ID == target.ID {
			continue
		}
		candidates = append(candidates, d)
	}

	return toPosts(related.Rank(target, candidates, limit)), nil
}

// TableOfContents extracts the h2-h4 outline from rendered HTML, in
// document order. This is the boundary with the UI layer: feed the result
// to a ScrollSpy to track the active entry.
func (s *Service) TableOfContents(contentHTML string) ([]Heading, error) {
	return outline.Extract(contentHTML)
}

// visibleDocs scans the repository and returns the visible documents,
// most recent first.
func (s *Service) visibleDocs(ctx context.Context) ([]source.Document, error) {
	docs, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, err
	}
	visible := filterVisible(docs, s.clock())
	source.SortByDateDesc(visible)
	return visible, nil
}

func filterVisible(docs []source.Document, now time.Time) []source.Document {
	visible := make([]source.Document, 0, len(docs))
	for _, d := range docs {
		if d.VisibleAt(now) {
			visible = append(visible, d)
		}
	}
	return visible
}

func findByID(docs []source.Document, id string) (source.Document, bool) {
	for _, d := range docs {
		if d.ID == id {
			return d, true
		}
	}
	return source.Document{}, false
}
