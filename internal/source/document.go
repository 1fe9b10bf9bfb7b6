// Package source enumerates and parses frontmatter-headed markdown documents.
//
// The content directory is the single source of truth: nothing in this
// package ever writes to it, and every scan re-reads it from scratch.
package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/alnah/go-postpress/internal/dateutil"
)

// Sentinel errors for document parsing.
var (
	ErrMissingTitle = errors.New("document missing required title")
	ErrMissingDate  = errors.New("document missing required date")
)

// metadata holds the raw frontmatter fields of a document.
// Published is a pointer so that an absent key defaults to true.
type metadata struct {
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Description string   `yaml:"description"`
	Category    string   `yaml:"category"`
	Tags        []string `yaml:"tags"`
	Published   *bool    `yaml:"published"`
	Slug        string   `yaml:"slug"`
}

// Document is one parsed source document with normalized metadata.
type Document struct {
	ID          string
	Title       string
	Date        time.Time
	Description string
	Category    string
	Tags        []string
	Published   bool
	Body        string
}

// ParseDocument splits a raw document into frontmatter and body and
// normalizes its metadata. filename is used for the id fallback when the
// frontmatter declares no slug.
//
// Documents missing a required key (title, date) are rejected outright:
// they are excluded from every view and unrenderable by direct id.
func ParseDocument(filename, raw string) (Document, error) {
	var meta metadata
	body, err := frontmatter.Parse(strings.NewReader(raw), &meta)
	if err != nil {
		return Document{}, fmt.Errorf("parsing frontmatter of %s: %w", filename, err)
	}

	if strings.TrimSpace(meta.Title) == "" {
		return Document{}, fmt.Errorf("%w: %s", ErrMissingTitle, filename)
	}
	if strings.TrimSpace(meta.Date) == "" {
		return Document{}, fmt.Errorf("%w: %s", ErrMissingDate, filename)
	}

	date, err := dateutil.ParseDate(meta.Date)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", filename, err)
	}

	id := meta.Slug
	if id == "" {
		id = stem(filename)
	}

	published := true
	if meta.Published != nil {
		published = *meta.Published
	}

	return Document{
		ID:          id,
		Title:       meta.Title,
		Date:        date,
		Description: meta.Description,
		Category:    meta.Category,
		Tags:        meta.Tags,
		Published:   published,
		Body:        string(body),
	}, nil
}

// VisibleAt reports whether the document may appear in aggregate views
// (listings, tag/category indexes, related-post pools) as of now.
// Drafts and future-dated documents are hidden; the comparison is
// date-only, so a document dated today is visible all day.
//
// Visibility gates listings only. Direct id lookup is never gated.
func (d Document) VisibleAt(now time.Time) bool {
	if !d.Published {
		return false
	}
	return !dateutil.AfterDay(d.Date, now)
}

// stem strips the markdown extension from a filename.
func stem(filename string) string {
	base := filepath.Base(filename)
	for _, ext := range []string{".md", ".markdown"} {
		if strings.HasSuffix(base, ext) {
			return strings.TrimSuffix(base, ext)
		}
	}
	return base
}
