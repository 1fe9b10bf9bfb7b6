package postpress

import (
	"strings"
	"time"

	"github.com/alnah/go-postpress/internal/outline"
	"github.com/alnah/go-postpress/internal/readtime"
	"github.com/alnah/go-postpress/internal/source"
)

// maxDerivedDescription caps the length of a description derived from the
// body when the frontmatter declares none.
const maxDerivedDescription = 160

// Post is a summary of one article: everything a listing needs, without the
// rendered body.
type Post struct {
	ID          string
	Title       string
	Date        time.Time
	Description string
	Category    string
	Tags        []string
	Published   bool
	ReadingTime int // minutes, minimum 1
}

// RenderedPost is a Post plus its fully rendered body. It is recomputed on
// every request, never persisted.
type RenderedPost struct {
	Post
	ContentHTML string
}

// Heading is one table-of-contents entry: id, text, and depth (2-4).
type Heading = outline.Heading

// ScrollSpy decides which outline heading is highlighted as the reader
// scrolls. It is DOM-free: a browser-side intersection observer feeds it
// Enter and Click events and reads ActiveID back.
type ScrollSpy = outline.Spy

// SpyState is the lifecycle state of a ScrollSpy.
type SpyState = outline.SpyState

// ScrollSpy lifecycle states.
const (
	SpyIdle      = outline.SpyIdle
	SpyObserving = outline.SpyObserving
	SpyActive    = outline.SpyActive
)

// Band is the viewport region in which a heading counts as current.
type Band = outline.Band

// NewScrollSpy returns an idle ScrollSpy with nothing observed.
func NewScrollSpy() *ScrollSpy {
	return outline.NewSpy()
}

// DefaultBand returns the observation band used by the site layout.
func DefaultBand() Band {
	return outline.DefaultBand()
}

// toPost builds a listing summary from a parsed document.
func toPost(doc source.Document) Post {
	return Post{
		ID:          doc.ID,
		Title:       doc.Title,
		Date:        doc.Date,
		Description: describePost(doc),
		Category:    doc.Category,
		Tags:        doc.Tags,
		Published:   doc.Published,
		ReadingTime: readtime.Estimate(doc.Body),
	}
}

func toPosts(docs []source.Document) []Post {
	posts := make([]Post, len(docs))
	for i, doc := range docs {
		posts[i] = toPost(doc)
	}
	return posts
}

// describePost returns the declared description, or derives one from the
// leading body text: whitespace collapsed, truncated on a rune boundary.
func describePost(doc source.Document) string {
	if doc.Description != "" {
		return doc.Description
	}
	text := strings.Join(strings.Fields(doc.Body), " ")
	runes := []rune(text)
	if len(runes) <= maxDerivedDescription {
		return text
	}
	return string(runes[:maxDerivedDescription]) + "…"
}
