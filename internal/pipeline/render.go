// Package pipeline converts markdown bodies into render-ready HTML.
//
// Rendering is a fixed chain: goldmark parses the markdown (raw HTML passes
// through as real markup), the resulting fragment is re-parsed into an HTML
// tree so structural transforms can see embedded HTML as elements, the
// image-to-figure transform runs, and the tree is serialized back to a
// string. The chain is pure and deterministic for identical input.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	ghtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer abstracts markdown to HTML conversion.
type Renderer interface {
	Render(ctx context.Context, markdown string) (string, error)
}

// GoldmarkRenderer renders markdown to HTML using goldmark (pure Go).
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkRenderer creates a GoldmarkRenderer with GFM extensions and
// syntax highlighting.
func NewGoldmarkRenderer() *GoldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes for external stylesheet control
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // Generate IDs for headings (required for the TOC)
		),
		goldmark.WithRendererOptions(
			// Author-written HTML embedded in the markdown must survive as
			// real markup so the figure transform can see it as elements.
			// Bodies come from the site author's own content directory, not
			// from untrusted users.
			ghtml.WithUnsafe(),
			ghtml.WithXHTML(),
		),
	)
	return &GoldmarkRenderer{md: md}
}

// Render converts markdown to an HTML fragment and applies the structural
// transforms. The error return carries only context cancellation: malformed
// input never fails, it degrades to best-effort HTML (worst case, the
// offending source escaped inside a <pre> block).
// Goldmark has no native context support, so conversion runs in a goroutine
// behind a select.
func (r *GoldmarkRenderer) Render(ctx context.Context, markdown string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	done := make(chan string, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(markdown), &buf); err != nil {
			// Literal-text fallback; goldmark almost never errors, but the
			// contract is "some HTML out, always."
			done <- "<pre>" + html.EscapeString(markdown) + "</pre>"
			return
		}
		fragment, err := applyTransforms(buf.String())
		if err != nil {
			// Serve goldmark's output untransformed rather than failing.
			done <- buf.String()
			return
		}
		done <- fragment
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case out := <-done:
		return out, nil
	}
}

// applyTransforms re-parses the fragment so raw HTML becomes element nodes,
// runs the structural transforms, and serializes the tree back.
func applyTransforms(fragment string) (string, error) {
	root, err := parseFragment(fragment)
	if err != nil {
		return "", fmt.Errorf("re-parsing fragment: %w", err)
	}
	figureTransform.Apply(root)
	return renderChildren(root)
}
