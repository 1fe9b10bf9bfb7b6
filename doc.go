// Package postpress turns a directory of frontmatter-headed markdown
// documents into validated, enriched, render-ready articles.
//
// # Quick Start
//
// Create a service over a content directory and query it:
//
//	svc := postpress.New("content/posts")
//
//	posts, err := svc.List(ctx)          // visible posts, most recent first
//	post, err := svc.Get(ctx, "my-slug") // full content for one post
//
// Every call re-reads the content directory and recomputes every derived
// structure. Nothing is cached across calls, so derived views can never
// diverge from the source files.
//
// # Pipeline
//
// Each document moves through these stages:
//
//  1. Scan: enumerate markdown files, split frontmatter from body
//  2. Validate: reject documents missing title or date, resolve the slug,
//     apply publication rules (drafts and future dates hidden from listings)
//  3. Enrich: estimate reading time for mixed Japanese/English prose
//  4. Render: goldmark (GFM, syntax highlighting) with raw HTML passthrough,
//     then the image-to-figure tree transform
//
// Cross-article views (tag and category indexes, related posts) and in-page
// navigation (table of contents, scroll-spy state machine) are derived on
// demand from the same scanned collection.
//
// # Visibility
//
// A post with published: false, or dated after today, appears in no listing,
// index, or related-post pool. Get still resolves it by exact id, so direct
// permalinks keep working while the post stays out of aggregates.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := postpress.New("content/posts",
//	    postpress.WithClock(func() time.Time { return frozen }),
//	    postpress.WithLogger(logger),
//	)
package postpress
