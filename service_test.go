package postpress

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// frozenNow is "today" for every test: a late evening so the date-only
// future rule is exercised.
var frozenNow = time.Date(2024, 6, 10, 22, 0, 0, 0, time.UTC)

func frozenClock() time.Time { return frozenNow }

// newFixtureService writes the given documents into a temp content dir and
// returns a Service with a frozen clock over it.
func newFixtureService(t *testing.T, files map[string]string) *Service {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("writing fixture %s: %v", name, err)
		}
	}
	return New(dir, WithClock(frozenClock))
}

// corpus is the shared fixture: two visible posts, a draft, and a
// future-dated post.
func corpus() map[string]string {
	return map[string]string{
		"older.md": `---
title: Older Post
date: 2024-05-01
category: Engineering
tags: [Go, pipelines]
---
Older body with plenty of words to read.
`,
		"newer.md": `---
title: Newer Post
date: 2024-06-01
category: Engineering
tags: [go, testing]
description: Hand-written description.
---
Newer body.
`,
		"draft.md": `---
title: Draft Post
date: 2024-01-01
published: false
tags: [secret]
---
Not ready yet.
`,
		"future.md": `---
title: Future Post
date: 2024-07-01
tags: [upcoming]
---
Scheduled for later.
`,
	}
}

func TestListExcludesDraftsAndFuture(t *testing.T) {
	t.Parallel()

	svc := newFixtureService(t, corpus())
	posts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}

	if len(posts) != 2 {
		t.Fatalf("List() returned %d posts, want 2", len(posts))
	}
	// Most recent first.
	if posts[0].ID != "newer" || posts[1].ID != "older" {
		t.Errorf("List() order = [%s %s], want [newer older]", posts[0].ID, posts[1].ID)
	}
	for _, p := range posts {
		if p.ReadingTime < 1 {
			t.Errorf("post %s reading time = %d, want >= 1", p.ID, p.ReadingTime)
		}
	}
}

func TestListPostDatedTodayIsVisible(t *testing.T) {
	t.Parallel()

	svc := newFixtureService(t, map[string]string{
		"today.md": "---\ntitle: Today\ndate: 2024-06-10\n---\nbody",
	})
	posts, err := svc.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 1 {
		t.Fatalf("post dated today missing from listing: %v", posts)
	}
}

func TestGetResolvesHiddenPosts(t *testing.T) {
	t.Parallel()

	svc := newFixtureService(t, corpus())

	// Direct permalink access is not gated by publication rules.
	for _, id := range []string{"draft", "future"} {
		post, err := svc.Get(context.Background(), id)
		if err != nil {
			t.Errorf("Get(%q) unexpected error: %v", id, err)
			continue
		}
		if post.ID != id {
			t.Errorf("Get(%q).ID = %q", id, post.ID)
		}
	}
}

func TestGetNotFound(t *testing.T) {
	t.Parallel()

	svc := newFixtureService(t, corpus())
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrPostNotFound", err)
	}
}

func TestGetRendersContent(t *testing.T) {
	t.Parallel()

	svc := newFixtureService(t, map[string]string{
		"figures.md": `---
title: Figures
date: 2024-01-01
slug: figure-post
---
## Section

![diagram](d.png "The pipeline")
`,
	})

	post, err := svc.Get(context.Background(), "figure-post")
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if !strings.Contains(post.ContentHTML, "<figure>") {
		t.Errorf("content missing figure: %q", post.ContentHTML)
	}
	if !strings.Contains(post.ContentHTML, "<figcaption>The pipeline</figcaption>") {
		t.Errorf("content missing figcaption: %q", post.ContentHTML)
	}
	if post.ReadingTime < 1 {
		t.Errorf("reading time = %d, want >= 1", post.ReadingTime)
	}
}

func TestSlugOverridesFilename(t *testing.T) {
	t.Parallel()

	svc := newFixtureService(t, map[string]string{
		"some-file.md": "---\ntitle: T\ndate: 2024-01-01\nslug: declared-slug\n---\nbody",
	})

	if _, err := svc.Get(context.Background(), "declared-slug"); err != nil {
		t.Errorf("Get(declared-slug) unexpected error: %v", err)
	}
	if _, err := svc.Get(context.Background(), "some-file"); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("Get(some-file) error = %v, want ErrPostNotFound (slug wins)", err)
	}
}

func TestIDsAreUniqueAcrossCorpus(t *testing.T) {
	t.Parallel()

	// Id uniqueness is a caller responsibility; this asserts the fixture
	// corpus honors it the way a real content directory must.
	svc := newFixtureService(t, corpus())
	posts, err := svc.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	seen := map[string]bool{}
	for _, p := range posts {
		if seen[p.ID] {
			t.Errorf("duplicate id %q in corpus", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestTagsVisibleOnly(t *testing.T) {
	t.Parallel()

	svc := newFixtureService(t, corpus())
	tags, err := svc.Tags(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	// Exact-string de-dup: both casings of "go" are listed.
	want := []string{"Go", "go", "pipelines", "testing"}
	if len(tags) != len(want) {
		t.Fatalf("Tags() = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Fatalf("Tags() = %v, want %v", tags, want)
		}
	}
	for _, tag := range tags {
		if tag == "secret" || tag == "upcoming" {
			t.Errorf("hidden post's tag %q leaked into the index", tag)
		}
	}
}

func TestPostsByTagCaseInsensitive(t *testing.T) {
	t.Parallel()

	svc := newFixtureService(t, corpus())

	upper, err := svc.PostsByTag(context.Background(), "GO")
	if err != nil {
		t.Fatal(err)
	}
	lower, err := svc.PostsByTag(context.Background(), "go")
	if err != nil {
		t.Fatal(err)
	}

	if len(upper) != 2 || len(lower) != 2 {
		t.Fatalf("PostsByTag: upper=%d lower=%d, want 2 and 2", len(upper), len(lower))
	}
	for i := range upper {
		if upper[i].ID != lower[i].ID {
			t.Errorf("result sets differ at %d: %q vs %q", i, upper[i].ID, lower[i].ID)
		}
	}
	// Global sort order preserved.
	if upper[0].ID != "newer" {
		t.Errorf("PostsByTag() first = %q, want newer", upper[0].ID)
	}
}

func TestCategories(t *testing.T) {
	t.Parallel()

	svc := newFixtureService(t, corpus())
	categories, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(categories) != 1 || categories[0] != "Engineering" {
		t.Errorf("Categories() = %v, want [Engineering]", categories)
	}
}

func TestRelatedRanking(t *testing.T) {
	t.Parallel()

	svc := newFixtureService(t, map[string]string{
		"a.md": "---\ntitle: A\ndate: 2024-01-04\ncategory: X\ntags: [p, q]\n---\nbody",
		"b.md": "---\ntitle: B\ndate: 2024-01-03\ncategory: X\ntags: [p, q]\n---\nbody",
		"c.md": "---\ntitle: C\ndate: 2024-01-02\ncategory: X\n---\nbody",
		"d.md": "---\ntitle: D\ndate: 2024-01-01\ncategory: Y\n---\nbody",
	})

	got, err := svc.Related(context.Background(), "a", 3)
	if err != nil {
		t.Fatalf("Related() unexpected error: %v", err)
	}

	want := []string{"b", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("Related() returned %d posts, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Errorf("Related()[%d] = %q, want %q", i, got[i].ID, want[i])
		}
	}
	for _, p := range got {
		if p.ID == "a" {
			t.Error("Related() included the target itself")
		}
	}
}

func TestRelatedLimit(t *testing.T) {
	t.Parallel()

	svc := newFixtureService(t, corpus())
	got, err := svc.Related(context.Background(), "newer", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) > 1 {
		t.Errorf("Related(limit=1) returned %d posts", len(got))
	}
}

func TestRelatedUnknownTargetFallsBack(t *testing.T) {
	t.Parallel()

	svc := newFixtureService(t, corpus())
	got, err := svc.Related(context.Background(), "no-such-post", 1)
	if err != nil {
		t.Fatal(err)
	}
	// Falls back to the head of the sorted listing.
	if len(got) != 1 || got[0].ID != "newer" {
		t.Errorf("Related(unknown) = %v, want [newer]", got)
	}
}

func TestRelatedExcludesHiddenCandidates(t *testing.T) {
	t.Parallel()

	svc := newFixtureService(t, corpus())
	got, err := svc.Related(context.Background(), "newer", 10)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range got {
		if p.ID == "draft" || p.ID == "future" {
			t.Errorf("hidden post %q appeared in related results", p.ID)
		}
	}
}

func TestTableOfContents(t *testing.T) {
	t.Parallel()

	svc := newFixtureService(t, map[string]string{
		"toc.md": "---\ntitle: TOC\ndate: 2024-01-01\n---\n## Alpha\n\ntext\n\n### Beta Section\n",
	})

	post, err := svc.Get(context.Background(), "toc")
	if err != nil {
		t.Fatal(err)
	}
	headings, err := svc.TableOfContents(post.ContentHTML)
	if err != nil {
		t.Fatalf("TableOfContents() unexpected error: %v", err)
	}
	if len(headings) != 2 {
		t.Fatalf("TableOfContents() = %v, want 2 headings", headings)
	}
	if headings[0].Level != 2 || headings[1].Level != 3 {
		t.Errorf("heading levels = %d,%d, want 2,3", headings[0].Level, headings[1].Level)
	}

	// The extracted outline drives a spy directly.
	spy := NewScrollSpy()
	spy.Observe(headings)
	if !spy.Enter(headings[1].ID) {
		t.Errorf("spy rejected extracted heading %q", headings[1].ID)
	}
}

func TestDerivedDescription(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("word ", 100)
	svc := newFixtureService(t, map[string]string{
		"derived.md":  "---\ntitle: D\ndate: 2024-01-01\n---\n" + long,
		"declared.md": "---\ntitle: E\ndate: 2024-01-02\ndescription: Mine.\n---\nbody",
	})

	posts, err := svc.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range posts {
		switch p.ID {
		case "declared":
			if p.Description != "Mine." {
				t.Errorf("declared description overridden: %q", p.Description)
			}
		case "derived":
			if p.Description == "" {
				t.Error("derived description empty")
			}
			if got := len([]rune(p.Description)); got > maxDerivedDescription+1 {
				t.Errorf("derived description too long: %d runes", got)
			}
		}
	}
}

func TestMalformedDocumentIsIsolated(t *testing.T) {
	t.Parallel()

	files := corpus()
	files["broken.md"] = "---\ndate: 2024-01-01\n---\nno title here"
	svc := newFixtureService(t, files)

	// One bad document must not prevent the rest from listing.
	posts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(posts) != 2 {
		t.Errorf("List() returned %d posts, want 2", len(posts))
	}

	// And the rejected document is unrenderable by direct id.
	if _, err := svc.Get(context.Background(), "broken"); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("Get(broken) error = %v, want ErrPostNotFound", err)
	}
}
