// Package index derives tag and category views from a document collection.
//
// Listing de-duplication is exact-string while tag filtering matches
// case-insensitively. The asymmetry is observed product behavior and is
// kept on purpose: two casings of a tag list as two index entries, yet
// filter to the same result set. Flagged for product confirmation rather
// than silently normalized.
package index

import (
	"sort"
	"strings"

	"github.com/alnah/go-postpress/internal/source"
)

// Tags returns the sorted, de-duplicated tag list across docs.
// Callers pass the visible document set; no visibility filtering happens
// here.
func Tags(docs []source.Document) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, d := range docs {
		for _, tag := range d.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags
}

// Categories returns the sorted, de-duplicated category list across docs.
func Categories(docs []source.Document) []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, d := range docs {
		if d.Category == "" {
			continue
		}
		if _, ok := seen[d.Category]; ok {
			continue
		}
		seen[d.Category] = struct{}{}
		categories = append(categories, d.Category)
	}
	sort.Strings(categories)
	return categories
}

// ByTag returns the documents whose tag list contains tag,
// case-insensitively, preserving the order of docs.
func ByTag(docs []source.Document, tag string) []source.Document {
	var matched []source.Document
	for _, d := range docs {
		if HasTag(d, tag) {
			matched = append(matched, d)
		}
	}
	return matched
}

// HasTag reports whether d carries tag, case-insensitively.
func HasTag(d source.Document, tag string) bool {
	for _, t := range d.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
