// Package related ranks documents by topical similarity to a target.
//
// The score is a cheap, explainable proxy for topical similarity (shared
// category and tag overlap) suited to a corpus of a few dozen to a few
// hundred documents. It is not a full-text relevance engine and does not
// try to be.
package related

import (
	"sort"
	"strings"

	"github.com/alnah/go-postpress/internal/source"
)

// Score weights.
const (
	categoryWeight  = 2
	sharedTagWeight = 1
)

// Rank orders candidates by descending relevance to target and returns at
// most limit of them. Candidates must not contain the target itself;
// zero-score candidates stay eligible, they just rank last. Equal scores
// keep the relative order of candidates (stable sort, nothing more).
func Rank(target source.Document, candidates []source.Document, limit int) []source.Document {
	if limit <= 0 {
		return nil
	}

	targetTags := tagSet(target.Tags)

	scores := make([]int, len(candidates))
	for i, c := range candidates {
		scores[i] = score(target, targetTags, c)
	}

	ranked := make([]source.Document, len(candidates))
	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	for i, idx := range order {
		ranked[i] = candidates[idx]
	}

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// score computes the pairwise relevance of candidate to target.
func score(target source.Document, targetTags map[string]struct{}, candidate source.Document) int {
	var s int
	if target.Category != "" && candidate.Category == target.Category {
		s += categoryWeight
	}
	// Duplicate tags within one list count once.
	for tag := range tagSet(candidate.Tags) {
		if _, ok := targetTags[tag]; ok {
			s += sharedTagWeight
		}
	}
	return s
}

// tagSet lowercases and de-duplicates a tag list for matching.
func tagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[strings.ToLower(t)] = struct{}{}
	}
	return set
}
