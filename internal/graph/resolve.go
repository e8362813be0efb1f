package graph

import (
	"papergraph/internal/link"
	"papergraph/internal/paper"
)

// Labels produced for generic "related" edges, by attribute priority.
const (
	LabelRelatedTag     = "related-tag"
	LabelRelatedKeyword = "related-keyword"
	LabelRelatedAuthor  = "related-author"
)

// ResolveLabel decides the display label for an edge between two papers.
//
// A stored type other than "related" passes through verbatim. For
// "related" edges the papers' attribute sets are inspected in fixed
// priority order: tags first, then keywords, then authors; the first
// non-empty overlap wins. With no overlap at any level (or a missing
// endpoint) the stored type is returned unchanged. Absent attributes are
// empty sets, never failures.
func ResolveLabel(a, b *paper.Paper, storedType string, policy paper.MatchPolicy) string {
	if storedType != link.TypeRelated || a == nil || b == nil {
		return storedType
	}

	if paper.Overlaps(a.TagSet(), b.TagSet(), policy) {
		return LabelRelatedTag
	}
	if paper.Overlaps(a.KeywordSet(), b.KeywordSet(), policy) {
		return LabelRelatedKeyword
	}
	if paper.Overlaps(a.AuthorSet(), b.AuthorSet(), policy) {
		return LabelRelatedAuthor
	}
	return storedType
}
