package paper

import "strings"

// MatchPolicy controls how attribute tokens are compared for overlap.
type MatchPolicy int

const (
	// MatchFoldCase compares tokens case-insensitively ("NLP" == "nlp").
	MatchFoldCase MatchPolicy = iota
	// MatchExactCase compares tokens byte-for-byte after trimming.
	MatchExactCase
)

// SplitList splits a comma-delimited attribute string into trimmed,
// non-empty tokens. Duplicates are collapsed case-insensitively while
// preserving the first-seen casing and order. Empty input yields nil.
func SplitList(raw string) []string {
	if raw == "" {
		return nil
	}
	seen := make(map[string]bool)
	var tokens []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lower := strings.ToLower(part)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		tokens = append(tokens, part)
	}
	return tokens
}

// SplitAuthors splits an author string into individual names. The BibTeX
// " and " separator is recognized before falling back to comma splitting,
// so both "Smith, J. and Doe, A." styles and plain comma lists work.
func SplitAuthors(raw string) []string {
	if raw == "" {
		return nil
	}
	return SplitList(strings.ReplaceAll(raw, " and ", ","))
}

// normalizeToken applies the match policy to a single token.
func normalizeToken(tok string, policy MatchPolicy) string {
	if policy == MatchExactCase {
		return tok
	}
	return strings.ToLower(tok)
}

// Overlaps reports whether the two token lists share any element under
// the given match policy.
func Overlaps(a, b []string, policy MatchPolicy) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[string]bool, len(a))
	for _, tok := range a {
		set[normalizeToken(tok, policy)] = true
	}
	for _, tok := range b {
		if set[normalizeToken(tok, policy)] {
			return true
		}
	}
	return false
}

// Intersect returns the elements of a that also appear in b under the
// given match policy, in a's order and casing.
func Intersect(a, b []string, policy MatchPolicy) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	set := make(map[string]bool, len(b))
	for _, tok := range b {
		set[normalizeToken(tok, policy)] = true
	}
	var out []string
	for _, tok := range a {
		if set[normalizeToken(tok, policy)] {
			out = append(out, tok)
		}
	}
	return out
}
