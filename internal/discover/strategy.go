// Package discover infers candidate links between papers that share
// attributes and commits them as generic "related" links.
package discover

import (
	"fmt"
	"strings"

	"papergraph/internal/paper"
)

// Strategy selects one attribute dimension for candidate generation.
type Strategy string

// Available strategies.
const (
	StrategyTags     Strategy = "tags"
	StrategyKeywords Strategy = "keywords"
	StrategyAuthors  Strategy = "authors"
	StrategyYear     Strategy = "year"
)

// AllStrategies lists every strategy in canonical order.
var AllStrategies = []Strategy{StrategyTags, StrategyKeywords, StrategyAuthors, StrategyYear}

// ParseStrategies converts strategy names to strategies, rejecting unknown
// names and collapsing duplicates. The canonical order is preserved
// regardless of input order.
func ParseStrategies(names []string) ([]Strategy, error) {
	requested := make(map[Strategy]bool, len(names))
	for _, name := range names {
		s := Strategy(strings.ToLower(strings.TrimSpace(name)))
		switch s {
		case StrategyTags, StrategyKeywords, StrategyAuthors, StrategyYear:
			requested[s] = true
		case "":
			// Tolerate empty tokens from sloppy flag splitting.
		default:
			return nil, fmt.Errorf("unknown strategy %q (valid: tags, keywords, authors, year)", name)
		}
	}

	var out []Strategy
	for _, s := range AllStrategies {
		if requested[s] {
			out = append(out, s)
		}
	}
	return out, nil
}

// Pair is an undirected candidate pair of paper ids, lower id first.
type Pair struct {
	A, B int64
}

func pairOf(x, y int64) Pair {
	if x > y {
		x, y = y, x
	}
	return Pair{A: x, B: y}
}

// Candidates returns the undirected candidate pairs this strategy finds in
// the given papers. Strategies are pure: they never emit self-pairs and
// never touch the store. Callers pass papers from a single scope, so no
// cross-project pairs can arise.
func (s Strategy) Candidates(papers []paper.Paper, policy paper.MatchPolicy) map[Pair]bool {
	if s == StrategyYear {
		return yearCandidates(papers)
	}

	tokens := make([][]string, len(papers))
	for i := range papers {
		switch s {
		case StrategyTags:
			tokens[i] = papers[i].TagSet()
		case StrategyKeywords:
			tokens[i] = papers[i].KeywordSet()
		case StrategyAuthors:
			tokens[i] = papers[i].AuthorSet()
		}
	}

	pairs := make(map[Pair]bool)
	for i := range papers {
		if len(tokens[i]) == 0 {
			continue
		}
		for j := i + 1; j < len(papers); j++ {
			if paper.Overlaps(tokens[i], tokens[j], policy) {
				pairs[pairOf(papers[i].ID, papers[j].ID)] = true
			}
		}
	}
	return pairs
}

// yearCandidates pairs papers whose publication years are both present
// and equal.
func yearCandidates(papers []paper.Paper) map[Pair]bool {
	byYear := make(map[int][]int64)
	for i := range papers {
		if papers[i].Year != 0 {
			byYear[papers[i].Year] = append(byYear[papers[i].Year], papers[i].ID)
		}
	}

	pairs := make(map[Pair]bool)
	for _, ids := range byYear {
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				pairs[pairOf(ids[i], ids[j])] = true
			}
		}
	}
	return pairs
}
