// Package graph builds the exportable relationship graph over papers and
// links and serializes it to JSON and Graphviz DOT.
package graph

// Graph is the export payload: one node per in-scope paper, one edge per
// in-scope link. It is recomputed on every export and has no persistence
// of its own.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Edge `json:"links"`
}

// Node carries the descriptive attributes a renderer needs for one paper.
type Node struct {
	ID        int64  `json:"id"`
	PaperID   string `json:"paper_id,omitempty"`
	ProjectID string `json:"project_id,omitempty"`

	// Display
	Label string `json:"label"`

	Title    string   `json:"title"`
	Authors  string   `json:"authors,omitempty"`
	Year     int      `json:"year,omitempty"`
	Venue    string   `json:"venue,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
	DOI      string   `json:"doi,omitempty"`
	URL      string   `json:"url,omitempty"`
	Abstract string   `json:"abstract,omitempty"`

	// Dedup/exclusion bookkeeping, passed through verbatim.
	IsDuplicated    bool   `json:"is_duplicated,omitempty"`
	DuplicateReason string `json:"duplicate_reason,omitempty"`
	IsExcluded      bool   `json:"is_excluded,omitempty"`
	ExcludedReason  string `json:"excluded_reason,omitempty"`
}

// Edge is one rendered link: the stored type plus the resolved display
// label (possibly more specific when the stored type is generic).
type Edge struct {
	Source int64  `json:"source"`
	Target int64  `json:"target"`
	Type   string `json:"type"`
	Label  string `json:"label"`
	Note   string `json:"note,omitempty"`
}

// IsEmpty returns true if the graph has no nodes. An empty graph is valid
// output, not a failure.
func (g *Graph) IsEmpty() bool {
	return len(g.Nodes) == 0
}
