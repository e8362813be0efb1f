package graph

import (
	"fmt"
	"strings"
)

// DOT renders the graph as a Graphviz directed-graph description.
// Statement order is stable (nodes by id order, then edges in link
// order); labels are escaped so the text always parses.
func (g *Graph) DOT() string {
	var b strings.Builder
	b.WriteString("digraph papers {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=box, style=rounded];\n")

	for _, n := range g.Nodes {
		fmt.Fprintf(&b, "  \"%d\" [label=\"%s\"];\n", n.ID, escapeLabel(dotNodeLabel(n)))
	}
	for _, e := range g.Links {
		fmt.Fprintf(&b, "  \"%d\" -> \"%d\" [label=\"%s\"];\n", e.Source, e.Target, escapeLabel(e.Label))
	}

	b.WriteString("}\n")
	return b.String()
}

// dotNodeLabel composes a multi-line node label: title, then identifying
// details, then authors and keywords when present. Lines are joined here
// with real newlines; escapeLabel turns them into DOT line breaks.
func dotNodeLabel(n Node) string {
	lines := []string{n.Title}

	var details []string
	if n.PaperID != "" {
		details = append(details, "pid:"+n.PaperID)
	}
	if n.ProjectID != "" {
		details = append(details, "proj:"+n.ProjectID)
	}
	if n.Year != 0 {
		details = append(details, fmt.Sprintf("%d", n.Year))
	}
	if n.Venue != "" {
		details = append(details, n.Venue)
	}
	if len(details) > 0 {
		lines = append(lines, strings.Join(details, ", "))
	}

	if n.Authors != "" {
		lines = append(lines, "authors: "+n.Authors)
	}
	if len(n.Keywords) > 0 {
		lines = append(lines, "keywords: "+strings.Join(n.Keywords, ", "))
	}
	return strings.Join(lines, "\n")
}

// escapeLabel escapes a string for use inside a double-quoted DOT label.
func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}
