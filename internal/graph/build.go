package graph

import (
	"fmt"
	"strconv"
	"strings"

	"papergraph/internal/link"
	"papergraph/internal/paper"
	"papergraph/internal/project"
)

// Store is the read contract the exporter needs. *storage.DB satisfies it.
type Store interface {
	GetProjectByID(id string) (*project.Project, error)
	ListPapersByProject(projectID string) ([]paper.Paper, error)
	ListLinks(projectID string) ([]link.Link, error)
}

// Build constructs the graph for the given scope (empty projectID =
// global). Edge labels are resolved per ResolveLabel; stored links are
// never mutated. Nodes follow paper id order, edges follow the store's
// link order, so re-exports diff minimally.
func Build(store Store, projectID string, policy paper.MatchPolicy) (*Graph, error) {
	if projectID != "" {
		proj, err := store.GetProjectByID(projectID)
		if err != nil {
			return nil, fmt.Errorf("checking project scope: %w", err)
		}
		if proj == nil {
			return nil, fmt.Errorf("%w: %q", project.ErrProjectNotFound, projectID)
		}
	}

	papers, err := store.ListPapersByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("loading papers: %w", err)
	}
	links, err := store.ListLinks(projectID)
	if err != nil {
		return nil, fmt.Errorf("loading links: %w", err)
	}

	byID := make(map[int64]*paper.Paper, len(papers))
	nodes := make([]Node, 0, len(papers))
	for i := range papers {
		byID[papers[i].ID] = &papers[i]
		nodes = append(nodes, newNode(&papers[i]))
	}

	edges := make([]Edge, 0, len(links))
	for _, l := range links {
		// A link can outlive one endpoint's scope membership when the
		// global link set is exported; skip edges missing a node.
		if byID[l.SourceID] == nil || byID[l.TargetID] == nil {
			continue
		}
		edges = append(edges, Edge{
			Source: l.SourceID,
			Target: l.TargetID,
			Type:   l.Type,
			Label:  ResolveLabel(byID[l.SourceID], byID[l.TargetID], l.Type, policy),
			Note:   l.Note,
		})
	}

	return &Graph{Nodes: nodes, Links: edges}, nil
}

// newNode converts a paper to its export node.
func newNode(p *paper.Paper) Node {
	return Node{
		ID:              p.ID,
		PaperID:         p.PaperID,
		ProjectID:       p.ProjectID,
		Label:           nodeLabel(p),
		Title:           p.Title,
		Authors:         p.Authors,
		Year:            p.Year,
		Venue:           p.Venue,
		Tags:            p.TagSet(),
		Keywords:        p.KeywordSet(),
		DOI:             p.DOI,
		URL:             p.URL,
		Abstract:        p.Abstract,
		IsDuplicated:    p.IsDuplicated,
		DuplicateReason: p.DuplicateReason,
		IsExcluded:      p.IsExcluded,
		ExcludedReason:  p.ExcludedReason,
	}
}

// nodeLabel derives the composite display label for a paper node:
// title, identifiers, project, year/venue, authors, keywords.
func nodeLabel(p *paper.Paper) string {
	var b strings.Builder
	b.WriteString(p.Title)

	ids := "#" + strconv.FormatInt(p.ID, 10)
	if p.PaperID != "" {
		ids += ", " + p.PaperID
	}
	b.WriteString(" (" + ids + ")")

	if p.ProjectID != "" {
		b.WriteString(" [" + p.ProjectID + "]")
	}

	var when []string
	if p.Year != 0 {
		when = append(when, strconv.Itoa(p.Year))
	}
	if p.Venue != "" {
		when = append(when, p.Venue)
	}
	if len(when) > 0 {
		b.WriteString(" " + strings.Join(when, "/"))
	}

	if p.Authors != "" {
		b.WriteString(" - " + p.Authors)
	}
	if kws := p.KeywordSet(); len(kws) > 0 {
		b.WriteString(" - " + strings.Join(kws, ", "))
	}
	return b.String()
}
