package discover

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"papergraph/internal/link"
	"papergraph/internal/paper"
	"papergraph/internal/project"
)

// ErrNoStrategies is returned when Run is invoked with an empty strategy
// set. Running zero strategies would be a silent no-op masking a caller
// bug, so it is rejected instead.
var ErrNoStrategies = errors.New("no discovery strategies selected")

// Store is the record-store contract the orchestrator needs. *storage.DB
// satisfies it.
type Store interface {
	GetProjectByID(id string) (*project.Project, error)
	ListPapersByProject(projectID string) ([]paper.Paper, error)
	CommitDiscovered(projectID string, purge bool, candidates []link.Link) (created, deleted int, err error)
}

// Options selects the scope and behavior of one discovery run.
type Options struct {
	ProjectID      string // "" = global scope
	Strategies     []Strategy
	DeleteExisting bool // purge the scope's links before discovery
}

// Result reports what a discovery run changed.
type Result struct {
	Created int `json:"created"`
	Deleted int `json:"deleted"`
}

// Orchestrator runs discovery strategies over a scope and commits the
// surviving candidates as one atomic batch.
type Orchestrator struct {
	Store  Store
	Policy paper.MatchPolicy

	// Notify, when set, is called with the scope name after a commit that
	// changed anything. External schedulers hang export rebuilds off it.
	Notify func(scope string)
}

// Run executes the selected strategies and commits new links. All
// validation happens before any store mutation; the commit itself is
// all-or-nothing. Re-running with identical inputs and no purge creates
// zero links.
func (o *Orchestrator) Run(opts Options) (Result, error) {
	if len(opts.Strategies) == 0 {
		return Result{}, ErrNoStrategies
	}

	if opts.ProjectID != "" {
		proj, err := o.Store.GetProjectByID(opts.ProjectID)
		if err != nil {
			return Result{}, fmt.Errorf("checking project scope: %w", err)
		}
		if proj == nil {
			return Result{}, fmt.Errorf("%w: %q", project.ErrProjectNotFound, opts.ProjectID)
		}
	}

	papers, err := o.Store.ListPapersByProject(opts.ProjectID)
	if err != nil {
		return Result{}, fmt.Errorf("loading papers: %w", err)
	}

	candidates := o.collectCandidates(papers, opts.Strategies)

	created, deleted, err := o.Store.CommitDiscovered(opts.ProjectID, opts.DeleteExisting, candidates)
	if err != nil {
		return Result{}, err
	}

	result := Result{Created: created, Deleted: deleted}
	if o.Notify != nil && (created > 0 || deleted > 0) {
		o.Notify(scopeName(opts.ProjectID))
	}
	return result, nil
}

// collectCandidates unions the strategies' pair sets and builds one link
// per pair, annotated with the strategies that matched it.
func (o *Orchestrator) collectCandidates(papers []paper.Paper, strategies []Strategy) []link.Link {
	matched := make(map[Pair][]Strategy)
	for _, s := range strategies {
		for pair := range s.Candidates(papers, o.Policy) {
			matched[pair] = append(matched[pair], s)
		}
	}

	pairs := make([]Pair, 0, len(matched))
	for pair := range matched {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})

	links := make([]link.Link, 0, len(pairs))
	for _, pair := range pairs {
		links = append(links, link.Link{
			SourceID: pair.A,
			TargetID: pair.B,
			Type:     link.TypeRelated,
			Note:     strategyNote(matched[pair]),
		})
	}
	return links
}

// strategyNote renders the audit note for a discovered link, e.g.
// "auto: tags,year". Strategies appear in canonical order.
func strategyNote(matched []Strategy) string {
	set := make(map[Strategy]bool, len(matched))
	for _, s := range matched {
		set[s] = true
	}
	var names []string
	for _, s := range AllStrategies {
		if set[s] {
			names = append(names, string(s))
		}
	}
	return "auto: " + strings.Join(names, ",")
}

// scopeName names a scope for notifications and export files.
func scopeName(projectID string) string {
	if projectID == "" {
		return "graph"
	}
	return projectID
}
