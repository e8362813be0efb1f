// Package paper defines the core domain type for catalogued papers.
package paper

import (
	"errors"
	"time"
)

// Paper represents one research paper record.
//
// The store assigns ID on insert. PaperID is an optional free-text external
// identifier and is not guaranteed unique across projects. A paper is
// read-only input to discovery and export; the engine never mutates it.
type Paper struct {
	ID        int64  `json:"id"`
	PaperID   string `json:"paper_id,omitempty"`
	ProjectID string `json:"project_id,omitempty"` // empty means global/unscoped

	Title    string `json:"title"` // Required
	Abstract string `json:"abstract,omitempty"`
	Keywords string `json:"keywords,omitempty"` // Comma-delimited
	Tags     string `json:"tags,omitempty"`     // Comma-delimited
	Authors  string `json:"authors,omitempty"`  // "and"- or comma-separated
	Year     int    `json:"year,omitempty"`     // 0 means unknown
	Venue    string `json:"venue,omitempty"`
	DOI      string `json:"doi,omitempty"`
	URL      string `json:"url,omitempty"`

	Relevance string `json:"relevance,omitempty"`
	Summary   string `json:"summary,omitempty"`
	Notes     string `json:"notes,omitempty"`
	BibTeX    string `json:"bibtex,omitempty"`
	FilePath  string `json:"file_path,omitempty"`

	// Dedup/exclusion bookkeeping. Opaque to discovery; passed through
	// into the graph export verbatim.
	IsDuplicated    bool   `json:"is_duplicated,omitempty"`
	DuplicateReason string `json:"duplicate_reason,omitempty"`
	IsExcluded      bool   `json:"is_excluded,omitempty"`
	ExcludedReason  string `json:"excluded_reason,omitempty"`

	AddedAt string `json:"added_at,omitempty"` // RFC3339, auto-set on insert
}

// Validation errors.
var (
	ErrEmptyTitle  = errors.New("title is required")
	ErrInvalidYear = errors.New("year must be a positive four-digit-ish value")
)

// ErrPaperNotFound is returned when a paper lookup by id, paper_id, or DOI
// matches nothing.
var ErrPaperNotFound = errors.New("paper not found")

// ValidateForCreate validates a paper for insertion.
func (p *Paper) ValidateForCreate() error {
	if p.Title == "" {
		return ErrEmptyTitle
	}
	if p.Year < 0 {
		return ErrInvalidYear
	}
	return nil
}

// SetAddedAt sets the AddedAt timestamp to the current time if not already set.
func (p *Paper) SetAddedAt() {
	if p.AddedAt == "" {
		p.AddedAt = time.Now().UTC().Format(time.RFC3339)
	}
}

// TagSet returns the normalized tag tokens.
func (p *Paper) TagSet() []string {
	return SplitList(p.Tags)
}

// KeywordSet returns the normalized keyword tokens.
func (p *Paper) KeywordSet() []string {
	return SplitList(p.Keywords)
}

// AuthorSet returns the individual normalized author names.
func (p *Paper) AuthorSet() []string {
	return SplitAuthors(p.Authors)
}
