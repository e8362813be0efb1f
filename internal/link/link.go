// Package link defines the core domain type for relationships between papers.
package link

import (
	"errors"
	"time"
)

// TypeRelated is the generic relationship type assigned by auto-discovery.
// Its display label is resolved from attribute overlap at export time.
const TypeRelated = "related"

// Link represents a directed relationship between two papers.
// Links are never mutated in place; corrections are delete and recreate.
type Link struct {
	ID       int64 `json:"id,omitempty"`
	SourceID int64 `json:"source"`
	TargetID int64 `json:"target"`

	Type      string `json:"type"` // Free-text kind: cites, extends, related, ...
	Note      string `json:"note,omitempty"`
	CreatedAt string `json:"created_at,omitempty"` // RFC3339, auto-set on create
}

// Validation errors.
var (
	ErrEmptySource = errors.New("source is required")
	ErrEmptyTarget = errors.New("target is required")
	ErrEmptyType   = errors.New("type is required")
	ErrSelfLink    = errors.New("source and target cannot be the same paper")
)

// ValidateForCreate validates a link for creation.
func (l *Link) ValidateForCreate() error {
	if l.SourceID == 0 {
		return ErrEmptySource
	}
	if l.TargetID == 0 {
		return ErrEmptyTarget
	}
	if l.Type == "" {
		return ErrEmptyType
	}
	if l.SourceID == l.TargetID {
		return ErrSelfLink
	}
	return nil
}

// SetCreatedAt sets the CreatedAt timestamp to the current time if not already set.
func (l *Link) SetCreatedAt() {
	if l.CreatedAt == "" {
		l.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
}

// Key returns the directed identity of this link.
func (l *Link) Key() Key {
	return Key{SourceID: l.SourceID, TargetID: l.TargetID}
}

// PairKey returns the undirected identity of this link, with the lower
// paper id first. Discovery dedup is order-insensitive, so A->B and B->A
// map to the same pair.
func (l *Link) PairKey() Key {
	if l.SourceID > l.TargetID {
		return Key{SourceID: l.TargetID, TargetID: l.SourceID}
	}
	return Key{SourceID: l.SourceID, TargetID: l.TargetID}
}

// Key identifies a link by its endpoints.
type Key struct {
	SourceID int64
	TargetID int64
}
