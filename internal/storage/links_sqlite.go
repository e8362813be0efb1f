package storage

import (
	"database/sql"
	"fmt"

	"papergraph/internal/link"
)

// linkScopeCondition restricts links to those whose endpoints both belong
// to the given project. Used with two bound projectID arguments.
const linkScopeCondition = `
	source_id IN (SELECT id FROM papers WHERE project_id = ?)
	AND target_id IN (SELECT id FROM papers WHERE project_id = ?)`

// InsertLink inserts a single explicit link. Returns false when an
// identical (source, target, type) link already exists.
func (d *DB) InsertLink(l *link.Link) (created bool, err error) {
	if err := l.ValidateForCreate(); err != nil {
		return false, err
	}
	l.SetCreatedAt()

	res, err := d.db.Exec(`
		INSERT OR IGNORE INTO links (source_id, target_id, type, note, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, l.SourceID, l.TargetID, l.Type, nullableString(l.Note), l.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("inserting link: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListLinks returns links ordered by source then target. With a non-empty
// projectID only links whose endpoints are both in that project are
// returned.
func (d *DB) ListLinks(projectID string) ([]link.Link, error) {
	query := `SELECT id, source_id, target_id, type, note, created_at FROM links`
	var args []interface{}

	if projectID != "" {
		query += ` WHERE` + linkScopeCondition
		args = append(args, projectID, projectID)
	}
	query += ` ORDER BY source_id, target_id, type`

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing links: %w", err)
	}
	defer rows.Close()

	return scanLinks(rows)
}

// DeleteLink removes links between the given endpoints. With a non-empty
// linkType only that relationship type is removed. Returns the number of
// links deleted.
func (d *DB) DeleteLink(sourceID, targetID int64, linkType string) (int, error) {
	query := "DELETE FROM links WHERE source_id = ? AND target_id = ?"
	args := []interface{}{sourceID, targetID}
	if linkType != "" {
		query += " AND type = ?"
		args = append(args, linkType)
	}

	res, err := d.db.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("deleting link: %w", err)
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// CountLinks returns the total number of links.
func (d *DB) CountLinks() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM links").Scan(&count)
	return count, err
}

// CommitDiscovered applies a discovery batch in a single transaction:
// an optional purge of the scope's links, then insertion of candidates
// that do not collide with a surviving link in either direction. On any
// failure the whole batch rolls back and zero links change.
func (d *DB) CommitDiscovered(projectID string, purge bool, candidates []link.Link) (created, deleted int, err error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if purge {
		query := "DELETE FROM links"
		var args []interface{}
		if projectID != "" {
			query += " WHERE" + linkScopeCondition
			args = append(args, projectID, projectID)
		}
		res, err := tx.Exec(query, args...)
		if err != nil {
			return 0, 0, fmt.Errorf("purging links: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, 0, err
		}
		deleted = int(n)
	}

	// Links surviving the purge suppress candidates in either direction.
	existing, err := existingPairs(tx)
	if err != nil {
		return 0, 0, err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO links (source_id, target_id, type, note, created_at)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, 0, fmt.Errorf("preparing link insert: %w", err)
	}
	defer stmt.Close()

	for i := range candidates {
		c := &candidates[i]
		if err := c.ValidateForCreate(); err != nil {
			return 0, 0, fmt.Errorf("invalid candidate %d->%d: %w", c.SourceID, c.TargetID, err)
		}
		pair := c.PairKey()
		if existing[pair] {
			continue
		}
		c.SetCreatedAt()
		if _, err := stmt.Exec(c.SourceID, c.TargetID, c.Type, nullableString(c.Note), c.CreatedAt); err != nil {
			return 0, 0, fmt.Errorf("inserting discovered link %d->%d: %w", c.SourceID, c.TargetID, err)
		}
		existing[pair] = true
		created++
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("committing discovery batch: %w", err)
	}
	return created, deleted, nil
}

// existingPairs returns the undirected endpoint pairs of all links visible
// inside the transaction.
func existingPairs(tx *sql.Tx) (map[link.Key]bool, error) {
	rows, err := tx.Query("SELECT source_id, target_id FROM links")
	if err != nil {
		return nil, fmt.Errorf("querying existing links: %w", err)
	}
	defer rows.Close()

	pairs := make(map[link.Key]bool)
	for rows.Next() {
		var l link.Link
		if err := rows.Scan(&l.SourceID, &l.TargetID); err != nil {
			return nil, err
		}
		pairs[l.PairKey()] = true
	}
	return pairs, rows.Err()
}

// scanLinks scans rows into a slice of links.
func scanLinks(rows *sql.Rows) ([]link.Link, error) {
	var links []link.Link
	for rows.Next() {
		var l link.Link
		var note, createdAt sql.NullString
		if err := rows.Scan(&l.ID, &l.SourceID, &l.TargetID, &l.Type, &note, &createdAt); err != nil {
			return nil, err
		}
		l.Note = note.String
		l.CreatedAt = createdAt.String
		links = append(links, l)
	}
	return links, rows.Err()
}
