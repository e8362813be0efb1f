package storage

import (
	"database/sql"
	"fmt"
	"strconv"

	"papergraph/internal/paper"
)

// selectPaperFields is the standard field list for paper SELECT queries.
const selectPaperFields = `id, paper_id, project_id, title, abstract, keywords, tags,
	authors, year, venue, doi, url, relevance, summary, notes, bibtex, file_path,
	is_duplicated, duplicate_reason, is_excluded, excluded_reason, added_at`

// InsertPaper inserts a paper and returns its store-assigned id.
// If a paper with the same DOI or paper_id already exists, the existing id
// is returned and created is false.
func (d *DB) InsertPaper(p *paper.Paper) (id int64, created bool, err error) {
	if err := p.ValidateForCreate(); err != nil {
		return 0, false, err
	}

	if p.DOI != "" {
		existing, err := d.lookupID("doi", p.DOI)
		if err != nil {
			return 0, false, err
		}
		if existing != 0 {
			return existing, false, nil
		}
	}
	if p.PaperID != "" {
		existing, err := d.lookupID("paper_id", p.PaperID)
		if err != nil {
			return 0, false, err
		}
		if existing != 0 {
			return existing, false, nil
		}
	}

	p.SetAddedAt()

	res, err := d.db.Exec(`
		INSERT INTO papers (
			paper_id, project_id, title, abstract, keywords, tags, authors,
			year, venue, doi, url, relevance, summary, notes, bibtex, file_path,
			is_duplicated, duplicate_reason, is_excluded, excluded_reason, added_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		nullableString(p.PaperID), nullableString(p.ProjectID), p.Title,
		nullableString(p.Abstract), nullableString(p.Keywords), nullableString(p.Tags),
		nullableString(p.Authors), nullableInt(p.Year), nullableString(p.Venue),
		nullableString(p.DOI), nullableString(p.URL), nullableString(p.Relevance),
		nullableString(p.Summary), nullableString(p.Notes), nullableString(p.BibTeX),
		nullableString(p.FilePath),
		p.IsDuplicated, nullableString(p.DuplicateReason),
		p.IsExcluded, nullableString(p.ExcludedReason), p.AddedAt,
	)
	if err != nil {
		return 0, false, fmt.Errorf("inserting paper: %w", err)
	}

	id, err = res.LastInsertId()
	if err != nil {
		return 0, false, fmt.Errorf("reading insert id: %w", err)
	}
	p.ID = id
	return id, true, nil
}

// lookupID returns the internal id of the paper whose column equals value,
// or 0 when no such paper exists.
func (d *DB) lookupID(column, value string) (int64, error) {
	var id int64
	err := d.db.QueryRow("SELECT id FROM papers WHERE "+column+" = ?", value).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("looking up paper by %s: %w", column, err)
	}
	return id, nil
}

// GetPaperByID retrieves a paper by its internal id. Returns nil when absent.
func (d *DB) GetPaperByID(id int64) (*paper.Paper, error) {
	row := d.db.QueryRow(`SELECT `+selectPaperFields+` FROM papers WHERE id = ?`, id)
	return scanPaper(row)
}

// ResolvePaperKey resolves a user-supplied key to an internal paper id.
// Numeric keys are tried as internal ids first, then paper_id, then DOI.
// Returns paper.ErrPaperNotFound when nothing matches.
func (d *DB) ResolvePaperKey(key string) (int64, error) {
	if n, err := strconv.ParseInt(key, 10, 64); err == nil {
		var id int64
		err := d.db.QueryRow("SELECT id FROM papers WHERE id = ?", n).Scan(&id)
		if err == nil {
			return id, nil
		}
		if err != sql.ErrNoRows {
			return 0, fmt.Errorf("resolving paper id: %w", err)
		}
	}

	for _, column := range []string{"paper_id", "doi"} {
		id, err := d.lookupID(column, key)
		if err != nil {
			return 0, err
		}
		if id != 0 {
			return id, nil
		}
	}

	return 0, fmt.Errorf("%w: %q (use id, paper_id, or DOI)", paper.ErrPaperNotFound, key)
}

// PaperFilter contains optional filters for ListPapers.
type PaperFilter struct {
	ProjectID string // Exact project scope ("" = all papers)
	Search    string // Substring search over title and authors
	Tag       string // Tag substring filter
	Keyword   string // Keyword substring filter
	Limit     int    // 0 = no limit
}

// ListPapers returns papers matching all specified filters, ordered by id.
func (d *DB) ListPapers(f PaperFilter) ([]paper.Paper, error) {
	query := `SELECT ` + selectPaperFields + ` FROM papers WHERE 1=1`
	var args []interface{}

	if f.ProjectID != "" {
		query += " AND project_id = ?"
		args = append(args, f.ProjectID)
	}
	if f.Search != "" {
		query += " AND (title LIKE ? OR authors LIKE ?)"
		like := "%" + f.Search + "%"
		args = append(args, like, like)
	}
	if f.Tag != "" {
		query += " AND tags LIKE ?"
		args = append(args, "%"+f.Tag+"%")
	}
	if f.Keyword != "" {
		query += " AND keywords LIKE ?"
		args = append(args, "%"+f.Keyword+"%")
	}

	query += " ORDER BY id"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing papers: %w", err)
	}
	defer rows.Close()

	return scanPapers(rows)
}

// ListPapersByProject returns the papers in the given project scope,
// ordered by id. An empty projectID means all papers.
func (d *DB) ListPapersByProject(projectID string) ([]paper.Paper, error) {
	return d.ListPapers(PaperFilter{ProjectID: projectID})
}

// CountPapers returns the total number of papers.
func (d *DB) CountPapers() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM papers").Scan(&count)
	return count, err
}

// scanner is satisfied by both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPaper(s scanner) (*paper.Paper, error) {
	var p paper.Paper
	var paperID, projectID, abstract, keywords, tags, authors sql.NullString
	var venue, doi, url, relevance, summary, notes, bibtex, filePath sql.NullString
	var duplicateReason, excludedReason, addedAt sql.NullString
	var year sql.NullInt64

	err := s.Scan(
		&p.ID, &paperID, &projectID, &p.Title, &abstract, &keywords, &tags,
		&authors, &year, &venue, &doi, &url, &relevance, &summary, &notes,
		&bibtex, &filePath,
		&p.IsDuplicated, &duplicateReason, &p.IsExcluded, &excludedReason, &addedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	p.PaperID = paperID.String
	p.ProjectID = projectID.String
	p.Abstract = abstract.String
	p.Keywords = keywords.String
	p.Tags = tags.String
	p.Authors = authors.String
	p.Venue = venue.String
	p.DOI = doi.String
	p.URL = url.String
	p.Relevance = relevance.String
	p.Summary = summary.String
	p.Notes = notes.String
	p.BibTeX = bibtex.String
	p.FilePath = filePath.String
	p.DuplicateReason = duplicateReason.String
	p.ExcludedReason = excludedReason.String
	p.AddedAt = addedAt.String
	if year.Valid {
		p.Year = int(year.Int64)
	}

	return &p, nil
}

func scanPapers(rows *sql.Rows) ([]paper.Paper, error) {
	var papers []paper.Paper
	for rows.Next() {
		p, err := scanPaper(rows)
		if err != nil {
			return nil, err
		}
		if p != nil {
			papers = append(papers, *p)
		}
	}
	return papers, rows.Err()
}
