package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"papergraph/internal/project"
)

// CreateProject inserts a new project.
func (d *DB) CreateProject(p *project.Project) error {
	if err := p.ValidateForCreate(); err != nil {
		return err
	}
	p.SetCreatedAt()

	_, err := d.db.Exec(`
		INSERT INTO projects (id, name, description, bib_path, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, p.ID, p.Name, nullableString(p.Description), nullableString(p.BibPath), p.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return project.ErrDuplicateID
		}
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

// GetProjectByID retrieves a project by its ID. Returns nil when absent.
func (d *DB) GetProjectByID(id string) (*project.Project, error) {
	row := d.db.QueryRow(`
		SELECT id, name, description, bib_path, created_at
		FROM projects
		WHERE id = ?
	`, id)
	return scanProject(row)
}

// ListProjects returns all projects ordered by creation time.
func (d *DB) ListProjects() ([]project.Project, error) {
	rows, err := d.db.Query(`
		SELECT id, name, description, bib_path, created_at
		FROM projects
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()

	return scanProjects(rows)
}

// DeleteProject removes a project. Papers in the project are unscoped
// (project_id set to NULL by the foreign key), not deleted.
func (d *DB) DeleteProject(id string) error {
	res, err := d.db.Exec("DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}

// CountProjects returns the total number of projects.
func (d *DB) CountProjects() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM projects").Scan(&count)
	return count, err
}

// projectScanFields holds the scan targets for a project row.
type projectScanFields struct {
	id, name, description, bibPath, createdAt sql.NullString
}

func (f *projectScanFields) toProject() project.Project {
	return project.Project{
		ID:          f.id.String,
		Name:        f.name.String,
		Description: f.description.String,
		BibPath:     f.bibPath.String,
		CreatedAt:   f.createdAt.String,
	}
}

func scanProject(row *sql.Row) (*project.Project, error) {
	var f projectScanFields
	err := row.Scan(&f.id, &f.name, &f.description, &f.bibPath, &f.createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	p := f.toProject()
	return &p, nil
}

func scanProjects(rows *sql.Rows) ([]project.Project, error) {
	var projects []project.Project
	for rows.Next() {
		var f projectScanFields
		if err := rows.Scan(&f.id, &f.name, &f.description, &f.bibPath, &f.createdAt); err != nil {
			return nil, err
		}
		projects = append(projects, f.toProject())
	}
	return projects, rows.Err()
}
