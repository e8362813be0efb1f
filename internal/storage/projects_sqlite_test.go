package storage

import (
	"testing"

	"papergraph/internal/project"
)

func testProject(id string) *project.Project {
	return &project.Project{ID: id, Name: "Project " + id}
}

func TestDB_CreateProject(t *testing.T) {
	db := openTestDB(t)

	p := &project.Project{
		ID:          "slr-2024",
		Name:        "Systematic review",
		Description: "Screening corpus",
		BibPath:     "/tmp/slr.bib",
	}
	if err := db.CreateProject(p); err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}
	if p.CreatedAt == "" {
		t.Error("expected CreatedAt to be set")
	}

	got, err := db.GetProjectByID("slr-2024")
	if err != nil {
		t.Fatalf("GetProjectByID failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected project, got nil")
	}
	if got.Name != "Systematic review" || got.BibPath != "/tmp/slr.bib" {
		t.Errorf("round-tripped project mismatch: %+v", got)
	}
}

func TestDB_CreateProject_Duplicate(t *testing.T) {
	db := openTestDB(t)

	if err := db.CreateProject(testProject("slr")); err != nil {
		t.Fatal(err)
	}
	err := db.CreateProject(testProject("slr"))
	if err != project.ErrDuplicateID {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
}

func TestDB_CreateProject_Invalid(t *testing.T) {
	db := openTestDB(t)

	err := db.CreateProject(&project.Project{ID: "Bad ID", Name: "x"})
	if err != project.ErrInvalidID {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
}

func TestDB_GetProjectByID_Missing(t *testing.T) {
	db := openTestDB(t)

	got, err := db.GetProjectByID("missing")
	if err != nil {
		t.Fatalf("GetProjectByID failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing project, got %+v", got)
	}
}

func TestDB_ListProjects(t *testing.T) {
	db := openTestDB(t)

	for _, id := range []string{"alpha", "beta"} {
		if err := db.CreateProject(testProject(id)); err != nil {
			t.Fatal(err)
		}
	}

	projects, err := db.ListProjects()
	if err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
}

func TestDB_DeleteProject_UnscopesPapers(t *testing.T) {
	db := openTestDB(t)

	if err := db.CreateProject(testProject("slr")); err != nil {
		t.Fatal(err)
	}
	id := mustInsertPaper(t, db, testPaper("Scoped", "slr"))

	if err := db.DeleteProject("slr"); err != nil {
		t.Fatalf("DeleteProject failed: %v", err)
	}

	// The paper survives with its project cleared.
	got, err := db.GetPaperByID(id)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("expected paper to survive project deletion")
	}
	if got.ProjectID != "" {
		t.Errorf("expected paper to be unscoped, got project %q", got.ProjectID)
	}
}

func TestDB_DeleteProject_Missing(t *testing.T) {
	db := openTestDB(t)

	err := db.DeleteProject("missing")
	if err != project.ErrProjectNotFound {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}
