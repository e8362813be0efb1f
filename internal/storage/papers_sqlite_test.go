package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"papergraph/internal/paper"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func mustInsertPaper(t *testing.T, db *DB, p paper.Paper) int64 {
	t.Helper()
	id, created, err := db.InsertPaper(&p)
	if err != nil {
		t.Fatalf("InsertPaper(%q) failed: %v", p.Title, err)
	}
	if !created {
		t.Fatalf("InsertPaper(%q): expected a fresh insert", p.Title)
	}
	return id
}

func TestDB_InsertPaper(t *testing.T) {
	db := openTestDB(t)

	p := paper.Paper{
		Title:    "Attention Is All You Need",
		Authors:  "Ashish Vaswani and Noam Shazeer",
		Year:     2017,
		Tags:     "nlp, transformers",
		Keywords: "attention",
		DOI:      "10.5555/3295222",
	}
	id, created, err := db.InsertPaper(&p)
	if err != nil {
		t.Fatalf("InsertPaper failed: %v", err)
	}
	if !created || id == 0 {
		t.Fatalf("expected fresh insert with nonzero id, got id=%d created=%v", id, created)
	}

	got, err := db.GetPaperByID(id)
	if err != nil {
		t.Fatalf("GetPaperByID failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected paper, got nil")
	}
	if got.Title != p.Title || got.Year != 2017 || got.Tags != "nlp, transformers" {
		t.Errorf("round-tripped paper mismatch: %+v", got)
	}
	if got.AddedAt == "" {
		t.Error("expected AddedAt to be set on insert")
	}
}

func TestDB_InsertPaper_DedupeByDOI(t *testing.T) {
	db := openTestDB(t)

	first := paper.Paper{Title: "Original", DOI: "10.1000/x"}
	firstID := mustInsertPaper(t, db, first)

	dup := paper.Paper{Title: "Duplicate entry", DOI: "10.1000/x"}
	id, created, err := db.InsertPaper(&dup)
	if err != nil {
		t.Fatalf("InsertPaper failed: %v", err)
	}
	if created {
		t.Error("expected dedupe, got fresh insert")
	}
	if id != firstID {
		t.Errorf("expected existing id %d, got %d", firstID, id)
	}

	count, err := db.CountPapers()
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("expected 1 paper, got %d", count)
	}
}

func TestDB_InsertPaper_DedupeByPaperID(t *testing.T) {
	db := openTestDB(t)

	firstID := mustInsertPaper(t, db, paper.Paper{Title: "Original", PaperID: "vaswani2017"})

	id, created, err := db.InsertPaper(&paper.Paper{Title: "Again", PaperID: "vaswani2017"})
	if err != nil {
		t.Fatalf("InsertPaper failed: %v", err)
	}
	if created || id != firstID {
		t.Errorf("expected dedupe to id %d, got id=%d created=%v", firstID, id, created)
	}
}

func TestDB_InsertPaper_Invalid(t *testing.T) {
	db := openTestDB(t)

	_, _, err := db.InsertPaper(&paper.Paper{Authors: "No Title"})
	if err != paper.ErrEmptyTitle {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
}

func TestDB_ResolvePaperKey(t *testing.T) {
	db := openTestDB(t)

	id := mustInsertPaper(t, db, paper.Paper{
		Title:   "Resolvable",
		PaperID: "smith2024",
		DOI:     "10.1000/resolve",
	})

	tests := []struct {
		name string
		key  string
	}{
		{"by numeric id", "1"},
		{"by paper_id", "smith2024"},
		{"by doi", "10.1000/resolve"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := db.ResolvePaperKey(tt.key)
			if err != nil {
				t.Fatalf("ResolvePaperKey(%q) failed: %v", tt.key, err)
			}
			if got != id {
				t.Errorf("ResolvePaperKey(%q) = %d, want %d", tt.key, got, id)
			}
		})
	}

	_, err := db.ResolvePaperKey("no-such-key")
	if !errors.Is(err, paper.ErrPaperNotFound) {
		t.Errorf("expected ErrPaperNotFound, got %v", err)
	}
}

func TestDB_ResolvePaperKey_NumericPaperID(t *testing.T) {
	db := openTestDB(t)

	// A paper whose external paper_id is all digits must still resolve
	// when the digits do not collide with an internal id.
	id := mustInsertPaper(t, db, paper.Paper{Title: "Numeric external id", PaperID: "20240101"})

	got, err := db.ResolvePaperKey("20240101")
	if err != nil {
		t.Fatalf("ResolvePaperKey failed: %v", err)
	}
	if got != id {
		t.Errorf("ResolvePaperKey = %d, want %d", got, id)
	}
}

func TestDB_ListPapers_Filters(t *testing.T) {
	db := openTestDB(t)

	mustInsertPaper(t, db, paper.Paper{Title: "Neural Parsing", Authors: "Alice Smith", ProjectID: "", Tags: "nlp"})

	if err := db.CreateProject(testProject("slr")); err != nil {
		t.Fatal(err)
	}
	mustInsertPaper(t, db, paper.Paper{Title: "Robot Grasping", Authors: "Bob Jones", ProjectID: "slr", Tags: "robotics", Keywords: "manipulation"})
	mustInsertPaper(t, db, paper.Paper{Title: "Graph Attention", Authors: "Alice Smith", ProjectID: "slr", Tags: "nlp, graphs"})

	tests := []struct {
		name   string
		filter PaperFilter
		want   int
	}{
		{"all", PaperFilter{}, 3},
		{"by project", PaperFilter{ProjectID: "slr"}, 2},
		{"by search over authors", PaperFilter{Search: "Alice"}, 2},
		{"by search over title", PaperFilter{Search: "Grasping"}, 1},
		{"by tag", PaperFilter{Tag: "nlp"}, 2},
		{"by keyword", PaperFilter{Keyword: "manipulation"}, 1},
		{"by project and tag", PaperFilter{ProjectID: "slr", Tag: "nlp"}, 1},
		{"with limit", PaperFilter{Limit: 2}, 2},
		{"no match", PaperFilter{Search: "quantum"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			papers, err := db.ListPapers(tt.filter)
			if err != nil {
				t.Fatalf("ListPapers failed: %v", err)
			}
			if len(papers) != tt.want {
				t.Errorf("got %d papers, want %d", len(papers), tt.want)
			}
		})
	}
}

func TestDB_GetPaperByID_Missing(t *testing.T) {
	db := openTestDB(t)

	p, err := db.GetPaperByID(42)
	if err != nil {
		t.Fatalf("GetPaperByID failed: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil for missing paper, got %+v", p)
	}
}

func TestDB_BookkeepingPassthrough(t *testing.T) {
	db := openTestDB(t)

	id := mustInsertPaper(t, db, paper.Paper{
		Title:           "Screened out",
		IsDuplicated:    true,
		DuplicateReason: "same DOI as #1",
		IsExcluded:      true,
		ExcludedReason:  "out of scope",
	})

	got, err := db.GetPaperByID(id)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsDuplicated || got.DuplicateReason != "same DOI as #1" {
		t.Errorf("duplicate bookkeeping lost: %+v", got)
	}
	if !got.IsExcluded || got.ExcludedReason != "out of scope" {
		t.Errorf("exclusion bookkeeping lost: %+v", got)
	}
}
