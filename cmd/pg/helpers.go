package main

import (
	"errors"
	"os"
	"path/filepath"

	"papergraph/internal/config"
	"papergraph/internal/paper"
	"papergraph/internal/storage"
)

// mustLoadConfig loads the global config or exits.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// mustOpenDB opens the catalog database or exits. The parent directory
// is created on first use so `pg add` works without a prior init.
func mustOpenDB(cfg *config.Config) *storage.DB {
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		exitWithError(ExitConfigError, "creating data directory: %v", err)
	}
	db, err := storage.OpenDB(cfg.DBPath)
	if err != nil {
		exitWithError(ExitConfigError, "opening database %s: %v", cfg.DBPath, err)
	}
	return db
}

// mustHaveProject exits unless the project exists. The empty id (no
// project) always passes.
func mustHaveProject(db *storage.DB, projectID string) {
	if projectID == "" {
		return
	}
	proj, err := db.GetProjectByID(projectID)
	if err != nil {
		exitWithError(ExitError, "looking up project: %v", err)
	}
	if proj == nil {
		exitWithError(ExitNotFound, "project not found: %s", projectID)
	}
}

// insertPaper validates and stores a paper, then reports the outcome.
// Shared by add and import-pdf.
func insertPaper(db *storage.DB, p *paper.Paper) {
	if err := p.ValidateForCreate(); err != nil {
		exitWithError(ExitDataError, "invalid paper: %v", err)
	}
	mustHaveProject(db, p.ProjectID)
	p.SetAddedAt()

	id, created, err := db.InsertPaper(p)
	if err != nil {
		exitWithError(ExitError, "storing paper: %v", err)
	}

	status := "added"
	if !created {
		status = "exists"
	}
	if humanOutput {
		outputHuman("%s: #%d %s\n", status, id, truncateString(p.Title, DetailTitleMaxLen))
	} else {
		outputJSON(AddResponse{Status: status, ID: id, PaperID: p.PaperID, Title: p.Title, DOI: p.DOI})
	}
	if !created {
		os.Exit(ExitDuplicate)
	}
}

// exitCodeFor maps domain errors to exit codes.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, paper.ErrPaperNotFound):
		return ExitNotFound
	default:
		return ExitError
	}
}
