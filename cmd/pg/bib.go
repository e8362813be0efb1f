package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"papergraph/internal/export"
	"papergraph/internal/storage"
)

var bibProject string

func init() {
	bibCmd.Flags().StringVar(&bibProject, "project", "", "Assemble one project's bibliography")
	rootCmd.AddCommand(bibCmd)
}

var bibCmd = &cobra.Command{
	Use:   "bib",
	Short: "Assemble a BibTeX bibliography",
	Long: `Assemble a BibTeX bibliography from the catalog.

Papers with a stored BibTeX entry contribute it verbatim; entries are
generated for the rest. Entries already present in the target file (by
DOI or citation key) are kept as-is, so hand edits survive.

The global bibliography goes to <bib_dir>/papers.bib; a project uses
its configured bib path or <bib_dir>/<project>.bib.

Examples:
  pg bib
  pg bib --project survey`,
	RunE: runBib,
}

func runBib(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	db := mustOpenDB(cfg)
	defer db.Close()

	path := filepath.Join(cfg.BibDir, "papers.bib")
	if bibProject != "" {
		proj, err := db.GetProjectByID(bibProject)
		if err != nil {
			exitWithError(ExitError, "looking up project: %v", err)
		}
		if proj == nil {
			exitWithError(ExitNotFound, "project not found: %s", bibProject)
		}
		if proj.BibPath != "" {
			path = proj.BibPath
		} else {
			path = filepath.Join(cfg.BibDir, bibProject+".bib")
		}
	}

	papers, err := db.ListPapers(storage.PaperFilter{ProjectID: bibProject})
	if err != nil {
		exitWithError(ExitError, "listing papers: %v", err)
	}

	added, err := export.UpdateBibFile(path, papers)
	if err != nil {
		exitWithError(ExitError, "updating %s: %v", path, err)
	}

	if humanOutput {
		outputHuman("%s: %d new entries (%d papers in scope)\n", path, added, len(papers))
	} else {
		outputJSON(BibResponse{Status: "updated", Path: path, Added: added, Total: len(papers)})
	}
	return nil
}
