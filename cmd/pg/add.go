package main

import (
	"github.com/spf13/cobra"

	"papergraph/internal/paper"
)

var addPaper paper.Paper

func init() {
	f := addCmd.Flags()
	f.StringVar(&addPaper.Title, "title", "", "Paper title (required)")
	f.StringVar(&addPaper.Authors, "authors", "", "Comma-separated author names")
	f.IntVar(&addPaper.Year, "year", 0, "Publication year (0 = unknown)")
	f.StringVar(&addPaper.Venue, "venue", "", "Journal or conference")
	f.StringVar(&addPaper.Tags, "tags", "", "Comma-separated tags")
	f.StringVar(&addPaper.Keywords, "keywords", "", "Comma-separated keywords")
	f.StringVar(&addPaper.Abstract, "abstract", "", "Abstract text")
	f.StringVar(&addPaper.DOI, "doi", "", "DOI")
	f.StringVar(&addPaper.URL, "url", "", "URL")
	f.StringVar(&addPaper.ProjectID, "project", "", "Project to file the paper under")
	f.StringVar(&addPaper.PaperID, "paper-id", "", "External identifier (e.g. citation key)")
	f.StringVar(&addPaper.Relevance, "relevance", "", "Relevance note")
	f.StringVar(&addPaper.Summary, "summary", "", "Summary")
	f.StringVar(&addPaper.Notes, "notes", "", "Free-form notes")
	f.StringVar(&addPaper.BibTeX, "bibtex", "", "Stored BibTeX entry")
	f.StringVar(&addPaper.FilePath, "file", "", "Path to the paper's PDF")
	addCmd.MarkFlagRequired("title")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a paper to the catalog",
	Long: `Add a paper to the catalog.

Papers with a DOI or paper-id already in the catalog are not duplicated;
the existing entry is reported instead.

Examples:
  pg add --title "Attention Is All You Need" --year 2017 --tags "nlp,transformers"
  pg add --title "..." --doi 10.5555/3295222 --project survey`,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	db := mustOpenDB(cfg)
	defer db.Close()

	insertPaper(db, &addPaper)
	return nil
}
