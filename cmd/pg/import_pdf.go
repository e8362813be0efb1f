package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"papergraph/internal/paper"
	"papergraph/internal/pdf"
)

var (
	importProject string
	importTags    string
	importTitle   string
	importCopy    bool
)

func init() {
	f := importPDFCmd.Flags()
	f.StringVar(&importProject, "project", "", "Project to file the paper under")
	f.StringVar(&importTags, "tags", "", "Comma-separated tags")
	f.StringVar(&importTitle, "title", "", "Override the extracted title")
	f.BoolVar(&importCopy, "copy", false, "Copy the PDF into the configured pdf_dir")
	rootCmd.AddCommand(importPDFCmd)
}

var importPDFCmd = &cobra.Command{
	Use:   "import-pdf <file.pdf>",
	Short: "Import a paper from a PDF file",
	Long: `Import a paper from a PDF file.

The title, DOI, year, and abstract are extracted from the leading pages
on a best-effort basis; --title overrides the guess. The file path is
stored with the paper; --copy first files the PDF into the configured
pdf_dir (a name collision gets a numeric suffix).

Examples:
  pg import-pdf paper.pdf
  pg import-pdf paper.pdf --project survey --tags "nlp" --copy`,
	Args: cobra.ExactArgs(1),
	RunE: runImportPDF,
}

func runImportPDF(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err != nil {
		exitWithError(ExitDataError, "reading %s: %v", path, err)
	}

	meta, err := pdf.Extract(path)
	if err != nil {
		exitWithError(ExitDataError, "extracting metadata from %s: %v", path, err)
	}

	p := paper.Paper{
		Title:     meta.Title,
		DOI:       meta.DOI,
		Year:      meta.Year,
		Abstract:  meta.Abstract,
		Tags:      importTags,
		ProjectID: importProject,
		FilePath:  path,
	}
	if importTitle != "" {
		p.Title = importTitle
	}
	if p.Title == "" {
		exitWithError(ExitDataError, "no title found in %s; pass --title", path)
	}

	cfg := mustLoadConfig()

	if importCopy {
		stored, err := copyIntoLibrary(cfg.PDFDir, path)
		if err != nil {
			exitWithError(ExitError, "copying into %s: %v", cfg.PDFDir, err)
		}
		p.FilePath = stored
	}

	db := mustOpenDB(cfg)
	defer db.Close()

	insertPaper(db, &p)
	return nil
}

// copyIntoLibrary copies src into dir, suffixing the basename on
// collision (paper.pdf, paper-1.pdf, ...). Returns the stored path.
func copyIntoLibrary(dir, src string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	base := filepath.Base(src)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	dst := filepath.Join(dir, base)
	for n := 1; ; n++ {
		if _, err := os.Stat(dst); os.IsNotExist(err) {
			break
		}
		dst = filepath.Join(dir, fmt.Sprintf("%s-%d%s", stem, n, ext))
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", err
	}
	return dst, nil
}
