package main

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the paper catalog",
	Long: `Initialize the paper catalog: create the data directories and the
SQLite database with its schema.

Locations come from ~/.config/papergraph/config.yml, falling back to
~/.local/share/papergraph. PAPERGRAPH_DB overrides the database path.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	for _, dir := range []string{cfg.GraphDir, cfg.BibDir, cfg.PDFDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			exitWithError(ExitConfigError, "creating %s: %v", dir, err)
		}
	}

	db := mustOpenDB(cfg)
	defer db.Close()

	if humanOutput {
		outputHuman("Initialized paper catalog at %s\n", cfg.DBPath)
	} else {
		outputJSON(StatusResponse{Status: "initialized", Path: cfg.DBPath})
	}
	return nil
}
