// Package main provides the pg CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pg",
	Short: "Research paper catalog with automatic link discovery",
	Long: `pg catalogs research papers in a local SQLite database, links
related papers by shared tags, keywords, authors, or publication year,
and exports the resulting graph as JSON and Graphviz DOT.

All commands output JSON by default for easy integration with other
tools. Use --human for human-readable output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Load .env file if present (for PAPERGRAPH_DB)
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
