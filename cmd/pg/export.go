package main

import (
	"errors"

	"github.com/spf13/cobra"

	"papergraph/internal/graph"
	"papergraph/internal/project"
)

var (
	exportProject string
	exportDir     string
)

func init() {
	f := exportCmd.Flags()
	f.StringVar(&exportProject, "project", "", "Export one project's graph instead of the global one")
	f.StringVar(&exportDir, "dir", "", "Output directory (default: configured graph_dir)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the paper graph as JSON and Graphviz DOT",
	Long: `Export the paper graph as JSON and Graphviz DOT.

The global graph is written as graph.json and graph.dot; a project's
graph uses the project id as basename. Generic "related" links are
labeled by the strongest shared attribute (tag, keyword, or author).

Examples:
  pg export
  pg export --project survey --dir ./out`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	db := mustOpenDB(cfg)
	defer db.Close()

	g, err := graph.Build(db, exportProject, cfg.MatchPolicy())
	if err != nil {
		code := ExitError
		if errors.Is(err, project.ErrProjectNotFound) {
			code = ExitNotFound
		}
		exitWithError(code, "building graph: %v", err)
	}

	dir := exportDir
	if dir == "" {
		dir = cfg.GraphDir
	}
	result, err := g.WriteFiles(dir, exportProject)
	if err != nil {
		exitWithError(ExitError, "writing graph files: %v", err)
	}

	if humanOutput {
		outputHuman("wrote %s and %s (%d nodes, %d edges)\n",
			result.JSONPath, result.DOTPath, result.Nodes, result.Edges)
	} else {
		outputJSON(result)
	}
	return nil
}
