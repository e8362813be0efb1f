package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"papergraph/internal/discover"
	"papergraph/internal/graph"
	"papergraph/internal/project"
)

var (
	discoverProject  string
	discoverUsing    string
	discoverPurge    bool
	discoverNoExport bool
)

func init() {
	f := discoverCmd.Flags()
	f.StringVar(&discoverProject, "project", "", "Restrict discovery to one project")
	// Year stays opt-in: it links every same-year pair.
	f.StringVar(&discoverUsing, "using", "tags,keywords,authors", "Comma-separated strategies (tags, keywords, authors, year)")
	f.BoolVar(&discoverPurge, "delete-existing", false, "Delete existing links in scope before discovery")
	f.BoolVar(&discoverNoExport, "no-export", false, "Skip the automatic graph re-export")
	rootCmd.AddCommand(discoverCmd)
}

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Auto-discover links between related papers",
	Long: `Auto-discover links between papers that share tags, keywords,
authors, or a publication year.

Discovered links carry a note naming the strategies that matched. Links
that already exist in either direction are left alone. After a run that
changed anything the graph files are re-exported.

Examples:
  pg discover
  pg discover --project survey --using tags,year
  pg discover --delete-existing --using authors`,
	RunE: runDiscover,
}

func runDiscover(cmd *cobra.Command, args []string) error {
	strategies, err := discover.ParseStrategies(strings.Split(discoverUsing, ","))
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	cfg := mustLoadConfig()
	db := mustOpenDB(cfg)
	defer db.Close()

	o := &discover.Orchestrator{
		Store:  db,
		Policy: cfg.MatchPolicy(),
	}
	if !discoverNoExport {
		o.Notify = func(scope string) {
			projectID := ""
			if scope != "graph" {
				projectID = scope
			}
			g, err := graph.Build(db, projectID, cfg.MatchPolicy())
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: rebuilding graph: %v\n", err)
				return
			}
			if _, err := g.WriteFiles(cfg.GraphDir, projectID); err != nil {
				fmt.Fprintf(os.Stderr, "warning: exporting graph: %v\n", err)
			}
		}
	}

	result, err := o.Run(discover.Options{
		ProjectID:      discoverProject,
		Strategies:     strategies,
		DeleteExisting: discoverPurge,
	})
	if err != nil {
		code := ExitError
		switch {
		case errors.Is(err, discover.ErrNoStrategies):
			code = ExitDataError
		case errors.Is(err, project.ErrProjectNotFound):
			code = ExitNotFound
		}
		exitWithError(code, "discovery failed: %v", err)
	}

	if humanOutput {
		outputHuman("discovered %d link(s), removed %d\n", result.Created, result.Deleted)
	} else {
		outputJSON(result)
	}
	return nil
}
