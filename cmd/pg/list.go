package main

import (
	"github.com/spf13/cobra"

	"papergraph/internal/paper"
	"papergraph/internal/storage"
)

var listFilter storage.PaperFilter

func init() {
	f := listCmd.Flags()
	f.StringVar(&listFilter.ProjectID, "project", "", "Only papers in this project")
	f.StringVar(&listFilter.Search, "search", "", "Substring match on title and authors")
	f.StringVar(&listFilter.Tag, "tag", "", "Only papers carrying this tag")
	f.StringVar(&listFilter.Keyword, "keyword", "", "Only papers carrying this keyword")
	f.IntVar(&listFilter.Limit, "limit", 0, "Maximum results to return (0 = all)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List papers in the catalog",
	Long: `List papers in the catalog, optionally filtered.

Examples:
  pg list
  pg list --project survey --tag nlp
  pg list --search attention --limit 20`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	db := mustOpenDB(cfg)
	defer db.Close()

	mustHaveProject(db, listFilter.ProjectID)

	papers, err := db.ListPapers(listFilter)
	if err != nil {
		exitWithError(ExitError, "listing papers: %v", err)
	}

	if humanOutput {
		if len(papers) == 0 {
			outputHuman("No papers found\n")
			return nil
		}
		outputHuman("%d papers:\n\n", len(papers))
		for _, p := range papers {
			outputHuman("  #%-5d %s\n", p.ID, truncateString(p.Title, ListTitleMaxLen))
		}
	} else {
		if papers == nil {
			papers = []paper.Paper{}
		}
		outputJSON(papers)
	}
	return nil
}
