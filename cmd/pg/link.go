package main

import (
	"github.com/spf13/cobra"

	"papergraph/internal/link"
	"papergraph/internal/storage"
)

var (
	linkAddType    string
	linkDeleteType string
	linkNote       string
	linkProject    string
)

func init() {
	linkAddCmd.Flags().StringVar(&linkAddType, "type", link.TypeRelated, "Link type")
	linkAddCmd.Flags().StringVar(&linkNote, "note", "", "Free-form note on the link")
	linkDeleteCmd.Flags().StringVar(&linkDeleteType, "type", "", "Only delete links of this type (default: all)")
	linkListCmd.Flags().StringVar(&linkProject, "project", "", "Only links with both papers in this project")

	linkCmd.AddCommand(linkAddCmd, linkDeleteCmd, linkListCmd)
	rootCmd.AddCommand(linkCmd)
}

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Manage links between papers",
	Long: `Manage explicit links between papers.

Papers are referenced by database id, external paper id, or DOI.`,
}

var linkAddCmd = &cobra.Command{
	Use:   "add <source> <target>",
	Short: "Link two papers",
	Long: `Link two papers.

Examples:
  pg link add 12 47
  pg link add smith-2021 10.1038/s41586-020-2649-2 --type cites`,
	Args: cobra.ExactArgs(2),
	RunE: runLinkAdd,
}

func runLinkAdd(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	db := mustOpenDB(cfg)
	defer db.Close()

	source, target := resolveEndpoints(db, args[0], args[1])

	l := link.Link{SourceID: source, TargetID: target, Type: linkAddType, Note: linkNote}
	if err := l.ValidateForCreate(); err != nil {
		exitWithError(ExitDataError, "invalid link: %v", err)
	}
	l.SetCreatedAt()

	created, err := db.InsertLink(&l)
	if err != nil {
		exitWithError(ExitError, "storing link: %v", err)
	}

	status := "linked"
	if !created {
		status = "exists"
	}
	if humanOutput {
		outputHuman("%s: %d -> %d (%s)\n", status, source, target, l.Type)
	} else {
		outputJSON(LinkResponse{Status: status, SourceID: source, TargetID: target, Type: l.Type})
	}
	return nil
}

var linkDeleteCmd = &cobra.Command{
	Use:   "delete <source> <target>",
	Short: "Remove links between two papers",
	Args:  cobra.ExactArgs(2),
	RunE:  runLinkDelete,
}

func runLinkDelete(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	db := mustOpenDB(cfg)
	defer db.Close()

	source, target := resolveEndpoints(db, args[0], args[1])

	deleted, err := db.DeleteLink(source, target, linkDeleteType)
	if err != nil {
		exitWithError(ExitError, "deleting links: %v", err)
	}
	if deleted == 0 {
		exitWithError(ExitNotFound, "no links between %d and %d", source, target)
	}

	if humanOutput {
		outputHuman("deleted %d link(s) between %d and %d\n", deleted, source, target)
	} else {
		outputJSON(LinkResponse{Status: "deleted", SourceID: source, TargetID: target, Type: linkDeleteType, Deleted: deleted})
	}
	return nil
}

var linkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List links",
	RunE:  runLinkList,
}

func runLinkList(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	db := mustOpenDB(cfg)
	defer db.Close()

	mustHaveProject(db, linkProject)

	links, err := db.ListLinks(linkProject)
	if err != nil {
		exitWithError(ExitError, "listing links: %v", err)
	}

	if humanOutput {
		if len(links) == 0 {
			outputHuman("No links\n")
			return nil
		}
		for _, l := range links {
			outputHuman("  %d -> %d [%s] %s\n", l.SourceID, l.TargetID, l.Type, l.Note)
		}
	} else {
		if links == nil {
			links = []link.Link{}
		}
		outputJSON(links)
	}
	return nil
}

// resolveEndpoints maps two paper keys (id, paper_id, or DOI) to
// database ids, exiting on failure.
func resolveEndpoints(db *storage.DB, sourceKey, targetKey string) (int64, int64) {
	source, err := db.ResolvePaperKey(sourceKey)
	if err != nil {
		exitWithError(exitCodeFor(err), "resolving %q: %v", sourceKey, err)
	}
	target, err := db.ResolvePaperKey(targetKey)
	if err != nil {
		exitWithError(exitCodeFor(err), "resolving %q: %v", targetKey, err)
	}
	return source, target
}
