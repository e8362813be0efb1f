package main

import (
	"errors"

	"github.com/spf13/cobra"

	"papergraph/internal/project"
)

var (
	projectName        string
	projectDescription string
	projectBibPath     string
)

func init() {
	f := projectAddCmd.Flags()
	f.StringVar(&projectName, "name", "", "Display name (defaults to the id)")
	f.StringVar(&projectDescription, "description", "", "Short description")
	f.StringVar(&projectBibPath, "bib", "", "Bibliography file for this project")

	projectCmd.AddCommand(projectAddCmd, projectListCmd, projectDeleteCmd)
	rootCmd.AddCommand(projectCmd)
}

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
	Long: `Manage projects. A project groups papers; its graph and
bibliography can be exported separately. Deleting a project keeps its
papers but unfiles them.`,
}

var projectAddCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Create a project",
	Long: `Create a project. Ids are lowercase alphanumeric with dashes or
underscores, e.g. "survey-2026".`,
	Args: cobra.ExactArgs(1),
	RunE: runProjectAdd,
}

func runProjectAdd(cmd *cobra.Command, args []string) error {
	p := project.Project{
		ID:          args[0],
		Name:        projectName,
		Description: projectDescription,
		BibPath:     projectBibPath,
	}
	if p.Name == "" {
		p.Name = p.ID
	}
	if err := p.ValidateForCreate(); err != nil {
		exitWithError(ExitDataError, "invalid project: %v", err)
	}
	p.SetCreatedAt()

	cfg := mustLoadConfig()
	db := mustOpenDB(cfg)
	defer db.Close()

	if err := db.CreateProject(&p); err != nil {
		if errors.Is(err, project.ErrDuplicateID) {
			exitWithError(ExitDuplicate, "project already exists: %s", p.ID)
		}
		exitWithError(ExitError, "creating project: %v", err)
	}

	if humanOutput {
		outputHuman("created project %s\n", p.ID)
	} else {
		outputJSON(p)
	}
	return nil
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE:  runProjectList,
}

func runProjectList(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	db := mustOpenDB(cfg)
	defer db.Close()

	projects, err := db.ListProjects()
	if err != nil {
		exitWithError(ExitError, "listing projects: %v", err)
	}

	if humanOutput {
		if len(projects) == 0 {
			outputHuman("No projects\n")
			return nil
		}
		for _, p := range projects {
			outputHuman("  %-20s %s\n", p.ID, p.Name)
		}
	} else {
		if projects == nil {
			projects = []project.Project{}
		}
		outputJSON(projects)
	}
	return nil
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project, keeping its papers",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectDelete,
}

func runProjectDelete(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	db := mustOpenDB(cfg)
	defer db.Close()

	if err := db.DeleteProject(args[0]); err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			exitWithError(ExitNotFound, "project not found: %s", args[0])
		}
		exitWithError(ExitError, "deleting project: %v", err)
	}

	if humanOutput {
		outputHuman("deleted project %s\n", args[0])
	} else {
		outputJSON(StatusResponse{Status: "deleted", Path: args[0]})
	}
	return nil
}
