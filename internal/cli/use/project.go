package use

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/config"
)

// ProjectCmd returns the use project subcommand
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project [project-id]",
		Short: "Set project context for current shell session",
		Long: `Print the shell command that selects a project for this session.
The project must exist and be visible to you. Evaluate the output:

  eval $(hito use project p1)              # Use project p1
  eval $(hito use project --clear)         # Clear project context
  hito use project --show                  # Show current project

The ` + config.EnvProject + ` variable is read by the task commands. --project
takes precedence over it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUseProject,
	}

	cmd.Flags().Bool("clear", false, "Clear the current project context")
	cmd.Flags().Bool("show", false, "Show the current project context")
	cmd.Flags().Bool("dry-run", false, "Show what would be exported without outputting shell commands")

	return cmd
}

func runUseProject(cmd *cobra.Command, args []string) error {
	clearFlag, _ := cmd.Flags().GetBool("clear")
	showFlag, _ := cmd.Flags().GetBool("show")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	if showFlag {
		return showCurrentProject(cmd)
	}

	if clearFlag {
		if dryRun {
			fmt.Fprintf(errOut, "Would clear %s\n", config.EnvProject)
			return nil
		}
		fmt.Fprintf(out, "unset %s\n", config.EnvProject)
		fmt.Fprintln(errOut, "Cleared project context")
		return nil
	}

	if len(args) == 0 {
		fmt.Fprintln(errOut, "Error: project ID required")
		fmt.Fprintln(errOut, "Usage: eval $(hito use project <project-id>)")
		return cli.Exit(cli.ExitUsage, fmt.Errorf("project ID required"))
	}
	projectID := strings.TrimSpace(args[0])

	ctx := cmd.Context()
	cliInstance, formatter, err := cli.Setup(ctx, false, false)
	if err != nil {
		return err
	}
	defer cliInstance.CloseQuietly()

	if err := cliInstance.RequireAuth(formatter); err != nil {
		return err
	}

	project, err := cliInstance.App.ProjectService.GetProject(ctx, projectID)
	if err != nil {
		return formatter.Fail("PROJECT_NOT_FOUND", err)
	}

	if dryRun {
		fmt.Fprintf(errOut, "Would set %s=%s (%s)\n", config.EnvProject, project.ID, project.Name)
		return nil
	}

	// stdout is meant for eval, everything else goes to stderr
	fmt.Fprintf(out, "export %s=%s\n", config.EnvProject, shellQuote(project.ID))
	fmt.Fprintf(errOut, "Now using project %s: %s\n", project.ID, project.Name)
	return nil
}

func showCurrentProject(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	current := strings.TrimSpace(os.Getenv(config.EnvProject))
	if current == "" {
		fmt.Fprintln(out, "No project context set")
		fmt.Fprintln(out, "Use 'eval $(hito use project <project-id>)' to set one")
		return nil
	}

	ctx := cmd.Context()
	cliInstance, _, err := cli.Setup(ctx, false, false)
	if err != nil {
		return err
	}
	defer cliInstance.CloseQuietly()

	if !cliInstance.App.Session.IsAuthenticated() {
		fmt.Fprintf(out, "Current project: %s\n", current)
		return nil
	}

	project, err := cliInstance.App.ProjectService.GetProject(ctx, current)
	if err != nil {
		fmt.Fprintf(out, "Current project: %s (not found)\n", current)
		return nil
	}

	fmt.Fprintf(out, "Current project: %s (%s)\n", project.ID, project.Name)
	return nil
}

// shellQuote makes id safe to eval.
func shellQuote(id string) string {
	return "'" + strings.ReplaceAll(id, "'", `'\''`) + "'"
}
