// Package use holds the commands that set per-shell context, e.g.
// hito use project ...
package use

import (
	"github.com/spf13/cobra"
)

// UseCmd returns the use parent command
func UseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use",
		Short: "Set context for the current shell session",
		Long: `Set context that later commands pick up, so flags like --project do
not have to be repeated.

Examples:
  eval $(hito use project p1)       # Use project p1
  eval $(hito use project --clear)  # Clear project context
  hito use project --show           # Show current project`,
	}

	cmd.AddCommand(ProjectCmd())

	return cmd
}
