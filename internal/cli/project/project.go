// Package project holds the "hito project" commands.
package project

import (
	"github.com/spf13/cobra"
)

// ProjectCmd returns the project parent command
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
		Long:  "List, inspect, create, update, and delete projects, and manage who belongs to them.",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(UsersCmd())
	cmd.AddCommand(AddUserCmd())
	cmd.AddCommand(RemoveUserCmd())

	return cmd
}
