package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/cli/auth"
	"github.com/thenoetrevino/hito/internal/cli/project"
	"github.com/thenoetrevino/hito/internal/cli/task"
	"github.com/thenoetrevino/hito/internal/cli/tutorial"
	"github.com/thenoetrevino/hito/internal/cli/use"
	"github.com/thenoetrevino/hito/internal/cli/user"
	"github.com/thenoetrevino/hito/internal/config"
	"github.com/thenoetrevino/hito/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "hito",
	Short: "Hito - a terminal client for the hito project tracker",
	Long: `Hito is a terminal client for a multi-tenant project and task tracker.

Run without arguments to open the interactive UI, or use the subcommands
for scripting. Every subcommand accepts --json.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadEnv,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch()
	},
}

func init() {
	rootCmd.PersistentFlags().String("api-url", "", "API base URL (overrides "+config.EnvAPIURL+")")

	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln("Error:", err)
		c.PrintErrf("Run '%s --help' for usage.\n", c.CommandPath())
		return cli.Exit(cli.ExitUsage, err)
	})

	rootCmd.AddCommand(auth.AuthCmd())
	rootCmd.AddCommand(project.ProjectCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(user.UserCmd())
	rootCmd.AddCommand(use.UseCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())
}

// loadEnv reads a .env file from the working directory when there is one,
// then lets --api-url win over both.
func loadEnv(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if url, _ := cmd.Flags().GetString("api-url"); url != "" {
		return os.Setenv(config.EnvAPIURL, url)
	}
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}
