package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/inject/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [flags] -- command [args...]",
		Short: "Run a command with the environment injected",
		Long: "Creates the environment if it does not exist yet, prepends its bin directory to PATH,\n" +
			"adds its site-packages directory to the module search path and runs the command.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			line, _ := cmd.Flags().GetString("shell")
			if len(args) == 0 && line == "" {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			return c.app.Run(cmd.Context(), app.RunOptions{
				SpecOptions: specOptions(cmd),
				Command:     args,
				CommandLine: line,
				Stdout:      cmd.OutOrStdout(),
				Stderr:      cmd.ErrOrStderr(),
			})
		},
	}
	addSpecFlags(cmd)
	cmd.Flags().StringP("shell", "x", "", "Command line to run, split with shell quoting rules")
	return cmd
}
