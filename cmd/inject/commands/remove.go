package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/inject/internal/app"
)

func (c *CLI) newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove [name]",
		Short: "Remove the environment for a spec, or by name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.RemoveOptions{SpecOptions: specOptions(cmd)}
			if len(args) == 1 {
				opts.Name = args[0]
			}

			name, err := c.app.Remove(cmd.Context(), opts)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
	addSpecFlags(cmd)
	return cmd
}
