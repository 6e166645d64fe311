package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List environments created by inject",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager, _ := cmd.Flags().GetString("manager")

			envs, err := c.app.List(cmd.Context(), manager)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, env := range envs {
				_, _ = fmt.Fprintf(out, "%s\t%s\n", env.Name, env.Path)
			}
			return nil
		},
	}
	addManagerFlag(cmd)
	return cmd
}
