package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create the environment without running anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := c.app.Create(cmd.Context(), specOptions(cmd))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", env.Name, env.Path)
			return nil
		},
	}
	addSpecFlags(cmd)
	return cmd
}
