package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/inject/internal/core/domain"
)

func (c *CLI) newFingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the environment name for a spec without touching the package manager",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prepared, err := c.app.Fingerprint(cmd.Context(), specOptions(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if canonical, _ := cmd.Flags().GetBool("canonical"); canonical {
				data, err := domain.CanonicalJSON(prepared.Spec)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(out, string(data))
				return nil
			}

			_, _ = fmt.Fprintln(out, prepared.Name)
			return nil
		},
	}
	addSpecFlags(cmd)
	cmd.Flags().Bool("canonical", false, "Print the canonical JSON that is hashed instead of the name")
	return cmd
}
