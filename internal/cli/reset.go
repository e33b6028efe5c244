package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the saved balance and risk percentage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rc)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.session.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✓ Saved inputs cleared")
			return nil
		},
	}
}
