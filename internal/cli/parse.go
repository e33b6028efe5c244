package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/lotsize/calculator"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [signal text | -]",
		Short: "Show what a signal parses to, without sizing it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := signalText(cmd, args)
			if err != nil {
				return err
			}
			sig, pips, err := calculator.Preview(text)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderSignal(sig, pips.String()))
			return nil
		},
	}
}
