package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newCalcCmd(rc *RootConfig) *cobra.Command {
	var (
		balance string
		riskPct string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "calc [signal text | -]",
		Short: "Size a position from a trade signal",
		Long: `Parse the signal, look up the conversion rate and print the lot size.

Blank --balance or --risk fall back to the values saved by the last
calculation, then to the config file. Pass "-" to read the signal from stdin.

Examples:
  lotsize calc --balance "5000 USD" --risk 2 "Buy NZDCAD 0.81250, SL 0.81050"
  pbpaste | lotsize calc -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := signalText(cmd, args)
			if err != nil {
				return err
			}

			a, err := openApp(cmd.Context(), rc)
			if err != nil {
				return err
			}
			defer a.Close()

			calc, err := a.session.Calculate(cmd.Context(), a.input(balance, riskPct, text))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, newCalcJSON(calc))
			}
			fmt.Fprintln(out, renderResult(calc))
			return nil
		},
	}

	cmd.Flags().StringVarP(&balance, "balance", "b", "", `account balance, e.g. "5,000 USD"`)
	cmd.Flags().StringVarP(&riskPct, "risk", "r", "", "risk percentage, e.g. 2 or 2%")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func signalText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read signal: %w", err)
		}
		return string(data), nil
	}
	return strings.Join(args, " "), nil
}
