package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/lotsize/journal"
)

func newHistoryCmd(rc *RootConfig) *cobra.Command {
	var (
		limit int
		csv   bool
		org   bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List journaled calculations, newest first",
		Long: `List past calculations from the SQLite journal.

Examples:
  lotsize history --limit 5
  lotsize history --csv > calculations.csv
  lotsize history show 01HZX4ZK7N...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rc)
			if err != nil {
				return err
			}
			defer a.Close()

			if a.journal == nil {
				return fmt.Errorf("journal is disabled in the config")
			}
			entries, err := a.journal.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case csv:
				return journal.WriteCSV(out, entries)
			case org:
				fmt.Fprint(out, journal.FormatOrgAll(entries))
				return nil
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, "No calculations recorded")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s  %s  %-8s %6s pips  %s lots  risk %s %s\n",
					e.ID, e.Time.Local().Format("2006-01-02 15:04"), e.Instrument,
					e.Pips, e.LotSize, e.AmountAtRisk.StringFixed(2), e.AccountCurrency)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of entries to show (0 for all)")
	cmd.Flags().BoolVar(&csv, "csv", false, "write CSV instead of a listing")
	cmd.Flags().BoolVar(&org, "org", false, "write Org-mode blocks instead of a listing")
	cmd.MarkFlagsMutuallyExclusive("csv", "org")

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one calculation as an Org-mode block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rc)
			if err != nil {
				return err
			}
			defer a.Close()

			if a.journal == nil {
				return fmt.Errorf("journal is disabled in the config")
			}
			e, err := a.journal.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), journal.FormatOrg(e))
			return nil
		},
	})
	return cmd
}
