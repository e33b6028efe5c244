package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootConfig holds the persistent flags shared by every subcommand.
type RootConfig struct {
	ConfigPath string
	EnvFile    string
	DBPath     string
	LogLevel   string
}

func NewRootCmd() *cobra.Command {
	rc := &RootConfig{}

	cmd := &cobra.Command{
		Use:   "lotsize",
		Short: "Position sizing from free-text trade signals",
		Long: `Lotsize reads a trade signal as it was posted, for example

  Buy NZDCAD 0.81250, SL 0.81050

and works out the lot size that risks a chosen percentage of the account.
Rates for cross-currency pairs come from a live rate service.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global / persistent flags
	cmd.PersistentFlags().StringVar(&rc.ConfigPath, "config", "", "Path to config file (optional)")
	cmd.PersistentFlags().StringVar(&rc.EnvFile, "env-file", ".env", "Path to a .env file (optional)")
	cmd.PersistentFlags().StringVar(&rc.DBPath, "db", "", "SQLite database for preferences and journal (overrides config)")
	cmd.PersistentFlags().StringVar(&rc.LogLevel, "log-level", "", "Log level: debug|info|warn|error (overrides config)")

	cmd.AddCommand(
		newCalcCmd(rc),
		newParseCmd(),
		newResetCmd(rc),
		newHistoryCmd(rc),
		newServeCmd(rc),
		newTUICmd(rc),
		newConfigCmd(),
		newVersionCmd(),
	)

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
