package cli

import (
	"os"
	ossignal "os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/lotsize/internal/server"
)

func newServeCmd(rc *RootConfig) *cobra.Command {
	var (
		addr    string
		origins []string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator as a JSON API",
		Long: `Start an HTTP server exposing the calculator.

Routes:
  POST /api/calculate     {"balance","risk_percent","signal"}
  POST /api/reset
  GET  /api/result
  GET  /api/preferences
  PUT  /api/preferences   {"account_balance","risk_percentage"}
  GET  /api/history?limit=N
  GET  /healthz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := ossignal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			a, err := openApp(ctx, rc)
			if err != nil {
				return err
			}
			defer a.Close()

			if addr == "" {
				addr = a.cfg.Server.Addr
			}

			var history server.History
			if a.journal != nil {
				history = a.journal
			}
			srv, err := server.New(server.Config{Addr: addr, AllowOrigins: origins}, a.session, history, a.logger)
			if err != nil {
				return err
			}
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringSliceVar(&origins, "cors", nil, "allowed CORS origins")
	return cmd
}
