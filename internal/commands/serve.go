package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/spendview/internal/server"
)

func newServeCommand(a *app) *cobra.Command {
	var (
		in   inputFlags
		addr string
	)

	cmd := &cobra.Command{
		Use:   "serve [file.csv]",
		Short: "Serve report data as a JSON API",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txns, err := in.load(a, args)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = a.cfg.Server.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(txns, a.logger).ListenAndServe(ctx, addr)
		},
	}

	in.register(cmd, false)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")

	return cmd
}
