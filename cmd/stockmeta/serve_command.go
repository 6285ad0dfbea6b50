package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"stockmeta/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bindFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local HTTP server for interactive uploads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			client, err := ctx.newVisionClient(runCtx)
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}

			srv, err := server.NewServer(client, logger, server.Options{
				SkipDuplicates: cfg.Batch.SkipDuplicates,
			})
			if err != nil {
				return err
			}

			bind := cfg.Server.Bind
			if bindFlag != "" {
				bind = bindFlag
			}
			return srv.ListenAndServe(runCtx, bind)
		},
	}

	cmd.Flags().StringVar(&bindFlag, "bind", "", "Listen address (overrides config)")
	return cmd
}
