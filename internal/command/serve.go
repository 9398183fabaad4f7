package command

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/stolasapp/syllabus/internal/api"
	"github.com/stolasapp/syllabus/internal/server"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "serve the users and courses REST API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, s session) error {
				grp, ctx := errgroup.WithContext(ctx)

				listener, err := server.Listen(ctx, s.cfg.Address)
				if err != nil {
					return err
				}

				srv := api.New(s.cfg, s.logger, s.store)
				s.logger.InfoContext(ctx,
					"starting API server...",
					slog.String("address", listener.Addr().String()),
					slog.Bool("dev_mode", s.cfg.DevMode),
				)
				server.Serve(ctx, grp, srv.Server, listener, s.cfg.ShutdownTimeout)
				return grp.Wait()
			})
		},
	}
}
