package main

import (
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/datawire/depoch/dhttp"
	"github.com/datawire/depoch/internal/httpapi"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the format, from, modify, and langs operations as a JSON API",
		Long: "Serve the format, from, modify, and langs operations as a JSON API until " +
			"interrupted.  Language packs in lang_dir are reloaded as they change.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), shutdownSignals...)
			defer stop()

			api := &httpapi.API{
				Registry:   a.registry,
				Lang:       a.cfg.Lang,
				Layout:     a.cfg.Layout,
				ZoneName:   a.cfg.Zone.Name,
				ZoneOffset: a.cfg.Zone.Offset,
			}
			sc := &dhttp.ServerConfig{
				Handler:           api.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
				ShutdownTimeout:   30 * time.Second,
			}

			grp, ctx := errgroup.WithContext(ctx)
			if a.cfg.LangDir != "" {
				w, err := a.registry.NewWatcher(a.cfg.LangDir)
				if err != nil {
					return err
				}
				grp.Go(func() error { return w.Run(ctx) })
			}
			grp.Go(func() error { return sc.ListenAndServe(ctx, a.cfg.Addr) })
			return grp.Wait()
		},
	}
	cmd.Flags().String("addr", "", "address to listen on (default 127.0.0.1:8639)")
	return cmd
}
