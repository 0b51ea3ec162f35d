package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/cli/config"
	controller "github.com/cs2kz-mapping/cs2kz-tools/pkg/controller/http"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/async"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/logging"
)

const shutdownTimeout = 10 * time.Second

func cmdServe(g *globals) *cli.Command {
	var serverCfg config.Server

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start the local control API for front-ends",
		Flags:   serverCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)

			tk, err := g.toolkit(ctx)
			if err != nil {
				return err
			}

			actions := buildActions(tk)
			jobs := async.NewJobs()
			server, err := controller.NewServer(
				ctx,
				tk.watcher(),
				tk.settingsUC(),
				actions,
				controller.WithAddr(serverCfg.Addr),
				controller.WithJobs(jobs),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			names := make([]string, 0, len(actions))
			for name := range actions {
				names = append(names, name)
			}
			slices.Sort(names)

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			serveErr := make(chan error, 1)
			go func() {
				logger.Info("Control API listening", "addr", serverCfg.Addr, "actions", names)
				serveErr <- server.ListenAndServe()
			}()

			select {
			case err := <-serveErr:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return goerr.Wrap(err, "control API stopped", goerr.V("addr", serverCfg.Addr))
			case <-ctx.Done():
				logger.Info("Shutting down control API")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shut down control API")
			}

			// Running jobs are cancelled and awaited so launches restore gameinfo
			if err := jobs.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to stop running actions")
			}
			return nil
		},
	}
}
