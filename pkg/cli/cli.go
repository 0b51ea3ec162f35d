package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/cli/config"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/types"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/logging"
)

// globals are the flags every command shares
type globals struct {
	logger config.Logger
	paths  config.Paths
	github config.GitHub
	sentry config.Sentry
}

func (g *globals) flags() []cli.Flag {
	var flags []cli.Flag
	flags = append(flags, g.logger.Flags()...)
	flags = append(flags, g.paths.Flags()...)
	flags = append(flags, g.github.Flags()...)
	flags = append(flags, g.sentry.Flags()...)
	return flags
}

func (g *globals) toolkit(ctx context.Context) (*toolkit, error) {
	return newToolkit(ctx, &g.paths, &g.github)
}

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	g := &globals{}
	var logger *slog.Logger
	flush := func() {}

	app := &cli.Command{
		Name:    types.AppName,
		Usage:   "CS2 KZ mapping toolkit",
		Version: types.Version,
		Flags:   g.flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = g.logger.Configure()
			if err != nil {
				return nil, err
			}
			slog.SetDefault(logger)

			f, err := g.sentry.Configure()
			if err != nil {
				return nil, err
			}
			flush = f
			return logging.With(ctx, logger), nil
		},
		Commands: []*cli.Command{
			cmdSettings(g),
			cmdCache(g),
			cmdInstall(g),
			cmdSource2Viewer(g),
			cmdLaunch(g),
			cmdStatus(g),
			cmdImport(g),
			cmdUpdate(g),
			cmdVTF2PNG(),
			cmdSkybox(),
			cmdLoadScreen(g),
			cmdSound(g),
			cmdServe(g),
		},
	}

	err := app.Run(ctx, args)
	if err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		if g.sentry.Enabled() {
			sentry.CaptureException(err)
		}
	}
	flush()
	return err
}

// output is where commands print their results
func output(c *cli.Command) io.Writer {
	return c.Root().Writer
}

func printJSON(c *cli.Command, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode output")
	}
	_, err = output(c).Write(append(raw, '\n'))
	return err
}
