package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
)

func cmdLaunch(g *globals) *cli.Command {
	return &cli.Command{
		Name:      "launch",
		Usage:     "Start CS2 and restore patched game files when it exits",
		ArgsUsage: "insecure|listen|mapping|dedicated",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.NArg() != 1 {
				return goerr.New("expected a launch mode")
			}
			mode, err := model.ParseLaunchMode(c.Args().First())
			if err != nil {
				return err
			}
			tk, err := g.toolkit(ctx)
			if err != nil {
				return err
			}
			return tk.launcher().Launch(ctx, mode)
		},
	}
}

func cmdStatus(g *globals) *cli.Command {
	var (
		watch    bool
		interval time.Duration
	)

	return &cli.Command{
		Name:  "status",
		Usage: "Show whether the CS2 client or a dedicated server is running",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "watch",
				Usage:       "Keep printing status changes until interrupted",
				Destination: &watch,
			},
			&cli.DurationFlag{
				Name:        "interval",
				Usage:       "Poll interval for --watch",
				Value:       2 * time.Second,
				Destination: &interval,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			tk, err := g.toolkit(ctx)
			if err != nil {
				return err
			}
			w := tk.watcher()

			show := func(s model.GameStatus) {
				fmt.Fprintf(output(c), "client=%t dedicated=%t\n", s.ClientRunning, s.DedicatedRunning)
			}
			if !watch {
				s, err := w.Snapshot(ctx)
				if err != nil {
					return err
				}
				show(s)
				return nil
			}

			for s := range w.Watch(ctx, interval) {
				show(s)
			}
			return nil
		},
	}
}
