package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/usecase"
)

func cmdCache(g *globals) *cli.Command {
	removal := func(name, usage string, fn func(uc *usecase.Maintenance, ctx context.Context) (int, error)) *cli.Command {
		return &cli.Command{
			Name:  name,
			Usage: usage,
			Action: func(ctx context.Context, c *cli.Command) error {
				tk, err := g.toolkit(ctx)
				if err != nil {
					return err
				}
				n, err := fn(tk.maintenance(), ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(output(c), "Removed %d entries from %s\n", n, tk.dataDir)
				return nil
			},
		}
	}
	reset := func(name, usage string, fn func(uc *usecase.Maintenance, ctx context.Context) error) *cli.Command {
		return &cli.Command{
			Name:  name,
			Usage: usage,
			Action: func(ctx context.Context, c *cli.Command) error {
				tk, err := g.toolkit(ctx)
				if err != nil {
					return err
				}
				return fn(tk.maintenance(), ctx)
			},
		}
	}

	return &cli.Command{
		Name:  "cache",
		Usage: "Clear cached downloads and state in the data directory",
		Commands: []*cli.Command{
			removal("clear-all", "Remove everything except Source2Viewer", (*usecase.Maintenance).ClearAll),
			removal("remove-s2v", "Remove the downloaded Source2Viewer", (*usecase.Maintenance).RemoveSource2Viewer),
			reset("clear-versions", "Forget installed versions so the next launch reinstalls", (*usecase.Maintenance).ClearVersions),
			reset("clear-settings", "Delete settings.json", (*usecase.Maintenance).ClearSettings),
		},
	}
}
