package cli

import (
	"context"
	"errors"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/logging"
)

func cmdUpdate(g *globals) *cli.Command {
	var checkOnly bool

	return &cli.Command{
		Name:  "update",
		Usage: "Replace this executable with the latest release",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "check",
				Usage:       "Only report whether an update is available",
				Destination: &checkOnly,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			tk, err := g.toolkit(ctx)
			if err != nil {
				return err
			}
			uc, err := tk.updater()
			if err != nil {
				return err
			}

			update, err := uc.Check(ctx)
			if errors.Is(err, model.ErrNoUpdate) {
				color.New(color.FgGreen).Fprintln(output(c), "Already up to date")
				return nil
			}
			if err != nil {
				return err
			}

			color.New(color.FgYellow, color.Bold).Fprintf(output(c), "Update %s available (%s)\n", update.Tag, update.Asset.Name)
			if checkOnly {
				return nil
			}

			if err := uc.Apply(ctx, update); err != nil {
				return err
			}
			logging.From(ctx).Info("Updater started; this process should exit now", "tag", update.Tag)
			return nil
		},
	}
}
