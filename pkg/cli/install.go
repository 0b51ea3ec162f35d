package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/usecase"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/logging"
)

func cmdInstall(g *globals) *cli.Command {
	var (
		noMetamod bool
		noCS2KZ   bool
		force     bool
	)

	return &cli.Command{
		Name:  "install",
		Usage: "Install or update Metamod, CS2KZ and the mapping API",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "no-update-metamod",
				Usage:       "Keep the installed Metamod",
				Destination: &noMetamod,
			},
			&cli.BoolFlag{
				Name:        "no-update-cs2kz",
				Usage:       "Keep the installed CS2KZ plugin and mapping API",
				Destination: &noCS2KZ,
			},
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "Run the setup even when everything is current",
				Destination: &force,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			tk, err := g.toolkit(ctx)
			if err != nil {
				return err
			}

			var opts []usecase.InstallerOption
			if noMetamod {
				opts = append(opts, usecase.WithoutMetamodUpdate())
			}
			if noCS2KZ {
				opts = append(opts, usecase.WithoutCS2KZUpdate())
			}
			uc := tk.installer(opts...)

			install, err := tk.locator.Locate(ctx)
			if err != nil {
				return err
			}
			logging.From(ctx).Info("Found CS2", "path", install.Root)

			needed, err := uc.CheckSetupNeeded(ctx, install)
			if err != nil {
				return err
			}
			if !needed && !force {
				color.New(color.FgGreen).Fprintln(output(c), "Everything is up to date")
				return nil
			}

			if err := uc.RunSetup(ctx, install); err != nil {
				return err
			}
			color.New(color.FgGreen, color.Bold).Fprintln(output(c), "Setup complete")
			return nil
		},
	}
}

func cmdSource2Viewer(g *globals) *cli.Command {
	var noUpdate bool

	return &cli.Command{
		Name:    "source2viewer",
		Aliases: []string{"s2v"},
		Usage:   "Download if needed and start Source2Viewer",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "no-update",
				Usage:       "Start the cached build without checking for a new release",
				Destination: &noUpdate,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			tk, err := g.toolkit(ctx)
			if err != nil {
				return err
			}
			var opts []usecase.InstallerOption
			if noUpdate {
				opts = append(opts, usecase.WithoutSource2ViewerUpdate())
			}
			return tk.installer(opts...).LaunchSource2Viewer(ctx)
		},
	}
}
