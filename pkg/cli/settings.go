package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdSettings(g *globals) *cli.Command {
	return &cli.Command{
		Name:  "settings",
		Usage: "Show or change settings.json",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print every setting",
				Action: func(ctx context.Context, c *cli.Command) error {
					tk, err := g.toolkit(ctx)
					if err != nil {
						return err
					}
					s, err := tk.settingsUC().Load(ctx)
					if err != nil {
						return err
					}
					return printJSON(c, s)
				},
			},
			{
				Name:      "get",
				Usage:     "Print one setting",
				ArgsUsage: "KEY",
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.NArg() != 1 {
						return goerr.New("expected exactly one setting key")
					}
					tk, err := g.toolkit(ctx)
					if err != nil {
						return err
					}
					v, err := tk.settingsUC().Get(ctx, c.Args().First())
					if err != nil {
						return err
					}
					return printJSON(c, v)
				},
			},
			{
				Name:      "set",
				Usage:     "Change one setting",
				ArgsUsage: "KEY VALUE",
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.NArg() != 2 {
						return goerr.New("expected a setting key and a value")
					}
					tk, err := g.toolkit(ctx)
					if err != nil {
						return err
					}
					return tk.settingsUC().Set(ctx, c.Args().Get(0), c.Args().Get(1))
				},
			},
			{
				Name:      "buttons",
				Usage:     "Set the button order and print the visible buttons",
				ArgsUsage: "[BUTTON...]",
				Action: func(ctx context.Context, c *cli.Command) error {
					tk, err := g.toolkit(ctx)
					if err != nil {
						return err
					}
					uc := tk.settingsUC()
					if c.NArg() > 0 {
						if err := uc.SetButtonOrder(ctx, c.Args().Slice()); err != nil {
							return err
						}
					}
					s, err := uc.Load(ctx)
					if err != nil {
						return err
					}
					for _, name := range s.OrderedVisibleButtons() {
						fmt.Fprintln(output(c), name)
					}
					return nil
				},
			},
			{
				Name:      "show-button",
				Usage:     "Make a button visible",
				ArgsUsage: "BUTTON",
				Action:    buttonVisibility(g, true),
			},
			{
				Name:      "hide-button",
				Usage:     "Hide a button",
				ArgsUsage: "BUTTON",
				Action:    buttonVisibility(g, false),
			},
			{
				Name:  "reset",
				Usage: "Restore the default settings",
				Action: func(ctx context.Context, c *cli.Command) error {
					tk, err := g.toolkit(ctx)
					if err != nil {
						return err
					}
					return tk.settingsUC().Reset(ctx)
				},
			},
		},
	}
}

func buttonVisibility(g *globals, visible bool) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		if c.NArg() != 1 {
			return goerr.New("expected exactly one button name")
		}
		tk, err := g.toolkit(ctx)
		if err != nil {
			return err
		}
		return tk.settingsUC().SetButtonVisibility(ctx, c.Args().First(), visible)
	}
}
