package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
)

func cmdImport(g *globals) *cli.Command {
	var req model.ImportRequest

	return &cli.Command{
		Name:      "import",
		Usage:     "Convert a CS:GO map into a CS2 addon",
		ArgsUsage: "BSP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addon",
				Usage:       "Addon to import into (defaults to the map name)",
				Destination: &req.Addon,
			},
			&cli.BoolFlag{
				Name:        "usebsp",
				Usage:       "Import geometry from the compiled BSP",
				Destination: &req.UseBSP,
			},
			&cli.BoolFlag{
				Name:        "nomergeinstances",
				Usage:       "Keep func_instance entities separate (with --usebsp)",
				Destination: &req.NoMergeInstances,
			},
			&cli.BoolFlag{
				Name:        "skipdeps",
				Usage:       "Import only the map, not its materials and models",
				Destination: &req.SkipDeps,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.NArg() != 1 {
				return goerr.New("expected the path of a .bsp file")
			}
			req.BSPPath = c.Args().First()

			tk, err := g.toolkit(ctx)
			if err != nil {
				return err
			}
			report, err := tk.importer().Import(ctx, req)
			if report != nil {
				printReport(output(c), report)
			}
			return err
		},
	}
}

func printReport(w io.Writer, r *model.ImportReport) {
	bold := color.New(color.Bold)
	bold.Fprintf(w, "\nImport of %s into addon %s\n", r.MapName, r.Addon)
	fmt.Fprintf(w, "  run:       %s\n", r.RunID)
	fmt.Fprintf(w, "  materials: %d\n", r.Materials)
	fmt.Fprintf(w, "  models:    %d\n", r.Models)
	fmt.Fprintf(w, "  imported:  %d\n", r.Imported)
	fmt.Fprintf(w, "  elapsed:   %s\n", r.Elapsed.Round(time.Second))

	warn := color.New(color.FgYellow)
	for _, msg := range r.Warnings {
		warn.Fprintf(w, "  warning: %s\n", msg)
	}

	if len(r.Failures) == 0 {
		color.New(color.FgGreen).Fprintln(w, "  no failures")
		return
	}
	fail := color.New(color.FgRed)
	fail.Fprintf(w, "  %d failures:\n", len(r.Failures))
	for _, f := range r.Failures {
		fail.Fprintf(w, "    %-8s %s (%s)\n", f.Kind, f.Name, f.Reason)
	}
}
