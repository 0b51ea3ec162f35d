package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/usecase"
)

func cmdVTF2PNG() *cli.Command {
	return &cli.Command{
		Name:      "vtf2png",
		Usage:     "Convert every VTF texture in a directory to PNG",
		ArgsUsage: "[DIR]",
		Action: func(ctx context.Context, c *cli.Command) error {
			dir := c.Args().First()
			if dir == "" {
				dir = "."
			}
			result, err := usecase.ConvertVTFDir(ctx, dir)
			if err != nil {
				return err
			}

			fmt.Fprintf(output(c), "Converted %d file(s)\n", result.Converted)
			if len(result.Failed) > 0 {
				color.New(color.FgRed).Fprintf(output(c), "Failed: %s\n", strings.Join(result.Failed, ", "))
			}
			return nil
		},
	}
}

func cmdSkybox() *cli.Command {
	var out string

	return &cli.Command{
		Name:      "skybox",
		Usage:     "Stitch six skybox faces into a cubemap cross PNG",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output PNG path",
				Value:       "skybox.png",
				Destination: &out,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.NArg() != 6 {
				return goerr.New("expected six face images", goerr.V("got", c.NArg()))
			}
			return usecase.StitchSkybox(ctx, c.Args().Slice(), out)
		},
	}
}
