package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/soundevents"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/usecase"
)

func cmdLoadScreen(g *globals) *cli.Command {
	var req usecase.LoadScreenRequest

	return &cli.Command{
		Name:  "loadscreen",
		Usage: "Create loading screen images, map icon and description for an addon",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "map",
				Usage:       "Map (and addon) name",
				Required:    true,
				Destination: &req.Map,
			},
			&cli.StringSliceFlag{
				Name:        "image",
				Usage:       "Screenshot to crop to 16:9 (repeatable, up to 9)",
				Destination: &req.Images,
			},
			&cli.StringFlag{
				Name:        "icon",
				Usage:       "SVG map icon",
				Destination: &req.Icon,
			},
			&cli.StringFlag{
				Name:        "description",
				Usage:       "Text file with the map description",
				Destination: &req.Description,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			tk, err := g.toolkit(ctx)
			if err != nil {
				return err
			}
			result, err := tk.assets().CreateLoadScreen(ctx, req)
			if err != nil {
				return err
			}

			fmt.Fprintf(output(c), "Images: %d, icon: %t, description: %t, compiled: %d\n",
				result.Images, result.Icon, result.Text, result.Compiled)
			for _, name := range result.Failed {
				color.New(color.FgRed).Fprintf(output(c), "Failed to compile %s\n", name)
			}
			return nil
		},
	}
}

func cmdSound(g *globals) *cli.Command {
	return &cli.Command{
		Name:  "sound",
		Usage: "Manage addon sound events",
		Commands: []*cli.Command{
			cmdSoundAdd(g),
			{
				Name:      "events",
				Usage:     "List the sound events of an addon",
				ArgsUsage: "ADDON",
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.NArg() != 1 {
						return goerr.New("expected an addon name")
					}
					tk, err := g.toolkit(ctx)
					if err != nil {
						return err
					}
					names, err := tk.assets().SoundEvents(ctx, c.Args().First())
					if err != nil {
						return err
					}
					for _, name := range names {
						fmt.Fprintln(output(c), name)
					}
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "List the sounds shipped with CS2",
				Action: func(ctx context.Context, c *cli.Command) error {
					tk, err := g.toolkit(ctx)
					if err != nil {
						return err
					}
					sounds, err := tk.assets().InternalSounds(ctx)
					if err != nil {
						return err
					}
					for _, s := range sounds {
						fmt.Fprintln(output(c), s)
					}
					return nil
				},
			},
		},
	}
}

func cmdSoundAdd(g *globals) *cli.Command {
	var (
		req       usecase.SoundRequest
		name      string
		kind      string
		volume    string
		pitch     string
		occlusion bool
	)

	return &cli.Command{
		Name:  "add",
		Usage: "Add a sound event, copying and compiling a custom sound file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addon", Usage: "Addon name", Required: true, Destination: &req.Addon},
			&cli.StringFlag{Name: "name", Usage: "Sound event name", Required: true, Destination: &name},
			&cli.StringFlag{Name: "file", Usage: "Custom sound file (wav, mp3)", Destination: &req.File},
			&cli.StringFlag{Name: "internal", Usage: "Sound shipped with CS2 (see sound list)", Destination: &req.Internal},
			&cli.StringFlag{Name: "type", Usage: "csgo_mega, csgo_music or csgo_3d", Value: string(soundevents.TypeMega), Destination: &kind},
			&cli.StringFlag{Name: "volume", Value: "1.0", Destination: &volume},
			&cli.StringFlag{Name: "pitch", Value: "1.0", Destination: &pitch},
			&cli.BoolFlag{Name: "occlusion", Usage: "Let geometry muffle the sound", Destination: &occlusion},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			t, err := soundevents.ParseType(kind)
			if err != nil {
				return err
			}
			req.Event = soundevents.NewEvent(name, "")
			req.Event.Type = t
			if req.Event.Volume, err = strconv.ParseFloat(volume, 64); err != nil {
				return goerr.Wrap(err, "invalid volume", goerr.V("volume", volume))
			}
			if req.Event.Pitch, err = strconv.ParseFloat(pitch, 64); err != nil {
				return goerr.Wrap(err, "invalid pitch", goerr.V("pitch", pitch))
			}
			req.Event.Occlusion = occlusion

			tk, err := g.toolkit(ctx)
			if err != nil {
				return err
			}
			if err := tk.assets().AddSound(ctx, req); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(output(c), "Sound event %s written\n", name)
			return nil
		},
	}
}
