package cli

import (
	"context"
	"strconv"

	controller "github.com/cs2kz-mapping/cs2kz-tools/pkg/controller/http"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/soundevents"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/usecase"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/logging"
)

func boolParam(in controller.ActionInput, name string) bool {
	v, err := strconv.ParseBool(in.Params[name])
	return err == nil && v
}

func launchAction(tk *toolkit, mode model.LaunchMode) controller.Action {
	return controller.Action{
		Run: func(ctx context.Context, in controller.ActionInput) error {
			return tk.launcher().Launch(ctx, mode)
		},
		Conflicts: func(s model.GameStatus) bool {
			if mode.Dedicated() {
				return s.DedicatedRunning
			}
			return s.ClientRunning
		},
	}
}

// buildActions maps every button name to what pressing it does
func buildActions(tk *toolkit) map[string]controller.Action {
	return map[string]controller.Action{
		model.ButtonMapping:   launchAction(tk, model.LaunchMapping),
		model.ButtonListen:    launchAction(tk, model.LaunchListen),
		model.ButtonDedicated: launchAction(tk, model.LaunchDedicated),
		model.ButtonInsecure:  launchAction(tk, model.LaunchInsecure),

		model.ButtonSource2Viewer: {
			Run: func(ctx context.Context, in controller.ActionInput) error {
				return tk.installer().LaunchSource2Viewer(ctx)
			},
		},

		model.ButtonImporter: {
			Run: func(ctx context.Context, in controller.ActionInput) error {
				bsp, err := in.Param("bsp")
				if err != nil {
					return err
				}
				report, err := tk.importer().Import(ctx, model.ImportRequest{
					BSPPath:          bsp,
					Addon:            in.Params["addon"],
					UseBSP:           boolParam(in, "usebsp"),
					NoMergeInstances: boolParam(in, "nomergeinstances"),
					SkipDeps:         boolParam(in, "skipdeps"),
				})
				if report != nil {
					logging.From(ctx).Info("Import finished",
						"run_id", report.RunID,
						"imported", report.Imported,
						"failures", len(report.Failures),
						"elapsed", report.Elapsed)
				}
				return err
			},
		},

		model.ButtonVTF2PNG: {
			Run: func(ctx context.Context, in controller.ActionInput) error {
				dir, err := in.Param("dir")
				if err != nil {
					return err
				}
				result, err := usecase.ConvertVTFDir(ctx, dir)
				if err != nil {
					return err
				}
				logging.From(ctx).Info("VTF conversion finished", "converted", result.Converted, "failed", result.Failed)
				return nil
			},
		},

		model.ButtonSkybox: {
			Run: func(ctx context.Context, in controller.ActionInput) error {
				out, err := in.Param("output")
				if err != nil {
					return err
				}
				return usecase.StitchSkybox(ctx, in.Files, out)
			},
		},

		model.ButtonLoadingScreen: {
			Run: func(ctx context.Context, in controller.ActionInput) error {
				mapName, err := in.Param("map")
				if err != nil {
					return err
				}
				_, err = tk.assets().CreateLoadScreen(ctx, usecase.LoadScreenRequest{
					Map:         mapName,
					Images:      in.Files,
					Icon:        in.Params["icon"],
					Description: in.Params["description"],
				})
				return err
			},
		},

		model.ButtonSounds: {
			Run: func(ctx context.Context, in controller.ActionInput) error {
				addon, err := in.Param("addon")
				if err != nil {
					return err
				}
				name, err := in.Param("name")
				if err != nil {
					return err
				}
				event := soundevents.NewEvent(name, "")
				if kind := in.Params["type"]; kind != "" {
					if event.Type, err = soundevents.ParseType(kind); err != nil {
						return err
					}
				}
				return tk.assets().AddSound(ctx, usecase.SoundRequest{
					Addon:    addon,
					File:     in.Params["file"],
					Internal: in.Params["internal"],
					Event:    event,
				})
			},
		},
	}
}
