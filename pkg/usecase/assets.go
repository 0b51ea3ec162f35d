package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/interfaces"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/loadscreen"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/soundevents"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/vpk"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/logging"
)

// AssetTools writes addon content and compiles it with resourcecompiler
type AssetTools struct {
	locator interfaces.CS2Locator
	runner  interfaces.Runner
}

// NewAssetTools creates the addon content use case
func NewAssetTools(locator interfaces.CS2Locator, runner interfaces.Runner) *AssetTools {
	return &AssetTools{locator: locator, runner: runner}
}

// compile runs resourcecompiler on path. The compiler resolves inputs
// relative to the game folder and is run from there.
func (uc *AssetTools) compile(ctx context.Context, install model.CS2Install, path string) error {
	rel, err := filepath.Rel(install.GameDir(), path)
	if err != nil {
		return goerr.Wrap(err, "failed to resolve path for compiler", goerr.V("path", path))
	}
	logger := logging.From(ctx)
	logger.Info("Compiling", "file", filepath.Base(path))

	_, err = uc.runner.Run(ctx, model.Command{
		Path: install.ResourceCompiler(),
		Args: []string{"-i", filepath.ToSlash(rel)},
		Dir:  install.GameDir(),
	}, func(line string) { logger.Debug(line, "tool", "resourcecompiler") })
	return err
}

// LoadScreenRequest lists the inputs of a loading screen
type LoadScreenRequest struct {
	Map         string
	Images      []string
	Icon        string // optional SVG
	Description string // optional text file
}

// LoadScreenResult tells what was written
type LoadScreenResult struct {
	Images   int      `json:"images"`
	Icon     bool     `json:"icon"`
	Text     bool     `json:"description"`
	Compiled int      `json:"compiled"`
	Failed   []string `json:"failed"`
}

// CreateLoadScreen writes cropped screenshots with their materials, the map
// icon and the description into the addon, then compiles them
func (uc *AssetTools) CreateLoadScreen(ctx context.Context, req LoadScreenRequest) (*LoadScreenResult, error) {
	logger := logging.From(ctx)

	if strings.TrimSpace(req.Map) == "" {
		return nil, goerr.New("map name is required")
	}
	if len(req.Images) > loadscreen.MaxImages {
		return nil, goerr.New("too many loading screen images",
			goerr.V("count", len(req.Images)), goerr.V("max", loadscreen.MaxImages))
	}
	if len(req.Images) == 0 && req.Icon == "" && req.Description == "" {
		return nil, goerr.New("nothing to create; pass images, an icon or a description")
	}

	install, err := uc.locator.Locate(ctx)
	if err != nil {
		return nil, err
	}
	content := install.AddonContentDir(req.Map)
	screenshots := filepath.Join(content, filepath.FromSlash(loadscreen.ScreenshotDir))

	result := &LoadScreenResult{}
	var compile []string

	for i, src := range req.Images {
		img, err := loadImage(src)
		if err != nil {
			return result, err
		}
		name := loadscreen.ScreenshotName(req.Map, i+1)
		if err := savePNG(filepath.Join(screenshots, name+".png"), loadscreen.Crop(img)); err != nil {
			return result, err
		}
		vmat := filepath.Join(screenshots, name+".vmat")
		if err := writeFile(vmat, loadscreen.VMAT(req.Map, i+1)); err != nil {
			return result, err
		}
		compile = append(compile, vmat)
		result.Images++
	}

	if req.Icon != "" {
		icon := filepath.Join(content, filepath.FromSlash(loadscreen.IconDir), loadscreen.IconName(req.Map))
		if err := copyFile(req.Icon, icon); err != nil {
			return result, err
		}
		compile = append(compile, icon)
		result.Icon = true
	}

	if req.Description != "" {
		dst := filepath.Join(install.AddonGameDir(req.Map), "maps", loadscreen.DescriptionName(req.Map))
		if err := copyFile(req.Description, dst); err != nil {
			return result, err
		}
		result.Text = true
	}

	for _, path := range compile {
		if err := uc.compile(ctx, install, path); err != nil {
			if ctx.Err() != nil {
				return result, goerr.Wrap(ctx.Err(), "compilation cancelled")
			}
			logger.Warn("Failed to compile", "file", path, "error", err)
			result.Failed = append(result.Failed, filepath.Base(path))
			continue
		}
		result.Compiled++
	}
	return result, nil
}

// SoundRequest adds one sound event. Exactly one of File and Internal is set.
type SoundRequest struct {
	Addon    string
	File     string // audio file copied into the addon
	Internal string // vsnd path inside the game paks
	Event    soundevents.Event
}

// AddSound copies and compiles the sound when it is a custom file, then
// writes its event into soundevents_addon.vsndevts and compiles that
func (uc *AssetTools) AddSound(ctx context.Context, req SoundRequest) error {
	logger := logging.From(ctx)

	if strings.TrimSpace(req.Addon) == "" {
		return goerr.New("addon name is required")
	}
	if (req.File == "") == (req.Internal == "") {
		return goerr.New("pass either a sound file or an internal sound")
	}

	install, err := uc.locator.Locate(ctx)
	if err != nil {
		return err
	}
	content := install.AddonContentDir(req.Addon)

	event := req.Event
	if req.File != "" {
		dst := filepath.Join(content, "sounds", filepath.Base(req.File))
		if err := copyFile(req.File, dst); err != nil {
			return err
		}
		if err := uc.compile(ctx, install, dst); err != nil {
			return goerr.Wrap(err, "failed to compile sound", goerr.V("file", dst))
		}
		event.Reference = soundevents.CustomReference(req.File)
	} else {
		event.Reference = req.Internal
	}

	path := filepath.Join(content, filepath.FromSlash(soundevents.FileName))
	current, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return goerr.Wrap(err, "failed to read soundevents", goerr.V("path", path))
	}
	updated, err := soundevents.Upsert(string(current), event)
	if err != nil {
		return err
	}
	if err := writeFile(path, updated); err != nil {
		return err
	}
	logger.Info("Sound event written", "event", event.Name, "reference", event.Reference)

	if err := uc.compile(ctx, install, path); err != nil {
		return goerr.Wrap(err, "failed to compile soundevents", goerr.V("file", path))
	}
	return nil
}

// SoundEvents returns the event names of an addon's soundevents file
func (uc *AssetTools) SoundEvents(ctx context.Context, addon string) ([]string, error) {
	install, err := uc.locator.Locate(ctx)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(install.AddonContentDir(addon), filepath.FromSlash(soundevents.FileName))
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read soundevents", goerr.V("path", path))
	}
	return soundevents.Names(string(raw)), nil
}

// InternalSounds lists the compiled sounds shipped in the game pak
func (uc *AssetTools) InternalSounds(ctx context.Context) ([]string, error) {
	install, err := uc.locator.Locate(ctx)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(install.GamePak())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open game pak", goerr.V("path", install.GamePak()))
	}
	defer func() { _ = f.Close() }()

	files, err := vpk.ReadDir(f)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read game pak", goerr.V("path", install.GamePak()))
	}
	sounds := vpk.Sounds(files)
	logging.From(ctx).Debug("Loaded internal sounds", "count", len(sounds), "files", len(files))
	return sounds, nil
}
