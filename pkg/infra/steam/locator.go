// Package steam locates the CS2 installation through the Steam client files.
package steam

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/andygrunwald/vdf"
	"github.com/m-mizutani/goerr/v2"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/types"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/logging"
)

type libraryFolders struct {
	LibraryFolders map[string]libraryFolder `json:"libraryfolders"`
}

type libraryFolder struct {
	Path string            `json:"path"`
	Apps map[string]string `json:"apps"`
}

type appManifest struct {
	AppState struct {
		InstallDir string `json:"installdir"`
	} `json:"AppState"`
}

// Locator resolves the CS2 install directory
type Locator struct {
	steamPath    string
	registryPath func() (string, error)
}

// Option configures a Locator
type Option func(*Locator)

// WithSteamPath skips the registry and uses path as the Steam directory
func WithSteamPath(path string) Option {
	return func(l *Locator) {
		l.steamPath = path
	}
}

// New creates a Locator. Without WithSteamPath the Steam directory is read
// from HKCU\Software\Valve\Steam on Windows.
func New(opts ...Option) *Locator {
	l := &Locator{registryPath: registrySteamPath}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SteamPath returns the configured or registry Steam directory
func (l *Locator) SteamPath() (string, error) {
	if l.steamPath != "" {
		return l.steamPath, nil
	}

	path, err := l.registryPath()
	if err != nil {
		return "", goerr.Wrap(model.ErrSteamNotFound, "failed to read Steam path from registry", goerr.V("cause", err.Error()))
	}
	if path == "" {
		return "", goerr.Wrap(model.ErrSteamNotFound, "Steam path in registry is empty")
	}
	return path, nil
}

// Locate finds the library holding CS2 and returns its install directory
func (l *Locator) Locate(ctx context.Context) (model.CS2Install, error) {
	steamPath, err := l.SteamPath()
	if err != nil {
		return model.CS2Install{}, err
	}

	foldersPath := filepath.Join(steamPath, "steamapps", "libraryfolders.vdf")
	var folders libraryFolders
	if err := decodeVDF(foldersPath, &folders); err != nil {
		return model.CS2Install{}, goerr.Wrap(model.ErrCS2NotFound, "failed to read library folders",
			goerr.V("path", foldersPath), goerr.V("cause", err.Error()))
	}

	var libraryPath string
	for _, folder := range folders.LibraryFolders {
		if _, ok := folder.Apps[types.CS2AppID]; ok {
			libraryPath = folder.Path
			break
		}
	}
	if libraryPath == "" {
		return model.CS2Install{}, goerr.Wrap(model.ErrCS2NotFound, "no Steam library contains CS2", goerr.V("path", foldersPath))
	}

	manifestPath := filepath.Join(libraryPath, "steamapps", "appmanifest_"+types.CS2AppID+".acf")
	var manifest appManifest
	if err := decodeVDF(manifestPath, &manifest); err != nil {
		return model.CS2Install{}, goerr.Wrap(model.ErrCS2NotFound, "failed to read CS2 app manifest",
			goerr.V("path", manifestPath), goerr.V("cause", err.Error()))
	}
	if manifest.AppState.InstallDir == "" {
		return model.CS2Install{}, goerr.Wrap(model.ErrCS2NotFound, "CS2 app manifest has no installdir", goerr.V("path", manifestPath))
	}

	install := model.CS2Install{
		Root: filepath.Join(libraryPath, "steamapps", "common", manifest.AppState.InstallDir),
	}
	logging.From(ctx).Debug("Located CS2", "root", install.Root)
	return install, nil
}

// decodeVDF parses a VDF file and maps it onto out through its JSON tags
func decodeVDF(path string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	parsed, err := vdf.NewParser(f).Parse()
	if err != nil {
		return goerr.Wrap(err, "failed to parse VDF")
	}

	raw, err := json.Marshal(parsed)
	if err != nil {
		return goerr.Wrap(err, "failed to convert VDF")
	}
	return json.Unmarshal(raw, out)
}
