package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"

	"github.com/m-mizutani/goerr/v2"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/interfaces"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/infra/store"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/logging"
)

// Source2Viewer files kept in the data directory
const (
	Source2ViewerExe    = "Source2Viewer.exe"
	Source2ViewerConfig = "ValveResourceFormat.xml"
)

var source2ViewerFiles = []string{Source2ViewerExe, Source2ViewerConfig}

// Maintenance clears caches and state in the data directory
type Maintenance struct {
	dataDir  string
	versions interfaces.VersionStore
	settings interfaces.SettingsStore
}

// NewMaintenance creates the data directory maintenance use case
func NewMaintenance(dataDir string, versions interfaces.VersionStore, settings interfaces.SettingsStore) *Maintenance {
	return &Maintenance{dataDir: dataDir, versions: versions, settings: settings}
}

// clearDir removes every entry of dir whose name is not in keep. Failures on
// single entries are logged and counted out of the result.
func clearDir(ctx context.Context, dir string, keep []string) (int, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, goerr.Wrap(err, "failed to list data directory", goerr.V("dir", dir))
	}

	removed := 0
	for _, e := range entries {
		if slices.Contains(keep, e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if err := os.RemoveAll(path); err != nil {
			logging.From(ctx).Warn("Failed to remove data entry", "path", path, "error", err)
			continue
		}
		removed++
	}
	return removed, nil
}

// ClearAll removes everything in the data directory except Source2Viewer
func (uc *Maintenance) ClearAll(ctx context.Context) (int, error) {
	n, err := clearDir(ctx, uc.dataDir, source2ViewerFiles)
	if err != nil {
		return 0, err
	}
	logging.From(ctx).Info("Data directory cleared", "removed", n, "dir", uc.dataDir)
	return n, nil
}

// RemoveSource2Viewer deletes the downloaded Source2Viewer files
func (uc *Maintenance) RemoveSource2Viewer(ctx context.Context) (int, error) {
	removed := 0
	for _, name := range source2ViewerFiles {
		path := filepath.Join(uc.dataDir, name)
		err := os.Remove(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return removed, goerr.Wrap(err, "failed to remove Source2Viewer file", goerr.V("path", path))
		}
		removed++
	}
	logging.From(ctx).Info("Source2Viewer removed", "files", removed)
	return removed, nil
}

// ClearVersions drops the version cache so the next launch reinstalls everything
func (uc *Maintenance) ClearVersions(ctx context.Context) error {
	if err := uc.versions.Clear(); err != nil {
		return err
	}
	logging.From(ctx).Info("Version cache cleared")
	return nil
}

// ClearSettings deletes settings.json and writes the defaults back
func (uc *Maintenance) ClearSettings(ctx context.Context) error {
	path := filepath.Join(uc.dataDir, store.SettingsFileName)
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return goerr.Wrap(err, "failed to remove settings", goerr.V("path", path))
	}
	return NewSettings(uc.settings).Reset(ctx)
}
