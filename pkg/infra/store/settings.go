package store

import (
	"context"
	"encoding/json"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/logging"
)

// SettingsFileName is the settings file inside the data directory
const SettingsFileName = "settings.json"

// SettingsFile stores model.Settings as indented JSON
type SettingsFile struct {
	path string
}

// NewSettingsFile returns a store for <dataDir>/settings.json
func NewSettingsFile(dataDir string) *SettingsFile {
	return &SettingsFile{path: filepath.Join(dataDir, SettingsFileName)}
}

// Path returns the settings file location
func (s *SettingsFile) Path() string { return s.path }

// Load returns defaults overlaid with the stored values. A broken file is
// logged and ignored so the tools stay usable.
func (s *SettingsFile) Load(ctx context.Context) (model.Settings, error) {
	settings := model.DefaultSettings()

	raw, err := readFile(s.path)
	if err != nil {
		logging.From(ctx).Warn("Failed to read settings, using defaults", "path", s.path, "error", err)
		return model.DefaultSettings(), nil
	}
	if raw == nil {
		return settings, nil
	}

	if err := json.Unmarshal(raw, &settings); err != nil {
		logging.From(ctx).Warn("Invalid settings file, using defaults", "path", s.path, "error", err)
		return model.DefaultSettings(), nil
	}

	return settings, nil
}

// Save writes settings to disk
func (s *SettingsFile) Save(ctx context.Context, settings model.Settings) error {
	raw, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		return goerr.Wrap(err, "failed to marshal settings")
	}
	if err := writeFile(s.path, raw, 0644); err != nil {
		return goerr.Wrap(err, "failed to write settings", goerr.V("path", s.path))
	}

	logging.From(ctx).Debug("Saved settings", "path", s.path)
	return nil
}
