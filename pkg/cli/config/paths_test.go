package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/cli/config"
)

func TestPaths_LoadTools(t *testing.T) {
	t.Run("defaults when file is missing", func(t *testing.T) {
		paths := &config.Paths{DataDir: t.TempDir()}

		cfg, err := paths.LoadTools()
		gt.NoError(t, err)
		gt.Value(t, cfg.DedicatedMap).Equal("de_dust2")
		gt.Value(t, cfg.Sources.CS2KZ.Asset).Equal("cs2kz-windows-master.zip")
	})

	t.Run("file overrides selected values", func(t *testing.T) {
		dir := t.TempDir()
		content := `
steam_path = "D:/Steam"
dedicated_map = "kz_grotto"

[sources.cs2kz]
owner = "fork"
`
		gt.NoError(t, os.WriteFile(filepath.Join(dir, config.ToolsFileName), []byte(content), 0644))

		paths := &config.Paths{DataDir: dir}
		cfg, err := paths.LoadTools()
		gt.NoError(t, err)
		gt.Value(t, cfg.SteamPath).Equal("D:/Steam")
		gt.Value(t, cfg.DedicatedMap).Equal("kz_grotto")
		gt.Value(t, cfg.Sources.CS2KZ.Owner).Equal("fork")
		gt.Value(t, cfg.Sources.CS2KZ.Repo).Equal("cs2kz-metamod")
	})

	t.Run("flag wins over file", func(t *testing.T) {
		dir := t.TempDir()
		gt.NoError(t, os.WriteFile(filepath.Join(dir, config.ToolsFileName), []byte(`steam_path = "D:/Steam"`), 0644))

		paths := &config.Paths{DataDir: dir, SteamPath: "E:/Steam"}
		cfg, err := paths.LoadTools()
		gt.NoError(t, err)
		gt.Value(t, cfg.SteamPath).Equal("E:/Steam")
	})

	t.Run("invalid toml", func(t *testing.T) {
		dir := t.TempDir()
		gt.NoError(t, os.WriteFile(filepath.Join(dir, config.ToolsFileName), []byte(`steam_path = `), 0644))

		paths := &config.Paths{DataDir: dir}
		_, err := paths.LoadTools()
		gt.Error(t, err)
	})
}
