package config

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/types"
)

// ToolsFileName is the optional TOML file in the data directory overriding tool sources
const ToolsFileName = "tools.toml"

// Paths holds local filesystem configuration
type Paths struct {
	DataDir   string
	SteamPath string
}

// Flags returns CLI flags for path configuration
func (c *Paths) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "data-dir",
			Usage:       "Directory for settings, version cache and downloaded tools",
			Value:       filepath.Join(os.TempDir(), types.DataDirName),
			Destination: &c.DataDir,
			Sources:     cli.EnvVars("CS2KZ_DATA_DIR"),
		},
		&cli.StringFlag{
			Name:        "steam-path",
			Usage:       "Steam installation directory (skips the registry lookup)",
			Destination: &c.SteamPath,
			Sources:     cli.EnvVars("CS2KZ_STEAM_PATH"),
		},
	}
}

// EnsureDataDir creates the data directory if needed and returns it
func (c *Paths) EnsureDataDir() (string, error) {
	if err := os.MkdirAll(c.DataDir, 0755); err != nil {
		return "", goerr.Wrap(err, "failed to create data directory", goerr.V("path", c.DataDir))
	}
	return c.DataDir, nil
}

// LoadTools reads tools.toml from the data directory. Values absent from the
// file keep their defaults; a missing file yields the defaults.
func (c *Paths) LoadTools() (*model.ToolsConfig, error) {
	cfg := model.DefaultToolsConfig()

	path := filepath.Join(c.DataDir, ToolsFileName)
	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, goerr.Wrap(err, "failed to read tools config", goerr.V("path", path))
	default:
		if err := toml.Unmarshal(raw, &cfg); err != nil {
			return nil, goerr.Wrap(err, "failed to parse tools config", goerr.V("path", path))
		}
	}

	if c.SteamPath != "" {
		cfg.SteamPath = c.SteamPath
	}

	return &cfg, nil
}
