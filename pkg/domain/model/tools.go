package model

// Sources lists the remote locations third-party tools are downloaded from
type Sources struct {
	MetamodDropURL  string `toml:"metamod_drop_url"` // directory holding mmsource-latest-windows
	MappingAPIURL   string `toml:"mapping_api_url"`  // raw URL of the CS2KZ mapping API FGD
	GameTrackingURL string `toml:"gametracking_url"` // raw base URL of SteamDatabase/GameTracking-CS2

	CS2KZ         Repository `toml:"cs2kz"`
	Source2Viewer Repository `toml:"source2viewer"`
	Self          Repository `toml:"self"`

	BSPSourceURL string `toml:"bspsource_url"`
}

// Repository identifies a GitHub repository and the release asset to pick from it
type Repository struct {
	Owner string `toml:"owner"`
	Repo  string `toml:"repo"`
	Asset string `toml:"asset"`
}

// ToolsConfig is the content of tools.toml in the data directory
type ToolsConfig struct {
	SteamPath    string  `toml:"steam_path"`
	DedicatedMap string  `toml:"dedicated_map"`
	Sources      Sources `toml:"sources"`
}

// DefaultToolsConfig returns the configuration used when tools.toml is absent
func DefaultToolsConfig() ToolsConfig {
	return ToolsConfig{
		DedicatedMap: "de_dust2",
		Sources: Sources{
			MetamodDropURL:  "https://mms.alliedmods.net/mmsdrop/2.0",
			MappingAPIURL:   "https://raw.githubusercontent.com/KZGlobalTeam/cs2kz-metamod/refs/heads/master/mapping_api/game/csgo_core/csgo_internal.fgd",
			GameTrackingURL: "https://raw.githubusercontent.com/SteamDatabase/GameTracking-CS2/refs/heads/master",
			CS2KZ: Repository{
				Owner: "KZGlobalTeam",
				Repo:  "cs2kz-metamod",
				Asset: "cs2kz-windows-master.zip",
			},
			Source2Viewer: Repository{
				Owner: "ValveResourceFormat",
				Repo:  "ValveResourceFormat",
				Asset: "Source2Viewer.exe",
			},
			Self: Repository{
				Owner: "jakkekz",
				Repo:  "CS2KZ-Mapping-Tools",
				Asset: "CS2KZ-Mapping-Tools",
			},
			BSPSourceURL: "https://github.com/ata4/bspsrc/releases/download/v1.4.7/bspsrc-windows.zip",
		},
	}
}
