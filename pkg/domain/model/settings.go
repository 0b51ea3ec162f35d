package model

// Button names used in visible_buttons and button_order. They double as
// action names of the local control API.
const (
	ButtonMapping       = "mapping"
	ButtonListen        = "listen"
	ButtonDedicated     = "dedicated_server"
	ButtonInsecure      = "insecure"
	ButtonSource2Viewer = "source2viewer"
	ButtonImporter      = "cs2importer"
	ButtonSkybox        = "skybox_converter"
	ButtonVTF2PNG       = "vtf2png"
	ButtonLoadingScreen = "loading_screen_creator"
	ButtonPointWorld    = "point_worldtext"
	ButtonSounds        = "sounds"
)

// AllButtons lists every known button in default order
var AllButtons = []string{
	ButtonMapping,
	ButtonListen,
	ButtonDedicated,
	ButtonInsecure,
	ButtonSource2Viewer,
	ButtonImporter,
	ButtonSkybox,
	ButtonVTF2PNG,
	ButtonLoadingScreen,
	ButtonPointWorld,
	ButtonSounds,
}

// Settings is the content of settings.json. Fields are GUI preferences kept
// for any front-end plus the auto-update switches used by the installers.
type Settings struct {
	Theme                   string          `json:"theme"`
	AppearanceMode          string          `json:"appearance_mode"`
	ColorTheme              string          `json:"color_theme"`
	VisibleButtons          map[string]bool `json:"visible_buttons"`
	ButtonOrder             []string        `json:"button_order"`
	WindowPosition          *[2]int         `json:"window_position"`
	Source2ViewerPath       string          `json:"source2viewer_path"`
	ShowMoveIcons           bool            `json:"show_move_icons"`
	AutoUpdateSource2Viewer bool            `json:"auto_update_source2viewer"`
	AutoUpdateMetamod       bool            `json:"auto_update_metamod"`
	AutoUpdateCS2KZ         bool            `json:"auto_update_cs2kz"`
	CompactMode             bool            `json:"compact_mode"`
	WindowOpacity           float64         `json:"window_opacity"`
	AlwaysOnTop             bool            `json:"always_on_top"`
}

// DefaultSettings returns the settings used for a fresh data directory
func DefaultSettings() Settings {
	visible := make(map[string]bool, len(AllButtons))
	for _, name := range AllButtons {
		visible[name] = true
	}
	// Unfinished tools start hidden
	visible[ButtonPointWorld] = false
	visible[ButtonSounds] = false

	return Settings{
		Theme:                   "dracula",
		AppearanceMode:          "dark",
		ColorTheme:              "blue",
		VisibleButtons:          visible,
		ButtonOrder:             append([]string(nil), AllButtons...),
		AutoUpdateSource2Viewer: true,
		AutoUpdateMetamod:       true,
		AutoUpdateCS2KZ:         true,
		WindowOpacity:           1.0,
	}
}

// OrderedVisibleButtons returns visible buttons in configured order. Known
// buttons missing from ButtonOrder are appended in default order.
func (s Settings) OrderedVisibleButtons() []string {
	seen := make(map[string]bool, len(AllButtons))
	var out []string
	add := func(name string) {
		if seen[name] || !IsKnownButton(name) {
			return
		}
		seen[name] = true
		if visible, ok := s.VisibleButtons[name]; ok && !visible {
			return
		}
		out = append(out, name)
	}

	for _, name := range s.ButtonOrder {
		add(name)
	}
	for _, name := range AllButtons {
		add(name)
	}
	return out
}

// IsKnownButton reports whether name is one of AllButtons
func IsKnownButton(name string) bool {
	for _, b := range AllButtons {
		if b == name {
			return true
		}
	}
	return false
}
