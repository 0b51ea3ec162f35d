package model

import "path/filepath"

// CS2Install is a located Counter-Strike 2 installation. Root is
// steamapps/common/<installdir>; every other path is derived from it.
type CS2Install struct {
	Root string
}

func (c CS2Install) GameDir() string { return filepath.Join(c.Root, "game") }
func (c CS2Install) CSGODir() string { return filepath.Join(c.Root, "game", "csgo") }
func (c CS2Install) CoreDir() string { return filepath.Join(c.Root, "game", "csgo_core") }
func (c CS2Install) BinDir() string  { return filepath.Join(c.Root, "game", "bin", "win64") }

// LegacyDir is the csgo folder source1import reads Source 1 content from
func (c CS2Install) LegacyDir() string { return filepath.Join(c.Root, "csgo") }

func (c CS2Install) GameInfo() string     { return filepath.Join(c.CSGODir(), "gameinfo.gi") }
func (c CS2Install) CoreGameInfo() string { return filepath.Join(c.CoreDir(), "gameinfo.gi") }

func (c CS2Install) Executable() string    { return filepath.Join(c.BinDir(), "cs2.exe") }
func (c CS2Install) ToolsLauncher() string { return filepath.Join(c.BinDir(), "csgocfg.exe") }
func (c CS2Install) ResourceCompiler() string {
	return filepath.Join(c.BinDir(), "resourcecompiler.exe")
}
func (c CS2Install) Source1Import() string { return filepath.Join(c.BinDir(), "source1import.exe") }
func (c CS2Install) ModelImport() string   { return filepath.Join(c.BinDir(), "cs_mdl_import.exe") }
func (c CS2Install) VPKSignatures() string { return filepath.Join(c.BinDir(), "vpk.signatures") }

func (c CS2Install) MetamodDir() string { return filepath.Join(c.CSGODir(), "addons", "metamod") }
func (c CS2Install) CS2KZDir() string   { return filepath.Join(c.CSGODir(), "addons", "cs2kz") }

// MetamodContentDir is content/csgo/addons/metamod, required by the tools for metamod assets
func (c CS2Install) MetamodContentDir() string {
	return filepath.Join(c.Root, "content", "csgo", "addons", "metamod")
}

// AddonContentDir returns content/csgo_addons/<addon>
func (c CS2Install) AddonContentDir(addon string) string {
	return filepath.Join(c.Root, "content", "csgo_addons", addon)
}

// AddonGameDir returns game/csgo_addons/<addon>
func (c CS2Install) AddonGameDir(addon string) string {
	return filepath.Join(c.Root, "game", "csgo_addons", addon)
}

// SteamAppIDFile is left behind by some launches and breaks later tool starts
func (c CS2Install) SteamAppIDFile() string { return filepath.Join(c.BinDir(), "steam_appid.txt") }

// ToolsBinDir is game/bin, holding the tool registry files
func (c CS2Install) ToolsBinDir() string { return filepath.Join(c.Root, "game", "bin") }
func (c CS2Install) SDKEngineTools() string {
	return filepath.Join(c.ToolsBinDir(), "sdkenginetools.txt")
}
func (c CS2Install) AssetTypesCommon() string {
	return filepath.Join(c.ToolsBinDir(), "assettypes_common.txt")
}
func (c CS2Install) CS2KZServerConfig() string {
	return filepath.Join(c.CSGODir(), "cfg", "cs2kz-server-config.txt")
}
func (c CS2Install) MappingAPIFGD() string { return filepath.Join(c.CoreDir(), "csgo_internal.fgd") }
func (c CS2Install) AssetInfoBin() string {
	return filepath.Join(c.CSGODir(), "readonly_tools_asset_info.bin")
}
func (c CS2Install) GamePak() string { return filepath.Join(c.CSGODir(), "pak01_dir.vpk") }

// LegacyPak is the CS:GO pak source1import reads stock assets from
func (c CS2Install) LegacyPak() string     { return filepath.Join(c.LegacyDir(), "pak01_dir.vpk") }
func (c CS2Install) LegacyMapsDir() string { return filepath.Join(c.LegacyDir(), "maps") }

// Relative returns p relative to Root with forward slashes, as GameTracking paths are written
func (c CS2Install) Relative(p string) (string, error) {
	rel, err := filepath.Rel(c.Root, p)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
