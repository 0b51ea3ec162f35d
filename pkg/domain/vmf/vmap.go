package vmf

import (
	"regexp"
	"strings"
)

// PrefabName maps a source map name to the name source1import uses for its
// prefab folder: instances become prefabs.
func PrefabName(mapName string) string {
	return strings.ReplaceAll(mapName, "instances", "prefabs")
}

// PrefabDir is the folder, relative to the addon content root, prefab vmaps are moved to
func PrefabDir(mapName string) string {
	return "maps/prefabs/" + mapName
}

// RewritePrefabPaths points "<map>_*.vmap" references of an imported vmap
// at their location under maps/prefabs/<map>/.
func RewritePrefabPaths(content, mapName string) (string, bool) {
	re := regexp.MustCompile(`"(` + regexp.QuoteMeta(mapName) + `_[^"/]*\.vmap)"`)
	out := re.ReplaceAllString(content, `"`+PrefabDir(mapName)+`/$1"`)
	return out, out != content
}
