// Package vmf inspects Valve Map Format sources produced by BSPSource.
package vmf

import (
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/keyvalues"
)

// HammerHeader is the block Hammer writes at the top of every VMF. The CS2
// importer refuses decompiled VMFs that lack it.
const HammerHeader = `versioninfo
{
	"editorversion" "400"
	"editorbuild" "8997"
	"mapversion" "1"
	"formatversion" "100"
	"prefab" "0"
}
visgroups
{
}
viewsettings
{
	"bSnapToGrid" "1"
	"bShowGrid" "1"
	"bShowLogicalGrid" "0"
	"nGridSpacing" "64"
}
`

// EnsureHeader prepends HammerHeader unless content already has versioninfo
func EnsureHeader(content string) (string, bool) {
	if strings.Contains(strings.ToLower(content), "versioninfo") {
		return content, false
	}
	return HammerHeader + content, true
}

// Assets are the materials and models a map references, in first-seen order
type Assets struct {
	Materials []string
	Models    []string
}

type dedup struct {
	seen  map[string]bool
	items []string
}

func (d *dedup) add(v string) {
	v = strings.TrimSpace(strings.ReplaceAll(v, `\`, "/"))
	if v == "" {
		return
	}
	k := strings.ToLower(v)
	if d.seen[k] {
		return
	}
	d.seen[k] = true
	d.items = append(d.items, v)
}

// CollectAssets walks the whole document. "material" and "texture" values
// anywhere are materials, "model" values ending in .mdl are models.
func CollectAssets(root *keyvalues.Node) Assets {
	materials := &dedup{seen: map[string]bool{}}
	models := &dedup{seen: map[string]bool{}}

	root.Walk(func(n *keyvalues.Node) bool {
		if n.Block {
			return true
		}
		switch strings.ToLower(n.Key) {
		case "material", "texture":
			materials.add(n.Value)
		case "model":
			if strings.HasSuffix(strings.ToLower(strings.TrimSpace(n.Value)), ".mdl") {
				models.add(n.Value)
			}
		}
		return true
	})

	return Assets{Materials: materials.items, Models: models.items}
}

// ReadAssets parses a VMF and collects its assets
func ReadAssets(r io.Reader) (Assets, error) {
	root, err := keyvalues.Parse(r)
	if err != nil {
		return Assets{}, goerr.Wrap(err, "failed to parse VMF")
	}
	return CollectAssets(root), nil
}
