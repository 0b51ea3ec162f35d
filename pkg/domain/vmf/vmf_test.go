package vmf_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/vmf"
)

const sampleVMF = `world
{
	"id" "1"
	"classname" "worldspawn"
	solid
	{
		side
		{
			"plane" "(0 0 0) (0 1 0) (1 1 0)"
			"material" "KZ\Wall_Concrete"
		}
		side
		{
			"material" "kz/wall_concrete"
		}
	}
}
entity
{
	"classname" "infodecal"
	"texture" "decals/kz_logo"
}
entity
{
	"classname" "prop_static"
	"model" "models\kz\lamp.mdl"
	editor
	{
		"comments" "material dev/dev_measuregeneric01 was swapped"
	}
}
entity
{
	"classname" "func_brush"
	"model" "*12"
	solid
	{
		side
		{
			"material" "TOOLS/TOOLSCLIP"
		}
	}
	entity_nested_like_block
	{
		"model" "models/kz/Lamp.MDL"
		"model" "models/kz/sign.mdl"
	}
}
`

func TestReadAssets(t *testing.T) {
	assets, err := vmf.ReadAssets(strings.NewReader(sampleVMF))
	gt.NoError(t, err)

	gt.Value(t, assets.Materials).Equal([]string{
		"KZ/Wall_Concrete",
		"decals/kz_logo",
		"TOOLS/TOOLSCLIP",
	})
	gt.Value(t, assets.Models).Equal([]string{
		"models/kz/lamp.mdl",
		"models/kz/sign.mdl",
	})
}

func TestReadAssets_Invalid(t *testing.T) {
	_, err := vmf.ReadAssets(strings.NewReader("world {"))
	gt.Error(t, err)
}

func TestEnsureHeader(t *testing.T) {
	t.Run("adds header", func(t *testing.T) {
		out, changed := vmf.EnsureHeader("world\n{\n}\n")
		gt.True(t, changed)
		gt.True(t, strings.HasPrefix(out, "versioninfo\n{\n\t\"editorversion\" \"400\""))
		gt.True(t, strings.HasSuffix(out, "world\n{\n}\n"))
	})

	t.Run("keeps existing header", func(t *testing.T) {
		in := "VersionInfo\n{\n}\nworld\n{\n}\n"
		out, changed := vmf.EnsureHeader(in)
		gt.False(t, changed)
		gt.Value(t, out).Equal(in)
	})
}
