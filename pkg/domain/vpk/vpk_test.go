package vpk_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/vpk"
)

type tree map[string]map[string][]string

func buildDir(version uint32, t tree, exts []string) []byte {
	var body bytes.Buffer
	str := func(s string) {
		body.WriteString(s)
		body.WriteByte(0)
	}
	for _, ext := range exts {
		str(ext)
		for dir, names := range t[ext] {
			str(dir)
			for _, name := range names {
				str(name)
				entry := make([]byte, 18)
				binary.LittleEndian.PutUint16(entry[4:], 2) // preload bytes
				binary.LittleEndian.PutUint16(entry[16:], 0xFFFF)
				body.Write(entry)
				body.Write([]byte{0xAA, 0xBB})
			}
			str("")
		}
		str("")
	}
	str("")

	var out bytes.Buffer
	_ = binary.Write(&out, binary.LittleEndian, []uint32{0x55AA1234, version, uint32(body.Len())})
	if version == 2 {
		out.Write(make([]byte, 16))
	}
	out.Write(body.Bytes())
	return out.Bytes()
}

func TestReadDir(t *testing.T) {
	for _, version := range []uint32{1, 2} {
		data := buildDir(version, tree{
			"vsnd_c": {"sounds/ui": {"beep", "click"}},
			"txt":    {" ": {"readme"}},
		}, []string{"vsnd_c", "txt"})

		files, err := vpk.ReadDir(bytes.NewReader(data))
		gt.NoError(t, err)
		gt.Value(t, files).Equal([]string{
			"sounds/ui/beep.vsnd_c",
			"sounds/ui/click.vsnd_c",
			"readme.txt",
		})
	}
}

func TestReadDirErrors(t *testing.T) {
	t.Run("bad signature", func(t *testing.T) {
		_, err := vpk.ReadDir(bytes.NewReader(make([]byte, 12)))
		gt.Error(t, err).Is(vpk.ErrInvalidSignature)
	})

	t.Run("truncated", func(t *testing.T) {
		data := buildDir(1, tree{"vmat_c": {"materials": {"a"}}}, []string{"vmat_c"})
		_, err := vpk.ReadDir(bytes.NewReader(data[:len(data)-10]))
		gt.Error(t, err)
	})
}

func TestSounds(t *testing.T) {
	got := vpk.Sounds([]string{
		"sounds/ui/click.vsnd_c",
		"materials/a.vmat_c",
		"sounds/ambient/wind.vsnd_c",
		"music/x.vsnd_c",
	})
	gt.Value(t, got).Equal([]string{"sounds/ambient/wind.vsnd", "sounds/ui/click.vsnd"})
}
