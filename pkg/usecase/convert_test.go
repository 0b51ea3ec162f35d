package usecase_test

import (
	"context"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/skybox"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/usecase"
)

// rgbaVTF builds a 7.2 texture with a single RGBA8888 mip and no thumbnail
func rgbaVTF(w, h int, px color.NRGBA) []byte {
	le := binary.LittleEndian
	hdr := make([]byte, 80)
	copy(hdr, "VTF\x00")
	le.PutUint32(hdr[4:], 7)
	le.PutUint32(hdr[8:], 2)
	le.PutUint32(hdr[12:], 80)
	le.PutUint16(hdr[16:], uint16(w))
	le.PutUint16(hdr[18:], uint16(h))
	le.PutUint16(hdr[24:], 1)
	le.PutUint32(hdr[52:], 0)
	hdr[56] = 1
	le.PutUint32(hdr[57:], 0xFFFFFFFF)
	le.PutUint16(hdr[63:], 1)

	for i := 0; i < w*h; i++ {
		hdr = append(hdr, px.R, px.G, px.B, px.A)
	}
	return hdr
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	gt.NoError(t, err)
	defer func() { _ = f.Close() }()
	img, err := png.Decode(f)
	gt.NoError(t, err)
	return img
}

func TestConvertVTFDir(t *testing.T) {
	dir := t.TempDir()
	red := color.NRGBA{R: 200, G: 10, B: 20, A: 255}
	gt.NoError(t, os.WriteFile(filepath.Join(dir, "wall.vtf"), rgbaVTF(4, 2, red), 0644))
	gt.NoError(t, os.WriteFile(filepath.Join(dir, "broken.VTF"), []byte("nope"), 0644))
	gt.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0644))
	gt.NoError(t, os.MkdirAll(filepath.Join(dir, "sub.vtf"), 0755))

	result, err := usecase.ConvertVTFDir(context.Background(), dir)
	gt.NoError(t, err)
	gt.Value(t, result.Converted).Equal(1)
	gt.Value(t, result.Failed).Equal([]string{"broken.VTF"})

	img := decodePNG(t, filepath.Join(dir, "wall.png"))
	gt.Value(t, img.Bounds().Size()).Equal(image.Pt(4, 2))
	gt.Value(t, color.NRGBAModel.Convert(img.At(3, 1))).Equal(color.Color(red))
	gt.False(t, fileExists(filepath.Join(dir, "broken.png")))

	t.Run("missing directory", func(t *testing.T) {
		_, err := usecase.ConvertVTFDir(context.Background(), filepath.Join(dir, "none"))
		gt.Error(t, err)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		result, err := usecase.ConvertVTFDir(ctx, dir)
		gt.Error(t, err).Is(context.Canceled)
		gt.Value(t, result.Converted).Equal(0)
	})
}

func TestStitchSkybox(t *testing.T) {
	dir := t.TempDir()
	names := map[string]color.NRGBA{
		"sky_up.png": {R: 255, A: 255},
		"sky_dn.png": {G: 255, A: 255},
		"sky_lf.png": {B: 255, A: 255},
		"sky_rt.png": {R: 255, G: 255, A: 255},
		"sky_ft.png": {G: 255, B: 255, A: 255},
		"sky_bk.png": {R: 255, B: 255, A: 255},
	}
	var paths []string
	for name, c := range names {
		img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				img.SetNRGBA(x, y, c)
			}
		}
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		gt.NoError(t, err)
		gt.NoError(t, png.Encode(f, img))
		gt.NoError(t, f.Close())
		paths = append(paths, path)
	}

	out := filepath.Join(dir, "out", "sky.png")
	gt.NoError(t, usecase.StitchSkybox(context.Background(), paths, out))

	img := decodePNG(t, out)
	gt.Value(t, img.Bounds().Size()).Equal(image.Pt(16, 12))
	at := func(x, y int) color.Color { return color.NRGBAModel.Convert(img.At(x, y)) }
	gt.Value(t, at(5, 1)).Equal(color.Color(names["sky_up.png"]))
	gt.Value(t, at(5, 9)).Equal(color.Color(names["sky_dn.png"]))
	// the left slot shows the back face
	gt.Value(t, at(1, 5)).Equal(color.Color(names["sky_bk.png"]))
	gt.Value(t, at(0, 0)).Equal(color.Color(color.NRGBA{}))

	t.Run("missing face", func(t *testing.T) {
		err := usecase.StitchSkybox(context.Background(), paths[:5], filepath.Join(dir, "x.png"))
		gt.Error(t, err).Is(skybox.ErrMissingFace)
	})
}
