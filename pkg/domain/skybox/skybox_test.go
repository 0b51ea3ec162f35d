package skybox_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/skybox"
)

func TestMatchFaces(t *testing.T) {
	t.Run("matches long and short names", func(t *testing.T) {
		files, err := skybox.MatchFaces([]string{
			"/tmp/sky_up.png",
			"/tmp/sky_dn.vtf",
			"/tmp/sky_lf.tga",
			"/tmp/SKY_RT.png",
			"/tmp/sky_front.jpg",
			"/tmp/sky_bk.png",
		})
		gt.NoError(t, err)
		gt.Value(t, files[skybox.Down]).Equal("/tmp/sky_dn.vtf")
		gt.Value(t, files[skybox.Right]).Equal("/tmp/SKY_RT.png")
		gt.A(t, mapKeys(files)).Length(6)
	})

	t.Run("full face names", func(t *testing.T) {
		paths := map[skybox.Face]string{
			skybox.Up:    "sky_up.png",
			skybox.Down:  "sky_down.png",
			skybox.Left:  "sky_left.png",
			skybox.Right: "sky_right.png",
			skybox.Front: "sky_front.png",
			skybox.Back:  "sky_back.png",
		}
		var in []string
		for _, face := range skybox.Faces {
			in = append(in, paths[face])
		}

		files, err := skybox.MatchFaces(in)
		gt.NoError(t, err)
		for face, want := range paths {
			gt.Value(t, files[face]).Equal(want)
		}
	})

	t.Run("first face in slot order wins", func(t *testing.T) {
		files, err := skybox.MatchFaces([]string{
			"sky_left.png", "sky_up.png", "sky_dn.png", "sky_rt.png", "sky_ft.png", "sky_bk.png",
		})
		gt.NoError(t, err)
		gt.Value(t, files[skybox.Left]).Equal("sky_left.png")
		gt.Value(t, files[skybox.Front]).Equal("sky_ft.png")
	})

	t.Run("duplicate face", func(t *testing.T) {
		_, err := skybox.MatchFaces([]string{"a_up.png", "b_up.png"})
		gt.Error(t, err).Is(skybox.ErrDuplicateFace)
	})

	t.Run("missing face", func(t *testing.T) {
		_, err := skybox.MatchFaces([]string{"a_up.png", "a_dn.png"})
		gt.Error(t, err).Is(skybox.ErrMissingFace)
	})
}

func mapKeys(m map[skybox.Face]string) []skybox.Face {
	keys := make([]skybox.Face, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func solid(size int, c color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestStitch(t *testing.T) {
	colors := map[skybox.Face]color.NRGBA{
		skybox.Up:    {R: 1, A: 255},
		skybox.Down:  {R: 2, A: 255},
		skybox.Left:  {R: 3, A: 255},
		skybox.Right: {R: 4, A: 255},
		skybox.Front: {R: 5, A: 255},
		skybox.Back:  {R: 6, A: 255},
	}
	faces := map[skybox.Face]image.Image{}
	for f, c := range colors {
		faces[f] = solid(2, c)
	}

	out, err := skybox.Stitch(faces)
	gt.NoError(t, err)
	gt.Value(t, out.Bounds()).Equal(image.Rect(0, 0, 8, 6))

	testCases := map[string]struct {
		x, y int
		want uint8
	}{
		"up slot":    {x: 2, y: 0, want: 1},
		"left slot":  {x: 0, y: 2, want: 6},
		"front slot": {x: 2, y: 2, want: 4},
		"right slot": {x: 4, y: 2, want: 5},
		"back slot":  {x: 6, y: 2, want: 3},
		"down slot":  {x: 2, y: 4, want: 2},
		"empty cell": {x: 0, y: 0, want: 0},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			gt.Value(t, out.NRGBAAt(tc.x, tc.y).R).Equal(tc.want)
		})
	}
}

func TestStitchResizes(t *testing.T) {
	faces := map[skybox.Face]image.Image{}
	for _, f := range skybox.Faces {
		faces[f] = solid(4, color.NRGBA{G: 200, A: 255})
	}
	faces[skybox.Back] = solid(8, color.NRGBA{G: 200, A: 255})

	out, err := skybox.Stitch(faces)
	gt.NoError(t, err)
	gt.Value(t, out.Bounds().Dx()).Equal(16)
	gt.Value(t, out.NRGBAAt(1, 5).G).Equal(uint8(200))
}

func TestStitchMissing(t *testing.T) {
	_, err := skybox.Stitch(map[skybox.Face]image.Image{skybox.Up: solid(1, color.NRGBA{})})
	gt.Error(t, err).Is(skybox.ErrMissingFace)
}
