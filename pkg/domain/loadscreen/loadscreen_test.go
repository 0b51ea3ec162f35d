package loadscreen_test

import (
	"image"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/loadscreen"
)

func TestCropRect(t *testing.T) {
	testCases := map[string]struct {
		in   image.Rectangle
		want image.Rectangle
	}{
		"already 16:9": {
			in:   image.Rect(0, 0, 1920, 1080),
			want: image.Rect(0, 0, 1920, 1080),
		},
		"too wide crops sides": {
			in:   image.Rect(0, 0, 2560, 1080),
			want: image.Rect(320, 0, 2240, 1080),
		},
		"too tall crops top and bottom": {
			in:   image.Rect(0, 0, 1600, 1200),
			want: image.Rect(0, 150, 1600, 1050),
		},
		"offset bounds": {
			in:   image.Rect(10, 10, 26, 28),
			want: image.Rect(10, 14, 26, 23),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			gt.Value(t, loadscreen.CropRect(tc.in)).Equal(tc.want)
		})
	}
}

func TestCrop(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	img.Pix[img.PixOffset(0, 7)+3] = 255

	out := loadscreen.Crop(img)
	gt.Value(t, out.Bounds()).Equal(image.Rect(0, 0, 32, 18))
	gt.Value(t, out.NRGBAAt(0, 0).A).Equal(uint8(255))
}

func TestNames(t *testing.T) {
	gt.Value(t, loadscreen.ScreenshotName("kz_foo", 3)).Equal("kz_foo_3_png")
	gt.Value(t, loadscreen.IconName("kz_foo")).Equal("map_icon_kz_foo.svg")
	gt.String(t, loadscreen.VMAT("kz_foo", 1)).
		Contains(`"panorama/images/map_icons/screenshots/1080p/kz_foo_1_png.png"`)
}
