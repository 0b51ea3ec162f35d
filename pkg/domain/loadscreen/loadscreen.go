// Package loadscreen builds the panorama assets shown while a map loads.
package loadscreen

import (
	"fmt"
	"image"
	"image/draw"
	"path"
)

// MaxImages is the number of screenshots the loading screen cycles through
const MaxImages = 9

const (
	ratioW = 16
	ratioH = 9
)

// CropRect returns the centered 16:9 region of bounds
func CropRect(bounds image.Rectangle) image.Rectangle {
	w, h := bounds.Dx(), bounds.Dy()
	if w*ratioH > h*ratioW {
		nw := h * ratioW / ratioH
		left := (w - nw) / 2
		return image.Rect(bounds.Min.X+left, bounds.Min.Y, bounds.Min.X+left+nw, bounds.Max.Y)
	}
	nh := w * ratioH / ratioW
	top := (h - nh) / 2
	return image.Rect(bounds.Min.X, bounds.Min.Y+top, bounds.Max.X, bounds.Min.Y+top+nh)
}

// Crop copies the centered 16:9 region of img into a new image
func Crop(img image.Image) *image.NRGBA {
	r := CropRect(img.Bounds())
	out := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), img, r.Min, draw.Src)
	return out
}

// ScreenshotDir is relative to the addon content directory
var ScreenshotDir = path.Join("panorama", "images", "map_icons", "screenshots", "1080p")

// IconDir is relative to the addon content directory
var IconDir = path.Join("panorama", "images", "map_icons")

// ScreenshotName returns the base name of the i-th screenshot, counting from 1
func ScreenshotName(mapName string, i int) string {
	return fmt.Sprintf("%s_%d_png", mapName, i)
}

// IconName returns the file name of the map icon
func IconName(mapName string) string {
	return "map_icon_" + mapName + ".svg"
}

// DescriptionName returns the file name of the map description in game/<addon>/maps
func DescriptionName(mapName string) string {
	return mapName + ".txt"
}

// VMAT returns the material wrapping the i-th screenshot
func VMAT(mapName string, i int) string {
	texture := path.Join(ScreenshotDir, ScreenshotName(mapName, i)+".png")
	return fmt.Sprintf(`// THIS FILE IS AUTO-GENERATED

Layer0
{
	shader "csgo_composite_generic.vfx"

	//---- Color ----
	g_flModelTintAmount "1.000"
	g_vColorTint "[1.000000 1.000000 1.000000 0.000000]"

	//---- Texture ----
	TextureA "%s"
}
`, texture)
}
