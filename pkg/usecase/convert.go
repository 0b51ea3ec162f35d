package usecase

import (
	"context"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	_ "golang.org/x/image/bmp"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/skybox"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/vtf"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/logging"
)

// ConvertResult counts the outcome of a batch conversion
type ConvertResult struct {
	Converted int      `json:"converted"`
	Failed    []string `json:"failed"`
}

// loadImage decodes PNG, JPEG, BMP or VTF
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open image", goerr.V("path", path))
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode image", goerr.V("path", path))
	}
	return img, nil
}

func savePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return goerr.Wrap(err, "failed to create directory", goerr.V("path", path))
	}
	f, err := os.Create(path)
	if err != nil {
		return goerr.Wrap(err, "failed to create image", goerr.V("path", path))
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return goerr.Wrap(err, "failed to encode png", goerr.V("path", path))
	}
	if err := f.Close(); err != nil {
		return goerr.Wrap(err, "failed to close image", goerr.V("path", path))
	}
	return nil
}

// ConvertVTFFile writes src decoded as PNG next to it and returns the PNG path
func ConvertVTFFile(src string) (string, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read VTF", goerr.V("path", src))
	}
	img, err := vtf.DecodeBytes(data)
	if err != nil {
		return "", goerr.Wrap(err, "failed to decode VTF", goerr.V("path", src))
	}
	dst := strings.TrimSuffix(src, filepath.Ext(src)) + ".png"
	if err := savePNG(dst, img); err != nil {
		return "", err
	}
	return dst, nil
}

// ConvertVTFDir converts every *.vtf directly inside dir. A file that fails
// is counted and the batch goes on.
func ConvertVTFDir(ctx context.Context, dir string) (*ConvertResult, error) {
	logger := logging.From(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list directory", goerr.V("dir", dir))
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".vtf") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	result := &ConvertResult{}
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return result, goerr.Wrap(err, "conversion cancelled")
		}
		dst, err := ConvertVTFFile(filepath.Join(dir, name))
		if err != nil {
			logger.Warn("Failed to convert VTF", "file", name, "error", err)
			result.Failed = append(result.Failed, name)
			continue
		}
		logger.Info("Converted VTF", "file", name, "png", filepath.Base(dst))
		result.Converted++
	}
	return result, nil
}

// StitchSkybox detects the six faces among paths and writes the cubemap
// cross to out as PNG
func StitchSkybox(ctx context.Context, paths []string, out string) error {
	matched, err := skybox.MatchFaces(paths)
	if err != nil {
		return err
	}

	faces := make(map[skybox.Face]image.Image, len(matched))
	for face, path := range matched {
		img, err := loadImage(path)
		if err != nil {
			return err
		}
		logging.From(ctx).Debug("Loaded skybox face", "face", face, "path", path, "size", img.Bounds().Size())
		faces[face] = img
	}

	cross, err := skybox.Stitch(faces)
	if err != nil {
		return err
	}
	if err := savePNG(out, cross); err != nil {
		return err
	}
	logging.From(ctx).Info("Skybox written", "path", out, "size", cross.Bounds().Size())
	return nil
}
