// Package archive extracts downloaded tool archives.
package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/logging"
)

// ExtractZip writes every entry of zipData below destDir, creating it when
// needed. Existing files are overwritten. Entries escaping destDir abort the
// extraction.
func ExtractZip(ctx context.Context, zipData []byte, destDir string) (*model.ExtractResult, error) {
	logger := logging.From(ctx)

	zipReader, err := zip.NewReader(bytes.NewReader(zipData), int64(len(zipData)))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create zip reader")
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create destination directory", goerr.V("dir", destDir))
	}

	result := &model.ExtractResult{Dir: destDir}
	for _, file := range zipReader.File {
		if err := extractFile(file, destDir); err != nil {
			return nil, goerr.Wrap(err, "failed to extract file", goerr.V("file", file.Name))
		}

		result.Files = append(result.Files, file.Name)
		result.Size += int64(file.UncompressedSize64)
	}

	logger.Debug("Extracted archive",
		"dest", destDir,
		"file_count", len(result.Files),
		"total_size_bytes", result.Size,
	)

	return result, nil
}

func extractFile(file *zip.File, destDir string) error {
	destPath := filepath.Join(destDir, file.Name)
	if !strings.HasPrefix(destPath, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return goerr.New("invalid file path detected", goerr.V("file", file.Name), goerr.V("dest", destPath))
	}

	if file.FileInfo().IsDir() {
		return os.MkdirAll(destPath, 0755)
	}

	rc, err := file.Open()
	if err != nil {
		return goerr.Wrap(err, "failed to open file in zip")
	}
	defer func() { _ = rc.Close() }()

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return goerr.Wrap(err, "failed to create parent directories", goerr.V("dir", filepath.Dir(destPath)))
	}

	mode := file.FileInfo().Mode().Perm()
	if mode == 0 {
		mode = 0644
	}
	destFile, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return goerr.Wrap(err, "failed to create destination file", goerr.V("path", destPath))
	}

	if _, err := io.Copy(destFile, rc); err != nil {
		_ = destFile.Close()
		return goerr.Wrap(err, "failed to copy file content", goerr.V("path", destPath))
	}
	if err := destFile.Close(); err != nil {
		return goerr.Wrap(err, "failed to close destination file", goerr.V("path", destPath))
	}

	return nil
}
