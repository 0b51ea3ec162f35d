package usecase

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/keyvalues"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/vmf"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/logging"
)

const (
	bspSourceModule  = "info.ata4.bspsrc.app/info.ata4.bspsrc.app.src.cli.BspSourceCli"
	bspSourceTimeout = 120 * time.Second
)

// copyTree copies every file below src into each of dsts and returns the
// copied paths relative to src with forward slashes
func copyTree(src string, dsts ...string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		for _, dst := range dsts {
			if err := copyFile(path, filepath.Join(dst, rel)); err != nil {
				return err
			}
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to copy directory", goerr.V("src", src))
	}
	return files, nil
}

func isDir(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.IsDir()
}

// extractBSP decompiles bspPath with BSPSource and installs the VMF and the
// embedded content into the legacy csgo folder. It returns the VMF path.
func (uc *importer) extractBSP(ctx context.Context, install model.CS2Install, bspPath, mapName string, report *model.ImportReport) (string, error) {
	logger := logging.From(ctx)

	bspDir, err := uc.Installer.EnsureBSPSource(ctx)
	if err != nil {
		return "", err
	}

	tmp, err := os.MkdirTemp("", "bspsrc_output_")
	if err != nil {
		return "", goerr.Wrap(err, "failed to create BSPSource output directory")
	}
	defer func() {
		if err := os.RemoveAll(tmp); err != nil {
			logger.Warn("Failed to clean up BSPSource output", "dir", tmp, "error", err)
		}
	}()

	tmpVMF := filepath.Join(tmp, mapName+".vmf")
	cmd := model.Command{
		Path:    filepath.Join(bspDir, "bin", "java.exe"),
		Args:    []string{"-m", bspSourceModule, "--unpack_embedded", "-o", tmpVMF, bspPath},
		Dir:     bspDir,
		Timeout: bspSourceTimeout,
	}
	logger.Info("Decompiling BSP", "bsp", bspPath)
	result, err := uc.Runner.Run(ctx, cmd, func(line string) { logger.Info(line, "tool", "bspsrc") })
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "", goerr.Wrap(err, "BSPSource timed out", goerr.V("timeout", bspSourceTimeout))
	case errors.Is(err, model.ErrCommandFailed):
		// BSPSource exits non-zero on some maps that still decompile
		logger.Warn("BSPSource reported an error", "exit_code", result.ExitCode)
	case err != nil:
		return "", goerr.Wrap(err, "failed to run BSPSource")
	}

	root := tmp
	if isDir(filepath.Join(tmp, mapName)) {
		root = filepath.Join(tmp, mapName)
	}

	mapsDir := install.LegacyMapsDir()
	if err := os.MkdirAll(mapsDir, 0755); err != nil {
		return "", goerr.Wrap(err, "failed to create maps directory", goerr.V("path", mapsDir))
	}
	vmfPath := filepath.Join(mapsDir, mapName+".vmf")

	haveVMF := false
	if _, err := os.Stat(tmpVMF); err == nil {
		if err := copyFile(tmpVMF, vmfPath); err != nil {
			return "", err
		}
		if _, err := patchFile(vmfPath, vmf.EnsureHeader); err != nil {
			return "", err
		}
		haveVMF = true
	}

	if entries, err := os.ReadDir(filepath.Join(root, "maps")); err == nil {
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if err := copyFile(filepath.Join(root, "maps", e.Name()), filepath.Join(mapsDir, e.Name())); err != nil {
				return "", err
			}
		}
	}

	legacy := install.LegacyDir()
	if isDir(filepath.Join(root, "models")) {
		files, err := copyTree(filepath.Join(root, "models"), filepath.Join(legacy, "models"), filepath.Join(mapsDir, "models"))
		if err != nil {
			return "", err
		}
		logger.Info("Embedded models extracted", "count", len(files))
	}

	embeddedMaterials := 0
	if isDir(filepath.Join(root, "materials")) {
		files, err := copyTree(filepath.Join(root, "materials"), filepath.Join(legacy, "materials"), filepath.Join(mapsDir, "materials"))
		if err != nil {
			return "", err
		}
		embeddedMaterials = len(files)

		var vmts []string
		for _, f := range files {
			if strings.EqualFold(filepath.Ext(f), ".vmt") {
				vmts = append(vmts, "materials/"+f)
			}
		}
		if len(vmts) > 0 {
			refs := filepath.Join(mapsDir, mapName+"_embedded_refs.txt")
			if err := os.WriteFile(refs, []byte(keyvalues.FormatFileList(vmts)), 0644); err != nil {
				return "", goerr.Wrap(err, "failed to write embedded refs", goerr.V("path", refs))
			}
		}
		logger.Info("Embedded materials extracted", "count", embeddedMaterials, "vmt", len(vmts))
	}

	if !haveVMF {
		if embeddedMaterials > 0 {
			report.Warnings = append(report.Warnings, "embedded files extracted but the VMF could not be decompiled; the BSP may be protected")
		}
		return "", goerr.New("VMF not found after decompiling; only CS:GO BSP files are supported", goerr.V("bsp", bspPath))
	}
	return vmfPath, nil
}

// fixMaterialCase renames material files whose on-disk case differs from the
// case the VMF uses, so source1import finds them on case-sensitive lookups.
func fixMaterialCase(ctx context.Context, install model.CS2Install, materials []string) int {
	logger := logging.From(ctx)
	renamed := 0
	for _, m := range materials {
		// resolve both files before moving either
		type move struct{ from, to string }
		var moves []move
		for _, ext := range []string{".vmt", ".vtf"} {
			want := filepath.Join(install.LegacyDir(), "materials", filepath.FromSlash(m)+ext)
			if actual, ok := findInsensitive(want); ok && actual != want {
				moves = append(moves, move{from: actual, to: want})
			}
		}

		for _, mv := range moves {
			if err := os.MkdirAll(filepath.Dir(mv.to), 0755); err != nil {
				logger.Warn("Failed to create material directory", "path", mv.to, "error", err)
				continue
			}
			if err := os.Rename(mv.from, mv.to); err != nil {
				logger.Warn("Failed to fix material case", "from", mv.from, "to", mv.to, "error", err)
				continue
			}
			renamed++
		}
	}
	return renamed
}

// findInsensitive looks up path matching the file name, and the directory
// name one level up, without regard to case
func findInsensitive(path string) (string, bool) {
	dir, name := filepath.Split(path)
	dir = filepath.Clean(dir)

	if !isDir(dir) {
		parent, base := filepath.Split(dir)
		found, ok := matchEntry(filepath.Clean(parent), base, true)
		if !ok {
			return "", false
		}
		dir = found
	}
	return matchEntry(dir, name, false)
}

// matchEntry prefers an exact match over a case-insensitive one
func matchEntry(dir, name string, wantDir bool) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	var folded string
	for _, e := range entries {
		if e.IsDir() != wantDir {
			continue
		}
		if e.Name() == name {
			return filepath.Join(dir, name), true
		}
		if folded == "" && strings.EqualFold(e.Name(), name) {
			folded = filepath.Join(dir, e.Name())
		}
	}
	return folded, folded != ""
}
