package usecase

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/gameinfo"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/interfaces"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/logging"
)

const backupSuffix = ".bak"

// GameFiles edits and restores the CS2 files touched by a launch
type GameFiles struct {
	fetcher         interfaces.Fetcher
	gameTrackingURL string
}

// NewGameFiles creates the game file patcher. gameTrackingURL is the raw
// base URL of the GameTracking-CS2 repository used by Verify.
func NewGameFiles(fetcher interfaces.Fetcher, gameTrackingURL string) *GameFiles {
	return &GameFiles{
		fetcher:         fetcher,
		gameTrackingURL: strings.TrimSuffix(gameTrackingURL, "/"),
	}
}

func gameInfoFiles(install model.CS2Install) []string {
	return []string{install.GameInfo(), install.CoreGameInfo()}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return goerr.Wrap(err, "failed to open file", goerr.V("path", src))
	}
	defer func() { _ = in.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return goerr.Wrap(err, "failed to create directory", goerr.V("path", dst))
	}
	out, err := os.Create(dst)
	if err != nil {
		return goerr.Wrap(err, "failed to create file", goerr.V("path", dst))
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return goerr.Wrap(err, "failed to copy file", goerr.V("src", src), goerr.V("dst", dst))
	}
	if err := out.Close(); err != nil {
		return goerr.Wrap(err, "failed to close file", goerr.V("path", dst))
	}
	return nil
}

// Backup copies both gameinfo.gi files to .bak. An existing .bak is kept:
// it was taken before another session patched the file and still holds the
// unpatched content.
func (uc *GameFiles) Backup(ctx context.Context, install model.CS2Install) error {
	for _, path := range gameInfoFiles(install) {
		backup := path + backupSuffix
		if _, err := os.Stat(backup); err == nil {
			logging.From(ctx).Info("Keeping existing gameinfo backup", "path", backup)
			continue
		} else if !errors.Is(err, os.ErrNotExist) {
			return goerr.Wrap(err, "failed to check gameinfo backup", goerr.V("path", backup))
		}
		if err := copyFile(path, backup); err != nil {
			return goerr.Wrap(err, "failed to back up gameinfo")
		}
	}
	logging.From(ctx).Debug("Gameinfo files backed up")
	return nil
}

// Restore moves the backups over the patched files. A missing backup is skipped.
func (uc *GameFiles) Restore(ctx context.Context, install model.CS2Install) error {
	var errs []error
	for _, path := range gameInfoFiles(install) {
		err := os.Rename(path+backupSuffix, path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			errs = append(errs, goerr.Wrap(err, "failed to restore gameinfo", goerr.V("path", path)))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	logging.From(ctx).Debug("Gameinfo files restored")
	return nil
}

// patchFile applies edit to the file at path and writes it back when changed
func patchFile(path string, edit func(string) (string, bool)) (bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return false, goerr.Wrap(err, "failed to read file", goerr.V("path", path))
	}
	out, changed := edit(string(raw))
	if !changed {
		return false, nil
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return false, goerr.Wrap(err, "failed to write file", goerr.V("path", path))
	}
	return true, nil
}

// Patch applies the edits a launch mode needs. Insecure launches touch nothing.
func (uc *GameFiles) Patch(ctx context.Context, install model.CS2Install, mode model.LaunchMode) error {
	if !mode.NeedsSetup() {
		return nil
	}
	logger := logging.From(ctx)

	if _, err := patchFile(install.GameInfo(), gameinfo.AddMetamodSearchPath); err != nil {
		return err
	}
	if _, err := patchFile(install.CoreGameInfo(), gameinfo.StripCustomNavBuild); err != nil {
		return err
	}

	switch mode {
	case model.LaunchListen:
		if _, err := patchFile(install.GameInfo(), gameinfo.EnableP2P); err != nil {
			return err
		}
	case model.LaunchMapping:
		for path, edit := range map[string]func(string) (string, bool){
			install.SDKEngineTools():   gameinfo.EnablePetTool,
			install.AssetTypesCommon(): gameinfo.EnableParticleAssets,
		} {
			if _, err := patchFile(path, edit); err != nil {
				logger.Warn("Particle editor not enabled", "path", path, "error", err)
			}
		}
	}

	logger.Info("Game files patched", "mode", mode)
	return nil
}

// SetTimeLimit raises the CS2KZ default time limit. A missing config is logged only.
func (uc *GameFiles) SetTimeLimit(ctx context.Context, install model.CS2Install) error {
	path := install.CS2KZServerConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		logging.From(ctx).Warn("CS2KZ config not found", "path", path)
		return nil
	}
	changed, err := patchFile(path, gameinfo.SetCS2KZTimeLimit)
	if err != nil {
		return err
	}
	logging.From(ctx).Debug("CS2KZ time limit checked", "changed", changed)
	return nil
}

// verifyFiles lists the files Verify downloads for mode
func verifyFiles(install model.CS2Install, mode model.LaunchMode) []string {
	files := gameInfoFiles(install)
	if mode == model.LaunchMapping {
		files = append(files, install.SDKEngineTools(), install.AssetTypesCommon())
	}
	return files
}

// Verify replaces the touched files with pristine copies from GameTracking.
// A file that fails to download is logged and left as is.
func (uc *GameFiles) Verify(ctx context.Context, install model.CS2Install, mode model.LaunchMode) error {
	logger := logging.From(ctx)
	for _, path := range verifyFiles(install, mode) {
		rel, err := install.Relative(path)
		if err != nil {
			return goerr.Wrap(err, "invalid game file path", goerr.V("path", path))
		}

		url := uc.gameTrackingURL + "/" + rel
		body, err := uc.fetcher.Fetch(ctx, url)
		if err != nil {
			logger.Warn("Failed to download pristine game file", "url", url, "error", err)
			continue
		}

		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return goerr.Wrap(err, "failed to create directory", goerr.V("path", path))
		}
		if err := os.WriteFile(path, []byte(gameinfo.ToCRLF(string(body))), 0644); err != nil {
			return goerr.Wrap(err, "failed to write game file", goerr.V("path", path))
		}
		logger.Info("Game file restored", "file", rel)
	}
	return nil
}
