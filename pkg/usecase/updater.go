package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/interfaces"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/infra/store"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/logging"
)

const (
	// UpdateCheckInterval throttles release lookups
	UpdateCheckInterval = 5 * time.Minute

	updateDirName   = "update"
	updateExeName   = "CS2KZ-Mapping-Tools-new.exe"
	updateBatchName = "update.bat"
)

// UpdaterDeps are the collaborators of the self updater
type UpdaterDeps struct {
	GitHub  interfaces.GitHubClient
	Runner  interfaces.Runner
	Repo    model.Repository
	DataDir string

	// Executable is the path of the running binary. Its modification time
	// stands in for the installed version.
	Executable string
}

type updater struct {
	UpdaterDeps
	interval time.Duration

	mu        sync.Mutex
	lastCheck time.Time
	last      *model.Update
	lastErr   error
}

// UpdaterOption configures the updater
type UpdaterOption func(*updater)

// WithCheckInterval overrides UpdateCheckInterval
func WithCheckInterval(d time.Duration) UpdaterOption {
	return func(uc *updater) { uc.interval = d }
}

// NewUpdater creates the self update use case
func NewUpdater(deps UpdaterDeps, opts ...UpdaterOption) interfaces.UpdaterUseCase {
	uc := &updater{UpdaterDeps: deps, interval: UpdateCheckInterval}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *updater) isUpdateAsset(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".exe") && strings.Contains(name, uc.Repo.Asset)
}

// Check returns the available update or model.ErrNoUpdate. Calls within the
// check interval reuse the previous answer.
func (uc *updater) Check(ctx context.Context) (*model.Update, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.lastCheck.IsZero() && time.Since(uc.lastCheck) < uc.interval {
		return uc.last, uc.lastErr
	}

	update, err := uc.check(ctx)
	uc.lastCheck = time.Now()
	uc.last, uc.lastErr = update, err
	return update, err
}

func (uc *updater) check(ctx context.Context) (*model.Update, error) {
	st, err := os.Stat(uc.Executable)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to stat executable", goerr.V("path", uc.Executable))
	}

	release, err := uc.GitHub.LatestRelease(ctx, uc.Repo.Owner, uc.Repo.Repo)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Debug("Checked for update",
		"tag", release.Tag,
		"published_at", release.PublishedAt,
		"installed", st.ModTime(),
	)
	if !release.PublishedAt.After(st.ModTime()) {
		return nil, model.ErrNoUpdate
	}

	asset, err := findAsset(release, uc.isUpdateAsset)
	if errors.Is(err, model.ErrAssetNotFound) {
		return nil, model.ErrNoUpdate
	}
	if err != nil {
		return nil, err
	}
	return &model.Update{Tag: release.Tag, Asset: asset}, nil
}

// updateScript waits for the running binary to exit, swaps it for the
// downloaded one, starts it and deletes itself
func updateScript(newExe, current string) string {
	return strings.Join([]string{
		"@echo off",
		"echo Updating...",
		"timeout /t 2 /nobreak > nul",
		fmt.Sprintf(`move /y "%s" "%s"`, newExe, current),
		fmt.Sprintf(`start "" "%s"`, current),
		`del "%~f0"`,
		"",
	}, "\r\n")
}

// Apply downloads update, clears the data directory and starts the swap
// script. The caller exits right after so the script can replace the binary.
func (uc *updater) Apply(ctx context.Context, update *model.Update) error {
	logger := logging.From(ctx)
	if update == nil {
		return model.ErrNoUpdate
	}

	logger.Info("Downloading update", "tag", update.Tag, "asset", update.Asset.Name)
	data, err := uc.GitHub.DownloadAsset(ctx, uc.Repo.Owner, uc.Repo.Repo, update.Asset)
	if err != nil {
		return err
	}

	n, err := clearDir(ctx, uc.DataDir, []string{
		store.SettingsFileName,
		Source2ViewerExe,
		Source2ViewerConfig,
		updateDirName,
	})
	if err != nil {
		return err
	}
	logger.Debug("Cleared data directory for update", "removed", n)

	dir := filepath.Join(uc.DataDir, updateDirName)
	newExe := filepath.Join(dir, updateExeName)
	if err := writeFile(newExe, string(data)); err != nil {
		return err
	}

	script := filepath.Join(dir, updateBatchName)
	if err := writeFile(script, updateScript(newExe, uc.Executable)); err != nil {
		return err
	}

	if err := uc.Runner.Start(ctx, model.Command{
		Path: "cmd",
		Args: []string{"/c", script},
		Dir:  dir,
	}); err != nil {
		return err
	}

	logger.Info("Update staged, restart pending", "tag", update.Tag)
	return nil
}
