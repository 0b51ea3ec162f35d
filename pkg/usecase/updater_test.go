package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/interfaces/mocks"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/infra/store"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/usecase"
)

var builtAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newExecutable(t *testing.T) string {
	exe := filepath.Join(t.TempDir(), "cs2kz.exe")
	writeTestFile(t, exe, "MZ-old")
	gt.NoError(t, os.Chtimes(exe, builtAt, builtAt))
	return exe
}

func releaseAt(published time.Time, assets ...string) *mocks.GitHubClientMock {
	release := &model.Release{Tag: "v1.8.0", PublishedAt: published}
	for i, name := range assets {
		release.Assets = append(release.Assets, model.ReleaseAsset{ID: int64(i + 1), Name: name})
	}
	return &mocks.GitHubClientMock{
		LatestReleaseFunc: func(ctx context.Context, owner, repo string) (*model.Release, error) {
			return release, nil
		},
		DownloadAssetFunc: func(ctx context.Context, owner, repo string, asset model.ReleaseAsset) ([]byte, error) {
			return []byte("MZ-new"), nil
		},
	}
}

var selfRepo = model.Repository{Owner: "jakkekz", Repo: "CS2KZ-Mapping-Tools", Asset: "CS2KZ-Mapping-Tools"}

func TestUpdater_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("newer release", func(t *testing.T) {
		gh := releaseAt(builtAt.Add(24*time.Hour), "source.zip", "CS2KZ-Mapping-Tools.exe")
		uc := usecase.NewUpdater(usecase.UpdaterDeps{GitHub: gh, Repo: selfRepo, Executable: newExecutable(t)})

		update, err := uc.Check(ctx)
		gt.NoError(t, err)
		gt.Value(t, update.Tag).Equal("v1.8.0")
		gt.Value(t, update.Asset.Name).Equal("CS2KZ-Mapping-Tools.exe")

		// throttled
		_, err = uc.Check(ctx)
		gt.NoError(t, err)
		gt.A(t, gh.LatestReleaseCalls()).Length(1)
	})

	t.Run("older release", func(t *testing.T) {
		gh := releaseAt(builtAt.Add(-time.Hour), "CS2KZ-Mapping-Tools.exe")
		uc := usecase.NewUpdater(usecase.UpdaterDeps{GitHub: gh, Repo: selfRepo, Executable: newExecutable(t)})
		_, err := uc.Check(ctx)
		gt.Error(t, err).Is(model.ErrNoUpdate)
	})

	t.Run("no executable asset", func(t *testing.T) {
		gh := releaseAt(builtAt.Add(time.Hour), "CS2KZ-Mapping-Tools.zip")
		uc := usecase.NewUpdater(usecase.UpdaterDeps{GitHub: gh, Repo: selfRepo, Executable: newExecutable(t)},
			usecase.WithCheckInterval(0))
		_, err := uc.Check(ctx)
		gt.Error(t, err).Is(model.ErrNoUpdate)
		_, err = uc.Check(ctx)
		gt.Error(t, err).Is(model.ErrNoUpdate)
		gt.A(t, gh.LatestReleaseCalls()).Length(2)
	})
}

func TestUpdater_Apply(t *testing.T) {
	ctx := context.Background()
	dataDir := t.TempDir()
	for _, name := range []string{store.SettingsFileName, usecase.Source2ViewerExe, "cs2kz_versions.txt", "bspsrc/bspsrc.bat"} {
		writeTestFile(t, filepath.Join(dataDir, name), "x")
	}

	exe := newExecutable(t)
	gh := releaseAt(builtAt.Add(time.Hour), "CS2KZ-Mapping-Tools.exe")
	runner := &mocks.RunnerMock{StartFunc: func(ctx context.Context, cmd model.Command) error { return nil }}
	uc := usecase.NewUpdater(usecase.UpdaterDeps{
		GitHub:     gh,
		Runner:     runner,
		Repo:       selfRepo,
		DataDir:    dataDir,
		Executable: exe,
	})

	update, err := uc.Check(ctx)
	gt.NoError(t, err)
	gt.NoError(t, uc.Apply(ctx, update))

	newExe := filepath.Join(dataDir, "update", "CS2KZ-Mapping-Tools-new.exe")
	gt.Value(t, readTestFile(t, newExe)).Equal("MZ-new")
	gt.True(t, fileExists(filepath.Join(dataDir, store.SettingsFileName)))
	gt.True(t, fileExists(filepath.Join(dataDir, usecase.Source2ViewerExe)))
	gt.False(t, fileExists(filepath.Join(dataDir, "cs2kz_versions.txt")))
	gt.False(t, fileExists(filepath.Join(dataDir, "bspsrc")))

	script := filepath.Join(dataDir, "update", "update.bat")
	bat := readTestFile(t, script)
	gt.String(t, bat).Contains(`move /y "` + newExe + `" "` + exe + `"` + "\r\n")
	gt.String(t, bat).Contains(`start "" "` + exe + `"`)
	gt.String(t, bat).Contains(`del "%~f0"`)

	starts := runner.StartCalls()
	gt.A(t, starts).Length(1)
	gt.Value(t, starts[0].Cmd.Path).Equal("cmd")
	gt.Value(t, starts[0].Cmd.Args).Equal([]string{"/c", script})

	gt.Error(t, uc.Apply(ctx, nil)).Is(model.ErrNoUpdate)
}
