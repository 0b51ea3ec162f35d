package usecase_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/infra/store"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/usecase"
)

func TestMaintenance(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (string, *usecase.Maintenance, func() model.Versions) {
		dir := t.TempDir()
		for _, name := range []string{
			usecase.Source2ViewerExe,
			usecase.Source2ViewerConfig,
			store.SettingsFileName,
			"cs2kz_versions.txt",
			"bspsrc/bspsrc.bat",
		} {
			writeTestFile(t, filepath.Join(dir, name), "x")
		}
		versions, current := versionStore(model.Versions{model.VersionCS2KZ: "v1"})
		return dir, usecase.NewMaintenance(dir, versions, store.NewSettingsFile(dir)), current
	}

	t.Run("clear all keeps Source2Viewer", func(t *testing.T) {
		dir, uc, _ := setup(t)
		n, err := uc.ClearAll(ctx)
		gt.NoError(t, err)
		gt.Value(t, n).Equal(3)
		gt.True(t, fileExists(filepath.Join(dir, usecase.Source2ViewerExe)))
		gt.True(t, fileExists(filepath.Join(dir, usecase.Source2ViewerConfig)))
		gt.False(t, fileExists(filepath.Join(dir, "bspsrc")))
		gt.False(t, fileExists(filepath.Join(dir, store.SettingsFileName)))
	})

	t.Run("remove Source2Viewer", func(t *testing.T) {
		dir, uc, _ := setup(t)
		n, err := uc.RemoveSource2Viewer(ctx)
		gt.NoError(t, err)
		gt.Value(t, n).Equal(2)
		gt.False(t, fileExists(filepath.Join(dir, usecase.Source2ViewerExe)))

		n, err = uc.RemoveSource2Viewer(ctx)
		gt.NoError(t, err)
		gt.Value(t, n).Equal(0)
	})

	t.Run("clear versions", func(t *testing.T) {
		_, uc, current := setup(t)
		gt.NoError(t, uc.ClearVersions(ctx))
		gt.Value(t, len(current())).Equal(0)
	})

	t.Run("clear settings writes defaults", func(t *testing.T) {
		dir, uc, _ := setup(t)
		gt.NoError(t, uc.ClearSettings(ctx))
		s, err := store.NewSettingsFile(dir).Load(ctx)
		gt.NoError(t, err)
		gt.Value(t, s).Equal(model.DefaultSettings())
		gt.String(t, readTestFile(t, filepath.Join(dir, store.SettingsFileName))).Contains(`"theme": "dracula"`)
	})
}
