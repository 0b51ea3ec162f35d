package usecase_test

import (
	"archive/zip"
	"bytes"
	"context"
	"maps"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/interfaces/mocks"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
)

const testGameInfo = "\"GameInfo\"\r\n{\r\n\tFileSystem\r\n\t{\r\n\t\tSearchPaths\r\n\t\t{\r\n\t\t\tGame\tcsgo\r\n\t\t\tGame\tcsgo_imported\r\n\t\t}\r\n\t}\r\n\tNetworkSettings\r\n\t{\r\n\t\t// Bandwidth control default: 300,000 Bps\r\n\t\t\"default_rate\" \"300000\"\r\n\t}\r\n\tGameInstructor\r\n\t{\r\n\t}\r\n}\r\n"

const testCoreGameInfo = "\"GameInfo\"\r\n{\r\n\tCustomNavBuild\r\n\t{\r\n\t\tA 1\r\n\t\tB 2\r\n\t}\r\n\tAfter 1\r\n}\r\n"

// newInstall lays out the parts of a CS2 install the use cases touch
func newInstall(t *testing.T) model.CS2Install {
	t.Helper()
	install := model.CS2Install{Root: t.TempDir()}
	writeTestFile(t, install.GameInfo(), testGameInfo)
	writeTestFile(t, install.CoreGameInfo(), testCoreGameInfo)
	gt.NoError(t, os.MkdirAll(install.BinDir(), 0755))
	return install
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	gt.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	gt.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	raw, err := os.ReadFile(path)
	gt.NoError(t, err)
	return string(raw)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func zipBytes(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		gt.NoError(t, err)
		_, err = w.Write([]byte(content))
		gt.NoError(t, err)
	}
	gt.NoError(t, zw.Close())
	return buf.Bytes()
}

func locatorFor(install model.CS2Install) *mocks.CS2LocatorMock {
	return &mocks.CS2LocatorMock{
		LocateFunc: func(ctx context.Context) (model.CS2Install, error) { return install, nil },
	}
}

func settingsStore(s model.Settings) *mocks.SettingsStoreMock {
	var mu sync.Mutex
	return &mocks.SettingsStoreMock{
		LoadFunc: func(ctx context.Context) (model.Settings, error) {
			mu.Lock()
			defer mu.Unlock()
			return s, nil
		},
		SaveFunc: func(ctx context.Context, next model.Settings) error {
			mu.Lock()
			defer mu.Unlock()
			s = next
			return nil
		},
	}
}

// versionStore keeps versions in memory and merges on save like the file store
func versionStore(initial model.Versions) (*mocks.VersionStoreMock, func() model.Versions) {
	var mu sync.Mutex
	current := model.Versions{}
	maps.Copy(current, initial)

	store := &mocks.VersionStoreMock{
		LoadFunc: func() (model.Versions, error) {
			mu.Lock()
			defer mu.Unlock()
			return maps.Clone(current), nil
		},
		SaveFunc: func(v model.Versions) error {
			mu.Lock()
			defer mu.Unlock()
			maps.Copy(current, v)
			return nil
		},
		ClearFunc: func() error {
			mu.Lock()
			defer mu.Unlock()
			current = model.Versions{}
			return nil
		},
	}
	return store, func() model.Versions {
		mu.Lock()
		defer mu.Unlock()
		return maps.Clone(current)
	}
}
