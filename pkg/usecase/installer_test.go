package usecase_test

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/interfaces"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/interfaces/mocks"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/usecase"
)

const (
	testMetamodName = "mmsource-2.0.0-git1313-windows.zip"
	testFGD         = "@PointClass base(Targetname) = kz_startzone []\n"
)

var testSources = model.Sources{
	MetamodDropURL:  "https://mm.example/drop/",
	MappingAPIURL:   "https://raw.example/csgo_internal.fgd",
	GameTrackingURL: "https://raw.example/GameTracking-CS2",
	CS2KZ:           model.Repository{Owner: "KZGlobalTeam", Repo: "cs2kz-metamod", Asset: "cs2kz-windows-master.zip"},
	Source2Viewer:   model.Repository{Owner: "ValveResourceFormat", Repo: "ValveResourceFormat", Asset: "Source2Viewer.exe"},
	BSPSourceURL:    "https://bsp.example/bspsrc-windows.zip",
}

func fgdHash() string {
	sum := md5.Sum([]byte(testFGD))
	return hex.EncodeToString(sum[:])
}

type upstream struct {
	fetcher *mocks.FetcherMock
	github  *mocks.GitHubClientMock
	tag     string
}

func newUpstream(t *testing.T) *upstream {
	u := &upstream{tag: "v2.4.0"}
	metamodZip := zipBytes(t, map[string]string{"addons/metamod/metaplugins.ini": "; plugins\n"})
	cs2kzZip := zipBytes(t, map[string]string{"addons/cs2kz/bin/win64/cs2kz.dll": "MZ"})
	bspZip := zipBytes(t, map[string]string{"bspsrc.bat": "@echo off\n", "bin/java.exe": "MZ"})

	u.fetcher = &mocks.FetcherMock{
		FetchFunc: func(ctx context.Context, url string) ([]byte, error) {
			switch url {
			case "https://mm.example/drop/mmsource-latest-windows":
				return []byte(testMetamodName + "\n"), nil
			case "https://mm.example/drop/" + testMetamodName:
				return metamodZip, nil
			case testSources.MappingAPIURL:
				return []byte(testFGD), nil
			case testSources.BSPSourceURL:
				return bspZip, nil
			}
			return nil, errors.New("not found: " + url)
		},
	}
	u.github = &mocks.GitHubClientMock{
		LatestReleaseFunc: func(ctx context.Context, owner, repo string) (*model.Release, error) {
			switch repo {
			case "cs2kz-metamod":
				return &model.Release{Tag: u.tag, Assets: []model.ReleaseAsset{
					{ID: 1, Name: "cs2kz-linux-master.tar.gz"},
					{ID: 2, Name: "cs2kz-windows-master.zip"},
				}}, nil
			case "ValveResourceFormat":
				return &model.Release{Tag: "13.0", Assets: []model.ReleaseAsset{
					{ID: 3, Name: "Decompiler-windows-x64.zip"},
					{ID: 4, Name: "Source2Viewer.exe"},
				}}, nil
			}
			return nil, errors.New("unknown repo")
		},
		DownloadAssetFunc: func(ctx context.Context, owner, repo string, asset model.ReleaseAsset) ([]byte, error) {
			switch asset.ID {
			case 2:
				return cs2kzZip, nil
			case 4:
				return []byte("MZ-viewer"), nil
			}
			return nil, errors.New("unexpected asset")
		},
	}
	return u
}

func newTestInstaller(t *testing.T, u *upstream, versions *mocks.VersionStoreMock, settings model.Settings, opts ...usecase.InstallerOption) (interfaces.InstallerUseCase, string) {
	dataDir := t.TempDir()
	uc := usecase.NewInstaller(usecase.InstallerDeps{
		GitHub:   u.github,
		Fetcher:  u.fetcher,
		Runner:   &mocks.RunnerMock{StartFunc: func(ctx context.Context, cmd model.Command) error { return nil }},
		Versions: versions,
		Settings: settingsStore(settings),
		Files:    usecase.NewGameFiles(u.fetcher, testSources.GameTrackingURL),
		Sources:  testSources,
		DataDir:  dataDir,
	}, opts...)
	return uc, dataDir
}

func TestInstaller_Setup(t *testing.T) {
	ctx := context.Background()
	install := newInstall(t)
	u := newUpstream(t)
	versions, current := versionStore(nil)
	uc, _ := newTestInstaller(t, u, versions, model.DefaultSettings())

	needed, err := uc.CheckSetupNeeded(ctx, install)
	gt.NoError(t, err)
	gt.True(t, needed)

	gt.NoError(t, uc.RunSetup(ctx, install))

	gt.True(t, fileExists(filepath.Join(install.MetamodDir(), "metaplugins.ini")))
	gt.True(t, fileExists(filepath.Join(install.CS2KZDir(), "bin", "win64", "cs2kz.dll")))
	gt.Value(t, readTestFile(t, install.MappingAPIFGD())).Equal(testFGD)
	gt.Value(t, current()).Equal(model.Versions{
		model.VersionMetamod:    testMetamodName,
		model.VersionCS2KZ:      "v2.4.0",
		model.VersionMappingAPI: fgdHash(),
	})

	t.Run("up to date", func(t *testing.T) {
		needed, err := uc.CheckSetupNeeded(ctx, install)
		gt.NoError(t, err)
		gt.False(t, needed)
	})

	t.Run("new CS2KZ release", func(t *testing.T) {
		u.tag = "v2.5.0"
		defer func() { u.tag = "v2.4.0" }()
		needed, err := uc.CheckSetupNeeded(ctx, install)
		gt.NoError(t, err)
		gt.True(t, needed)
	})

	t.Run("unreachable sources do not force setup", func(t *testing.T) {
		offline := newUpstream(t)
		offline.fetcher.FetchFunc = func(ctx context.Context, url string) ([]byte, error) {
			return nil, errors.New("offline")
		}
		offline.github.LatestReleaseFunc = func(ctx context.Context, owner, repo string) (*model.Release, error) {
			return nil, errors.New("offline")
		}
		uc, _ := newTestInstaller(t, offline, versions, model.DefaultSettings())
		needed, err := uc.CheckSetupNeeded(ctx, install)
		gt.NoError(t, err)
		gt.False(t, needed)
	})
}

func TestInstaller_SetupKeepsDisabledComponents(t *testing.T) {
	ctx := context.Background()
	install := newInstall(t)
	u := newUpstream(t)
	versions, current := versionStore(model.Versions{model.VersionMetamod: "mmsource-1.12"})

	settings := model.DefaultSettings()
	settings.AutoUpdateCS2KZ = false
	uc, _ := newTestInstaller(t, u, versions, settings, usecase.WithoutMetamodUpdate())

	gt.NoError(t, uc.RunSetup(ctx, install))

	gt.A(t, u.fetcher.FetchCalls()).Length(0)
	gt.A(t, u.github.LatestReleaseCalls()).Length(0)
	gt.Value(t, current()).Equal(model.Versions{
		model.VersionMetamod:    "mmsource-1.12",
		model.VersionCS2KZ:      model.UnknownVersion,
		model.VersionMappingAPI: model.UnknownVersion,
	})
}

func TestInstaller_SetupCopiesToolsAssets(t *testing.T) {
	ctx := context.Background()
	install := newInstall(t)
	writeTestFile(t, install.AssetInfoBin(), "asset-info")
	versions, _ := versionStore(nil)
	uc, _ := newTestInstaller(t, newUpstream(t), versions, model.DefaultSettings())

	gt.NoError(t, uc.RunSetup(ctx, install))
	gt.Value(t, readTestFile(t, filepath.Join(install.MetamodDir(), "readonly_tools_asset_info.bin"))).Equal("asset-info")
	gt.True(t, fileExists(install.MetamodContentDir()))
}

func TestInstaller_Source2Viewer(t *testing.T) {
	ctx := context.Background()
	u := newUpstream(t)
	versions, current := versionStore(nil)
	uc, dataDir := newTestInstaller(t, u, versions, model.DefaultSettings())

	path, err := uc.EnsureSource2Viewer(ctx)
	gt.NoError(t, err)
	gt.Value(t, path).Equal(filepath.Join(dataDir, usecase.Source2ViewerExe))
	gt.Value(t, readTestFile(t, path)).Equal("MZ-viewer")
	gt.Value(t, current()[model.VersionSource2Viewer]).Equal("13.0")

	_, err = uc.EnsureSource2Viewer(ctx)
	gt.NoError(t, err)
	gt.A(t, u.github.DownloadAssetCalls()).Length(1)

	t.Run("installed build survives failed check", func(t *testing.T) {
		u.github.LatestReleaseFunc = func(ctx context.Context, owner, repo string) (*model.Release, error) {
			return nil, errors.New("rate limited")
		}
		got, err := uc.EnsureSource2Viewer(ctx)
		gt.NoError(t, err)
		gt.Value(t, got).Equal(path)
	})
}

func TestInstaller_Source2ViewerCustomPath(t *testing.T) {
	ctx := context.Background()
	custom := filepath.Join(t.TempDir(), "viewer.exe")
	writeTestFile(t, custom, "MZ")

	settings := model.DefaultSettings()
	settings.Source2ViewerPath = custom
	versions, _ := versionStore(nil)
	u := newUpstream(t)
	uc, _ := newTestInstaller(t, u, versions, settings)

	path, err := uc.EnsureSource2Viewer(ctx)
	gt.NoError(t, err)
	gt.Value(t, path).Equal(custom)
	gt.A(t, u.github.LatestReleaseCalls()).Length(0)

	settings.Source2ViewerPath = custom + ".missing"
	uc, _ = newTestInstaller(t, u, versions, settings)
	_, err = uc.EnsureSource2Viewer(ctx)
	gt.Error(t, err)
}

func TestInstaller_BSPSource(t *testing.T) {
	ctx := context.Background()
	u := newUpstream(t)
	versions, _ := versionStore(nil)
	uc, dataDir := newTestInstaller(t, u, versions, model.DefaultSettings())

	dir, err := uc.EnsureBSPSource(ctx)
	gt.NoError(t, err)
	gt.Value(t, dir).Equal(filepath.Join(dataDir, "bspsrc"))
	gt.True(t, fileExists(filepath.Join(dir, "bin", "java.exe")))

	_, err = uc.EnsureBSPSource(ctx)
	gt.NoError(t, err)
	n := 0
	for _, c := range u.fetcher.FetchCalls() {
		if strings.HasSuffix(c.Url, ".zip") {
			n++
		}
	}
	gt.Value(t, n).Equal(1)
}
