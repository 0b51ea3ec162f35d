package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/cli/config"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/interfaces"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/infra/github"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/infra/process"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/infra/steam"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/infra/store"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/infra/web"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/usecase"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/logging"
)

// toolkit holds the infrastructure shared by every command
type toolkit struct {
	dataDir string
	tools   *model.ToolsConfig

	settings  *store.SettingsFile
	versions  *store.VersionFile
	locator   *steam.Locator
	runner    *process.Runner
	inspector *process.Inspector
	github    *github.Client
	fetcher   *web.Fetcher
}

func newToolkit(ctx context.Context, paths *config.Paths, gh *config.GitHub) (*toolkit, error) {
	dataDir, err := paths.EnsureDataDir()
	if err != nil {
		return nil, err
	}
	tools, err := paths.LoadTools()
	if err != nil {
		return nil, err
	}

	var ghOpts []github.Option
	if gh.Token != "" {
		ghOpts = append(ghOpts, github.WithToken(gh.Token))
	}
	if gh.BaseURL != "" {
		ghOpts = append(ghOpts, github.WithBaseURL(gh.BaseURL))
	}
	ghClient, err := github.NewClient(ghOpts...)
	if err != nil {
		return nil, err
	}

	var steamOpts []steam.Option
	if tools.SteamPath != "" {
		steamOpts = append(steamOpts, steam.WithSteamPath(tools.SteamPath))
	}

	logging.From(ctx).Debug("Toolkit ready", "data_dir", dataDir, "steam_path", tools.SteamPath)

	return &toolkit{
		dataDir:   dataDir,
		tools:     tools,
		settings:  store.NewSettingsFile(dataDir),
		versions:  store.NewVersionFile(dataDir),
		locator:   steam.New(steamOpts...),
		runner:    process.NewRunner(),
		inspector: process.NewInspector(),
		github:    ghClient,
		fetcher:   web.NewFetcher(nil),
	}, nil
}

func (t *toolkit) gameFiles() *usecase.GameFiles {
	return usecase.NewGameFiles(t.fetcher, t.tools.Sources.GameTrackingURL)
}

func (t *toolkit) installer(opts ...usecase.InstallerOption) interfaces.InstallerUseCase {
	return usecase.NewInstaller(usecase.InstallerDeps{
		GitHub:   t.github,
		Fetcher:  t.fetcher,
		Runner:   t.runner,
		Versions: t.versions,
		Settings: t.settings,
		Files:    t.gameFiles(),
		Sources:  t.tools.Sources,
		DataDir:  t.dataDir,
	}, opts...)
}

func (t *toolkit) watcher() *usecase.Watcher {
	return usecase.NewWatcher(t.inspector)
}

func (t *toolkit) launcher() interfaces.LauncherUseCase {
	return usecase.NewLauncher(usecase.LauncherDeps{
		Locator:      t.locator,
		Installer:    t.installer(),
		Runner:       t.runner,
		Files:        t.gameFiles(),
		Watcher:      t.watcher(),
		DedicatedMap: t.tools.DedicatedMap,
	})
}

func (t *toolkit) importer() interfaces.ImporterUseCase {
	return usecase.NewImporter(usecase.ImporterDeps{
		Locator:   t.locator,
		Installer: t.installer(),
		Runner:    t.runner,
	})
}

func (t *toolkit) updater() (interfaces.UpdaterUseCase, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve executable path")
	}
	return usecase.NewUpdater(usecase.UpdaterDeps{
		GitHub:     t.github,
		Runner:     t.runner,
		Repo:       t.tools.Sources.Self,
		DataDir:    t.dataDir,
		Executable: exe,
	}), nil
}

func (t *toolkit) assets() *usecase.AssetTools {
	return usecase.NewAssetTools(t.locator, t.runner)
}

func (t *toolkit) maintenance() *usecase.Maintenance {
	return usecase.NewMaintenance(t.dataDir, t.versions, t.settings)
}

func (t *toolkit) settingsUC() *usecase.Settings {
	return usecase.NewSettings(t.settings)
}
