package usecase

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/interfaces"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/infra/archive"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/logging"
)

const (
	metamodLatestFile = "mmsource-latest-windows"
	bspSourceDirName  = "bspsrc"
	bspSourceBatch    = "bspsrc.bat"
)

// InstallerDeps are the collaborators of the installer
type InstallerDeps struct {
	GitHub   interfaces.GitHubClient
	Fetcher  interfaces.Fetcher
	Runner   interfaces.Runner
	Versions interfaces.VersionStore
	Settings interfaces.SettingsStore
	Files    *GameFiles
	Sources  model.Sources
	DataDir  string
}

type installer struct {
	InstallerDeps
	skipMetamod bool
	skipCS2KZ   bool
	skipS2V     bool
}

// InstallerOption adjusts what the installer updates
type InstallerOption func(*installer)

// WithoutMetamodUpdate keeps the installed Metamod regardless of settings
func WithoutMetamodUpdate() InstallerOption {
	return func(i *installer) { i.skipMetamod = true }
}

// WithoutCS2KZUpdate keeps the installed CS2KZ plugin and mapping API regardless of settings
func WithoutCS2KZUpdate() InstallerOption {
	return func(i *installer) { i.skipCS2KZ = true }
}

// WithoutSource2ViewerUpdate launches the cached Source2Viewer without checking for a new build
func WithoutSource2ViewerUpdate() InstallerOption {
	return func(i *installer) { i.skipS2V = true }
}

// NewInstaller creates the installer use case
func NewInstaller(deps InstallerDeps, opts ...InstallerOption) interfaces.InstallerUseCase {
	i := &installer{InstallerDeps: deps}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

type updatePolicy struct {
	metamod bool
	cs2kz   bool
	s2v     bool
}

func (uc *installer) policy(ctx context.Context) updatePolicy {
	s, err := uc.Settings.Load(ctx)
	if err != nil {
		logging.From(ctx).Warn("Failed to load settings, updating everything", "error", err)
		s = model.DefaultSettings()
	}
	return updatePolicy{
		metamod: s.AutoUpdateMetamod && !uc.skipMetamod,
		cs2kz:   s.AutoUpdateCS2KZ && !uc.skipCS2KZ,
		s2v:     s.AutoUpdateSource2Viewer && !uc.skipS2V,
	}
}

// remoteVersions holds the latest upstream versions. Empty means unknown.
type remoteVersions struct {
	metamod    string
	cs2kz      string
	mappingAPI string
}

func (uc *installer) latestMetamod(ctx context.Context) (string, error) {
	body, err := uc.Fetcher.Fetch(ctx, strings.TrimSuffix(uc.Sources.MetamodDropURL, "/")+"/"+metamodLatestFile)
	if err != nil {
		return "", goerr.Wrap(err, "failed to get latest Metamod version")
	}
	name := strings.TrimSpace(string(body))
	if name == "" {
		return "", goerr.New("empty Metamod version")
	}
	return name, nil
}

func (uc *installer) latestCS2KZ(ctx context.Context) (*model.Release, error) {
	repo := uc.Sources.CS2KZ
	release, err := uc.GitHub.LatestRelease(ctx, repo.Owner, repo.Repo)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get latest CS2KZ release")
	}
	return release, nil
}

func (uc *installer) mappingAPI(ctx context.Context) ([]byte, string, error) {
	body, err := uc.Fetcher.Fetch(ctx, uc.Sources.MappingAPIURL)
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to download mapping API FGD")
	}
	sum := md5.Sum(body)
	return body, hex.EncodeToString(sum[:]), nil
}

// lookupVersions queries the enabled upstream versions concurrently. Unreachable
// sources leave their field empty.
func (uc *installer) lookupVersions(ctx context.Context, p updatePolicy) remoteVersions {
	logger := logging.From(ctx)
	var rv remoteVersions
	var eg errgroup.Group

	if p.metamod {
		eg.Go(func() error {
			v, err := uc.latestMetamod(ctx)
			if err != nil {
				logger.Warn("Metamod version unavailable", "error", err)
				return nil
			}
			rv.metamod = v
			return nil
		})
	}
	if p.cs2kz {
		eg.Go(func() error {
			release, err := uc.latestCS2KZ(ctx)
			if err != nil {
				logger.Warn("CS2KZ version unavailable", "error", err)
				return nil
			}
			rv.cs2kz = release.Tag
			return nil
		})
		eg.Go(func() error {
			_, hash, err := uc.mappingAPI(ctx)
			if err != nil {
				logger.Warn("Mapping API version unavailable", "error", err)
				return nil
			}
			rv.mappingAPI = hash
			return nil
		})
	}
	_ = eg.Wait()
	return rv
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// CheckSetupNeeded reports whether Metamod or CS2KZ is missing or outdated.
// A source that cannot be reached is not a reason to reinstall.
func (uc *installer) CheckSetupNeeded(ctx context.Context, install model.CS2Install) (bool, error) {
	logger := logging.From(ctx)
	if !exists(install.MetamodDir()) || !exists(install.CS2KZDir()) {
		logger.Info("Metamod or CS2KZ not installed")
		return true, nil
	}

	cached, err := uc.Versions.Load()
	if err != nil {
		return false, err
	}

	p := uc.policy(ctx)
	rv := uc.lookupVersions(ctx, p)

	outdated := func(key, remote string) bool {
		if remote == "" || cached[key] == remote {
			return false
		}
		logger.Info("Component outdated", "component", key, "installed", cached[key], "latest", remote)
		return true
	}

	if p.metamod && outdated(model.VersionMetamod, rv.metamod) {
		return true, nil
	}
	if p.cs2kz && (outdated(model.VersionCS2KZ, rv.cs2kz) || outdated(model.VersionMappingAPI, rv.mappingAPI)) {
		return true, nil
	}
	return false, nil
}

func (uc *installer) installMetamod(ctx context.Context, install model.CS2Install) (string, error) {
	name, err := uc.latestMetamod(ctx)
	if err != nil {
		return "", err
	}
	url := strings.TrimSuffix(uc.Sources.MetamodDropURL, "/") + "/" + name
	data, err := uc.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", goerr.Wrap(err, "failed to download Metamod", goerr.V("url", url))
	}
	result, err := archive.ExtractZip(ctx, data, install.CSGODir())
	if err != nil {
		return "", goerr.Wrap(err, "failed to extract Metamod")
	}
	logging.From(ctx).Info("Metamod installed", "version", name, "files", len(result.Files))
	return name, nil
}

func findAsset(release *model.Release, match func(name string) bool) (model.ReleaseAsset, error) {
	for _, a := range release.Assets {
		if match(a.Name) {
			return a, nil
		}
	}
	return model.ReleaseAsset{}, goerr.Wrap(model.ErrAssetNotFound, "no matching asset in release", goerr.V("tag", release.Tag))
}

func (uc *installer) installCS2KZ(ctx context.Context, install model.CS2Install) (tag, apiHash string, err error) {
	repo := uc.Sources.CS2KZ
	release, err := uc.latestCS2KZ(ctx)
	if err != nil {
		return "", "", err
	}
	asset, err := findAsset(release, func(name string) bool { return name == repo.Asset })
	if err != nil {
		return "", "", goerr.Wrap(err, "CS2KZ asset missing", goerr.V("asset", repo.Asset))
	}
	data, err := uc.GitHub.DownloadAsset(ctx, repo.Owner, repo.Repo, asset)
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to download CS2KZ")
	}
	if _, err := archive.ExtractZip(ctx, data, install.CSGODir()); err != nil {
		return "", "", goerr.Wrap(err, "failed to extract CS2KZ")
	}

	fgd, hash, err := uc.mappingAPI(ctx)
	if err != nil {
		return "", "", err
	}
	if err := os.MkdirAll(install.CoreDir(), 0755); err != nil {
		return "", "", goerr.Wrap(err, "failed to create csgo_core", goerr.V("path", install.CoreDir()))
	}
	if err := os.WriteFile(install.MappingAPIFGD(), fgd, 0644); err != nil {
		return "", "", goerr.Wrap(err, "failed to write mapping API FGD", goerr.V("path", install.MappingAPIFGD()))
	}

	logging.From(ctx).Info("CS2KZ installed", "version", release.Tag, "mapping_api", hash)
	return release.Tag, hash, nil
}

// setupToolsAssets copies the tools asset info for metamod and creates the
// content folder Hammer expects. Installs without the workshop tools fail here.
func setupToolsAssets(install model.CS2Install) error {
	if err := copyFile(install.AssetInfoBin(), filepath.Join(install.MetamodDir(), filepath.Base(install.AssetInfoBin()))); err != nil {
		return err
	}
	if err := os.MkdirAll(install.MetamodContentDir(), 0755); err != nil {
		return goerr.Wrap(err, "failed to create metamod content dir")
	}
	return nil
}

// RunSetup installs the enabled components and records their versions.
// Disabled components keep their cached version.
func (uc *installer) RunSetup(ctx context.Context, install model.CS2Install) error {
	logger := logging.From(ctx)
	p := uc.policy(ctx)

	cached, err := uc.Versions.Load()
	if err != nil {
		return err
	}
	keep := func(key string) string {
		if v, ok := cached[key]; ok {
			return v
		}
		return model.UnknownVersion
	}
	orUnknown := func(v string) string {
		if v == "" {
			return model.UnknownVersion
		}
		return v
	}

	next := model.Versions{
		model.VersionMetamod:    keep(model.VersionMetamod),
		model.VersionCS2KZ:      keep(model.VersionCS2KZ),
		model.VersionMappingAPI: keep(model.VersionMappingAPI),
	}

	if p.metamod {
		name, err := uc.installMetamod(ctx, install)
		if err != nil {
			return err
		}
		next[model.VersionMetamod] = orUnknown(name)
	} else {
		logger.Info("Skipping Metamod update")
	}

	if p.cs2kz {
		tag, hash, err := uc.installCS2KZ(ctx, install)
		if err != nil {
			return err
		}
		next[model.VersionCS2KZ] = orUnknown(tag)
		next[model.VersionMappingAPI] = orUnknown(hash)
	} else {
		logger.Info("Skipping CS2KZ update")
	}

	if err := uc.Files.SetTimeLimit(ctx, install); err != nil {
		logger.Warn("Failed to update CS2KZ time limit", "error", err)
	}

	if err := setupToolsAssets(install); err != nil {
		logger.Warn("Asset bin or content path not set up; the workshop tools are probably not installed", "error", err)
	}

	if err := uc.Versions.Save(next); err != nil {
		return err
	}
	logger.Info("Setup complete")
	return nil
}

func (uc *installer) source2ViewerPath() string {
	return filepath.Join(uc.DataDir, Source2ViewerExe)
}

// EnsureSource2Viewer returns the Source2Viewer executable, downloading the
// latest build when missing or outdated. A custom source2viewer_path wins.
func (uc *installer) EnsureSource2Viewer(ctx context.Context) (string, error) {
	logger := logging.From(ctx)

	if s, err := uc.Settings.Load(ctx); err == nil && s.Source2ViewerPath != "" {
		if !exists(s.Source2ViewerPath) {
			return "", goerr.New("configured Source2Viewer not found", goerr.V("path", s.Source2ViewerPath))
		}
		return s.Source2ViewerPath, nil
	}

	path := uc.source2ViewerPath()
	installed := exists(path)
	if installed && !uc.policy(ctx).s2v {
		return path, nil
	}

	repo := uc.Sources.Source2Viewer
	release, err := uc.GitHub.LatestRelease(ctx, repo.Owner, repo.Repo)
	if err != nil {
		if installed {
			logger.Warn("Source2Viewer update check failed, using installed build", "error", err)
			return path, nil
		}
		return "", goerr.Wrap(err, "failed to get latest Source2Viewer release")
	}

	cached, err := uc.Versions.Load()
	if err != nil {
		return "", err
	}
	if installed && cached[model.VersionSource2Viewer] == release.Tag {
		logger.Debug("Source2Viewer up to date", "version", release.Tag)
		return path, nil
	}

	asset, err := findAsset(release, func(name string) bool { return strings.EqualFold(name, repo.Asset) })
	if err != nil {
		return "", goerr.Wrap(err, "Source2Viewer asset missing", goerr.V("asset", repo.Asset))
	}
	logger.Info("Downloading Source2Viewer", "version", release.Tag, "asset", asset.Name)
	data, err := uc.GitHub.DownloadAsset(ctx, repo.Owner, repo.Repo, asset)
	if err != nil {
		return "", goerr.Wrap(err, "failed to download Source2Viewer")
	}

	if strings.EqualFold(filepath.Ext(asset.Name), ".zip") {
		if _, err := archive.ExtractZip(ctx, data, uc.DataDir); err != nil {
			return "", goerr.Wrap(err, "failed to extract Source2Viewer")
		}
		if !exists(path) {
			return "", goerr.New("Source2Viewer archive has no executable", goerr.V("asset", asset.Name))
		}
	} else if err := os.WriteFile(path, data, 0755); err != nil {
		return "", goerr.Wrap(err, "failed to write Source2Viewer", goerr.V("path", path))
	}

	if err := uc.Versions.Save(model.Versions{model.VersionSource2Viewer: release.Tag}); err != nil {
		return "", err
	}
	return path, nil
}

// LaunchSource2Viewer ensures Source2Viewer and starts it detached
func (uc *installer) LaunchSource2Viewer(ctx context.Context) error {
	path, err := uc.EnsureSource2Viewer(ctx)
	if err != nil {
		return err
	}
	if err := uc.Runner.Start(ctx, model.Command{Path: path, Dir: filepath.Dir(path)}); err != nil {
		return goerr.Wrap(err, "failed to start Source2Viewer", goerr.V("path", path))
	}
	logging.From(ctx).Info("Source2Viewer started", "path", path)
	return nil
}

// EnsureBSPSource returns the BSPSource directory, downloading it on first use
func (uc *installer) EnsureBSPSource(ctx context.Context) (string, error) {
	dir := filepath.Join(uc.DataDir, bspSourceDirName)
	if exists(filepath.Join(dir, bspSourceBatch)) {
		return dir, nil
	}

	logging.From(ctx).Info("Downloading BSPSource", "url", uc.Sources.BSPSourceURL)
	data, err := uc.Fetcher.Fetch(ctx, uc.Sources.BSPSourceURL)
	if err != nil {
		return "", goerr.Wrap(err, "failed to download BSPSource")
	}
	if _, err := archive.ExtractZip(ctx, data, dir); err != nil {
		return "", goerr.Wrap(err, "failed to extract BSPSource")
	}
	if !exists(filepath.Join(dir, bspSourceBatch)) {
		return "", goerr.New("BSPSource archive has an unexpected layout", goerr.V("dir", dir))
	}
	return dir, nil
}
