package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/interfaces"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/keyvalues"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/vmf"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/logging"
)

// legacyPakMinSize is the size below which pak01_dir.vpk is a stub left by
// an incomplete CS:GO legacy download
const legacyPakMinSize = 1000

// ImporterDeps are the collaborators of the map importer
type ImporterDeps struct {
	Locator   interfaces.CS2Locator
	Installer interfaces.InstallerUseCase
	Runner    interfaces.Runner
}

type importer struct {
	ImporterDeps
	assetTimeout time.Duration
}

// ImporterOption configures the importer
type ImporterOption func(*importer)

// WithAssetTimeout bounds every single source1import or cs_mdl_import run
func WithAssetTimeout(d time.Duration) ImporterOption {
	return func(uc *importer) { uc.assetTimeout = d }
}

// NewImporter creates the map importer use case
func NewImporter(deps ImporterDeps, opts ...ImporterOption) interfaces.ImporterUseCase {
	uc := &importer{
		ImporterDeps: deps,
		assetTimeout: 5 * time.Minute,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// importRun holds the state of one Import call
type importRun struct {
	install    model.CS2Install
	req        model.ImportRequest
	vmfName    string // maps\<vmfName>.vmf below the legacy csgo folder
	mapName    string // name of the produced vmap and its prefabs
	contentDir string
	report     *model.ImportReport
}

func (r *importRun) source1Import(extra ...string) model.Command {
	args := append([]string{"-retail", "-nop4", "-nop4sync"}, extra...)
	return model.Command{
		Path: r.install.Source1Import(),
		Args: args,
		Dir:  r.install.BinDir(),
	}
}

// fileListImport imports every entry of an importfilelist. withContent adds
// -src1contentdir, needed for loose files and omitted so pak assets resolve.
func (r *importRun) fileListImport(list string, withContent bool) model.Command {
	args := []string{"-src1gameinfodir", r.install.LegacyDir()}
	if withContent {
		args = append(args, "-src1contentdir", r.install.LegacyDir())
	}
	args = append(args, "-s2addon", r.req.Addon, "-game", "csgo", "-usefilelist", list)
	return r.source1Import(args...)
}

func (r *importRun) materialImport(material string) model.Command {
	return r.source1Import(
		"-src1gameinfodir", r.install.LegacyDir(),
		"-src1contentdir", r.install.LegacyDir(),
		"-s2addon", r.req.Addon,
		"-game", "csgo",
		"materials/"+material+".vmt",
	)
}

func (r *importRun) modelImport(mdl string) model.Command {
	return model.Command{
		Path: r.install.ModelImport(),
		Args: []string{"-nop4", "-i", r.install.LegacyDir(), "-o", r.contentDir, mdl},
		Dir:  r.install.BinDir(),
	}
}

func (r *importRun) mapImport() model.Command {
	args := []string{}
	if r.req.UseBSP {
		args = append(args, "-usebsp")
	}
	if r.req.NoMergeInstances {
		args = append(args, "-usebsp_nomergeinstances")
	}
	args = append(args,
		"-src1gameinfodir", r.install.LegacyDir(),
		"-src1contentdir", r.install.LegacyDir(),
		"-s2addon", r.req.Addon,
		"-game", "csgo",
		`maps\`+r.vmfName+".vmf",
	)
	return r.source1Import(args...)
}

// run executes cmd and records a failure in the report. Only a cancelled
// context is returned as an error.
func (uc *importer) run(ctx context.Context, r *importRun, kind model.AssetKind, name string, cmd model.Command) (bool, error) {
	logger := logging.From(ctx)
	if cmd.Timeout == 0 {
		cmd.Timeout = uc.assetTimeout
	}

	_, err := uc.Runner.Run(ctx, cmd, func(line string) { logger.Debug(line, "asset", name) })
	if err == nil {
		r.report.Imported++
		return true, nil
	}
	if ctx.Err() != nil {
		return false, goerr.Wrap(ctx.Err(), "import cancelled", goerr.V("asset", name))
	}

	reason := err.Error()
	if errors.Is(err, context.DeadlineExceeded) {
		reason = "timed out"
	}
	logger.Warn("Asset import failed", "kind", kind, "asset", name, "reason", reason)
	r.report.AddFailure(kind, name, reason)
	return false, nil
}

// disableSignatures moves vpk.signatures aside so the import tools accept
// modified paks. The returned func puts it back.
func disableSignatures(ctx context.Context, install model.CS2Install) func() {
	sig := install.VPKSignatures()
	old := sig + ".old"
	if !exists(sig) {
		return func() {}
	}
	if err := os.Rename(sig, old); err != nil {
		logging.From(ctx).Warn("Failed to disable vpk.signatures", "path", sig, "error", err)
		return func() {}
	}
	return func() {
		if err := os.Rename(old, sig); err != nil {
			logging.From(ctx).Error("Failed to restore vpk.signatures", "path", sig, "error", err)
		}
	}
}

func checkLegacyPak(install model.CS2Install, report *model.ImportReport) error {
	st, err := os.Stat(install.LegacyPak())
	if err != nil {
		return goerr.Wrap(err, "CS:GO legacy files not found; install the csgo_legacy branch content",
			goerr.V("path", install.LegacyPak()))
	}
	if st.Size() < legacyPakMinSize {
		report.Warnings = append(report.Warnings, "pak01_dir.vpk looks incomplete; stock assets may fail to import")
	}
	return nil
}

// compileRefs maps importfilelist entries to the paths the imported files
// take in the addon content folder
func compileRefs(contentDir string, files []string) string {
	var sb strings.Builder
	for _, f := range files {
		f = strings.ReplaceAll(strings.ReplaceAll(f, ".vmt", ".vmat"), " ", "_")
		sb.WriteString(contentDir + `\` + strings.ReplaceAll(f, "/", `\`) + "\n")
	}
	return sb.String()
}

func readFileList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open file list", goerr.V("path", path))
	}
	defer func() { _ = f.Close() }()
	return keyvalues.ReadFileList(f)
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return goerr.Wrap(err, "failed to create directory", goerr.V("path", path))
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return goerr.Wrap(err, "failed to write file", goerr.V("path", path))
	}
	return nil
}

// Import decompiles a CS:GO BSP and converts it into a CS2 addon
func (uc *importer) Import(ctx context.Context, req model.ImportRequest) (*model.ImportReport, error) {
	started := time.Now()

	mapName := strings.TrimSuffix(filepath.Base(req.BSPPath), filepath.Ext(req.BSPPath))
	if mapName == "" || !strings.EqualFold(filepath.Ext(req.BSPPath), ".bsp") {
		return nil, goerr.New("not a BSP file", goerr.V("path", req.BSPPath))
	}
	if _, err := os.Stat(req.BSPPath); err != nil {
		return nil, goerr.Wrap(err, "BSP file not found", goerr.V("path", req.BSPPath))
	}
	if req.Addon == "" {
		req.Addon = mapName
	}

	report := &model.ImportReport{
		RunID:   uuid.NewString(),
		MapName: mapName,
		Addon:   req.Addon,
	}
	ctx = logging.With(ctx, logging.From(ctx).With("run_id", report.RunID, "map", mapName))
	logger := logging.From(ctx)

	install, err := uc.Locator.Locate(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkLegacyPak(install, report); err != nil {
		return nil, err
	}

	restore := disableSignatures(ctx, install)
	defer restore()

	r := &importRun{
		install:    install,
		req:        req,
		vmfName:    mapName,
		mapName:    mapName,
		contentDir: install.AddonContentDir(req.Addon),
		report:     report,
	}
	if err := os.MkdirAll(r.contentDir, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create addon content directory", goerr.V("path", r.contentDir))
	}

	vmfPath, err := uc.extractBSP(ctx, install, req.BSPPath, mapName, report)
	if err != nil {
		return report, err
	}

	f, err := os.Open(vmfPath)
	if err != nil {
		return report, goerr.Wrap(err, "failed to open VMF", goerr.V("path", vmfPath))
	}
	assets, err := vmf.ReadAssets(f)
	_ = f.Close()
	if err != nil {
		return report, err
	}
	report.Materials = len(assets.Materials)
	report.Models = len(assets.Models)
	logger.Info("Collected map assets", "materials", report.Materials, "models", report.Models)

	if n := fixMaterialCase(ctx, install, assets.Materials); n > 0 {
		logger.Info("Fixed material file name case", "count", n)
	}

	if !req.SkipDeps {
		if err := uc.importAssets(ctx, r, assets, vmfPath); err != nil {
			return report, err
		}
	}

	logger.Info("Importing map")
	if _, err := uc.run(ctx, r, model.AssetMap, mapName, r.mapImport()); err != nil {
		return report, err
	}

	r.mapName = vmf.PrefabName(mapName)

	if !req.SkipDeps {
		if err := uc.importEmbedded(ctx, r); err != nil {
			return report, err
		}
		if err := uc.importPrefabRefs(ctx, r); err != nil {
			return report, err
		}
	}

	if err := arrangeLayout(ctx, r); err != nil {
		return report, err
	}

	report.Elapsed = time.Since(started)
	logger.Info("Import finished",
		"imported", report.Imported,
		"failures", len(report.Failures),
		"elapsed", report.Elapsed.String(),
	)
	return report, nil
}

// importAssets imports materials one by one, then models and the materials
// their imports reference
func (uc *importer) importAssets(ctx context.Context, r *importRun, assets vmf.Assets, vmfPath string) error {
	logger := logging.From(ctx)

	for i, m := range assets.Materials {
		logger.Info("Importing material", "material", m, "progress", i+1, "total", len(assets.Materials))
		if _, err := uc.run(ctx, r, model.AssetMaterial, m, r.materialImport(m)); err != nil {
			return err
		}
	}

	materials, err := uc.importModels(ctx, r, assets.Models)
	if err != nil {
		return err
	}
	if len(materials) == 0 {
		return nil
	}

	list := strings.TrimSuffix(vmfPath, filepath.Ext(vmfPath)) + "_model_mtl_refs.txt"
	if err := writeFile(list, keyvalues.FormatFileList(materials)); err != nil {
		return err
	}
	_, err = uc.run(ctx, r, model.AssetRefs, filepath.Base(list), r.fileListImport(list, false))
	return err
}

// importModels runs cs_mdl_import for each model and returns the distinct
// materials listed in the generated <model>_refs.txt files
func (uc *importer) importModels(ctx context.Context, r *importRun, models []string) ([]string, error) {
	logger := logging.From(ctx)
	seen := map[string]bool{}
	var materials []string

	for i, mdl := range models {
		logger.Info("Importing model", "model", mdl, "progress", i+1, "total", len(models))
		ok, err := uc.run(ctx, r, model.AssetModel, mdl, r.modelImport(mdl))
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		refs := filepath.Join(r.contentDir, filepath.FromSlash(strings.TrimSuffix(mdl, filepath.Ext(mdl))+"_refs.txt"))
		if !exists(refs) {
			continue
		}
		files, err := readFileList(refs)
		if err != nil {
			logger.Warn("Failed to read model refs", "path", refs, "error", err)
			continue
		}
		for _, f := range files {
			if k := strings.ToLower(f); !seen[k] {
				seen[k] = true
				materials = append(materials, f)
			}
		}
	}
	return materials, nil
}

func (uc *importer) importEmbedded(ctx context.Context, r *importRun) error {
	list := filepath.Join(r.install.LegacyMapsDir(), r.mapName+"_embedded_refs.txt")
	if !exists(list) {
		return nil
	}
	logging.From(ctx).Info("Importing embedded materials")

	if _, err := uc.run(ctx, r, model.AssetRefs, filepath.Base(list), r.fileListImport(list, true)); err != nil {
		return err
	}
	files, err := readFileList(list)
	if err != nil {
		return err
	}
	compile := filepath.Join(r.contentDir, "maps", r.mapName+"_embedded_compile_refs.txt")
	if err := writeFile(compile, compileRefs(r.contentDir, files)); err != nil {
		return err
	}

	_, err = uc.run(ctx, r, model.AssetMap, r.mapName, r.mapImport())
	return err
}

// importPrefabRefs imports what the first map import listed in
// maps/<map>_refs.txt and re-imports the map against it
func (uc *importer) importPrefabRefs(ctx context.Context, r *importRun) error {
	mapsDir := filepath.Join(r.contentDir, "maps")
	refs := filepath.Join(mapsDir, r.mapName+"_refs.txt")
	if !exists(refs) {
		logging.From(ctx).Info("No refs file found, skipping prefab dependencies")
		return nil
	}
	logging.From(ctx).Info("Processing prefab dependencies")

	prefix := filepath.Join(mapsDir, r.mapName+"_prefab_")
	if err := copyFile(refs, prefix+"refs.txt"); err != nil {
		return err
	}
	files, err := readFileList(prefix + "refs.txt")
	if err != nil {
		return err
	}
	models, others := keyvalues.SplitModels(files)

	if len(models) > 0 {
		if err := writeFile(prefix+"mdl_lst.txt", keyvalues.FormatFileList(models)); err != nil {
			return err
		}
		materials, err := uc.importModels(ctx, r, models)
		if err != nil {
			return err
		}
		if len(materials) > 0 {
			if err := writeFile(prefix+"mtl_lst.txt", keyvalues.FormatFileList(materials)); err != nil {
				return err
			}
			if _, err := uc.run(ctx, r, model.AssetRefs, filepath.Base(prefix+"mtl_lst.txt"), r.fileListImport(prefix+"mtl_lst.txt", false)); err != nil {
				return err
			}
		}
	}

	if err := writeFile(prefix+"new_refs.txt", keyvalues.FormatFileList(others)); err != nil {
		return err
	}
	if len(others) > 0 {
		if _, err := uc.run(ctx, r, model.AssetRefs, filepath.Base(prefix+"new_refs.txt"), r.fileListImport(prefix+"new_refs.txt", false)); err != nil {
			return err
		}
	}
	if err := writeFile(prefix+"compile_new_refs.txt", compileRefs(r.contentDir, others)); err != nil {
		return err
	}

	_, err = uc.run(ctx, r, model.AssetMap, r.mapName, r.mapImport())
	return err
}

// arrangeLayout moves imported .vmap files below maps/ and prefabs below
// maps/prefabs/<map>, then points the map at the moved prefabs
func arrangeLayout(ctx context.Context, r *importRun) error {
	logger := logging.From(ctx)
	mapsDir := filepath.Join(r.contentDir, "maps")
	if err := os.MkdirAll(mapsDir, 0755); err != nil {
		return goerr.Wrap(err, "failed to create maps directory", goerr.V("path", mapsDir))
	}

	vmaps, err := filepath.Glob(filepath.Join(r.contentDir, "*.vmap"))
	if err != nil {
		return goerr.Wrap(err, "failed to list vmap files")
	}
	for _, src := range vmaps {
		dst := filepath.Join(mapsDir, filepath.Base(src))
		_ = os.Remove(dst)
		if err := os.Rename(src, dst); err != nil {
			return goerr.Wrap(err, "failed to move vmap", goerr.V("src", src), goerr.V("dst", dst))
		}
		logger.Info("Moved vmap", "file", filepath.Base(src))
	}

	prefabs := filepath.Join(r.contentDir, "prefabs", r.mapName)
	if isDir(prefabs) {
		dst := filepath.Join(r.contentDir, filepath.FromSlash(vmf.PrefabDir(r.mapName)))
		if err := os.RemoveAll(dst); err != nil {
			return goerr.Wrap(err, "failed to remove old prefabs", goerr.V("path", dst))
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return goerr.Wrap(err, "failed to create prefabs directory", goerr.V("path", dst))
		}
		if err := os.Rename(prefabs, dst); err != nil {
			return goerr.Wrap(err, "failed to move prefabs", goerr.V("src", prefabs), goerr.V("dst", dst))
		}
		_ = os.Remove(filepath.Dir(prefabs))
	}

	vmap := filepath.Join(mapsDir, r.mapName+".vmap")
	if !exists(vmap) {
		r.report.Warnings = append(r.report.Warnings, "no vmap was produced for "+r.mapName)
		return nil
	}
	changed, err := patchFile(vmap, func(s string) (string, bool) { return vmf.RewritePrefabPaths(s, r.mapName) })
	if err != nil {
		return err
	}
	if changed {
		logger.Info("Updated prefab references", "vmap", vmap)
	}
	return nil
}
