package usecase

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/interfaces"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/logging"
)

// LauncherDeps are the collaborators of the launcher
type LauncherDeps struct {
	Locator      interfaces.CS2Locator
	Installer    interfaces.InstallerUseCase
	Runner       interfaces.Runner
	Files        *GameFiles
	Watcher      *Watcher
	DedicatedMap string
}

type launcher struct {
	LauncherDeps
	pollInterval time.Duration
	startTimeout time.Duration
}

// LauncherOption configures the launcher
type LauncherOption func(*launcher)

// WithPollInterval sets how often the process table is checked while the game runs
func WithPollInterval(d time.Duration) LauncherOption {
	return func(l *launcher) { l.pollInterval = d }
}

// WithStartTimeout bounds the wait for the game process to appear
func WithStartTimeout(d time.Duration) LauncherOption {
	return func(l *launcher) { l.startTimeout = d }
}

// NewLauncher creates the launcher use case
func NewLauncher(deps LauncherDeps, opts ...LauncherOption) interfaces.LauncherUseCase {
	l := &launcher{
		LauncherDeps: deps,
		pollInterval: ExitInterval,
		startTimeout: 2 * time.Minute,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func running(mode model.LaunchMode) func(model.GameStatus) bool {
	if mode.Dedicated() {
		return func(s model.GameStatus) bool { return s.DedicatedRunning }
	}
	return func(s model.GameStatus) bool { return s.ClientRunning }
}

func (uc *launcher) command(install model.CS2Install, mode model.LaunchMode) model.Command {
	switch mode {
	case model.LaunchMapping:
		return model.Command{
			Path: install.ToolsLauncher(),
			Args: []string{"-insecure", "-gpuraytracing"},
			Dir:  install.BinDir(),
		}
	case model.LaunchDedicated:
		return model.Command{
			Path: install.Executable(),
			Args: []string{"-dedicated", "-insecure", "+map", uc.DedicatedMap},
			Dir:  install.BinDir(),
		}
	default:
		return model.Command{
			Path: install.Executable(),
			Args: []string{"-insecure"},
			Dir:  install.BinDir(),
		}
	}
}

// Launch runs the whole launch sequence and returns once the game has exited
// and the game files are restored.
func (uc *launcher) Launch(ctx context.Context, mode model.LaunchMode) (err error) {
	logger := logging.From(ctx).With("mode", mode)
	ctx = logging.With(ctx, logger)

	install, err := uc.Locator.Locate(ctx)
	if err != nil {
		return err
	}

	status, err := uc.Watcher.Snapshot(ctx)
	if err != nil {
		logger.Warn("Could not check running processes", "error", err)
	} else if running(mode)(status) {
		return goerr.Wrap(model.ErrGameRunning, "refusing to launch", goerr.V("mode", mode))
	}

	if mode.NeedsSetup() {
		needed, err := uc.Installer.CheckSetupNeeded(ctx, install)
		if err != nil {
			return err
		}
		if needed {
			logger.Info("Setup needed, installing")
			if err := uc.Installer.RunSetup(ctx, install); err != nil {
				return err
			}
		}

		if err := uc.Files.Backup(ctx, install); err != nil {
			return err
		}
		defer func() {
			// restore must not be skipped by a cancelled launch context
			if rerr := uc.Files.Restore(context.WithoutCancel(ctx), install); rerr != nil {
				logger.Error("Failed to restore game files", "error", rerr)
				err = errors.Join(err, rerr)
			}
		}()

		if err := uc.Files.Patch(ctx, install, mode); err != nil {
			return err
		}
	}

	if err := uc.start(ctx, install, mode); err != nil {
		return err
	}

	if err := uc.wait(ctx, mode); err != nil {
		return err
	}

	if mode.VerifiesAfterExit() {
		// Verify writes over the restored files, so restore first
		if err := uc.Files.Restore(ctx, install); err != nil {
			return err
		}
		if err := uc.Files.Verify(ctx, install, mode); err != nil {
			return err
		}
	}

	removeSteamAppID(ctx, install)
	logger.Info("Game exited")
	return nil
}

func (uc *launcher) start(ctx context.Context, install model.CS2Install, mode model.LaunchMode) error {
	logger := logging.From(ctx)
	cmd := uc.command(install, mode)
	logger.Info("Starting game", "path", cmd.Path, "args", cmd.Args)

	if mode != model.LaunchMapping {
		if err := uc.Runner.Start(ctx, cmd); err != nil {
			return goerr.Wrap(err, "failed to start CS2", goerr.V("path", cmd.Path))
		}
		return nil
	}

	// csgocfg stays in the foreground while the tools run
	_, err := uc.Runner.Run(ctx, cmd, func(line string) { logger.Debug(line) })
	if errors.Is(err, model.ErrCommandFailed) {
		logger.Warn("Tools launcher exited with an error", "error", err)
		return nil
	}
	if err != nil {
		return goerr.Wrap(err, "failed to start CS2 tools", goerr.V("path", cmd.Path))
	}
	return nil
}

func (uc *launcher) wait(ctx context.Context, mode model.LaunchMode) error {
	logger := logging.From(ctx)
	isRunning := running(mode)

	startCtx, cancel := context.WithTimeout(ctx, uc.startTimeout)
	err := uc.Watcher.WaitUntil(startCtx, uc.pollInterval, isRunning)
	cancel()
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		logger.Warn("Game process did not appear", "timeout", uc.startTimeout)
		return nil
	}
	if err != nil {
		return err
	}

	return uc.Watcher.WaitUntil(ctx, uc.pollInterval, func(s model.GameStatus) bool { return !isRunning(s) })
}

func removeSteamAppID(ctx context.Context, install model.CS2Install) {
	path := install.SteamAppIDFile()
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		logging.From(ctx).Warn("Failed to remove steam_appid.txt", "path", path, "error", err)
	}
}
