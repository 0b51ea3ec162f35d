package interfaces

//go:generate moq -out mocks/usecase_mock.go -pkg mocks . InstallerUseCase LauncherUseCase ImporterUseCase UpdaterUseCase

import (
	"context"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
)

// InstallerUseCase keeps Metamod, CS2KZ, Source2Viewer and BSPSource current
type InstallerUseCase interface {
	CheckSetupNeeded(ctx context.Context, install model.CS2Install) (bool, error)
	RunSetup(ctx context.Context, install model.CS2Install) error
	EnsureSource2Viewer(ctx context.Context) (string, error)
	LaunchSource2Viewer(ctx context.Context) error
	EnsureBSPSource(ctx context.Context) (string, error)
}

// LauncherUseCase starts CS2 in one of the launch modes
type LauncherUseCase interface {
	Launch(ctx context.Context, mode model.LaunchMode) error
}

// ImporterUseCase converts a CS:GO map into a CS2 addon
type ImporterUseCase interface {
	Import(ctx context.Context, req model.ImportRequest) (*model.ImportReport, error)
}

// UpdaterUseCase replaces the running executable with the latest release
type UpdaterUseCase interface {
	Check(ctx context.Context) (*model.Update, error)
	Apply(ctx context.Context, update *model.Update) error
}
