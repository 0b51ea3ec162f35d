package interfaces

//go:generate moq -out mocks/system_mock.go -pkg mocks . Runner ProcessInspector CS2Locator SettingsStore VersionStore

import (
	"context"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
)

// Runner executes external programs
type Runner interface {
	// Run waits for cmd to finish. onLine, when set, receives every line of
	// combined output as it is produced. A non-zero exit returns the result
	// together with an error wrapping model.ErrCommandFailed.
	Run(ctx context.Context, cmd model.Command, onLine func(line string)) (*model.CommandResult, error)

	// Start launches cmd without waiting for it
	Start(ctx context.Context, cmd model.Command) error
}

// ProcessInspector looks at running processes
type ProcessInspector interface {
	// Snapshot reports which CS2 processes are running
	Snapshot(ctx context.Context) (model.GameStatus, error)
}

// CS2Locator finds the CS2 installation
type CS2Locator interface {
	Locate(ctx context.Context) (model.CS2Install, error)
}

// SettingsStore persists settings.json
type SettingsStore interface {
	Load(ctx context.Context) (model.Settings, error)
	Save(ctx context.Context, settings model.Settings) error
}

// VersionStore persists the installed version cache
type VersionStore interface {
	Load() (model.Versions, error)
	Save(versions model.Versions) error
	Clear() error
}
