package process

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
)

// GameExecutable is the process name of both the CS2 client and dedicated server
const GameExecutable = "cs2.exe"

type procInfo struct {
	name    string
	args    []string
	argsErr error
}

// Inspector classifies running CS2 processes with gopsutil
type Inspector struct {
	list func(ctx context.Context) ([]procInfo, error)
}

// NewInspector creates an Inspector over the live process table
func NewInspector() *Inspector {
	return &Inspector{list: listProcesses}
}

func listProcesses(ctx context.Context) ([]procInfo, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list processes")
	}

	infos := make([]procInfo, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			// Process exited or access denied
			continue
		}
		info := procInfo{name: name}
		if strings.EqualFold(name, GameExecutable) {
			info.args, info.argsErr = p.CmdlineSliceWithContext(ctx)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Snapshot reports whether a CS2 client and/or dedicated server is running.
// A cs2.exe whose command line cannot be read counts as a client.
func (i *Inspector) Snapshot(ctx context.Context) (model.GameStatus, error) {
	infos, err := i.list(ctx)
	if err != nil {
		return model.GameStatus{}, err
	}

	var status model.GameStatus
	for _, info := range infos {
		if !strings.EqualFold(info.name, GameExecutable) {
			continue
		}
		if info.argsErr == nil && hasArg(info.args, "-dedicated") {
			status.DedicatedRunning = true
		} else {
			status.ClientRunning = true
		}
	}
	return status, nil
}

func hasArg(args []string, want string) bool {
	for _, arg := range args {
		if strings.EqualFold(arg, want) {
			return true
		}
	}
	return false
}
