package process

import (
	"context"
	"time"
)

type ProcInfo = procInfo

func NewProcInfo(name string, args []string, argsErr error) ProcInfo {
	return procInfo{name: name, args: args, argsErr: argsErr}
}

func NewInspectorWith(list func(ctx context.Context) ([]ProcInfo, error)) *Inspector {
	return &Inspector{list: list}
}

func NewRunnerWithWaitDelay(d time.Duration) *Runner {
	return &Runner{waitDelay: d}
}
