// Package process runs external tools and inspects running game processes.
package process

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/logging"
)

// Runner executes commands with os/exec
type Runner struct {
	waitDelay time.Duration
}

// NewRunner creates a Runner
func NewRunner() *Runner {
	return &Runner{waitDelay: 5 * time.Second}
}

// Run executes cmd and waits for it. Output lines are trimmed, empty lines dropped.
func (r *Runner) Run(ctx context.Context, cmd model.Command, onLine func(line string)) (*model.CommandResult, error) {
	if cmd.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cmd.Timeout)
		defer cancel()
	}

	logging.From(ctx).Debug("Running command", "path", cmd.Path, "args", cmd.Args, "dir", cmd.Dir)

	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	c.Dir = cmd.Dir
	c.WaitDelay = r.waitDelay

	pr, pw := io.Pipe()
	c.Stdout = pw
	c.Stderr = pw

	result := &model.CommandResult{}

	var eg errgroup.Group
	eg.Go(func() error {
		scanner := bufio.NewScanner(pr)
		scanner.Buffer(make([]byte, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			result.Output = append(result.Output, line)
			if onLine != nil {
				onLine(line)
			}
		}
		// Keep draining so the child never blocks on a full pipe
		_, _ = io.Copy(io.Discard, pr)
		return scanner.Err()
	})

	if err := c.Start(); err != nil {
		_ = pw.Close()
		_ = eg.Wait()
		return nil, goerr.Wrap(err, "failed to start command", goerr.V("path", cmd.Path))
	}

	waitErr := c.Wait()
	_ = pw.Close()
	if err := eg.Wait(); err != nil {
		logging.From(ctx).Warn("Failed to read command output", "path", cmd.Path, "error", err)
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		result.ExitCode = -1
		return result, goerr.Wrap(ctx.Err(), "command timed out",
			goerr.V("path", cmd.Path), goerr.V("timeout", cmd.Timeout.String()))
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, goerr.Wrap(model.ErrCommandFailed, "command exited with non-zero status",
				goerr.V("path", cmd.Path), goerr.V("exit_code", result.ExitCode))
		}
		return result, goerr.Wrap(waitErr, "failed to wait for command", goerr.V("path", cmd.Path))
	}

	return result, nil
}

// Start launches cmd detached from this process. The child outlives ctx.
func (r *Runner) Start(ctx context.Context, cmd model.Command) error {
	logging.From(ctx).Debug("Starting command", "path", cmd.Path, "args", cmd.Args, "dir", cmd.Dir)

	c := exec.Command(cmd.Path, cmd.Args...)
	c.Dir = cmd.Dir
	c.SysProcAttr = detachAttr()

	if err := c.Start(); err != nil {
		return goerr.Wrap(err, "failed to start command", goerr.V("path", cmd.Path))
	}
	if err := c.Process.Release(); err != nil {
		return goerr.Wrap(err, "failed to release process", goerr.V("path", cmd.Path))
	}
	return nil
}
