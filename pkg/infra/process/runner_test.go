//go:build unix

package process_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/infra/process"
)

func TestRunner_Run(t *testing.T) {
	ctx := context.Background()
	runner := process.NewRunner()

	t.Run("streams output lines", func(t *testing.T) {
		var lines []string
		result, err := runner.Run(ctx, model.Command{
			Path: "/bin/sh",
			Args: []string{"-c", "echo first; echo; echo second 1>&2"},
		}, func(line string) {
			lines = append(lines, line)
		})
		gt.NoError(t, err)
		gt.Value(t, result.ExitCode).Equal(0)
		gt.A(t, lines).Length(2)
		gt.Value(t, result.Output).Equal(lines)
	})

	t.Run("non-zero exit", func(t *testing.T) {
		result, err := runner.Run(ctx, model.Command{
			Path: "/bin/sh",
			Args: []string{"-c", "echo failing; exit 3"},
		}, nil)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrCommandFailed))
		gt.Value(t, result.ExitCode).Equal(3)
		gt.Value(t, result.Output).Equal([]string{"failing"})
	})

	t.Run("working directory", func(t *testing.T) {
		dir := t.TempDir()
		result, err := runner.Run(ctx, model.Command{Path: "/bin/sh", Args: []string{"-c", "pwd"}, Dir: dir}, nil)
		gt.NoError(t, err)
		gt.A(t, result.Output).Length(1)
	})

	t.Run("timeout", func(t *testing.T) {
		runner := process.NewRunnerWithWaitDelay(100 * time.Millisecond)
		_, err := runner.Run(ctx, model.Command{
			Path:    "/bin/sh",
			Args:    []string{"-c", "sleep 5"},
			Timeout: 50 * time.Millisecond,
		}, nil)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, context.DeadlineExceeded))
	})

	t.Run("missing binary", func(t *testing.T) {
		_, err := runner.Run(ctx, model.Command{Path: "/nonexistent/bspsrc"}, nil)
		gt.Error(t, err)
	})
}
