package async_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/async"
)

func waitJob(t *testing.T, jobs *async.Jobs, id string) async.Job {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		job, ok := jobs.Get(id)
		gt.True(t, ok)
		if job.State != async.JobRunning {
			return job
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("job did not finish within timeout")
	return async.Job{}
}

func TestJobs(t *testing.T) {
	t.Run("records success", func(t *testing.T) {
		jobs := async.NewJobs()
		id, err := jobs.Start(context.Background(), "launch_insecure", func(ctx context.Context) error {
			return nil
		})
		gt.NoError(t, err)
		gt.Value(t, id).NotEqual("")

		job := waitJob(t, jobs, id)
		gt.Value(t, job.State).Equal(async.JobSucceeded)
		gt.Value(t, job.Name).Equal("launch_insecure")
		gt.False(t, job.EndedAt.IsZero())
	})

	t.Run("records failure", func(t *testing.T) {
		jobs := async.NewJobs()
		id, err := jobs.Start(context.Background(), "import", func(ctx context.Context) error {
			return errors.New("bspsrc failed")
		})
		gt.NoError(t, err)

		job := waitJob(t, jobs, id)
		gt.Value(t, job.State).Equal(async.JobFailed)
		gt.Value(t, job.Error).Equal("bspsrc failed")
	})

	t.Run("records panic as failure", func(t *testing.T) {
		jobs := async.NewJobs()
		id, err := jobs.Start(context.Background(), "import", func(ctx context.Context) error {
			panic("boom")
		})
		gt.NoError(t, err)

		job := waitJob(t, jobs, id)
		gt.Value(t, job.State).Equal(async.JobFailed)
	})

	t.Run("one running job per name", func(t *testing.T) {
		jobs := async.NewJobs()
		release := make(chan struct{})
		id, err := jobs.Start(context.Background(), "mapping", func(ctx context.Context) error {
			<-release
			return nil
		})
		gt.NoError(t, err)

		_, err = jobs.Start(context.Background(), "mapping", func(ctx context.Context) error { return nil })
		gt.Error(t, err).Is(async.ErrAlreadyRunning)

		other, err := jobs.Start(context.Background(), "listen", func(ctx context.Context) error { return nil })
		gt.NoError(t, err)
		waitJob(t, jobs, other)

		close(release)
		waitJob(t, jobs, id)
		again, err := jobs.Start(context.Background(), "mapping", func(ctx context.Context) error { return nil })
		gt.NoError(t, err)
		waitJob(t, jobs, again)
	})

	t.Run("concurrent starts admit one job", func(t *testing.T) {
		jobs := async.NewJobs()
		release := make(chan struct{})
		defer close(release)

		var wg sync.WaitGroup
		var started atomic.Int32
		for i := 0; i < 32; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := jobs.Start(context.Background(), "listen", func(ctx context.Context) error {
					<-release
					return nil
				})
				if err == nil {
					started.Add(1)
				}
			}()
		}
		wg.Wait()
		gt.Value(t, started.Load()).Equal(int32(1))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, ok := async.NewJobs().Get("missing")
		gt.False(t, ok)
	})
}

func TestJobs_Shutdown(t *testing.T) {
	t.Run("cancels running jobs and waits for cleanup", func(t *testing.T) {
		jobs := async.NewJobs()
		started := make(chan struct{})
		var cleaned atomic.Bool
		id, err := jobs.Start(context.Background(), "listen", func(ctx context.Context) error {
			defer func() {
				time.Sleep(20 * time.Millisecond)
				cleaned.Store(true)
			}()
			close(started)
			<-ctx.Done()
			return ctx.Err()
		})
		gt.NoError(t, err)
		<-started

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		gt.NoError(t, jobs.Shutdown(ctx))
		gt.True(t, cleaned.Load())

		job, ok := jobs.Get(id)
		gt.True(t, ok)
		gt.Value(t, job.State).Equal(async.JobFailed)

		_, err = jobs.Start(context.Background(), "mapping", func(ctx context.Context) error { return nil })
		gt.Error(t, err)
	})

	t.Run("gives up when a job ignores cancellation", func(t *testing.T) {
		jobs := async.NewJobs()
		release := make(chan struct{})
		defer close(release)
		_, err := jobs.Start(context.Background(), "import", func(ctx context.Context) error {
			<-release
			return nil
		})
		gt.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		gt.Error(t, jobs.Shutdown(ctx)).Is(context.DeadlineExceeded)
	})

	t.Run("no jobs", func(t *testing.T) {
		gt.NoError(t, async.NewJobs().Shutdown(context.Background()))
	})
}
