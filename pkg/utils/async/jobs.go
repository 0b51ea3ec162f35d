package async

import (
	"context"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/logging"
)

// JobState is the lifecycle state of a dispatched job
type JobState string

const (
	JobRunning   JobState = "running"
	JobSucceeded JobState = "succeeded"
	JobFailed    JobState = "failed"
)

// Job describes one dispatched action
type Job struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	State     JobState  `json:"state"`
	Error     string    `json:"error,omitempty"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at,omitzero"`
}

// ErrAlreadyRunning is returned by Start when a job of the same name has not finished
var ErrAlreadyRunning = goerr.New("action is already running")

// Jobs tracks handlers started through Dispatch so their outcome can be queried
type Jobs struct {
	mu   sync.RWMutex
	jobs map[string]*Job

	wg     sync.WaitGroup
	base   context.Context
	cancel context.CancelFunc
}

// NewJobs creates an empty job registry
func NewJobs() *Jobs {
	base, cancel := context.WithCancel(context.Background())
	return &Jobs{
		jobs:   make(map[string]*Job),
		base:   base,
		cancel: cancel,
	}
}

// Start dispatches handler and returns the new job ID immediately. At most
// one job per name runs at a time; the check and the registration happen
// under the same lock.
func (j *Jobs) Start(ctx context.Context, name string, handler func(ctx context.Context) error) (string, error) {
	job := &Job{
		ID:        uuid.NewString(),
		Name:      name,
		State:     JobRunning,
		StartedAt: time.Now(),
	}

	j.mu.Lock()
	for _, other := range j.jobs {
		if other.Name == name && other.State == JobRunning {
			j.mu.Unlock()
			return "", goerr.Wrap(ErrAlreadyRunning, "job not started",
				goerr.V("action", name), goerr.V("running_job_id", other.ID))
		}
	}
	if j.base.Err() != nil {
		j.mu.Unlock()
		return "", goerr.New("job registry is shut down", goerr.V("action", name))
	}
	j.jobs[job.ID] = job
	j.wg.Add(1)
	j.mu.Unlock()

	ctx = logging.With(ctx, logging.From(ctx).With("job_id", job.ID, "action", name))

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("action", name)
		scope.SetTag("job_id", job.ID)
	})
	ctx = sentry.SetHubOnContext(ctx, hub)

	Dispatch(ctx, func(ctx context.Context) error {
		defer j.wg.Done()

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		stop := context.AfterFunc(j.base, cancel)
		defer stop()

		completed := false
		defer func() {
			if !completed {
				j.finish(job.ID, goerr.New("action panicked"))
			}
		}()

		err := handler(ctx)
		completed = true
		j.finish(job.ID, err)
		return err
	})

	return job.ID, nil
}

// Shutdown cancels the context of every running job and waits for their
// handlers to return, so deferred cleanup such as restoring game files runs
// before the process exits. No new job starts afterwards.
func (j *Jobs) Shutdown(ctx context.Context) error {
	j.mu.Lock()
	j.cancel()
	j.mu.Unlock()

	done := make(chan struct{})
	go func() {
		j.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "jobs did not stop in time")
	}
}

func (j *Jobs) finish(id string, err error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	job, ok := j.jobs[id]
	if !ok {
		return
	}
	job.EndedAt = time.Now()
	if err != nil {
		job.State = JobFailed
		job.Error = err.Error()
		return
	}
	job.State = JobSucceeded
}

// Get returns a copy of the job with the given ID
func (j *Jobs) Get(id string) (Job, bool) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	job, ok := j.jobs[id]
	if !ok {
		return Job{}, false
	}
	return *job, true
}
