package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dukerupert/kirana/internal/telemetry"
)

// Config holds worker configuration
type Config struct {
	// WorkerID uniquely identifies this worker instance in logs
	WorkerID string

	// MaxConcurrency is the maximum number of job runs in flight at once
	MaxConcurrency int

	// RunOnStart runs every job once immediately instead of waiting a full interval
	RunOnStart bool

	// ShutdownTimeout bounds how long Start waits for in-flight runs after cancellation
	ShutdownTimeout time.Duration
}

// Job is a periodic maintenance task.
type Job struct {
	Name     string
	Interval time.Duration
	// Timeout bounds a single run. Zero means the interval.
	Timeout time.Duration
	Run     func(ctx context.Context) error
}

// Worker runs registered jobs on their intervals
type Worker struct {
	config Config
	jobs   []Job
	logger *slog.Logger
}

// NewWorker creates a new background job worker
func NewWorker(config Config, logger *slog.Logger) *Worker {
	// Set defaults
	if config.WorkerID == "" {
		config.WorkerID = fmt.Sprintf("worker-%s", uuid.New().String()[:8])
	}
	if config.MaxConcurrency == 0 {
		config.MaxConcurrency = 2
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Worker{
		config: config,
		logger: logger.With("worker_id", config.WorkerID),
	}
}

// Register adds a job. It must be called before Start.
func (w *Worker) Register(job Job) error {
	if job.Name == "" || job.Run == nil {
		return fmt.Errorf("job needs a name and a run function")
	}
	if job.Interval <= 0 {
		return fmt.Errorf("job %s: interval must be positive, got %s", job.Name, job.Interval)
	}
	if job.Timeout <= 0 {
		job.Timeout = job.Interval
	}
	w.jobs = append(w.jobs, job)
	return nil
}

// Start runs jobs until the context is cancelled, then waits for in-flight
// runs up to the shutdown timeout.
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("worker starting",
		"jobs", len(w.jobs),
		"max_concurrency", w.config.MaxConcurrency,
	)

	// Semaphore for concurrency control
	sem := make(chan struct{}, w.config.MaxConcurrency)
	var wg sync.WaitGroup

	for _, job := range w.jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.schedule(ctx, job, sem)
		}()
	}

	<-ctx.Done()
	w.logger.Info("worker shutting down")

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(w.config.ShutdownTimeout):
		w.logger.Warn("worker shutdown timed out", "timeout", w.config.ShutdownTimeout)
	}
	return ctx.Err()
}

// schedule ticks for a single job. A tick that finds every slot busy is
// skipped rather than queued.
func (w *Worker) schedule(ctx context.Context, job Job, sem chan struct{}) {
	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	if w.config.RunOnStart {
		sem <- struct{}{}
		w.runJob(ctx, job)
		<-sem
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			select {
			case sem <- struct{}{}:
				w.runJob(ctx, job)
				<-sem
			default:
				w.logger.Warn("skipping job run, worker at capacity", "job", job.Name)
			}
		}
	}
}

// runJob executes one run, recording duration and outcome
func (w *Worker) runJob(ctx context.Context, job Job) {
	jobCtx, cancel := context.WithTimeout(ctx, job.Timeout)
	defer cancel()

	start := time.Now()
	err := w.safeRun(jobCtx, job)
	elapsed := time.Since(start)

	if m := telemetry.Business; m != nil {
		m.JobsProcessed.WithLabelValues(job.Name).Inc()
		m.JobDuration.WithLabelValues(job.Name).Observe(elapsed.Seconds())
		if err != nil {
			m.JobsFailed.WithLabelValues(job.Name).Inc()
		}
	}

	if err != nil {
		w.logger.Error("job failed", "job", job.Name, "duration", elapsed, "error", err)
		telemetry.CaptureError(err, map[string]interface{}{"job": job.Name})
		return
	}

	w.logger.Debug("job completed", "job", job.Name, "duration", elapsed)
}

// safeRun turns a panicking job into an error so one bad run does not stop
// the schedule.
func (w *Worker) safeRun(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %s panicked: %v", job.Name, r)
		}
	}()
	return job.Run(ctx)
}
