package claims

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/crillab/qsat/qbf"
	"github.com/crillab/qsat/solver"
)

// A Result is the outcome of the evaluation of a task.
type Result struct {
	Task
	Formula  qbf.Formula // nil if the formula could not be built
	Holds    bool
	Stats    solver.Stats
	Duration time.Duration
	Err      error // Construction or evaluation error, if any
}

// A MismatchError is returned when a claim does not evaluate to its expected value.
type MismatchError struct {
	Name     string
	Width    int
	Expected bool
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("claim %q at width %d: expected %t, got %t", e.Name, e.Width, e.Expected, !e.Expected)
}

// A Runner evaluates tasks concurrently.
// Each task is built and evaluated by its own goroutine, with its own solver.
type Runner struct {
	jobs   int
	logger *zap.Logger
}

// An Option customizes a Runner.
type Option func(r *Runner)

// WithJobs sets the maximum number of tasks evaluated at the same time.
// n <= 0 means one job per available CPU.
func WithJobs(n int) Option {
	return func(r *Runner) {
		r.jobs = n
	}
}

// WithLogger makes the runner log its progress on l.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// NewRunner returns a new runner.
func NewRunner(options ...Option) *Runner {
	r := &Runner{}
	for _, option := range options {
		option(r)
	}
	if r.jobs <= 0 {
		r.jobs = runtime.GOMAXPROCS(0)
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	return r
}

// Run evaluates all tasks and returns their results, in the same order.
// The returned error combines every construction or evaluation error and
// every *MismatchError; use multierr.Errors to list them. If ctx is
// cancelled, the tasks that did not start yet are skipped and ctx.Err() is
// returned.
func (r *Runner) Run(ctx context.Context, tasks []Task) ([]Result, error) {
	results := make([]Result, len(tasks))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.jobs)
	for i, task := range tasks {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.evaluate(task)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return results, err
	}
	var err error
	for _, res := range results {
		switch {
		case res.Err != nil:
			err = multierr.Append(err, fmt.Errorf("claim %q: %w", res.Claim.Name, res.Err))
		case res.Holds != res.Claim.Expected:
			err = multierr.Append(err, &MismatchError{Name: res.Claim.Name, Width: res.Width, Expected: res.Claim.Expected})
		}
	}
	return results, err
}

func (r *Runner) evaluate(task Task) Result {
	res := Result{Task: task}
	logger := r.logger.With(zap.String("claim", task.Claim.Name), zap.Int("width", task.Width))
	start := time.Now()
	f, err := qbf.Build(func() qbf.Formula {
		return task.Claim.Build(task.Width)
	})
	if err != nil {
		logger.Warn("could not build claim", zap.Error(err))
		res.Err = err
		return res
	}
	res.Formula = f
	s := solver.New(solver.WithLogger(logger))
	res.Holds, res.Err = s.Solve(f)
	res.Stats = s.Stats
	res.Duration = time.Since(start)
	if res.Err != nil {
		logger.Warn("could not evaluate claim", zap.Error(res.Err))
		return res
	}
	logger.Info("claim evaluated",
		zap.Bool("holds", res.Holds),
		zap.Bool("expected", task.Claim.Expected),
		zap.Int("assignments", res.Stats.NbAssignments),
		zap.Duration("duration", res.Duration),
	)
	return res
}
