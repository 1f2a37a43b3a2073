package writequeue

import "context"

// Job is a unit of work executed by a Queue worker.
type Job interface {
	Run(ctx context.Context) error
}

// JobFunc adapts a function to a Job.
type JobFunc func(ctx context.Context) error

// Run implements Job.
func (f JobFunc) Run(ctx context.Context) error { return f(ctx) }

// completer is implemented by jobs that want to learn their final
// disposition after the worker's retry loop concludes. complete is called
// exactly once per accepted job, with nil on success.
type completer interface {
	complete(err error)
}

// doJob carries a caller waiting synchronously for the final result.
type doJob struct {
	fn  JobFunc
	res chan error // buffered, capacity 1
}

func (d *doJob) Run(ctx context.Context) error { return d.fn(ctx) }

func (d *doJob) complete(err error) {
	select {
	case d.res <- err:
	default:
	}
}
