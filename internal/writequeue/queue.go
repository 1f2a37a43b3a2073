// Package writequeue serializes mutating API calls per resource key.
//
// The SPA this client descends from fired profile and dish mutations
// straight at the backend, so two rapid updates could land out of order and
// "last response wins". The queue fixes that: jobs for the same key run
// FIFO on one shard while jobs for different keys proceed in parallel.
//
// Contract: callers must not invoke Submit concurrently for the same key if
// they rely on FIFO ordering; ordering holds only for the submission order
// the shard observes.
package writequeue

import (
	"context"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"github.com/nutriplan/nutriplan-client/internal/apierr"
)

type queued struct {
	ctx context.Context
	job Job
}

// Queue executes Jobs on worker goroutines partitioned by a stable hash of
// the resource key ("profile", "dish/<id>", ...).
type Queue struct {
	cfg    Config
	shards []chan queued

	done   chan struct{} // closed in Stop
	closed uint32

	wg sync.WaitGroup
}

// New constructs the queue and starts its shard workers.
func New(cfg Config) *Queue {
	cfg = cfg.withDefaults()
	q := &Queue{
		cfg:    cfg,
		shards: make([]chan queued, cfg.Shards),
		done:   make(chan struct{}),
	}
	for i := 0; i < cfg.Shards; i++ {
		ch := make(chan queued, cfg.QueueSize)
		q.shards[i] = ch
		q.wg.Add(1)
		go q.runWorker(i, ch)
	}
	return q
}

// Submit enqueues job for the shard derived from key.
//
//   - nil on success
//   - ErrClosed once Stop has been called
//   - *QueueFullError if the shard is still full after EnqueueTimeout
//   - ctx.Err() if the caller's context is canceled first
func (q *Queue) Submit(ctx context.Context, key string, job Job) error {
	if atomic.LoadUint32(&q.closed) == 1 {
		return ErrClosed
	}
	select {
	case <-q.done:
		return ErrClosed
	default:
	}

	shard := q.shardFor(key)
	ch := q.shards[shard]

	timer := time.NewTimer(q.cfg.EnqueueTimeout)
	defer timer.Stop()

	select {
	case ch <- queued{ctx: ctx, job: job}:
		submissionsTotal.WithLabelValues(labelFor(shard)).Inc()
		return nil
	case <-q.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		queueFullTotal.WithLabelValues(labelFor(shard)).Inc()
		return &QueueFullError{Shard: shard, Length: len(ch), Capacity: cap(ch)}
	}
}

// Do submits fn for key and waits for its final disposition, after any
// retries. A canceled context abandons the wait; the job may still run, but
// its result is discarded rather than delivered late.
func (q *Queue) Do(ctx context.Context, key string, fn JobFunc) error {
	d := &doJob{fn: fn, res: make(chan error, 1)}
	if err := q.Submit(ctx, key, d); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-d.res:
		return err
	}
}

// Barrier enqueues a no-op job on key's shard and waits until it runs,
// guaranteeing every previously submitted job for that key has completed.
func (q *Queue) Barrier(ctx context.Context, key string) error {
	return q.Do(ctx, key, func(context.Context) error { return nil })
}

// Stop signals every worker to drain its queue FIFO and waits for them to
// finish. Idempotent and safe for concurrent use.
func (q *Queue) Stop() {
	if !atomic.CompareAndSwapUint32(&q.closed, 0, 1) {
		return
	}
	log.Debug().Int("shards", q.cfg.Shards).Msg("writequeue: stopping, draining shards")
	close(q.done)
	q.wg.Wait()
	log.Debug().Msg("writequeue: stopped, all shards drained")
}

// Close lets Queue satisfy io.Closer.
func (q *Queue) Close() error {
	q.Stop()
	return nil
}

// ------------------------- internals -------------------------

func (q *Queue) runWorker(idx int, ch <-chan queued) {
	defer q.wg.Done()

	label := labelFor(idx)

	for {
		select {
		case item := <-ch:
			q.execute(label, item)
			queueDepth.WithLabelValues(label).Set(float64(len(ch)))

		case <-q.done:
			// Drain remaining jobs in FIFO order, then exit.
			drained := 0
			for {
				select {
				case item := <-ch:
					q.execute(label, item)
					drained++
				default:
					if drained > 0 {
						log.Debug().Int("shard", idx).Int("drained", drained).Msg("writequeue: drained remaining jobs")
					}
					queueDepth.WithLabelValues(label).Set(0)
					return
				}
			}
		}
	}
}

// execute runs one job through the retry loop and reports its final
// disposition.
func (q *Queue) execute(label string, item queued) {
	if item.job == nil {
		return
	}

	// A job whose context died while queued must not stall the shard.
	if err := item.ctx.Err(); err != nil {
		q.finish(label, item.job, err)
		return
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = q.cfg.BaseBackoff
	exp.Multiplier = 2
	exp.MaxInterval = q.cfg.MaxInterval
	exp.Reset()

	var err error
	for attempt := 1; ; attempt++ {
		start := time.Now()
		err = runJob(item.ctx, item.job)
		runDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())

		if err == nil {
			break
		}
		if pe, ok := err.(*panicError); ok {
			log.Error().Str("shard", label).Interface("panic", pe.val).Msg("writequeue: job panic")
			break
		}
		if apierr.IsIrrecoverable(err) || attempt >= q.cfg.MaxAttempts {
			break
		}

		select {
		case <-time.After(exp.NextBackOff()):
		case <-q.done:
			q.finish(label, item.job, err)
			return
		case <-item.ctx.Done():
			err = item.ctx.Err()
			q.finish(label, item.job, err)
			return
		}
	}
	q.finish(label, item.job, err)
}

// finish delivers the final disposition to waiting callers and the error
// handler.
func (q *Queue) finish(label string, job Job, err error) {
	if c, ok := job.(completer); ok {
		c.complete(err)
	}
	if err == nil {
		return
	}
	failuresTotal.WithLabelValues(label).Inc()
	if q.cfg.ErrorHandler != nil {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Error().Interface("panic", r).Msg("writequeue: error handler panic")
				}
			}()
			q.cfg.ErrorHandler(err)
		}()
	}
}

// runJob executes a single attempt. A panicking job must not kill the shard
// worker: callers of Do wait synchronously for the job's disposition, so a
// dead worker would strand them and every later job hashed to the shard.
// The panic is recovered here, per job, and surfaces as the job's error.
func runJob(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &panicError{val: r}
		}
	}()
	return job.Run(ctx)
}

func (q *Queue) shardFor(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % q.cfg.Shards
}
