package writequeue

import "time"

// Config tunes a Queue. Zero values fall back to the defaults applied in
// New.
type Config struct {
	// Shards is the number of worker goroutines; keys hash onto them.
	Shards int
	// QueueSize is the per-shard channel capacity.
	QueueSize int
	// EnqueueTimeout bounds how long Submit waits for shard space before
	// returning QueueFullError.
	EnqueueTimeout time.Duration
	// MaxAttempts caps executions per job. 1 means no retry, matching the
	// backend client's default behavior.
	MaxAttempts int
	// BaseBackoff is the initial retry interval.
	BaseBackoff time.Duration
	// MaxInterval caps the retry interval growth.
	MaxInterval time.Duration
	// ErrorHandler, when set, observes each job's final error. Panics in
	// the handler are contained.
	ErrorHandler func(error)
}

func (c Config) withDefaults() Config {
	if c.Shards <= 0 {
		c.Shards = 4
	}
	if c.QueueSize <= 0 {
		c.QueueSize = 64
	}
	if c.EnqueueTimeout <= 0 {
		c.EnqueueTimeout = 100 * time.Millisecond
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 1
	}
	if c.BaseBackoff <= 0 {
		c.BaseBackoff = 100 * time.Millisecond
	}
	if c.MaxInterval <= 0 {
		c.MaxInterval = 10 * time.Second
	}
	return c
}
