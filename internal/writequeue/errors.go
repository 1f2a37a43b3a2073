package writequeue

import (
	"errors"
	"fmt"
)

// ErrClosed is returned by Submit after Stop.
var ErrClosed = errors.New("write queue closed")

// QueueFullError reports that a shard stayed full past the enqueue timeout.
// It is the queue's back-pressure surface.
type QueueFullError struct {
	Shard    int
	Length   int
	Capacity int
}

func (e *QueueFullError) Error() string {
	return fmt.Sprintf("write queue shard %d full (%d/%d)", e.Shard, e.Length, e.Capacity)
}

// IsQueueFull reports whether err is a back-pressure error.
func IsQueueFull(err error) bool {
	var qf *QueueFullError
	return errors.As(err, &qf)
}

// panicError wraps a recovered job panic so it can be delivered to the
// waiting caller like any other failure. Never retried.
type panicError struct{ val any }

func (e *panicError) Error() string { return fmt.Sprintf("job panic: %v", e.val) }
