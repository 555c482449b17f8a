package process

import (
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
)

// Trap captures the first panic raised on any worker goroutine of a query
// so it can be re-raised on the caller goroutine once the workers are gone.
// The zero value is ready to use.
type Trap struct {
	mu     sync.Mutex
	value  any
	caught bool
}

// Guard must be deferred directly at the top of a worker goroutine:
//
//	defer trap.Guard(log, workerID, stop)
//
// On panic it logs the value with the worker stack, records it if it is the
// first one, and calls stop so the remaining workers wind down.
func (t *Trap) Guard(log logrus.FieldLogger, workerID int, stop func()) {
	r := recover()
	if r == nil {
		return
	}

	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)
	log.WithFields(logrus.Fields{
		"worker_id": workerID,
		"panic":     r,
		"stack":     string(buf[:n]),
	}).Error("panic in traversal worker")

	t.mu.Lock()
	if !t.caught {
		t.caught = true
		t.value = r
	}
	t.mu.Unlock()

	if stop != nil {
		stop()
	}
}

// Rethrow panics with the first captured value, if any. Call it on the
// caller goroutine after every worker has returned.
func (t *Trap) Rethrow() {
	t.mu.Lock()
	caught, v := t.caught, t.value
	t.mu.Unlock()

	if caught {
		panic(v)
	}
}

// Caught reports whether a panic was captured.
func (t *Trap) Caught() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.caught
}
