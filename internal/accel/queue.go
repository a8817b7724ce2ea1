package accel

import (
	"fmt"
	"sync"
)

// QueueMode selects the host-side blocking behavior of a queue.
type QueueMode int

const (
	// NonBlocking queues accept tasks asynchronously; Wait is the only
	// synchronization point.
	NonBlocking QueueMode = iota
	// Blocking queues do not return from Enqueue until the task finished.
	Blocking
)

func (m QueueMode) String() string {
	if m == Blocking {
		return "blocking"
	}
	return "non-blocking"
}

// Queue is an ordered execution context bound to one device. Tasks enqueued
// on a queue run strictly in FIFO order relative to each other; tasks on
// different queues have no ordering guarantee.
//
// A single worker goroutine drains the queue, so FIFO ordering holds in both
// modes. Close releases the worker; using a closed queue returns
// ErrQueueClosed.
type Queue struct {
	dev  *Device
	mode QueueMode

	tasks chan queuedTask
	wg    sync.WaitGroup

	mu       sync.Mutex
	firstErr error
	closed   bool
}

type queuedTask struct {
	task *Task
	done chan error // non-nil in blocking mode
}

// NewQueue creates a queue bound to the device.
func NewQueue(dev *Device, mode QueueMode) *Queue {
	q := &Queue{
		dev:   dev,
		mode:  mode,
		tasks: make(chan queuedTask, 64),
	}
	go q.worker()
	return q
}

// Device returns the device this queue is bound to.
func (q *Queue) Device() *Device {
	return q.dev
}

// Mode returns the queue's blocking mode.
func (q *Queue) Mode() QueueMode {
	return q.mode
}

func (q *Queue) worker() {
	for qt := range q.tasks {
		err := qt.task.run(q.dev)
		if err != nil {
			err = &TaskError{Task: qt.task.ID(), Op: qt.task.Op(), Err: err}
			q.mu.Lock()
			if q.firstErr == nil {
				q.firstErr = err
			}
			q.mu.Unlock()
		}
		if qt.done != nil {
			qt.done <- err
		}
		q.wg.Done()
	}
}

// Enqueue appends the task to the queue and begins its execution after all
// previously enqueued tasks. On a blocking queue Enqueue returns the task's
// own error once it finished; on a non-blocking queue it returns immediately
// and errors are reported by Wait.
func (q *Queue) Enqueue(task *Task) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return fmt.Errorf("enqueue %s: %w", task.Op(), ErrQueueClosed)
	}
	q.wg.Add(1)
	q.mu.Unlock()

	if q.mode == Blocking {
		done := make(chan error, 1)
		q.tasks <- queuedTask{task: task, done: done}
		return <-done
	}
	q.tasks <- queuedTask{task: task}
	return nil
}

// Wait blocks until every task previously enqueued has completed and returns
// the first recorded task error, if any. The recorded error is cleared, so a
// later Wait reflects only tasks enqueued after this call. Wait is safe on an
// empty or fully drained queue, and remains callable (redundantly) on
// blocking queues.
func (q *Queue) Wait() error {
	q.wg.Wait()
	q.mu.Lock()
	defer q.mu.Unlock()
	err := q.firstErr
	q.firstErr = nil
	return err
}

// Close drains the queue and releases its worker. The queue rejects tasks
// afterwards. Close returns the same error Wait would have.
func (q *Queue) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	q.mu.Unlock()

	err := q.Wait()
	close(q.tasks)
	return err
}
