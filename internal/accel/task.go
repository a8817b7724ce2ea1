package accel

import "github.com/google/uuid"

// Task is one unit of work accepted by a queue: a kernel launch or a memory
// transfer. Creating a task has no side effects; it runs only once enqueued.
type Task struct {
	id  uuid.UUID
	op  string
	run func(dev *Device) error
}

// NewTask wraps an operation into a task. The op string names the operation
// kind for error attribution ("kernel", "copy", ...).
func NewTask(op string, run func(dev *Device) error) *Task {
	return &Task{id: uuid.New(), op: op, run: run}
}

// NewKernelTask pairs a work division, a kernel, and its extra arguments into
// a launch task. The arguments are bound now; execution happens when the task
// is enqueued on a queue, on that queue's device.
func NewKernelTask(div WorkDiv, k Kernel, args ...any) *Task {
	return NewTask("kernel", func(dev *Device) error {
		return dev.exec.Launch(div, k, args)
	})
}

// ID returns the task's unique identity.
func (t *Task) ID() uuid.UUID {
	return t.id
}

// Op returns the operation kind.
func (t *Task) Op() string {
	return t.op
}
