package mainctx

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/constants"
	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/internal"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

// Executor hands a task to a thread the loop does not own and blocks until it
// has run. Every task must run on the same locked OS thread.
type Executor func(task func())

// LoopOptions configures a Loop.
type LoopOptions struct {
	Name       string                // Label used in logs and metrics (defaults to "main")
	MaxPending int                   // Maximum queued tasks, 0 for unbounded
	Executor   Executor              // Runs tasks on a foreign main thread instead of the loop's own
	Registerer prometheus.Registerer // Registers loop metrics when set
	Logger     *slog.Logger          // Defaults to the internal logger
}

// Loop is a Context backed by a FIFO task queue drained on one OS thread.
//
// A Loop runs once: after Run returns it is closed for good.
// Tasks may be posted before Run starts; they run as soon as it does.
type Loop struct {
	id         string
	name       string
	maxPending int
	exec       Executor
	logger     *slog.Logger
	metrics    *loopMetrics

	mu     sync.Mutex
	queue  []func()
	closed bool

	wake    chan struct{}
	ready   chan struct{}
	stopped chan struct{}

	running  atomic.Bool
	threadID atomic.Int64
	pending  atomic.Int64
}

// NewLoop creates a Loop. Call Run or Start to begin draining tasks.
func NewLoop(opts LoopOptions) *Loop {
	name := opts.Name
	if name == "" {
		name = constants.DefaultLoopName
	}

	id := uuid.NewString()

	logger := opts.Logger
	if logger == nil {
		logger = internal.GetInternalLogger()
	}

	return &Loop{
		id:         id,
		name:       name,
		maxPending: opts.MaxPending,
		exec:       opts.Executor,
		logger:     logger.With("loop", name, "loop_id", id),
		metrics:    newLoopMetrics(opts.Registerer, name),
		wake:       make(chan struct{}, 1),
		ready:      make(chan struct{}),
		stopped:    make(chan struct{}),
	}
}

// ID returns the unique identifier of this loop.
func (l *Loop) ID() string {
	return l.id
}

// Name returns the loop's label.
func (l *Loop) Name() string {
	return l.name
}

// Pending returns the number of tasks waiting to run.
func (l *Loop) Pending() int {
	return int(l.pending.Load())
}

// Post enqueues task to run on the loop thread. It never waits for the task.
// A nil task is ignored.
func (l *Loop) Post(task func()) error {
	if task == nil {
		return nil
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		l.metrics.dropped.Inc()
		return ErrLoopClosed
	}
	if l.maxPending > 0 && len(l.queue) >= l.maxPending {
		l.mu.Unlock()
		l.metrics.dropped.Inc()
		return ErrQueueFull
	}
	l.queue = append(l.queue, task)
	l.pending.Inc()
	l.mu.Unlock()

	l.metrics.posted.Inc()
	l.metrics.pending.Inc()
	l.signal()
	return nil
}

// IsCurrent reports whether the caller is running on the loop thread.
func (l *Loop) IsCurrent() bool {
	bound := l.threadID.Load()
	if bound == 0 {
		return false
	}
	tid, ok := internal.ThreadID()
	return ok && int64(tid) == bound
}

// Run binds the loop to a thread and drains tasks until Close is called or
// ctx is cancelled. It blocks the calling goroutine.
//
// Without an Executor the calling goroutine is locked to its OS thread for
// the duration of Run, so call it from the goroutine that should own the
// designated context. After Close, queued tasks still run; after ctx
// cancellation they are dropped.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer close(l.stopped)

	l.mu.Lock()
	if l.closed {
		abandoned := len(l.queue)
		l.queue = nil
		l.mu.Unlock()
		l.drop(abandoned)
		return ErrLoopClosed
	}
	l.mu.Unlock()

	if l.exec == nil {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		l.bind()
	} else {
		l.exec(l.bind)
	}
	defer l.threadID.Store(0)
	close(l.ready)

	l.logger.Debug("Loop started")

	for {
		task, ok := l.next(ctx)
		if !ok {
			break
		}
		l.execute(task)
	}

	l.mu.Lock()
	l.closed = true
	abandoned := len(l.queue)
	l.queue = nil
	l.mu.Unlock()

	if abandoned > 0 {
		l.drop(abandoned)
		l.logger.Warn("Loop stopped with pending tasks", "dropped", abandoned, "error", ctx.Err())
	} else {
		l.logger.Debug("Loop stopped")
	}

	return nil
}

// Start runs the loop on a new goroutine and returns once it is bound to its
// thread and accepting tasks.
func (l *Loop) Start(ctx context.Context) error {
	if l.running.Load() {
		return ErrLoopRunning
	}

	errc := make(chan error, 1)
	go func() {
		errc <- l.Run(ctx)
	}()

	select {
	case <-l.ready:
		return nil
	case err := <-errc:
		if err == nil {
			return fmt.Errorf("mainctx: loop %q exited before binding", l.name)
		}
		return err
	}
}

// Close stops accepting tasks. Tasks already queued still run before Run
// returns. Close does not wait; use Shutdown or Done for that. It is safe to
// call from a task and more than once.
func (l *Loop) Close() {
	l.mu.Lock()
	wasClosed := l.closed
	l.closed = true
	var abandoned int
	if !l.running.Load() && !wasClosed {
		abandoned = len(l.queue)
		l.queue = nil
	}
	l.mu.Unlock()

	if abandoned > 0 {
		l.drop(abandoned)
	}

	l.signal()
}

// Shutdown closes the loop and waits for Run to return or ctx to end.
// Calling it from a task would wait on itself, so that case returns
// immediately after closing.
func (l *Loop) Shutdown(ctx context.Context) error {
	l.Close()

	if !l.running.Load() || l.IsCurrent() {
		return nil
	}

	select {
	case <-l.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done returns a channel that is closed when Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.stopped
}

func (l *Loop) bind() {
	if tid, ok := internal.ThreadID(); ok {
		l.threadID.Store(int64(tid))
	}
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *Loop) next(ctx context.Context) (func(), bool) {
	for {
		if ctx.Err() != nil {
			return nil, false
		}

		l.mu.Lock()
		if len(l.queue) > 0 {
			task := l.queue[0]
			l.queue[0] = nil
			l.queue = l.queue[1:]
			l.mu.Unlock()
			return task, true
		}
		closed := l.closed
		l.mu.Unlock()

		if closed {
			return nil, false
		}

		select {
		case <-l.wake:
		case <-ctx.Done():
			return nil, false
		}
	}
}

func (l *Loop) execute(task func()) {
	l.pending.Dec()
	l.metrics.pending.Dec()

	run := func() {
		defer func() {
			if r := recover(); r != nil {
				l.metrics.panics.Inc()
				l.logger.Error("Task panicked", "panic", r, "stack", string(debug.Stack()))
			}
		}()
		task()
	}

	if l.exec != nil {
		l.exec(run)
	} else {
		run()
	}

	l.metrics.executed.Inc()
}

func (l *Loop) drop(n int) {
	l.pending.Sub(int64(n))
	l.metrics.pending.Sub(float64(n))
	l.metrics.dropped.Add(float64(n))
}
