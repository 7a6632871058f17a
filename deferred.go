package eventual

import (
	"sync"

	"github.com/casualjim/eventual/pkg/uuidx"
	"github.com/google/uuid"
)

// Resolver delivers the success value of an action.
type Resolver[T any] func(T)

// Rejecter delivers the failure value of an action.
type Rejecter[E error] func(E)

// Action is the unit of work driven by an executor. It reports its outcome
// either by calling resolve/reject directly, or by returning a non-nil error
// of its declared error type, which the executor routes according to its
// fault mode. Returning the zero value of E means the action raised nothing.
//
// The error type is a type parameter on purpose: an action declares the one
// failure type it can produce, so no runtime cast is ever needed between
// what the action raised and what the rejected-listeners receive.
type Action[T any, E error] func(resolve Resolver[T], reject Rejecter[E]) E

// Deferred represents the eventual success or failure of an action executed
// under a pluggable executor. Listeners registered through OnResolved and
// OnRejected are invoked, in registration order, every time the matching
// settlement path fires.
//
// A Deferred is a forward-only broadcast: it does not retain the settled
// value, so listeners registered after settlement has already fired are
// never retroactively invoked. This mirrors the behavior of the system it
// was extracted from; it is deliberately not a cached, replayable value.
type Deferred[T any, E error] struct {
	id       uuid.UUID
	executor Executor[T, E]

	// mu serializes listener registration against settlement broadcast.
	// Registration and broadcast can race when the executor runs the
	// action on its own goroutine.
	mu       sync.Mutex
	resolved []Resolver[T]
	rejected []Rejecter[E]
}

// New constructs a Deferred and immediately starts the action under the
// default executor (concurrent scheduling, convertible fault mode). The
// call returns before the action has necessarily settled.
func New[T any, E error](action Action[T, E]) *Deferred[T, E] {
	return NewWithExecutor(action, DefaultExecutor[T, E]())
}

// NewWithExecutor constructs a Deferred and immediately starts the action
// under the provided executor. Starting the action is the final step of
// construction: under inline scheduling the call blocks until the action
// returns, under concurrent scheduling it returns right away.
func NewWithExecutor[T any, E error](action Action[T, E], executor Executor[T, E]) *Deferred[T, E] {
	d := &Deferred[T, E]{
		id:       uuidx.New(),
		executor: executor,
	}
	executor.Execute(action, d.resolve, d.reject)
	return d
}

// ID returns the unique identifier assigned to this Deferred at
// construction. It is carried on settlement events for observability.
func (d *Deferred[T, E]) ID() uuid.UUID {
	return d.id
}

// OnResolved appends a listener for the success outcome and returns the
// receiver for chaining. Listeners are invoked in registration order, once
// per settlement broadcast. A listener registered after the Deferred has
// already resolved is never invoked for that settlement.
func (d *Deferred[T, E]) OnResolved(fn Resolver[T]) *Deferred[T, E] {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.resolved = append(d.resolved, fn)
	return d
}

// OnRejected appends a listener for the failure outcome and returns the
// receiver for chaining. The same ordering and forward-only semantics as
// OnResolved apply.
func (d *Deferred[T, E]) OnRejected(fn Rejecter[E]) *Deferred[T, E] {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rejected = append(d.rejected, fn)
	return d
}

// resolve broadcasts value to every resolved-listener registered so far, in
// registration order. There is no settle-once guard: each call re-invokes
// the full current listener sequence.
func (d *Deferred[T, E]) resolve(value T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, fn := range d.resolved {
		fn(value)
	}
}

// reject broadcasts err to every rejected-listener registered so far, in
// registration order.
func (d *Deferred[T, E]) reject(err E) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, fn := range d.rejected {
		fn(err)
	}
}
