package eventual

import (
	"github.com/casualjim/eventual/pkg/reflectx"
	"github.com/fogfish/opts"
)

// Scheduling selects where an executor runs its action.
type Scheduling int8

const (
	// Concurrent runs the action on its own goroutine; the caller returns
	// before the action has necessarily settled.
	Concurrent Scheduling = iota
	// Inline runs the action synchronously on the calling goroutine; the
	// caller is blocked until the action returns.
	Inline
)

func (s Scheduling) String() string {
	if s == Inline {
		return "inline"
	}
	return "concurrent"
}

// FaultMode selects what an executor does with the typed error an action
// returns.
type FaultMode int8

const (
	// Convertible delivers the action's error to the rejected-listeners.
	Convertible FaultMode = iota
	// NonConvertible never delivers the action's error to a
	// rejected-listener. The error is wrapped in a *Fault and handed to
	// the executor's fault handler instead.
	NonConvertible
)

func (m FaultMode) String() string {
	if m == NonConvertible {
		return "non-convertible"
	}
	return "convertible"
}

// Executor is the policy that drives an action: where it runs and how its
// typed error is routed.
type Executor[T any, E error] interface {
	Execute(action Action[T, E], resolve Resolver[T], reject Rejecter[E])
}

// Config carries the executor policy knobs. It is consumed once when the
// executor is constructed and never mutated afterwards.
type Config struct {
	scheduling Scheduling
	faultMode  FaultMode
	onFault    FaultHandler
}

var (
	// WithScheduling selects inline or concurrent execution.
	WithScheduling = opts.ForName[Config, Scheduling]("scheduling")
	// WithFaultMode selects convertible or non-convertible error routing.
	WithFaultMode = opts.ForName[Config, FaultMode]("faultMode")
	// WithFaultHandler installs the hook that receives the *Fault raised by
	// a non-convertible executor. The default handler panics with the
	// fault, which for inline scheduling propagates to the caller and for
	// concurrent scheduling crashes the goroutine running the action. It
	// must never swallow the fault silently.
	WithFaultHandler = opts.ForName[Config, FaultHandler]("onFault")
)

type executor[T any, E error] struct {
	cfg Config
}

// NewExecutor builds an executor from the supplied options. With no options
// it is equivalent to DefaultExecutor: concurrent scheduling, convertible
// fault mode, panicking fault handler.
func NewExecutor[T any, E error](options ...opts.Option[Config]) (Executor[T, E], error) {
	cfg := Config{onFault: PanicFaultHandler}
	if err := opts.Apply(&cfg, options); err != nil {
		return nil, err
	}
	return &executor[T, E]{cfg: cfg}, nil
}

// DefaultExecutor returns the executor used when none is configured:
// concurrent scheduling with convertible fault mode.
func DefaultExecutor[T any, E error]() Executor[T, E] {
	return &executor[T, E]{cfg: Config{onFault: PanicFaultHandler}}
}

func (x *executor[T, E]) Execute(action Action[T, E], resolve Resolver[T], reject Rejecter[E]) {
	if x.cfg.scheduling == Inline {
		runAction(x.cfg, action, resolve, reject)
		return
	}
	go runAction(x.cfg, action, resolve, reject)
}

// runAction invokes the action and routes its typed error per the fault
// mode. Shared between the plain executor and the pool executor so the two
// cannot drift apart.
func runAction[T any, E error](cfg Config, action Action[T, E], resolve Resolver[T], reject Rejecter[E]) {
	err := action(resolve, reject)
	if reflectx.IsNil(err) {
		return
	}
	if cfg.faultMode == Convertible {
		reject(err)
		return
	}
	cfg.onFault(NewFault(err))
}
