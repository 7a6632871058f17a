package eventual

// FaultHandler receives the fault raised when an action errors under a
// non-convertible executor. Handlers are the last stop before the platform's
// unhandled-fault path; a handler that does not re-panic takes on the
// responsibility of reporting the fault somewhere.
type FaultHandler func(*Fault)

// PanicFaultHandler is the default FaultHandler. It panics with the fault:
// under inline scheduling the panic propagates synchronously to the caller,
// under concurrent scheduling it terminates the goroutine running the
// action, which crashes the process through the runtime's unhandled-panic
// reporting.
func PanicFaultHandler(f *Fault) {
	panic(f)
}

// Fault wraps the error an action raised under a non-convertible executor.
// It never travels through the rejection channel.
type Fault struct {
	cause error
}

// NewFault wraps cause in a Fault.
func NewFault(cause error) *Fault {
	return &Fault{cause: cause}
}

func (f *Fault) Error() string {
	return "exception thrown in non-convertible executor: " + f.cause.Error()
}

// Unwrap exposes the original action error for errors.Is and errors.As.
func (f *Fault) Unwrap() error {
	return f.cause
}
