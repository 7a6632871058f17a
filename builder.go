package eventual

// ConfigurationError reports an invalid builder configuration. Build fails
// with it before any Deferred is constructed.
type ConfigurationError struct {
	msg string
}

func (e *ConfigurationError) Error() string {
	return e.msg
}

// Builder assembles an action and an optional executor into a Deferred. It
// is an immutable configuration value: SetAction and SetExecutor return
// modified copies, and Build validates once at the point of use, so a
// Builder can be reused and shared freely.
type Builder[T any, E error] struct {
	action   Action[T, E]
	executor Executor[T, E]
}

// NewBuilder returns an empty builder.
func NewBuilder[T any, E error]() Builder[T, E] {
	return Builder[T, E]{}
}

// SetAction returns a copy of the builder with the action set.
func (b Builder[T, E]) SetAction(action Action[T, E]) Builder[T, E] {
	b.action = action
	return b
}

// SetExecutor returns a copy of the builder with the executor set. When no
// executor is ever set, Build falls back to DefaultExecutor.
func (b Builder[T, E]) SetExecutor(executor Executor[T, E]) Builder[T, E] {
	b.executor = executor
	return b
}

// Build validates the configuration and constructs the Deferred, starting
// the action immediately. It fails with a *ConfigurationError when no
// action was set, whether or not an executor was; a missing executor alone
// is not an error.
//
// The error message reads "executor is null" for compatibility with the
// system this primitive was extracted from, even though the condition it
// reports is a missing action.
func (b Builder[T, E]) Build() (*Deferred[T, E], error) {
	if b.action == nil {
		return nil, &ConfigurationError{msg: "executor is null"}
	}
	executor := b.executor
	if executor == nil {
		executor = DefaultExecutor[T, E]()
	}
	return NewWithExecutor(b.action, executor), nil
}
