/*
Package eventual provides a deferred-computation primitive: a value that
represents the eventual success or failure of an action executed under a
pluggable executor, with listeners registered for each outcome.

The package implements single-level settlement only. There are no
combinators, no cancellation and no timeouts; a Deferred starts its action
at construction time and broadcasts the outcome to whichever listeners are
registered when settlement fires.

# Basic Usage

Construct a Deferred through the builder, register listeners, and let the
executor drive the action:

	d, err := eventual.NewBuilder[string, error]().
		SetAction(func(resolve eventual.Resolver[string], _ eventual.Rejecter[error]) error {
			resolve("done")
			return nil
		}).
		Build()
	if err != nil {
		// Handle configuration error
	}
	d.OnResolved(func(v string) { fmt.Println(v) })

# Architecture

The package is built around three concepts:

1. Executors (executor.go)
  - Decide where the action runs: inline on the caller, on its own
    goroutine, or on a bounded worker pool (pool.go)
  - Decide how the action's typed error is routed: converted into a
    rejection, or escalated as an unrecoverable *Fault

2. Deferred (deferred.go)
  - Holds the ordered listener sequences
  - Broadcasts settlement to listeners, serialized behind one mutex

3. Builder (builder.go)
  - Immutable configuration value
  - Validates once, at Build time

Settlement is a forward-only broadcast. The Deferred keeps no settled
state: a listener registered after settlement never fires, and a second
settlement re-runs the full listener sequence. Callers that need replay
semantics should look elsewhere; this primitive is deliberately faithful to
the system it models.

Observability is layered on top rather than built in: the Hook interface
(hook.go) together with the events package turns settlements into typed,
serializable records, and LoggingHook writes them to slog.
*/
package eventual
