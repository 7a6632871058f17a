package eventual

import (
	"context"
	"log/slog"
	"slices"

	"github.com/casualjim/eventual/events"
	"github.com/casualjim/eventual/pkg/slogx"
	json "github.com/goccy/go-json"
)

// Hook observes the settlement of deferreds. All three methods must be
// implemented; there is no partial variant, so adding an event type forces
// every implementation to decide how to handle it.
type Hook[T any, E error] interface {
	OnResolved(context.Context, events.Resolved[T])

	OnRejected(context.Context, events.Rejected[E])

	OnFault(context.Context, events.Faulted)
}

// Observe registers listeners on d that forward settlement to hook as
// typed events. It participates in the normal listener sequence: the same
// ordering and forward-only semantics apply, so observe before settlement
// or see nothing.
func Observe[T any, E error](ctx context.Context, d *Deferred[T, E], hook Hook[T, E]) *Deferred[T, E] {
	return d.
		OnResolved(func(value T) {
			hook.OnResolved(ctx, events.NewResolved(d.ID(), value))
		}).
		OnRejected(func(err E) {
			hook.OnRejected(ctx, events.NewRejected(d.ID(), err))
		})
}

// HookFaultHandler adapts a hook into a FaultHandler, for callers that need
// non-convertible faults reported without crashing the goroutine that ran
// the action. Pair it with WithFaultHandler. The fault stops at the hook,
// so the hook takes over the no-silent-swallowing obligation.
func HookFaultHandler[T any, E error](ctx context.Context, hook Hook[T, E]) FaultHandler {
	return func(f *Fault) {
		hook.OnFault(ctx, events.NewFaulted(f))
	}
}

// LoggingHook returns a hook that writes every settlement to slog.
func LoggingHook[T any, E error]() Hook[T, E] {
	return &loggingHook[T, E]{}
}

type loggingHook[T any, E error] struct{}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}

func (loggingHook[T, E]) OnResolved(ctx context.Context, ev events.Resolved[T]) {
	slog.InfoContext(ctx, "deferred resolved", "event", mustJSON(ev))
}

func (loggingHook[T, E]) OnRejected(ctx context.Context, ev events.Rejected[E]) {
	slog.WarnContext(ctx, "deferred rejected", "event", mustJSON(ev))
}

func (loggingHook[T, E]) OnFault(ctx context.Context, ev events.Faulted) {
	slog.ErrorContext(ctx, "non-convertible executor fault", slogx.Error(ev.Fault))
}

// NewCompositeHook combines multiple hooks into one; each event fans out to
// every hook in order.
func NewCompositeHook[T any, E error](hooks ...Hook[T, E]) Hook[T, E] {
	return CompositeHook[T, E](hooks)
}

// CompositeHook fans settlement events out to a list of hooks.
type CompositeHook[T any, E error] []Hook[T, E]

func (c CompositeHook[T, E]) OnResolved(ctx context.Context, ev events.Resolved[T]) {
	for h := range slices.Values(c) {
		h.OnResolved(ctx, ev)
	}
}

func (c CompositeHook[T, E]) OnRejected(ctx context.Context, ev events.Rejected[E]) {
	for h := range slices.Values(c) {
		h.OnRejected(ctx, ev)
	}
}

func (c CompositeHook[T, E]) OnFault(ctx context.Context, ev events.Faulted) {
	for h := range slices.Values(c) {
		h.OnFault(ctx, ev)
	}
}
