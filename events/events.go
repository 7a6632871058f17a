// Package events defines the serializable records emitted when a deferred
// settles: Resolved, Rejected, and Faulted. They exist for observability
// only; the settlement broadcast itself carries plain values, and nothing
// in the core depends on this package being consumed.
package events

import (
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/tidwall/sjson"
)

var (
	resolvedJSON = []byte(`{"type":"resolved"}`)
	rejectedJSON = []byte(`{"type":"rejected"}`)
	faultedJSON  = []byte(`{"type":"faulted"}`)
)

// Event is the marker interface for settlement events.
type Event interface {
	settlementEvent()
}

// Resolved records a successful settlement.
type Resolved[T any] struct {
	DeferredID uuid.UUID       `json:"deferred_id"`
	Value      T               `json:"value"`
	Timestamp  strfmt.DateTime `json:"timestamp"`
}

// NewResolved builds a Resolved event stamped with the current time.
func NewResolved[T any](id uuid.UUID, value T) Resolved[T] {
	return Resolved[T]{
		DeferredID: id,
		Value:      value,
		Timestamp:  strfmt.DateTime(time.Now()),
	}
}

func (Resolved[T]) settlementEvent() {}

// MarshalJSON implements custom JSON marshaling for Resolved[T]
func (r Resolved[T]) MarshalJSON() ([]byte, error) {
	result := resolvedJSON

	var err error
	result, err = sjson.SetBytes(result, "deferred_id", r.DeferredID.String())
	if err != nil {
		return nil, err
	}

	valueBytes, err := json.Marshal(r.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %w", err)
	}
	result, err = sjson.SetRawBytes(result, "value", valueBytes)
	if err != nil {
		return nil, err
	}

	if !r.Timestamp.IsZero() {
		result, err = sjson.SetBytes(result, "timestamp", r.Timestamp.String())
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Rejected records a failed settlement delivered through the rejection
// channel.
type Rejected[E error] struct {
	DeferredID uuid.UUID       `json:"deferred_id"`
	Err        E               `json:"error"`
	Timestamp  strfmt.DateTime `json:"timestamp"`
}

// NewRejected builds a Rejected event stamped with the current time.
func NewRejected[E error](id uuid.UUID, err E) Rejected[E] {
	return Rejected[E]{
		DeferredID: id,
		Err:        err,
		Timestamp:  strfmt.DateTime(time.Now()),
	}
}

func (Rejected[E]) settlementEvent() {}

// MarshalJSON implements custom JSON marshaling for Rejected[E]
func (r Rejected[E]) MarshalJSON() ([]byte, error) {
	result := rejectedJSON

	var err error
	result, err = sjson.SetBytes(result, "deferred_id", r.DeferredID.String())
	if err != nil {
		return nil, err
	}

	result, err = sjson.SetBytes(result, "error", r.Err.Error())
	if err != nil {
		return nil, err
	}

	if !r.Timestamp.IsZero() {
		result, err = sjson.SetBytes(result, "timestamp", r.Timestamp.String())
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Faulted records an error escalated by a non-convertible executor. It
// carries no deferred ID: the executor raises the fault before it knows
// which deferred it is driving.
type Faulted struct {
	Fault     error           `json:"fault"`
	Timestamp strfmt.DateTime `json:"timestamp"`
}

// NewFaulted builds a Faulted event stamped with the current time.
func NewFaulted(fault error) Faulted {
	return Faulted{
		Fault:     fault,
		Timestamp: strfmt.DateTime(time.Now()),
	}
}

func (Faulted) settlementEvent() {}

// MarshalJSON implements custom JSON marshaling for Faulted
func (f Faulted) MarshalJSON() ([]byte, error) {
	result := faultedJSON

	var err error
	result, err = sjson.SetBytes(result, "fault", f.Fault.Error())
	if err != nil {
		return nil, err
	}

	if !f.Timestamp.IsZero() {
		result, err = sjson.SetBytes(result, "timestamp", f.Timestamp.String())
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}
