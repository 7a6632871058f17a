package eventual

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaultMessage(t *testing.T) {
	fault := NewFault(errors.New("underlying problem"))
	assert.EqualError(t, fault, "exception thrown in non-convertible executor: underlying problem")
}

func TestFaultUnwrap(t *testing.T) {
	cause := &testFailure{msg: "root cause"}
	fault := NewFault(cause)

	assert.Same(t, cause, fault.Unwrap())
	assert.ErrorIs(t, fault, cause)

	var tf *testFailure
	require.ErrorAs(t, fault, &tf)
	assert.Same(t, cause, tf)
}

func TestFaultWrapsWrappedErrors(t *testing.T) {
	inner := errors.New("inner")
	fault := NewFault(fmt.Errorf("outer: %w", inner))
	assert.ErrorIs(t, fault, inner)
}

func TestPanicFaultHandler(t *testing.T) {
	fault := NewFault(errors.New("boom"))
	defer func() {
		assert.Same(t, fault, recover())
	}()
	PanicFaultHandler(fault)
	t.Fatal("handler did not panic")
}
