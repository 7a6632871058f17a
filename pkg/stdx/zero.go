package stdx

// Zero returns the zero value for the type T. It exists because actions
// with a concrete error type need to return "no error" without naming a
// local variable for it.
func Zero[T any]() T {
	var zero T
	return zero
}
