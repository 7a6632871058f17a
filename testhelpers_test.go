package eventual

// testFailure is the typed action error used throughout the tests.
type testFailure struct {
	msg string
}

func (f *testFailure) Error() string {
	return f.msg
}
