package slogx

import (
	"fmt"
	"log/slog"
)

// Error returns a slog.Attr for the provided error, keyed "error" with the
// error's message as the value.
func Error(err error) slog.Attr {
	return slog.String("error", err.Error())
}

// Stringer returns a slog.Attr with the given key and the string
// representation of the fmt.Stringer value. Useful for logging identifiers
// like UUIDs without converting them at every call site.
func Stringer(key string, value fmt.Stringer) slog.Attr {
	return slog.String(key, value.String())
}
