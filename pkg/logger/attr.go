package logger

import (
	"fmt"
	"log/slog"
)

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// stringerValue defers formatting until a handler resolves the record,
// so disabled loggers never call String. fmt.Sprint recovers from
// nil-receiver panics and prints "<nil>" instead.
type stringerValue struct {
	v any
}

func (s stringerValue) LogValue() slog.Value {
	if _, ok := s.v.(fmt.Stringer); ok {
		return slog.StringValue(fmt.Sprint(s.v))
	}
	return slog.AnyValue(s.v)
}

// State records a state value under the key "state".
// Values implementing fmt.Stringer are recorded by name when the record is handled.
func State(s any) slog.Attr {
	return slog.Any("state", stringerValue{v: s})
}

// Key records a registration key under the key "key".
// If key is nil, it returns an empty Attr.
func Key(key fmt.Stringer) slog.Attr {
	if key == nil {
		return slog.Attr{}
	}
	return slog.Any("key", stringerValue{v: key})
}

// Callbacks records a callback count under the key "callbacks".
func Callbacks(n int) slog.Attr {
	return slog.Int("callbacks", n)
}

// HistorySize records a history capacity under the key "history_size".
func HistorySize(n int) slog.Attr {
	return slog.Int("history_size", n)
}
