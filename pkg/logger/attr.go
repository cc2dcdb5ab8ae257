package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
// Empty attributes are dropped.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	kept := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		if !a.Equal(slog.Attr{}) {
			kept = append(kept, a)
		}
	}
	return slog.Attr{Key: name, Value: slog.GroupValue(kept...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Field records a validated field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Fields records validated field names under the key "fields".
// If names is empty, it returns an empty Attr.
func Fields(names ...string) slog.Attr {
	if len(names) == 0 {
		return slog.Attr{}
	}
	return slog.Any("fields", names)
}

// Strict records the grammar strictness under the key "strict".
func Strict(strict bool) slog.Attr {
	return slog.Bool("strict", strict)
}

// Kind records a validation error kind under the key "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// OptionalInt records n under key when set is true, otherwise it returns
// an empty Attr.
func OptionalInt(key string, n int, set bool) slog.Attr {
	if !set {
		return slog.Attr{}
	}
	return slog.Int(key, n)
}

// Count records a number of processed items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}
