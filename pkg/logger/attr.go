package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Form records the form name under the key "form".
func Form(name string) slog.Attr {
	return slog.String("form", name)
}

// Instance records a controller instance id under the key "instance".
func Instance(id string) slog.Attr {
	return slog.String("instance", id)
}

// Field records a form field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Revision records a state revision under the key "revision".
func Revision(rev uint64) slog.Attr {
	return slog.Uint64("revision", rev)
}

// Transition records a phase change as a "phase" group with from, to and event.
func Transition(from, to, event string) slog.Attr {
	return slog.Group("phase",
		slog.String("from", from),
		slog.String("to", to),
		slog.String("event", event),
	)
}

// Store records the persistence backend name under the key "store".
func Store(name string) slog.Attr {
	return slog.String("store", name)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}
