package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// Empty IDs produce an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// TargetID records a target identifier under the key "target_id".
func TargetID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("target_id", id)
}

// TargetName records a target name under the key "target_name".
func TargetName(name string) slog.Attr {
	return slog.String("target_name", name)
}

// Decision records a validation outcome as a "decision" group.
func Decision(accepted bool, message string) slog.Attr {
	return slog.Group("decision",
		slog.Bool("accepted", accepted),
		slog.String("message", message),
	)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}
