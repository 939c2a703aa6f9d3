package logger

import "log/slog"

// Standard field keys for structured logging. Every log statement uses these
// keys so that aggregated logs stay queryable across the API, the store and
// the CLI.
const (
	// Distributed tracing
	KeyTraceID = "trace_id" // OpenTelemetry trace ID
	KeySpanID  = "span_id"  // OpenTelemetry span ID

	// HTTP request
	KeyRequestID  = "request_id"  // chi request ID
	KeyMethod     = "method"      // HTTP method
	KeyRoute      = "route"       // matched route pattern
	KeyPath       = "path"        // raw request path
	KeyStatus     = "status"      // HTTP status code
	KeyRemoteAddr = "remote_addr" // client address

	// Caller identity
	KeyUserID  = "user_id"  // token subject
	KeyGroupID = "group_id" // caller's tenant group

	// Domain entities
	KeySurveyID = "survey_id" // owning survey
	KeyEntity   = "entity"    // entity kind: building, waste, attachment, ...
	KeyEntityID = "entity_id" // entity identifier

	// Operation metadata
	KeyDurationMs = "duration_ms" // operation duration in milliseconds
	KeyError      = "error"       // error message
	KeyCount      = "count"       // result count
	KeyComponent  = "component"   // subsystem: api, store, telemetry
)

// Typed attribute constructors. Using these instead of raw key/value pairs
// keeps field names consistent.

// TraceID returns a slog.Attr for an OpenTelemetry trace ID.
func TraceID(id string) slog.Attr {
	return slog.String(KeyTraceID, id)
}

// SpanID returns a slog.Attr for an OpenTelemetry span ID.
func SpanID(id string) slog.Attr {
	return slog.String(KeySpanID, id)
}

// RequestID returns a slog.Attr for the request correlation ID.
func RequestID(id string) slog.Attr {
	return slog.String(KeyRequestID, id)
}

// Method returns a slog.Attr for the HTTP method.
func Method(m string) slog.Attr {
	return slog.String(KeyMethod, m)
}

// Route returns a slog.Attr for the matched route pattern.
func Route(r string) slog.Attr {
	return slog.String(KeyRoute, r)
}

// Path returns a slog.Attr for the raw request path.
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// Status returns a slog.Attr for the HTTP status code.
func Status(code int) slog.Attr {
	return slog.Int(KeyStatus, code)
}

// RemoteAddr returns a slog.Attr for the client address.
func RemoteAddr(addr string) slog.Attr {
	return slog.String(KeyRemoteAddr, addr)
}

// UserID returns a slog.Attr for the caller's user id.
func UserID(id string) slog.Attr {
	return slog.String(KeyUserID, id)
}

// GroupID returns a slog.Attr for the caller's tenant group.
func GroupID(id string) slog.Attr {
	return slog.String(KeyGroupID, id)
}

// SurveyID returns a slog.Attr for the owning survey.
func SurveyID(id string) slog.Attr {
	return slog.String(KeySurveyID, id)
}

// Entity returns a slog.Attr for the entity kind.
func Entity(kind string) slog.Attr {
	return slog.String(KeyEntity, kind)
}

// EntityID returns a slog.Attr for the entity identifier.
func EntityID(id string) slog.Attr {
	return slog.String(KeyEntityID, id)
}

// DurationMs returns a slog.Attr for a duration in milliseconds.
func DurationMs(ms float64) slog.Attr {
	return slog.Float64(KeyDurationMs, ms)
}

// Err returns a slog.Attr for an error. A nil error yields an empty attr
// which the text handler drops.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Count returns a slog.Attr for a result count.
func Count(n int) slog.Attr {
	return slog.Int(KeyCount, n)
}

// Component returns a slog.Attr naming the subsystem emitting the record.
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}
