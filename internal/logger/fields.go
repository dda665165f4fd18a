package logger

// Fields is an alias for map[string]interface{} for convenience.
type Fields map[string]interface{}

// Standard tracing fields, propagated through the call chain via
// context.
const (
	// FieldRequestID is the HTTP request ID (UUID)
	FieldRequestID = "request_id"

	// FieldComponent is the component/module name
	FieldComponent = "component"

	// FieldJobID is the tracked job application ID
	FieldJobID = "job_id"
)

// Standard metric fields, attached at the log call site.
const (
	// FieldDurationMs is the execution duration in milliseconds
	FieldDurationMs = "duration_ms"

	// FieldStatus is the HTTP or operation status
	FieldStatus = "status"

	// FieldSize is the response size in bytes
	FieldSize = "size"
)
