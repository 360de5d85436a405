package core

// LogLevel is the minimum severity a Logger writes
type LogLevel int

// Log levels, lowest first
const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// String returns the config name of the level
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "debug"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	default:
		return "info"
	}
}

// Logger is the structured logger every layer writes through. Fields are flat key/value
// pairs; request-scoped callers add "request_id" and "user_id".
type Logger interface {
	SetLevel(level LogLevel)
	GetLevel() LogLevel

	Debug(message string, fields map[string]any)
	Info(message string, fields map[string]any)
	Warn(message string, fields map[string]any)
	Error(message string, fields map[string]any)

	// Flush writes out anything still buffered; call it before the process exits
	Flush() error
}
