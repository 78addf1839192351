package restclient

// Logger receives request and response details when debug logging is
// enabled on a builder with WithDebug. The interface matches the logger
// used by the rest of the module so one implementation serves both.
type Logger interface {
	// Debug logs a debug message with structured fields.
	Debug(msg string, fields map[string]interface{})
	// Info logs an informational message with structured fields.
	Info(msg string, fields map[string]interface{})
	// Warn logs a warning message with structured fields.
	Warn(msg string, fields map[string]interface{})
	// Error logs an error message with structured fields.
	Error(msg string, fields map[string]interface{})
}
