package logging

// Fields carries structured key/value pairs attached to a log line.
type Fields map[string]interface{}

// Logger provides logging functionality with structured fields
type Logger interface {
	Info(msg string, fields Fields)
	Error(msg string, err error, fields Fields)
	Warn(msg string, fields Fields)
	Debug(msg string, fields Fields)
	// With returns a logger that adds fields to every line.
	With(fields Fields) Logger
	// Component returns a logger tagged with a sub-component name.
	Component(name string) Logger
}
