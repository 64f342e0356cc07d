// Package sglog provides a simple logging abstraction for the sgreplay
// parser.
//
// By default, the library uses a no-op logger that discards all output.
// Callers can configure logging by passing a Logger into
// replayparser.Config.Logger.
//
// The package provides built-in support for zerolog via NewZerologAdapter,
// but any logger implementing the Logger interface can be used.
//
// Example with zerolog:
//
//	zlog := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	cfg := replayparser.Config{Logger: sglog.NewZerologAdapter(zlog)}
package sglog

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// F creates a Field with the given key and value.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logger defines the interface for logging during replay parsing.
// Implementations should handle structured logging with key-value fields.
type Logger interface {
	// Debug logs a message at debug level with optional structured fields.
	Debug(msg string, fields ...Field)

	// Warn logs a message at warn level with optional structured fields.
	Warn(msg string, fields ...Field)
}

// noopLogger discards all output. It is the default when no Logger is
// configured.
type noopLogger struct{}

// Noop returns a Logger that discards all output.
func Noop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(msg string, fields ...Field) {}
func (noopLogger) Warn(msg string, fields ...Field)  {}
