package shared

// Logger is the logging capability the examples depend on.
// Implementations live in infrastructure/logging.
type Logger interface {
	Log(message string) error
}

// LoggerFunc adapts a plain function to Logger.
type LoggerFunc func(message string) error

func (f LoggerFunc) Log(message string) error { return f(message) }
