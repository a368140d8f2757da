package renderer

import (
	"log"
	"os"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DefaultLogger implements core.Logger on top of the standard log package.
// It writes to stderr so that stdout stays free for image data.
type DefaultLogger struct {
	logger *log.Logger
}

// Printf formats and writes one log line
func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	dl.logger.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{logger: log.New(os.Stderr, "", log.LstdFlags)}
}

// discardLogger drops every message
type discardLogger struct{}

func (discardLogger) Printf(format string, args ...interface{}) {}

// NewDiscardLogger returns a logger that ignores all output, useful in tests
func NewDiscardLogger() core.Logger {
	return discardLogger{}
}
