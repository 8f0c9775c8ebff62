package logging

import (
	"sync"
)

// Logger is responsible for storing and logging output from the analysis
// pipeline as necessary
type Logger struct {
	errorCount int // Total encountered errors
	LogLevel   int

	// m is the mutex used to synchronize the printing of messages coming from
	// concurrently handled requests
	m *sync.Mutex
}

// Enumeration of the different log levels
const (
	LogLevelSilent  = iota // no output at all
	LogLevelError          // only errors
	LogLevelWarning        // errors and warnings
	LogLevelVerbose        // errors, warnings, and progress messages (DEFAULT)
)

// newLogger creates a new logger struct
func newLogger(loglevel int) Logger {
	return Logger{
		LogLevel: loglevel,
		m:        &sync.Mutex{},
	}
}

// handleDiagnostic prompts the logger to process a diagnostic -- diagnostics
// can come in concurrently from multiple connections so printing is serialized
func (l *Logger) handleDiagnostic(src string, d Diagnostic) {
	l.m.Lock()

	l.errorCount++

	if l.LogLevel > LogLevelSilent {
		displayDiagnostic(src, d)
	}

	l.m.Unlock()
}
