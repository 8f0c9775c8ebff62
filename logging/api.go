package logging

// logger is a global reference to a shared Logger (created/initialized with
// the CLI, but separated for general usage)
var logger Logger

// Initialize initializes the global logger with the provided log level
func Initialize(loglevelname string) {
	var loglevel int
	switch loglevelname {
	case "silent":
		loglevel = LogLevelSilent
	case "error":
		loglevel = LogLevelError
	case "warn", "warning":
		loglevel = LogLevelWarning
	// everything else (including invalid log levels) should default to verbose
	default:
		loglevel = LogLevelVerbose
	}

	logger = newLogger(loglevel)
}

// ShouldProceed indicates whether or not the log module has encountered any
// errors.  Useful as an accumulator when multiple items are processed in one
// command invocation
func ShouldProceed() bool {
	return logger.errorCount == 0
}

// LogDiagnostic logs an analysis diagnostic (user-induced, bad source code)
// against the source text it was produced from
func LogDiagnostic(src string, d Diagnostic) {
	logger.handleDiagnostic(src, d)
}

// LogInfo logs an informational message (suppressed below verbose)
func LogInfo(tag, msg string) {
	if logger.LogLevel >= LogLevelVerbose {
		PrintInfoMessage(tag, msg)
	}
}
