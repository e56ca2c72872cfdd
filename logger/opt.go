package logger

import "log"

// A LoggerOptFn is a functional option configuring a YardLogger when constructing a new one.
type LoggerOptFn func(*YardLogger)

// WithEnv sets the environment YardLogger is operating in.
func WithEnv(env string) func(*YardLogger) {
	return func(l *YardLogger) {
		l.env = env
	}
}

// WithLevel sets the log level YardLogger uses.
func WithLevel(level LogLevel) func(*YardLogger) {
	return func(l *YardLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger YardLogger uses.
func WithLogger(log *log.Logger) func(*YardLogger) {
	return func(l *YardLogger) {
		l.l = log
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) func(*YardLogger) {
	return func(l *YardLogger) {
		l.skip = skip
	}
}
