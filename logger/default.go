package logger

import "sync/atomic"

var defLogger atomic.Pointer[Logger]

func init() {
	SetLogger(NewSlog(InfoLevel, false))
}

func def() Logger {
	return *defLogger.Load()
}

func Debug(msg string, keysAndValues ...any) {
	def().Debug(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...any) {
	def().Info(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...any) {
	def().Warn(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...any) {
	def().Error(msg, keysAndValues...)
}

func Fatal(msg string, keysAndValues ...any) {
	def().Fatal(msg, keysAndValues...)
}

func SetLevel(level Level) {
	def().SetLevel(level)
}

// GetLogger returns the default logger. Queues created without WithLogger log to it.
func GetLogger() Logger {
	return def()
}

// SetLogger replaces the default logger. A nil l is ignored.
func SetLogger(l Logger) {
	if l == nil {
		return
	}
	defLogger.Store(&l)
}

func With(keyValues ...any) Logger {
	return def().With(keyValues...)
}
