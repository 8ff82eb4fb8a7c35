package logger

import "log"

// loggerWriter routes writes from a stdlib *log.Logger into a Logger's
// Info level, allowing packages that expect *log.Logger to share the
// daemon's logging backend.
type loggerWriter struct {
	l Logger
}

func (w loggerWriter) Write(p []byte) (int, error) {
	msg := string(p)
	if n := len(msg); n > 0 && msg[n-1] == '\n' {
		msg = msg[:n-1]
	}
	w.l.Info("%s", msg)
	return len(p), nil
}

// ToStdLogger adapts a Logger into a stdlib *log.Logger.
func ToStdLogger(l Logger) *log.Logger {
	return log.New(loggerWriter{l: l}, "", 0)
}
