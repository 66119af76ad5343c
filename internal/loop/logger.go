package loop

import (
	"io"
	"sync"

	"github.com/go-logfmt/logfmt"
)

// Logger is the leveled, key-value logger the driver writes to.
// *log.Logger from charmbracelet/log satisfies it.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(interface{}, ...interface{}) {}
func (nopLogger) Info(interface{}, ...interface{})  {}
func (nopLogger) Warn(interface{}, ...interface{})  {}
func (nopLogger) Error(interface{}, ...interface{}) {}

// runLogger prefixes every line with the run ID.
type runLogger struct {
	next  Logger
	runID string
}

func (l runLogger) with(keyvals []interface{}) []interface{} {
	return append([]interface{}{"run", l.runID}, keyvals...)
}

func (l runLogger) Debug(msg interface{}, keyvals ...interface{}) {
	l.next.Debug(msg, l.with(keyvals)...)
}

func (l runLogger) Info(msg interface{}, keyvals ...interface{}) {
	l.next.Info(msg, l.with(keyvals)...)
}

func (l runLogger) Warn(msg interface{}, keyvals ...interface{}) {
	l.next.Warn(msg, l.with(keyvals)...)
}

func (l runLogger) Error(msg interface{}, keyvals ...interface{}) {
	l.next.Error(msg, l.with(keyvals)...)
}

// LogfmtLogger writes one logfmt record per line. The firmware logs through
// it on the serial port, where a terminal-styled logger cannot be linked.
type LogfmtLogger struct {
	mu    sync.Mutex
	enc   *logfmt.Encoder
	debug bool
}

// NewLogfmtLogger creates a logger writing to w. Debug lines are dropped
// unless debug is set.
func NewLogfmtLogger(w io.Writer, debug bool) *LogfmtLogger {
	return &LogfmtLogger{enc: logfmt.NewEncoder(w), debug: debug}
}

// Debug implements Logger.
func (l *LogfmtLogger) Debug(msg interface{}, keyvals ...interface{}) {
	if l.debug {
		l.write("debug", msg, keyvals)
	}
}

// Info implements Logger.
func (l *LogfmtLogger) Info(msg interface{}, keyvals ...interface{}) {
	l.write("info", msg, keyvals)
}

// Warn implements Logger.
func (l *LogfmtLogger) Warn(msg interface{}, keyvals ...interface{}) {
	l.write("warn", msg, keyvals)
}

// Error implements Logger.
func (l *LogfmtLogger) Error(msg interface{}, keyvals ...interface{}) {
	l.write("error", msg, keyvals)
}

// write always terminates the record, so a failed write cuts a line short
// instead of merging it with the next one.
func (l *LogfmtLogger) write(level string, msg interface{}, keyvals []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.enc.EncodeKeyvals("level", level, "msg", msg); err == nil {
		_ = l.enc.EncodeKeyvals(keyvals...)
	}
	_ = l.enc.EndRecord()
	l.enc.Reset()
}
