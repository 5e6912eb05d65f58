/*
 * rkt
 *
 * A small Scheme-family interpreter.
 */

// Package rktlog provides the leveled loggers used by the interpreter and
// the CLI harness.
package rktlog

import (
	"fmt"
	"io"
	"log"
	"strings"

	"devt.de/krotik/common/datautil"
)

/*
Logger is implemented by every logging sink in this package.
*/
type Logger interface {
	LogError(m ...interface{})
	LogInfo(m ...interface{})
	LogDebug(m ...interface{})
}

/*
Level represents a logging level.
*/
type Level string

/*
Log levels, from least to most verbose.
*/
const (
	LevelError Level = "error"
	LevelInfo  Level = "info"
	LevelDebug Level = "debug"
)

/*
LevelLogger wraps a Logger and filters messages by level.
*/
type LevelLogger struct {
	logger Logger
	level  Level
}

/*
NewLevelLogger wraps logger with level-based filtering. level is
case-insensitive; an unrecognised value is an error.
*/
func NewLevelLogger(logger Logger, level string) (*LevelLogger, error) {
	l := Level(strings.ToLower(level))

	if l != LevelDebug && l != LevelInfo && l != LevelError {
		return nil, fmt.Errorf("invalid log level: %v", l)
	}

	return &LevelLogger{logger, l}, nil
}

/*
Level returns the current filtering level.
*/
func (ll *LevelLogger) Level() Level {
	return ll.level
}

/*
LogError adds a new error log message.
*/
func (ll *LevelLogger) LogError(m ...interface{}) {
	ll.logger.LogError(m...)
}

/*
LogInfo adds a new info log message, suppressed at LevelError.
*/
func (ll *LevelLogger) LogInfo(m ...interface{}) {
	if ll.level == LevelInfo || ll.level == LevelDebug {
		ll.logger.LogInfo(m...)
	}
}

/*
LogDebug adds a new debug log message, suppressed unless LevelDebug.
*/
func (ll *LevelLogger) LogDebug(m ...interface{}) {
	if ll.level == LevelDebug {
		ll.logger.LogDebug(m...)
	}
}

/*
MemoryLogger collects log messages in a RingBuffer in memory. It is the
logger interpreter.NewRuntimeProvider falls back to when given none.
*/
type MemoryLogger struct {
	*datautil.RingBuffer
}

/*
NewMemoryLogger returns a new memory logger keeping at most size messages
(0 means unbounded).
*/
func NewMemoryLogger(size int) *MemoryLogger {
	return &MemoryLogger{datautil.NewRingBuffer(size)}
}

func (ml *MemoryLogger) LogError(m ...interface{}) {
	ml.RingBuffer.Add(fmt.Sprintf("error: %v", fmt.Sprint(m...)))
}

func (ml *MemoryLogger) LogInfo(m ...interface{}) {
	ml.RingBuffer.Add(fmt.Sprint(m...))
}

func (ml *MemoryLogger) LogDebug(m ...interface{}) {
	ml.RingBuffer.Add(fmt.Sprintf("debug: %v", fmt.Sprint(m...)))
}

/*
Slice returns the contents of the current log as a slice, oldest first.
*/
func (ml *MemoryLogger) Slice() []string {
	sl := ml.RingBuffer.Slice()
	ret := make([]string, len(sl))
	for i, lm := range sl {
		ret[i] = lm.(string)
	}
	return ret
}

/*
StdOutLogger writes log messages through the standard log package.
*/
type StdOutLogger struct {
	stdlog func(v ...interface{})
}

/*
NewStdOutLogger returns a stdout logger instance.
*/
func NewStdOutLogger() *StdOutLogger {
	return &StdOutLogger{log.Print}
}

func (sl *StdOutLogger) LogError(m ...interface{}) {
	sl.stdlog(fmt.Sprintf("error: %v", fmt.Sprint(m...)))
}

func (sl *StdOutLogger) LogInfo(m ...interface{}) {
	sl.stdlog(fmt.Sprint(m...))
}

func (sl *StdOutLogger) LogDebug(m ...interface{}) {
	sl.stdlog(fmt.Sprintf("debug: %v", fmt.Sprint(m...)))
}

/*
NullLogger discards every message.
*/
type NullLogger struct{}

func NewNullLogger() *NullLogger { return &NullLogger{} }

func (nl *NullLogger) LogError(m ...interface{}) {}
func (nl *NullLogger) LogInfo(m ...interface{})  {}
func (nl *NullLogger) LogDebug(m ...interface{}) {}

/*
BufferLogger writes log messages to an arbitrary io.Writer, used by the
CLI to let -console and -debug share one destination.
*/
type BufferLogger struct {
	buf io.Writer
}

/*
NewBufferLogger returns a buffer logger instance.
*/
func NewBufferLogger(buf io.Writer) *BufferLogger {
	return &BufferLogger{buf}
}

func (bl *BufferLogger) LogError(m ...interface{}) {
	fmt.Fprintln(bl.buf, fmt.Sprintf("error: %v", fmt.Sprint(m...)))
}

func (bl *BufferLogger) LogInfo(m ...interface{}) {
	fmt.Fprintln(bl.buf, fmt.Sprint(m...))
}

func (bl *BufferLogger) LogDebug(m ...interface{}) {
	fmt.Fprintln(bl.buf, fmt.Sprintf("debug: %v", fmt.Sprint(m...)))
}
