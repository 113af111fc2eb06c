// Package log provides the leveled logger used by the CPU host and,
// when tracing is enabled, by the CPU itself.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Fatal(str string)
}

type logger struct {
	mu  sync.Mutex
	out io.Writer

	exit func(code int)
}

// New returns a Logger writing to stdout.
func New() Logger {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter returns a Logger writing to w.
func NewWithWriter(w io.Writer) Logger {
	return &logger{out: w, exit: os.Exit}
}

func (l *logger) printf(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "["+level+"]\t"+format+"\n", args...)
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.printf("INFO", format, args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.printf("ERROR", format, args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.printf("DEBUG", format, args...)
}

// Fatal logs str and exits the process with status 1.
func (l *logger) Fatal(str string) {
	l.printf("FATAL", "%s", str)
	l.exit(1)
}
