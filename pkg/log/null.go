package log

var _ Logger = nullLogger{}

// nullLogger discards everything, including Fatal, which
// does not exit.
type nullLogger struct{}

func (nullLogger) Fatal(string) {}

func (nullLogger) Infof(string, ...interface{}) {}

func (nullLogger) Errorf(string, ...interface{}) {}

func (nullLogger) Debugf(string, ...interface{}) {}

// NewNullLogger returns a logger that does nothing.
func NewNullLogger() Logger {
	return nullLogger{}
}
