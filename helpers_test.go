package chanlog

import (
	"bytes"
	"testing"
)

// newTestLogger returns a logger flushing into the returned buffer, with
// the given channels enabled instead of the defaults.
func newTestLogger(t *testing.T, channels ...string) (*Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	if channels == nil {
		channels = []string{}
	}
	return New(&Config{Channels: channels, Output: buf}), buf
}

// useDefault installs l as the default logger for the duration of the test.
func useDefault(t *testing.T, l *Logger) {
	t.Helper()
	prev := Default()
	SetDefault(l)
	t.Cleanup(func() { SetDefault(prev) })
}
