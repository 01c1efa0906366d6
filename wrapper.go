package chanlog

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// NoResult is returned by Wrapper when the unit of work did not return.
const NoResult = -1

// Wrapper runs fn and flushes the log exactly once afterwards, whatever
// way fn exits. shouldWrite sets the flush flag before fn runs and
// defaults to true. A panic in fn turns flushing on, is recorded in the
// full buffer and is not propagated; the result is then NoResult.
// runtime.Goexit in fn is recorded too, but the goroutine still exits.
func (l *Logger) Wrapper(fn func() int, shouldWrite ...bool) int {
	return l.wrapper(1, fn, shouldWrite)
}

// WrapperE is Wrapper for work that reports failure with an error. A
// returned error is recorded like a panic and yields NoResult.
func (l *Logger) WrapperE(fn func() (int, error), shouldWrite ...bool) int {
	return l.wrapperE(1, fn, shouldWrite)
}

func (l *Logger) wrapperE(skip int, fn func() (int, error), shouldWrite []bool) int {
	site := callerFrame(skip + 1)
	return l.wrapper(skip+1, func() int {
		result, err := fn()
		if err != nil {
			l.setShouldWrite(true)
			l.errorAt(site, err)
			for _, line := range formatError(err) {
				l.errorAt(site, line)
			}
			return NoResult
		}
		return result
	}, shouldWrite)
}

func (l *Logger) wrapper(skip int, fn func() int, shouldWrite []bool) (result int) {
	l.setShouldWrite(len(shouldWrite) == 0 || shouldWrite[0])
	site := callerFrame(skip + 1)
	result = NoResult

	defer l.Flush()

	completed := false
	defer func() {
		if completed {
			return
		}
		r := recover()
		stack := callStack(0)
		l.setShouldWrite(true)

		var lines []string
		if r == nil {
			lines = formatGoexit(stack)
		} else {
			lines = formatPanic(r, stack)
		}
		for _, line := range lines {
			l.errorAt(site, line)
		}
	}()

	result = fn()
	completed = true
	return result
}

// Flush writes the full buffer to the output when the flush flag is set.
// Nothing is consumed, so repeated calls write the same content again.
func (l *Logger) Flush() error {
	l.mu.Lock()
	if !l.shouldWrite {
		l.mu.Unlock()
		return nil
	}
	data := joinLines(l.full)
	out := l.out
	l.mu.Unlock()

	if _, err := io.WriteString(out, data); err != nil {
		logrus.WithError(err).Warn("chanlog: failed to flush log")
		return errors.Wrap(err, "failed to flush log")
	}
	return nil
}

// WriteToFile writes a snapshot of the full buffer to path, replacing any
// existing content. The path may contain ~ and environment variable
// references. The flush flag is not consulted.
func (l *Logger) WriteToFile(path string) error {
	fullPath, err := expandPath(path)
	if err != nil {
		return err
	}

	data := joinLines(l.FullLines())

	file, err := os.OpenFile(fullPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(err, "failed to create log file")
	}
	if _, err := file.WriteString(data); err != nil {
		file.Close()
		return errors.Wrap(err, "failed to write log file")
	}
	if err := file.Close(); err != nil {
		return errors.Wrap(err, "failed to close log file")
	}
	return nil
}

// joinLines joins lines with newlines and terminates the last one.
func joinLines(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}
