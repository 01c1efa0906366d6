package chanlog

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// stackTracer is implemented by errors created or wrapped with github.com/pkg/errors.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// formatError renders err as a failure report. Frames recorded by
// github.com/pkg/errors are included when the error carries them.
func formatError(err error) []string {
	if err == nil {
		return nil
	}
	var st stackTracer
	var stack []Frame
	if errors.As(err, &st) {
		stack = tracedFrames(st.StackTrace())
	}
	return failureLines(stack, fmt.Sprintf("%T", errors.Cause(err)), err.Error())
}

// formatPanic renders a recovered panic value. stack must be the stack of
// the panicking goroutine captured inside the deferred recover.
func formatPanic(value any, stack []Frame) []string {
	msg := stringifyMessage(value)
	if err, ok := value.(error); ok {
		msg = err.Error()
	}
	return failureLines(panicOrigin(stack, "runtime.gopanic"), fmt.Sprintf("panic %T", value), msg)
}

// formatGoexit renders a non-local exit through runtime.Goexit.
func formatGoexit(stack []Frame) []string {
	return failureLines(panicOrigin(stack, "runtime.Goexit"), "runtime.Goexit", "unit of work exited without returning")
}

// failureLines lays out a report: header, frames outermost first, then the
// type and message. Multi-line messages are kept as separate lines.
func failureLines(stack []Frame, kind, msg string) []string {
	lines := make([]string, 0, len(stack)+2)
	if len(stack) > 0 {
		lines = append(lines, "stack trace (most recent call last):")
		for _, f := range reversed(stack) {
			lines = append(lines, fmt.Sprintf("  %s:%d %s", f.Base(), f.Line, f.Scope()))
		}
	}
	return append(lines, strings.Split(kind+": "+msg, "\n")...)
}

// checkFrames are the functions a failed check passes through on its way
// to panic, named by scope without type arguments.
var checkFrames = map[string]bool{
	"(*Logger).checkFailed": true,
	"checkGE":               true,
	"checkGT":               true,
	"checkLE":               true,
	"checkLT":               true,
	"CheckGE":               true,
	"CheckGT":               true,
	"CheckLE":               true,
	"CheckLT":               true,
	"CheckGEOn":             true,
	"CheckGTOn":             true,
	"CheckLEOn":             true,
	"CheckLTOn":             true,
}

var pkgPath = reflect.TypeOf(Frame{}).PkgPath()

func isCheckFrame(f Frame) bool {
	if !strings.HasPrefix(f.Function, pkgPath+".") {
		return false
	}
	scope, _, _ := strings.Cut(f.Scope(), "[")
	return checkFrames[scope]
}

// panicOrigin drops the frames of the deferred handler, of the runtime and
// of a failed check up to the point where the panic or exit was raised.
func panicOrigin(stack []Frame, marker string) []Frame {
	for i, f := range stack {
		if f.Function != marker {
			continue
		}
		rest := stack[i+1:]
		for len(rest) > 0 && (strings.HasPrefix(rest[0].Function, "runtime.") || isCheckFrame(rest[0])) {
			rest = rest[1:]
		}
		return rest
	}
	return stack
}

// tracedFrames converts a github.com/pkg/errors stack trace into frames.
func tracedFrames(st errors.StackTrace) []Frame {
	stack := make([]Frame, 0, len(st))
	for _, f := range st {
		// errors.Frame holds a return address
		pc := uintptr(f) - 1
		fn := runtime.FuncForPC(pc)
		if fn == nil || fn.Name() == "runtime.goexit" {
			continue
		}
		file, line := fn.FileLine(pc)
		stack = append(stack, Frame{File: file, Line: line, Function: fn.Name()})
	}
	return stack
}
