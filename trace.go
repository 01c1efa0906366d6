package chanlog

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// maxStackDepth bounds how many frames a single capture records.
const maxStackDepth = 64

// Frame is one call site: source file, line and enclosing function.
type Frame struct {
	File     string
	Line     int
	Function string
}

// Base returns the file name without its directory.
func (f Frame) Base() string {
	if f.File == "" {
		return "?"
	}
	return filepath.Base(f.File)
}

// Scope returns the function name without import path and package name,
// e.g. "(*Server).Run" or "TestParse.func1".
func (f Frame) Scope() string {
	return scopeName(f.Function)
}

func scopeName(function string) string {
	if function == "" {
		return "?"
	}
	name := function
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if _, rest, ok := strings.Cut(name, "."); ok {
		return rest
	}
	return name
}

// callStack captures the active call frames, innermost first.
// skip 0 makes the caller of callStack the first frame.
// The goroutine entry trampoline runtime.goexit is left out.
func callStack(skip int) []Frame {
	pc := make([]uintptr, maxStackDepth)
	// 0 is runtime.Callers, 1 is callStack
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pc[:n])
	stack := make([]Frame, 0, n)
	for {
		frame, more := frames.Next()
		if frame.Function != "runtime.goexit" {
			stack = append(stack, Frame{
				File:     frame.File,
				Line:     frame.Line,
				Function: frame.Function,
			})
		}
		if !more {
			break
		}
	}
	return stack
}

// callerFrame returns the frame skip levels above the caller of callerFrame.
// A zero Frame is returned when the stack is shallower than that.
func callerFrame(skip int) Frame {
	stack := callStack(skip + 1)
	if len(stack) == 0 {
		return Frame{}
	}
	return stack[0]
}

// reversed returns the frames outermost first.
func reversed(stack []Frame) []Frame {
	out := make([]Frame, len(stack))
	for i, f := range stack {
		out[len(stack)-1-i] = f
	}
	return out
}

// stackLines renders frames, outermost first, one line per frame.
func stackLines(stack []Frame) []string {
	lines := make([]string, 0, len(stack))
	for i, f := range reversed(stack) {
		lines = append(lines, fmt.Sprintf("stack %2d %14s %4d %s", i, f.Base(), f.Line, f.Scope()))
	}
	return lines
}
