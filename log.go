package chanlog

import (
	"fmt"
	"time"
)

// Channel names used by the convenience entry points.
const (
	ChannelMeta    = "meta"
	ChannelInfo    = "info"
	ChannelMouse   = "mouse"
	ChannelParser  = "parser"
	ChannelStartup = "startup"
	ChannelDebug   = "debug"
	ChannelDetail  = "detail"
)

// Internal helpers take skip, the number of frames above the helper's
// caller to reach the frame a line is attributed to. Public entry points
// call helpers directly and pass 1 so the line names their caller. A
// wrapper around an entry point must add one per extra layer.

// Channel logs args under the named channel. Nothing is recorded when the
// channel is not enabled.
func (l *Logger) Channel(name string, args ...any) {
	l.channel(1, name, args)
}

func (l *Logger) channel(skip int, name string, args []any) {
	// the early check skips formatting; the append checks again under the lock
	if !l.Enabled(name) {
		return
	}
	l.appendIfEnabled(name, true, parseLines(callerFrame(skip+1), name, args))
}

// Info logs to the info channel.
func (l *Logger) Info(args ...any) { l.channel(1, ChannelInfo, args) }

// Meta logs information related to logging itself.
func (l *Logger) Meta(args ...any) { l.channel(1, ChannelMeta, args) }

// Mouse logs to the mouse channel.
func (l *Logger) Mouse(args ...any) { l.channel(1, ChannelMouse, args) }

// Parser logs to the parser channel.
func (l *Logger) Parser(args ...any) { l.channel(1, ChannelParser, args) }

// Startup logs to the startup channel.
func (l *Logger) Startup(args ...any) { l.channel(1, ChannelStartup, args) }

// When logs to the info channel, prefixed with the seconds elapsed since
// the logger was created.
func (l *Logger) When(args ...any) {
	l.when(1, args)
}

func (l *Logger) when(skip int, args []any) {
	elapsed := l.now().Sub(l.startTime()).Seconds()
	l.channel(skip+1, ChannelInfo, append([]any{elapsed}, args...))
}

func (l *Logger) startTime() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.start
}

// Caller logs to both buffers, naming the calling function and, as the
// message prefix, the place that function was called from.
func (l *Logger) Caller(args ...any) {
	l.caller(1, args)
}

func (l *Logger) caller(skip int, args []any) {
	stack := callStack(skip + 1)
	var site, origin Frame
	if len(stack) > 0 {
		site = stack[0]
	}
	if len(stack) > 1 {
		origin = stack[1]
	}
	msg := fmt.Sprintf("%s %d %s", origin.Base(), origin.Line, origin.Scope())
	l.appendBoth(parseLines(site, "caller", append([]any{msg}, args...)))
}

// Stack dumps the current call stack to both buffers, outermost frame
// first. The first arg, if any, is appended in its debug form.
func (l *Logger) Stack(args ...any) {
	l.stack(1, args)
}

func (l *Logger) stack(skip int, args []any) {
	lines := stackLines(callStack(skip + 1))
	if len(args) > 0 {
		lines = append(lines, "stack    "+repr(args[0]))
	}
	l.appendBoth(lines)
}

// Quick logs args to both buffers without a call-site prefix.
func (l *Logger) Quick(args ...any) {
	l.appendBoth(quickLines(args))
}

// Debug logs to both buffers when the debug channel is enabled.
func (l *Logger) Debug(args ...any) {
	l.debug(1, args)
}

func (l *Logger) debug(skip int, args []any) {
	if !l.Enabled(ChannelDebug) {
		return
	}
	l.appendIfEnabled(ChannelDebug, true, parseLines(callerFrame(skip+1), "debug_@@@", args))
}

// Detail logs to the full buffer only, when the detail channel is enabled.
func (l *Logger) Detail(args ...any) {
	l.detail(1, args)
}

func (l *Logger) detail(skip int, args []any) {
	if !l.Enabled(ChannelDetail) {
		return
	}
	l.appendIfEnabled(ChannelDetail, false, parseLines(callerFrame(skip+1), ChannelDetail, args))
}

// Error logs to the full buffer only, regardless of channel state.
func (l *Logger) Error(args ...any) {
	l.logError(1, args)
}

func (l *Logger) logError(skip int, args []any) {
	l.errorAt(callerFrame(skip+1), args...)
}

func (l *Logger) errorAt(f Frame, args ...any) {
	l.appendFull(parseLines(f, "error", args))
}

// Exception logs err followed by its formatted failure report, one error
// line per report line.
func (l *Logger) Exception(err error) {
	l.exception(1, err)
}

func (l *Logger) exception(skip int, err error) {
	f := callerFrame(skip + 1)
	l.errorAt(f, err)
	for _, line := range formatError(err) {
		l.errorAt(f, line)
	}
}
