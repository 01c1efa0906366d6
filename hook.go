package chanlog

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Hook routes logrus entries into a channel of a Logger.
// Entry fields are not recorded.
type Hook struct {
	logger  *Logger
	channel string
	levels  []logrus.Level
}

var _ logrus.Hook = (*Hook)(nil)

// NewHook creates a hook feeding the named channel of l, or of the default
// logger when l is nil. With no levels given the hook fires for all of them.
func NewHook(l *Logger, channel string, levels ...logrus.Level) *Hook {
	if len(levels) == 0 {
		levels = logrus.AllLevels
	}
	return &Hook{logger: l, channel: channel, levels: levels}
}

// Levels implements logrus.Hook.
func (h *Hook) Levels() []logrus.Level {
	return h.levels
}

// Fire implements logrus.Hook. Lines are attributed to the logrus call site
// when the logger reports callers, otherwise to the entry's level.
func (h *Hook) Fire(entry *logrus.Entry) error {
	l := h.logger
	if l == nil {
		l = Default()
	}
	if !l.Enabled(h.channel) {
		return nil
	}

	f := Frame{Function: "logrus." + strings.ToUpper(entry.Level.String())}
	if entry.HasCaller() {
		f = Frame{
			File:     entry.Caller.File,
			Line:     entry.Caller.Line,
			Function: entry.Caller.Function,
		}
	}
	l.appendIfEnabled(h.channel, true, parseLines(f, h.channel, []any{entry.Message}))
	return nil
}
