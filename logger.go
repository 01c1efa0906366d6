package chanlog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Default header lines each buffer starts with.
const (
	ScreenHeader = "--- screen log ---"
	FullHeader   = "--- begin log ---"
)

// Logger holds the screen and full buffers, the channel registry and the
// flush settings. The zero value is not usable; build one with New.
type Logger struct {
	mu          sync.Mutex
	cfg         Config
	screen      []string
	full        []string
	channels    map[string]bool
	shouldWrite bool
	start       time.Time
	out         io.Writer

	now func() time.Time
}

// std is the process-wide logger behind the package-level functions.
var std atomic.Pointer[Logger]

func init() {
	std.Store(New())
}

// Default returns the logger used by the package-level functions.
func Default() *Logger {
	return std.Load()
}

// SetDefault replaces the logger used by the package-level functions.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	std.Store(l)
}

// New creates a logger. Missing config values fall back to defaults.
func New(cfg ...*Config) *Logger {
	l := &Logger{now: time.Now}
	l.cfg = mergeConfig(cfg...)
	l.reset()
	return l
}

// Reset returns the logger to the state it had right after New, including a
// fresh start time.
func (l *Logger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.reset()
}

func (l *Logger) reset() {
	l.screen = []string{l.cfg.ScreenHeader}
	l.full = []string{l.cfg.FullHeader}
	l.channels = make(map[string]bool, len(l.cfg.Channels))
	for _, name := range l.cfg.Channels {
		l.channels[name] = true
	}
	l.shouldWrite = l.cfg.ShouldWrite
	l.out = l.cfg.Output
	if l.out == nil {
		l.out = os.Stdout
	}
	l.start = l.now()
}

// GetLines returns a copy of the screen buffer.
func (l *Logger) GetLines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.screen...)
}

// FullLines returns a copy of the full buffer.
func (l *Logger) FullLines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.full...)
}

// ShouldWrite reports whether Flush currently writes anything.
func (l *Logger) ShouldWrite() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.shouldWrite
}

// Enabled reports whether the named channel reaches the screen buffer.
func (l *Logger) Enabled(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.channels[name]
}

// ChannelEnable turns a channel on or off. The toggle itself is always
// recorded in the full buffer. Enabling any channel also turns on flushing.
func (l *Logger) ChannelEnable(name string, enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.full = append(l.full, fmt.Sprintf("%10s %10s: %s %t", "logging", "channelEnable", name, enabled))
	if enabled {
		l.channels[name] = true
		l.shouldWrite = true
	} else {
		delete(l.channels, name)
	}
}

// appendBoth adds lines to the screen and full buffers in one step.
func (l *Logger) appendBoth(lines []string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.screen = append(l.screen, lines...)
	l.full = append(l.full, lines...)
}

// appendIfEnabled adds lines to the full buffer, and to the screen buffer
// when screen is set, provided the channel is enabled at the moment of the
// append. It reports whether the lines were recorded.
func (l *Logger) appendIfEnabled(name string, screen bool, lines []string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.channels[name] {
		return false
	}
	if screen {
		l.screen = append(l.screen, lines...)
	}
	l.full = append(l.full, lines...)
	return true
}

// appendFull adds lines to the full buffer only.
func (l *Logger) appendFull(lines []string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.full = append(l.full, lines...)
}

func (l *Logger) setShouldWrite(v bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.shouldWrite = v
}
