package chanlog

// Package-level entry points log through the default logger.

// GetLines returns a copy of the default logger's screen buffer.
func GetLines() []string {
	return Default().GetLines()
}

// FullLines returns a copy of the default logger's full buffer.
func FullLines() []string {
	return Default().FullLines()
}

// ChannelEnable turns a channel on or off. See Logger.ChannelEnable.
func ChannelEnable(name string, enabled bool) {
	Default().ChannelEnable(name, enabled)
}

// Enabled reports whether the named channel reaches the screen buffer.
func Enabled(name string) bool {
	return Default().Enabled(name)
}

// Channel logs args under the named channel when it is enabled.
func Channel(name string, args ...any) {
	Default().channel(1, name, args)
}

// Info logs to the info channel.
func Info(args ...any) {
	Default().channel(1, ChannelInfo, args)
}

// Meta logs information related to logging itself.
func Meta(args ...any) {
	Default().channel(1, ChannelMeta, args)
}

// Mouse logs to the mouse channel.
func Mouse(args ...any) {
	Default().channel(1, ChannelMouse, args)
}

// Parser logs to the parser channel.
func Parser(args ...any) {
	Default().channel(1, ChannelParser, args)
}

// Startup logs to the startup channel.
func Startup(args ...any) {
	Default().channel(1, ChannelStartup, args)
}

// When logs to the info channel with the elapsed seconds prepended.
func When(args ...any) {
	Default().when(1, args)
}

// Caller logs the calling function and where it was called from.
func Caller(args ...any) {
	Default().caller(1, args)
}

// Stack dumps the current call stack.
func Stack(args ...any) {
	Default().stack(1, args)
}

// Quick logs args without a call-site prefix.
func Quick(args ...any) {
	Default().Quick(args...)
}

// Debug logs when the debug channel is enabled.
func Debug(args ...any) {
	Default().debug(1, args)
}

// Detail logs to the full buffer when the detail channel is enabled.
func Detail(args ...any) {
	Default().detail(1, args)
}

// Error logs to the full buffer.
func Error(args ...any) {
	Default().logError(1, args)
}

// Exception logs err and its failure report to the full buffer.
func Exception(err error) {
	Default().exception(1, err)
}

// Wrapper runs fn and flushes the default logger afterwards.
// See Logger.Wrapper.
func Wrapper(fn func() int, shouldWrite ...bool) int {
	return Default().wrapper(1, fn, shouldWrite)
}

// WrapperE runs fn and flushes the default logger afterwards.
// See Logger.WrapperE.
func WrapperE(fn func() (int, error), shouldWrite ...bool) int {
	return Default().wrapperE(1, fn, shouldWrite)
}

// WriteToFile writes the default logger's full buffer to path.
func WriteToFile(path string) error {
	return Default().WriteToFile(path)
}

// Flush writes the default logger's full buffer to its output when the
// flush flag is set.
func Flush() error {
	return Default().Flush()
}
