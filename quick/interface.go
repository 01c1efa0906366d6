package quick

import (
	"fmt"

	"github.com/LixenWraith/chanlog"
)

// Config rebuilds the default logger from key=value statements.
// e.g. quick.Config("channels=info,mouse", "should_write=true")
// Keys not given keep their defaults. Buffered lines are discarded.
func Config(args ...string) error {
	if len(args) == 0 {
		return fmt.Errorf("no config provided")
	}

	cfg, err := config(args...)
	if err != nil {
		return err
	}

	chanlog.Configure(cfg)
	return nil
}

// Enable turns the named channels on in the default logger.
func Enable(names ...string) {
	for _, name := range names {
		chanlog.ChannelEnable(name, true)
	}
}

// Disable turns the named channels off in the default logger.
func Disable(names ...string) {
	for _, name := range names {
		chanlog.ChannelEnable(name, false)
	}
}

// Shutdown flushes the default logger and, when path is not empty, also
// writes its full buffer to path.
func Shutdown(path string) error {
	if err := chanlog.Flush(); err != nil {
		return err
	}
	if path == "" {
		return nil
	}
	return chanlog.WriteToFile(path)
}
