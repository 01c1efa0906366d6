package quick

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/LixenWraith/chanlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigParsing(t *testing.T) {
	cfg, err := config("channels = info, mouse,,", "should_write=true", "SCREEN_HEADER=--- screen ---")
	require.NoError(t, err)

	assert.Equal(t, []string{"info", "mouse"}, cfg.Channels)
	assert.True(t, cfg.ShouldWrite)
	assert.Equal(t, "--- screen ---", cfg.ScreenHeader)
	assert.Empty(t, cfg.FullHeader)
}

func TestConfigParsingEmptyList(t *testing.T) {
	cfg, err := config("channels=")
	require.NoError(t, err)
	assert.NotNil(t, cfg.Channels)
	assert.Empty(t, cfg.Channels)
}

func TestConfigParsingErrors(t *testing.T) {
	for _, arg := range []string{"no-equals", "a=b=c", "unknown=1", "should_write=maybe", "output=stdout"} {
		_, err := config(arg)
		assert.Error(t, err, arg)
	}
}

func useDefault(t *testing.T) {
	prev := chanlog.Default()
	t.Cleanup(func() { chanlog.SetDefault(prev) })
}

func TestConfigReconfiguresDefault(t *testing.T) {
	useDefault(t)

	require.NoError(t, Config("channels=parser"))
	assert.True(t, chanlog.Enabled("parser"))
	assert.False(t, chanlog.Enabled("meta"))

	assert.Error(t, Config())
}

func TestEnableDisable(t *testing.T) {
	useDefault(t)
	chanlog.SetDefault(chanlog.New())

	Enable("info", "mouse")
	assert.True(t, chanlog.Enabled("info"))
	assert.True(t, chanlog.Enabled("mouse"))

	Disable("mouse")
	assert.False(t, chanlog.Enabled("mouse"))
	assert.Len(t, chanlog.FullLines(), 4)
}

func TestShutdownWritesSnapshot(t *testing.T) {
	useDefault(t)
	var out strings.Builder
	chanlog.SetDefault(chanlog.New(&chanlog.Config{ShouldWrite: true, Output: &out}))
	chanlog.Quick("bye")

	path := filepath.Join(t.TempDir(), "final.log")
	require.NoError(t, Shutdown(path))

	assert.Equal(t, chanlog.FullHeader+"\nbye\n", out.String())
	require.NoError(t, Shutdown(""))
}
