package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagsOptions(t *testing.T) {
	stylePath := filepath.Join(t.TempDir(), "style.yaml")
	require.NoError(t, os.WriteFile(stylePath, []byte("background: \"#000000\"\n"), 0o644))

	var f Flags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.Register(fs, true)
	require.NoError(t, fs.Parse([]string{"--style", stylePath, "--azimuth", "10", "--equal", "-w", "--ylabel", "east"}))

	opts, err := f.Options(fs, []string{"a.txt"})
	require.NoError(t, err)
	require.NotNil(t, opts.Azimuth)
	assert.Equal(t, 10.0, *opts.Azimuth)
	assert.Nil(t, opts.Elevation)
	assert.True(t, opts.AxisEqual)
	assert.True(t, opts.Watch)
	assert.Equal(t, [3]string{"", "east", ""}, opts.Labels)
	assert.Equal(t, []string{"a.txt"}, opts.Files)
	assert.Equal(t, uint8(0), opts.Style.Background.R)
	assert.Equal(t, 5, opts.Style.TickTarget)
}

func TestFlagsWithoutWatch(t *testing.T) {
	var f Flags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.Register(fs, false)
	assert.Nil(t, fs.Lookup("watch"))

	require.NoError(t, fs.Parse(nil))
	opts, err := f.Options(fs, nil)
	require.NoError(t, err)
	assert.Equal(t, 1024, opts.Width)
	assert.Nil(t, opts.Azimuth)
}

func TestFlagsBadStyle(t *testing.T) {
	var f Flags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.Register(fs, false)
	require.NoError(t, fs.Parse([]string{"--style", filepath.Join(t.TempDir(), "missing.yaml")}))
	_, err := f.Options(fs, nil)
	assert.Error(t, err)
}
