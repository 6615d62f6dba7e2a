package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATA_DIR", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
}

func TestParseDefaults(t *testing.T) {
	clearEnv(t)

	opts, exit, err := Parse([]string{"--dir", "data"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, &Options{
		Dir:       "data",
		Index:     -1,
		Format:    "text",
		Workers:   4,
		LogLevel:  "warn",
		LogFormat: "text",
	}, opts)
}

func TestParseIndexDefaultsToJSON(t *testing.T) {
	clearEnv(t)

	opts, _, err := Parse([]string{"--dir", "data", "--idx", "0"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.True(t, opts.HasIndex)
	assert.Equal(t, 0, opts.Index)
	assert.Equal(t, "json", opts.Format)

	opts, _, err = Parse([]string{"--dir", "data", "--idx", "3", "--format", "TEXT", "--strict"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "text", opts.Format)
	assert.True(t, opts.Strict)
}

func TestParseDirFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATA_DIR", "/srv/data")

	opts, _, err := Parse(nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "/srv/data", opts.Dir)
}

func TestParseHelp(t *testing.T) {
	clearEnv(t)
	var out bytes.Buffer

	opts, exit, err := Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, opts)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{name: "missing dir", args: nil, msg: "missing --dir"},
		{name: "unknown flag", args: []string{"--dir", "d", "--bogus"}, msg: "bogus"},
		{name: "positional", args: []string{"--dir", "d", "extra"}, msg: "unexpected argument"},
		{name: "negative idx", args: []string{"--dir", "d", "--idx", "-2"}, msg: "invalid idx"},
		{name: "bad format", args: []string{"--dir", "d", "--format", "xml"}, msg: "invalid format"},
		{name: "zero workers", args: []string{"--dir", "d", "--workers", "0"}, msg: "invalid workers"},
		{name: "bad log format", args: []string{"--dir", "d", "--log-format", "yaml"}, msg: "invalid log-format"},
		{name: "bad log level", args: []string{"--dir", "d", "--log-level", "trace"}, msg: "invalid log-level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			_, _, err := Parse(tt.args, &bytes.Buffer{})
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tt.msg)
		})
	}
}
