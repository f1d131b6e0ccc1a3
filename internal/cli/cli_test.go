package cli

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/orgchart/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"seed.hcl", "script.hcl"}, out)
	require.NoError(t, err)
	require.False(t, shouldExit)

	assert.Equal(t, []string{"seed.hcl", "script.hcl"}, cfg.Paths)
	assert.Equal(t, app.FormatHCL, cfg.OutputFormat)
	assert.Nil(t, cfg.HistoryLimit, "history limit must stay unset so the file setting applies")
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.HealthcheckPort)
	assert.False(t, cfg.Serve)
	assert.Empty(t, out.String())
}

func TestParse_AllFlags(t *testing.T) {
	cfg, shouldExit, err := Parse([]string{
		"-o", "YAML",
		"--history-limit", "0",
		"--log-format", "json",
		"--log-level", "DEBUG",
		"--healthcheck-port", "9090",
		"--serve",
		"org/",
	}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)

	assert.Equal(t, app.FormatYAML, cfg.OutputFormat)
	require.NotNil(t, cfg.HistoryLimit)
	assert.Equal(t, 0, *cfg.HistoryLimit)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.HealthcheckPort)
	assert.True(t, cfg.Serve)
	assert.Equal(t, []string{"org/"}, cfg.Paths)
}

func TestParse_ShouldExit(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {"--help"}, {}} {
		out := &bytes.Buffer{}
		cfg, shouldExit, err := Parse(args, out)
		require.NoError(t, err, "args: %v", args)
		assert.True(t, shouldExit, "args: %v", args)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "unknown flag", args: []string{"--bogus", "x.hcl"}, wantMsg: "unknown flag: --bogus"},
		{name: "bad log format", args: []string{"--log-format", "xml", "x.hcl"}, wantMsg: "invalid log-format"},
		{name: "bad log level", args: []string{"--log-level", "trace", "x.hcl"}, wantMsg: "invalid log-level"},
		{name: "bad output format", args: []string{"-o", "json", "x.hcl"}, wantMsg: "invalid output format"},
		{name: "negative history limit", args: []string{"--history-limit", "-3", "x.hcl"}, wantMsg: "invalid history limit"},
		{name: "non-numeric port", args: []string{"--healthcheck-port", "abc", "x.hcl"}, wantMsg: "invalid argument"},
		{name: "serve without port", args: []string{"--serve", "x.hcl"}, wantMsg: "serve requires"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, shouldExit, err := Parse(tc.args, &bytes.Buffer{})
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.False(t, shouldExit)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
