package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_Defaults(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	code := run(nil, stdout, stderr)

	// --- Assert ---
	require.Equal(t, 0, code)
	require.Empty(t, stderr.String())
	require.Equal(t,
		"width=72 height=40 mode=dot log_x=false log_y=false x_is_row=true cdf=false\n",
		stdout.String(),
	)
}

func TestRun_Flags(t *testing.T) {
	t.Parallel()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	code := run([]string{"-m", "count", "--log", "y", "-d50x20"}, stdout, stderr)

	require.Equal(t, 0, code)
	require.Equal(t,
		"width=50 height=20 mode=count log_x=false log_y=true x_is_row=true cdf=false\n",
		stdout.String(),
	)
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// CDF cannot be combined with an explicit X column.
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	code := run([]string{"--cdf", "-x"}, stdout, stderr)

	// --- Assert ---
	require.Equal(t, 1, code)
	require.Empty(t, stdout.String())
	require.Equal(t,
		"[!] CDF is only over the Y value; an explicit X value will be ignored.\n",
		stderr.String(),
	)
}

func TestRun_HelpIsNotImplemented(t *testing.T) {
	t.Parallel()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	code := run([]string{"--help"}, stdout, stderr)

	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "not yet implemented")
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	newLogger(&buf, false).Debug("hidden")
	require.Empty(t, buf.String())

	newLogger(&buf, true).Debug("shown")
	require.Contains(t, buf.String(), "msg=shown")
}
