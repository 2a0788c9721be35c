package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/auto-dns/docker-event-tap/internal/event"
	"github.com/auto-dns/docker-event-tap/internal/filter"
)

// runCapturingStdout runs fn with os.Stdout redirected to a pipe and
// returns fn's result along with everything written to stdout.
func runCapturingStdout(t *testing.T, fn func() int) (int, string) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	code := fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return code, string(out)
}

func TestExecuteUnknownOption(t *testing.T) {
	rootCmd.SetArgs([]string{"--bogus", "x"})

	code, out := runCapturingStdout(t, Execute)

	require.Equal(t, 1, code)
	require.Empty(t, out)
}

func TestExecuteInvalidFormat(t *testing.T) {
	rootCmd.SetArgs([]string{"--format", "xml"})

	code, out := runCapturingStdout(t, Execute)

	require.Equal(t, 1, code)
	require.Empty(t, out)
}

func TestExecuteInvalidSince(t *testing.T) {
	rootCmd.SetArgs([]string{"--since", "notatime"})

	code, out := runCapturingStdout(t, Execute)

	require.Equal(t, 1, code)
	require.Empty(t, out)
}

func TestExitCodeMapping(t *testing.T) {
	require.Equal(t, 2, exitCode(event.NewStreamClosedError(nil)))
	require.Equal(t, 2, exitCode(fmt.Errorf("session ended: %w", event.NewStreamClosedError(io.EOF))))
	require.Equal(t, 1, exitCode(filter.NewInvalidArgumentError("since", "notatime", "not a timestamp or duration")))
	require.Equal(t, 1, exitCode(errors.New("flag parse failure")))
}
