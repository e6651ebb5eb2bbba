//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEscExitsWithoutRunning(t *testing.T) {
	t.Parallel()
	s := newSession(t)
	s.writeManifest(`{"start": "run start"}`)
	s.useEchoRunner()

	s.start()
	require.True(t, s.see("run start"), "Should list the start script")

	s.press(KeyEsc)

	exited, err := s.waitExit(3 * time.Second)
	require.True(t, exited, "Esc should leave the picker")
	require.NoError(t, err, "Esc should exit cleanly")
	require.NotContains(t, s.screen(), "__RAN__", "No script should run after Esc")
}

func TestCtrlCExits(t *testing.T) {
	t.Parallel()
	s := newSession(t)
	s.writeManifest(`{"start": "run start"}`)
	s.useEchoRunner()

	s.start()
	s.press(KeyCtrlC)

	exited, err := s.waitExit(3 * time.Second)
	require.True(t, exited, "Ctrl+C should leave the picker")
	require.NoError(t, err)
	require.NotContains(t, s.screen(), "__RAN__")
}

func TestFailingScriptExitCode(t *testing.T) {
	t.Parallel()
	s := newSession(t)
	s.writeManifest(`{"fail": "exit 3"}`)
	s.writeFile(".scriptpick.toml", `runner = "sh -c 'exit 3' --"`+"\n")

	s.start()
	s.press(KeyEnter)

	exited, err := s.waitExit(5 * time.Second)
	require.True(t, exited, "Enter should leave the picker")
	require.Error(t, err)
	require.Equal(t, 3, s.cmd.ProcessState.ExitCode(), "The script's exit code should be passed through")
}
