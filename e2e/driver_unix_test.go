//go:build e2e && unix

package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/require"
)

// binPath is set by TestMain once the binary is built
var binPath string

// Terminal input for the keys the picker binds
const (
	KeyEnter     = "\r"
	KeyEsc       = "\x1b"
	KeyCtrlC     = "\x03"
	KeyBackspace = "\x7f"
	KeyUp        = "\x1b[A"
	KeyDown      = "\x1b[B"
	KeyLeft      = "\x1b[D"
	KeyRight     = "\x1b[C"
)

const keyDelay = 50 * time.Millisecond

// ansiRe matches CSI, OSC, charset and keypad sequences plus carriage returns
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

// session runs scriptpick inside a pty in its own project directory
type session struct {
	t   *testing.T
	dir string

	cmd  *exec.Cmd
	pty  *os.File
	done chan error

	mu  sync.Mutex
	out bytes.Buffer
}

// newSession creates an empty project directory; the process is cleaned up with the test
func newSession(t *testing.T) *session {
	s := &session{t: t, dir: t.TempDir()}
	t.Cleanup(s.close)
	return s
}

func (s *session) writeFile(name, content string) {
	s.t.Helper()
	require.NoError(s.t, os.WriteFile(filepath.Join(s.dir, name), []byte(content), 0644))
}

// writeManifest writes package.json with the given scripts object
func (s *session) writeManifest(scripts string) {
	s.t.Helper()
	s.writeFile("package.json", fmt.Sprintf(`{"name": "e2e", "scripts": %s}`, scripts))
}

// useEchoRunner makes the chosen script print "__RAN__ <name>" instead of invoking yarn
func (s *session) useEchoRunner() {
	s.t.Helper()
	s.writeFile(".scriptpick.toml", `runner = "echo __RAN__"`+"\n")
}

// start launches the picker and waits until the search box is drawn
func (s *session) start() {
	s.t.Helper()

	s.cmd = exec.Command(binPath)
	s.cmd.Dir = s.dir
	s.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+s.dir,
	)

	ptmx, err := pty.StartWithSize(s.cmd, &pty.Winsize{Rows: 40, Cols: 120})
	require.NoError(s.t, err, "Failed to start scriptpick")
	s.pty = ptmx

	go s.read()
	s.done = make(chan error, 1)
	go func() { s.done <- s.cmd.Wait() }()

	require.True(s.t, s.see("Search"), "Picker should draw its search box")
}

func (s *session) read() {
	buf := make([]byte, 4096)
	for {
		n, err := s.pty.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.out.Write(buf[:n])
			s.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// press sends keys one at a time so each is decoded as its own event
func (s *session) press(keys ...string) {
	s.t.Helper()
	for _, k := range keys {
		_, err := s.pty.Write([]byte(k))
		require.NoError(s.t, err)
		time.Sleep(keyDelay)
	}
}

// typeText sends text one rune at a time
func (s *session) typeText(text string) {
	s.t.Helper()
	for _, r := range text {
		s.press(string(r))
	}
}

// screen returns everything written so far with escape sequences removed
func (s *session) screen() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ansiRe.ReplaceAllString(s.out.String(), "")
}

// mark returns a position in the output for use with seeSince
func (s *session) mark() int {
	return len(s.screen())
}

// see waits for text anywhere in the output
func (s *session) see(text string) bool {
	return s.seeSince(0, text)
}

// seeSince waits for text in the output written after mark
func (s *session) seeSince(mark int, text string) bool {
	s.t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for {
		out := s.screen()
		if mark > len(out) {
			mark = len(out)
		}
		if strings.Contains(out[mark:], text) {
			return true
		}
		if time.Now().After(deadline) {
			tail := out
			if len(tail) > 2048 {
				tail = tail[len(tail)-2048:]
			}
			s.t.Logf("%q not found, output tail:\n%s", text, tail)
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// waitExit reports whether the process exited within timeout and its error
func (s *session) waitExit(timeout time.Duration) (bool, error) {
	s.t.Helper()
	select {
	case err := <-s.done:
		s.done = nil
		return true, err
	case <-time.After(timeout):
		return false, nil
	}
}

func (s *session) close() {
	if s.cmd != nil && s.cmd.Process != nil && s.done != nil {
		_ = s.cmd.Process.Kill()
		<-s.done
	}
	if s.pty != nil {
		_ = s.pty.Close()
	}
}
