//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestMain(m *testing.M) {
	os.Exit(runSuite(m))
}

// runSuite builds scriptpick from the parent module into a temp dir and runs the tests against it
func runSuite(m *testing.M) int {
	dir, err := os.MkdirTemp("", "scriptpick-e2e")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create build dir: %v\n", err)
		return 1
	}
	defer os.RemoveAll(dir)

	binPath = filepath.Join(dir, "scriptpick")
	build := exec.Command("go", "build", "-o", binPath, ".")
	build.Dir = ".."
	if out, err := build.CombinedOutput(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build scriptpick: %v\n%s", err, out)
		return 1
	}

	return m.Run()
}
