package main

import (
	"os"
	"os/exec"
	"testing"
)

// TestMain_HappyPath runs the test binary as a subprocess that calls main()
// with --help and checks that it exits 0.
func TestMain_HappyPath(t *testing.T) {
	if os.Getenv("TEST_RUN_MAIN") == "1" {
		os.Args = []string{"calc", "--help"}
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestMain_HappyPath")
	cmd.Env = append(os.Environ(), "TEST_RUN_MAIN=1")
	cmd.Dir = t.TempDir()
	if err := cmd.Run(); err != nil {
		t.Fatalf("process ran with error: %v", err)
	}
}
