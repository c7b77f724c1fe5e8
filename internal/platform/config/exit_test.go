package config

import (
	"bytes"
	"testing"
)

func captureExit(t *testing.T) (*bytes.Buffer, *int) {
	t.Helper()
	var buf bytes.Buffer
	code := -1
	prevStderr, prevExit := stderr, exit
	stderr = &buf
	exit = func(c int) { code = c }
	t.Cleanup(func() {
		stderr, exit = prevStderr, prevExit
	})
	return &buf, &code
}

func TestExitfWritesMessageAndExitsWithOne(t *testing.T) {
	out, code := captureExit(t)

	Exitf("fatal: %s", "something broke")

	if *code != 1 {
		t.Fatalf("exit code = %d, want 1", *code)
	}
	if got := out.String(); got != "fatal: something broke\n" {
		t.Fatalf("stderr = %q", got)
	}
}

func TestExitWithCodefUsesProvidedCode(t *testing.T) {
	out, code := captureExit(t)

	ExitWithCodef(ExitCodeUsage, "usage: %s", "bloomctl state")

	if *code != ExitCodeUsage {
		t.Fatalf("exit code = %d, want %d", *code, ExitCodeUsage)
	}
	if got := out.String(); got != "usage: bloomctl state\n" {
		t.Fatalf("stderr = %q", got)
	}
}
