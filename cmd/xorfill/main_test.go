package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunDiscardFrames(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-sink", "discard", "-width", "64", "-height", "32", "-frames", "3", "-interval", "0"}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("exit = %d, stderr:\n%s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "frames=3") {
		t.Errorf("expected frames=3 in log:\n%s", stderr.String())
	}
}

func TestRunImageSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	var stdout, stderr bytes.Buffer
	code := run([]string{"-sink", "image", "-snapshot", path, "-width", "40", "-height", "30",
		"-frames", "2", "-interval", "0", "-lanes", "16", "-workers", "2"}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("exit = %d, stderr:\n%s", code, stderr.String())
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("snapshot not written: %v", err)
	}
}

func TestRunAllocationFailure(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-sink", "discard", "-width", "1000000", "-height", "1000000"}, &stdout, &stderr)
	if code != exitError {
		t.Errorf("exit = %d, want %d", code, exitError)
	}
	if !strings.Contains(stderr.String(), "cannot allocate framebuffer") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-lanes", "3"}, &stdout, &stderr); code != exitUsage {
		t.Errorf("exit = %d, want %d", code, exitUsage)
	}
	if code := run([]string{"-h"}, &stdout, &stderr); code != exitOK {
		t.Errorf("-h exit = %d, want %d", code, exitOK)
	}
}

func TestRunUnknownSink(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-sink", "nope"}, &stdout, &stderr); code != exitError {
		t.Errorf("exit = %d, want %d", code, exitError)
	}
}

func TestRunList(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-list"}, &stdout, &stderr); code != exitOK {
		t.Fatalf("exit = %d", code)
	}
	for _, name := range []string{"discard", "image", "sdl", "ebiten", "ffplay", "terminal", "gpu"} {
		if !strings.Contains(stdout.String(), name) {
			t.Errorf("list missing %q:\n%s", name, stdout.String())
		}
	}
	if !strings.Contains(stdout.String(), "* discard") {
		t.Errorf("discard should be marked available:\n%s", stdout.String())
	}
}
