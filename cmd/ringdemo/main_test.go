package main

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	flags := log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
	})
	return &buf
}

func TestRunSingleElement(t *testing.T) {
	buf := captureLog(t)
	if err := run(32, 1); err != nil {
		t.Fatalf("run() returned error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"pushed int: -1",
		"popped int: -1",
		"pushed: id=1, name=Test",
		"popped: id=1, name=Test",
		"popped bytes: 0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected log to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRunOverflow(t *testing.T) {
	buf := captureLog(t)
	if err := run(2, 3); err != nil {
		t.Fatalf("run() returned error: %v", err)
	}
	if got := strings.Count(buf.String(), "buffer is full"); got != 4 {
		t.Errorf("expected 4 rejected pushes, got %d:\n%s", got, buf.String())
	}
}

func TestRunInvalidCapacity(t *testing.T) {
	captureLog(t)
	if err := run(0, 1); err == nil {
		t.Error("expected error for zero capacity")
	}
}
