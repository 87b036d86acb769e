package core

import (
	"bytes"
	"strings"
	"sync/atomic"
	"testing"
)

type fakeTerminal struct {
	finis atomic.Int32
}

func (f *fakeTerminal) Fini() { f.finis.Add(1) }

// captureCrash swaps output and exit hooks for the duration of a test
func captureCrash(t *testing.T) (*bytes.Buffer, chan int) {
	t.Helper()

	var buf bytes.Buffer
	codes := make(chan int, 1)

	prevOut, prevExit := crashOut, crashExit
	crashOut = &buf
	crashExit = func(code int) { codes <- code }
	t.Cleanup(func() {
		crashOut, crashExit = prevOut, prevExit
		SetCrashTerminal(nil)
	})

	return &buf, codes
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	buf, codes := captureCrash(t)

	HandleCrash(nil)

	if buf.Len() != 0 {
		t.Errorf("Expected no output for nil panic, got %q", buf.String())
	}
	select {
	case code := <-codes:
		t.Errorf("Expected no exit for nil panic, got code %d", code)
	default:
	}
}

func TestHandleCrashRestoresTerminal(t *testing.T) {
	buf, codes := captureCrash(t)
	term := &fakeTerminal{}
	SetCrashTerminal(term)

	HandleCrash("boom")

	if term.finis.Load() != 1 {
		t.Errorf("Expected terminal Fini once, got %d", term.finis.Load())
	}
	if !strings.Contains(buf.String(), "CRASH DETECTED: boom") {
		t.Errorf("Expected crash banner in output, got %q", buf.String())
	}
	if code := <-codes; code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
}

func TestGoRecoversPanic(t *testing.T) {
	buf, codes := captureCrash(t)

	Go(func() { panic("goroutine failure") })

	if code := <-codes; code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(buf.String(), "goroutine failure") {
		t.Errorf("Expected panic value in output, got %q", buf.String())
	}
}
