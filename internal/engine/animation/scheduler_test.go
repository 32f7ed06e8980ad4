package animation

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestVSyncRunFrame(t *testing.T) {
	s := NewVSyncScheduler()
	calls := 0
	s.RequestFrame(func() { calls++ })
	s.RequestFrame(func() { calls++ })

	if n := s.RunFrame(); n != 2 || calls != 2 {
		t.Errorf("expected 2 callbacks, ran %d (calls %d)", n, calls)
	}
	if n := s.RunFrame(); n != 0 {
		t.Errorf("callbacks should run once, ran %d", n)
	}
}

func TestVSyncRequestDuringFrameWaits(t *testing.T) {
	s := NewVSyncScheduler()
	calls := 0
	var cb func()
	cb = func() {
		calls++
		s.RequestFrame(cb)
	}
	s.RequestFrame(cb)

	s.RunFrame()
	if calls != 1 {
		t.Fatalf("re-requested callback must wait for the next frame, got %d calls", calls)
	}
	s.RunFrame()
	if calls != 2 {
		t.Errorf("expected 2 calls after two frames, got %d", calls)
	}
}

func TestVSyncCancel(t *testing.T) {
	s := NewVSyncScheduler()
	called := false
	id := s.RequestFrame(func() { called = true })
	kept := 0
	s.RequestFrame(func() { kept++ })
	s.CancelFrame(id)

	if s.Pending() != 1 {
		t.Errorf("expected 1 pending, got %d", s.Pending())
	}
	s.RunFrame()
	if called {
		t.Error("cancelled callback ran")
	}
	if kept != 1 {
		t.Error("other callbacks must survive a cancel")
	}

	// Unknown ids are ignored.
	s.CancelFrame(999)
}

func TestTickerScheduler(t *testing.T) {
	s := NewTickerScheduler(500)
	s.Start()
	defer s.Stop()

	var calls atomic.Int32
	done := make(chan struct{})
	s.RequestFrame(func() {
		calls.Add(1)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ticker never ran the callback")
	}
	if calls.Load() != 1 {
		t.Errorf("expected one call, got %d", calls.Load())
	}
}

func TestTickerStopIdempotent(t *testing.T) {
	s := NewTickerScheduler(60)
	s.Start()
	s.Stop()
	s.Stop()

	// Never started.
	NewTickerScheduler(60).Stop()
}
