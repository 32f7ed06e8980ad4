package animation

import (
	gomath "math"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Faultbox/shockglobe/internal/engine/camera"
	"github.com/Faultbox/shockglobe/pkg/math"
)

func TestIdleRotationDeterministic(t *testing.T) {
	sched := NewVSyncScheduler()
	cam := camera.New(camera.DefaultConfig())
	defer cam.Close()

	var renders int
	var lastRot math.Rotation
	var lastClock float64
	d := NewDriver(sched, cam, func(rot math.Rotation, clock float64) {
		renders++
		lastRot, lastClock = rot, clock
	}, DefaultConfig())

	d.Start()
	const n = 240
	for i := 0; i < n; i++ {
		sched.RunFrame()
	}
	d.Stop()

	if renders != n || d.Frames() != n {
		t.Fatalf("expected %d renders, got %d (frames %d)", n, renders, d.Frames())
	}
	if want := -0.9 + n*0.0009; gomath.Abs(lastRot.Yaw-want) > 1e-9 {
		t.Errorf("yaw after %d frames = %v, want %v", n, lastRot.Yaw, want)
	}
	if lastRot.Pitch != -0.1 {
		t.Errorf("idle rotation changed pitch: %v", lastRot.Pitch)
	}
	if want := n * 0.016; gomath.Abs(lastClock-want) > 1e-9 || gomath.Abs(d.Clock()-want) > 1e-9 {
		t.Errorf("clock = %v, want %v", lastClock, want)
	}
}

func TestNoRotationWhileDragging(t *testing.T) {
	sched := NewVSyncScheduler()
	cam := camera.New(camera.DefaultConfig())
	defer cam.Close()

	d := NewDriver(sched, cam, func(math.Rotation, float64) {}, DefaultConfig())
	d.Start()
	defer d.Stop()

	cam.PointerDown(10, 10)
	for i := 0; i < 30; i++ {
		sched.RunFrame()
	}
	if got := cam.Rotation().Yaw; got != -0.9 {
		t.Errorf("yaw moved while dragging: %v", got)
	}
	if gomath.Abs(d.Clock()-30*0.016) > 1e-9 {
		t.Errorf("clock should keep running while dragging, got %v", d.Clock())
	}
}

func TestStopPreventsFurtherRenders(t *testing.T) {
	sched := NewVSyncScheduler()
	cam := camera.New(camera.DefaultConfig())
	defer cam.Close()

	renders := 0
	d := NewDriver(sched, cam, func(math.Rotation, float64) { renders++ }, DefaultConfig())
	d.Start()
	for i := 0; i < 3; i++ {
		sched.RunFrame()
	}
	d.Stop()

	if sched.Pending() != 0 {
		t.Errorf("Stop should cancel the pending frame, %d left", sched.Pending())
	}
	for i := 0; i < 5; i++ {
		sched.RunFrame()
	}
	if renders != 3 {
		t.Errorf("expected 3 renders, got %d after stop", renders)
	}
	if d.Running() {
		t.Error("driver still running")
	}

	d.Stop()
}

func TestStartTwiceSchedulesOnce(t *testing.T) {
	sched := NewVSyncScheduler()
	cam := camera.New(camera.DefaultConfig())
	defer cam.Close()

	d := NewDriver(sched, cam, func(math.Rotation, float64) {}, DefaultConfig())
	d.Start()
	d.Start()
	defer d.Stop()

	if sched.Pending() != 1 {
		t.Errorf("expected one pending frame, got %d", sched.Pending())
	}
}

func TestStopWithTicker(t *testing.T) {
	sched := NewTickerScheduler(1000)
	sched.Start()
	defer sched.Stop()

	cam := camera.New(camera.DefaultConfig())
	defer cam.Close()

	var renders atomic.Int64
	var once sync.Once
	warm := make(chan struct{})
	d := NewDriver(sched, cam, func(math.Rotation, float64) {
		if renders.Add(1) >= 5 {
			once.Do(func() { close(warm) })
		}
	}, DefaultConfig())
	d.Start()

	select {
	case <-warm:
	case <-time.After(5 * time.Second):
		t.Fatal("driver never rendered on the ticker")
	}

	d.Stop()
	after := renders.Load()
	time.Sleep(50 * time.Millisecond)
	if got := renders.Load(); got != after {
		t.Errorf("rendered %d frames after Stop returned", got-after)
	}
}

func TestDeltaMode(t *testing.T) {
	sched := NewVSyncScheduler()
	cam := camera.New(camera.DefaultConfig())
	defer cam.Close()

	cfg := DefaultConfig()
	cfg.Mode = ModeDelta
	d := NewDriver(sched, cam, func(math.Rotation, float64) {}, cfg)

	now := time.Unix(1000, 0)
	d.now = func() time.Time { return now }
	d.Start()

	// 30 fps: each frame is twice the fixed step's nominal duration.
	const frames = 30
	for i := 0; i < frames; i++ {
		now = now.Add(time.Second / 30)
		sched.RunFrame()
	}
	d.Stop()

	if gomath.Abs(d.Clock()-1.0) > 1e-6 {
		t.Errorf("clock after one second = %v, want 1", d.Clock())
	}
	wantYaw := -0.9 + frames*0.0009*(1.0/30)/0.016
	if gomath.Abs(cam.Rotation().Yaw-wantYaw) > 1e-6 {
		t.Errorf("yaw = %v, want %v", cam.Rotation().Yaw, wantYaw)
	}
}

func TestDeltaModeCapsStalls(t *testing.T) {
	sched := NewVSyncScheduler()
	cam := camera.New(camera.DefaultConfig())
	defer cam.Close()

	cfg := DefaultConfig()
	cfg.Mode = ModeDelta
	d := NewDriver(sched, cam, func(math.Rotation, float64) {}, cfg)

	now := time.Unix(1000, 0)
	d.now = func() time.Time { return now }
	d.Start()
	now = now.Add(5 * time.Second)
	sched.RunFrame()
	d.Stop()

	if gomath.Abs(d.Clock()-maxDelta) > 1e-12 {
		t.Errorf("a stalled frame should advance at most %v, got %v", maxDelta, d.Clock())
	}
}
