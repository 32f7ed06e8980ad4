// Package animation owns the frame loop: it advances the animation clock,
// applies idle rotation and calls the renderer once per display frame.
package animation

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/shockglobe/internal/logger"
	"github.com/Faultbox/shockglobe/pkg/math"
)

// Clock modes.
const (
	ModeFixed = "fixed"
	ModeDelta = "delta"
)

// maxDelta caps a delta-mode step so a stalled frame does not jump the scene.
const maxDelta = 0.1

// Camera is the rotation source the driver advances each frame.
type Camera interface {
	Poll()
	Step(yawIncrement float64)
	Rotation() math.Rotation
}

// RenderFunc draws one frame.
type RenderFunc func(rot math.Rotation, clock float64)

// Config controls clock advancement.
type Config struct {
	Mode            string
	Step            float64 // clock units per frame in fixed mode
	AutoRotateSpeed float64 // yaw per frame; per Step-seconds in delta mode
}

// DefaultConfig returns the fixed-step defaults.
func DefaultConfig() Config {
	return Config{Mode: ModeFixed, Step: 0.016, AutoRotateSpeed: 0.0009}
}

// Driver runs the animation loop on a FrameScheduler.
type Driver struct {
	cfg    Config
	sched  FrameScheduler
	cam    Camera
	render RenderFunc

	// mu serializes ticks with Start/Stop. Stop must not be called from
	// inside the render callback.
	mu      sync.Mutex
	running bool
	pending FrameID
	clock   float64
	last    time.Time

	frames   atomic.Uint64
	fpsStart time.Time
	fpsCount int

	now func() time.Time
	log *zap.Logger
}

// NewDriver creates a stopped driver.
func NewDriver(sched FrameScheduler, cam Camera, render RenderFunc, cfg Config) *Driver {
	if cfg.Mode == "" {
		cfg.Mode = ModeFixed
	}
	return &Driver{
		cfg:    cfg,
		sched:  sched,
		cam:    cam,
		render: render,
		now:    time.Now,
		log:    logger.Named("animation"),
	}
}

// Start schedules the first frame. Starting a running driver is a no-op.
func (d *Driver) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return
	}
	d.running = true
	d.last = d.now()
	d.fpsStart = d.last
	d.pending = d.sched.RequestFrame(d.tick)
	d.log.Debug("animation started", zap.String("mode", d.cfg.Mode))
}

// Stop cancels the pending frame. Once Stop returns the render callback is
// never invoked again.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.running {
		return
	}
	d.running = false
	d.sched.CancelFrame(d.pending)
	d.pending = 0
	d.log.Debug("animation stopped", zap.Uint64("frames", d.frames.Load()))
}

// Running reports whether frames are being scheduled.
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

// Clock returns the animation clock.
func (d *Driver) Clock() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.clock
}

// Frames returns the number of rendered frames.
func (d *Driver) Frames() uint64 {
	return d.frames.Load()
}

func (d *Driver) tick() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.running {
		return
	}

	now := d.now()
	step, yaw := d.cfg.Step, d.cfg.AutoRotateSpeed
	if d.cfg.Mode == ModeDelta {
		dt := now.Sub(d.last).Seconds()
		dt = max(0, min(dt, maxDelta))
		if d.cfg.Step > 0 {
			yaw = d.cfg.AutoRotateSpeed * dt / d.cfg.Step
		}
		step = dt
	}
	d.last = now

	d.cam.Poll()
	d.clock += step
	d.cam.Step(yaw)
	d.render(d.cam.Rotation(), d.clock)
	d.frames.Add(1)

	d.fpsCount++
	if elapsed := now.Sub(d.fpsStart); elapsed >= time.Second {
		d.log.Debug("frame rate",
			zap.Float64("fps", float64(d.fpsCount)/elapsed.Seconds()),
			zap.Float64("clock", d.clock))
		d.fpsStart = now
		d.fpsCount = 0
	}

	d.pending = d.sched.RequestFrame(d.tick)
}
