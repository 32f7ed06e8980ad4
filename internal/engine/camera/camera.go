// Package camera turns pointer drags into globe rotation and decides when
// passive auto-rotation runs.
package camera

import (
	gomath "math"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/shockglobe/internal/logger"
	"github.com/Faultbox/shockglobe/pkg/math"
)

// Timer is a pending delayed call.
type Timer interface {
	Stop() bool
}

// Timers schedules delayed calls. The default uses time.AfterFunc.
type Timers interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realTimers struct{}

func (realTimers) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Config holds the camera tuning.
type Config struct {
	InitialYaw      float64
	InitialPitch    float64
	DragSensitivity float64       // radians per pixel
	ResumeDelay     time.Duration // idle time before auto-rotate resumes
	PitchLimit      float64       // 0 = unbounded
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		InitialYaw:      -0.9,
		InitialPitch:    -0.1,
		DragSensitivity: 0.004,
		ResumeDelay:     4 * time.Second,
	}
}

// GlobeCamera owns the view rotation. All methods except the timer
// callbacks run on the frame goroutine; a resume timer only posts a
// generation token, and Poll applies it if nothing happened since.
type GlobeCamera struct {
	cfg Config
	rot math.Rotation

	dragging   bool
	last       math.Vec2
	autoRotate bool

	// gen is bumped on every interaction; a resume token is honoured only
	// if it still carries the current generation.
	gen     uint64
	resume  chan uint64
	timers  Timers
	pending Timer

	log *zap.Logger
}

// New creates a camera with auto-rotation enabled.
func New(cfg Config) *GlobeCamera {
	return NewWithTimers(cfg, realTimers{})
}

// NewWithTimers creates a camera with a custom timer source.
func NewWithTimers(cfg Config, timers Timers) *GlobeCamera {
	return &GlobeCamera{
		cfg:        cfg,
		rot:        math.Rotation{Yaw: cfg.InitialYaw, Pitch: cfg.InitialPitch},
		autoRotate: true,
		resume:     make(chan uint64, 4),
		timers:     timers,
		log:        logger.Named("camera"),
	}
}

// Rotation returns the current view rotation.
func (c *GlobeCamera) Rotation() math.Rotation {
	return c.rot
}

// Dragging reports whether a drag is in progress.
func (c *GlobeCamera) Dragging() bool {
	return c.dragging
}

// AutoRotate reports whether passive rotation is enabled.
func (c *GlobeCamera) AutoRotate() bool {
	return c.autoRotate
}

// PointerDown starts a drag and suspends auto-rotation.
func (c *GlobeCamera) PointerDown(x, y float64) {
	c.dragging = true
	c.last = math.Vec2{X: x, Y: y}
	c.autoRotate = false
	c.gen++
	c.stopPending()
}

// PointerMove rotates the globe by the pointer delta while dragging.
func (c *GlobeCamera) PointerMove(x, y float64) {
	if !c.dragging {
		return
	}
	pos := math.Vec2{X: x, Y: y}
	d := pos.Sub(c.last)
	c.rot.Yaw += d.X * c.cfg.DragSensitivity
	c.rot.Pitch += d.Y * c.cfg.DragSensitivity
	if lim := c.cfg.PitchLimit; lim > 0 {
		c.rot.Pitch = gomath.Max(-lim, gomath.Min(lim, c.rot.Pitch))
	}
	c.last = pos
}

// PointerUp ends the drag and schedules auto-rotate to resume.
func (c *GlobeCamera) PointerUp() {
	c.release()
}

// PointerLeave behaves like PointerUp when the pointer leaves the viewport.
func (c *GlobeCamera) PointerLeave() {
	c.release()
}

func (c *GlobeCamera) release() {
	if !c.dragging {
		return
	}
	c.dragging = false
	c.gen++
	token := c.gen
	c.stopPending()
	c.pending = c.timers.AfterFunc(c.cfg.ResumeDelay, func() {
		select {
		case c.resume <- token:
		default:
		}
	})
}

// Poll applies resume tokens posted by timers. Tokens from an older
// generation, or arriving mid-drag, are discarded.
func (c *GlobeCamera) Poll() {
	for {
		select {
		case token := <-c.resume:
			if token != c.gen || c.dragging {
				c.log.Debug("stale resume discarded", zap.Uint64("token", token), zap.Uint64("gen", c.gen))
				continue
			}
			c.autoRotate = true
			c.pending = nil
		default:
			return
		}
	}
}

// Step advances passive rotation by one frame.
func (c *GlobeCamera) Step(yawIncrement float64) {
	if c.autoRotate && !c.dragging {
		c.rot.Yaw += yawIncrement
	}
}

// SetAutoRotate enables or disables passive rotation and voids any pending
// resume.
func (c *GlobeCamera) SetAutoRotate(on bool) {
	c.gen++
	c.stopPending()
	c.autoRotate = on
}

// ToggleAutoRotate flips passive rotation.
func (c *GlobeCamera) ToggleAutoRotate() {
	c.SetAutoRotate(!c.autoRotate)
}

// Close cancels any pending resume timer.
func (c *GlobeCamera) Close() {
	c.stopPending()
}

func (c *GlobeCamera) stopPending() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}
