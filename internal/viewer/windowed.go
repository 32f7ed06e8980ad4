package viewer

import (
	"context"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/shockglobe/internal/engine/animation"
	"github.com/Faultbox/shockglobe/internal/engine/input"
	"github.com/Faultbox/shockglobe/internal/engine/present"
	"github.com/Faultbox/shockglobe/internal/engine/window"
	"github.com/Faultbox/shockglobe/pkg/math"
)

func (v *Viewer) openWindow() error {
	var err error
	v.window, err = window.New(window.Config{
		Title:      v.cfg.Window.Title,
		Width:      v.cfg.Window.Width,
		Height:     v.cfg.Window.Height,
		Fullscreen: v.cfg.Window.Fullscreen,
		VSync:      v.cfg.Window.VSync,
		PixelRatio: v.cfg.Window.PixelRatio,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}

	// GL context must exist before the presenter.
	v.presenter, err = present.New()
	if err != nil {
		return fmt.Errorf("failed to create presenter: %w", err)
	}

	v.input = input.New()
	v.vsync = animation.NewVSyncScheduler()
	return nil
}

// runWindowed is the main loop: input, one scheduled frame, swap.
func (v *Viewer) runWindowed(ctx context.Context) error {
	v.driver.Start()
	v.log.Info("starting render loop")

	// Without vsync the swap does not block, so pace the loop ourselves.
	var interval time.Duration
	if !v.cfg.Window.VSync {
		interval = time.Second / time.Duration(v.cfg.Clock.FPS)
	}

	for {
		start := time.Now()

		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if v.input.Update() {
			return nil
		}
		for _, e := range v.input.Events() {
			if v.handleEvent(e) {
				return nil
			}
		}

		v.vsync.RunFrame()
		v.window.SwapBuffers()

		if interval > 0 {
			if rest := interval - time.Since(start); rest > 0 {
				time.Sleep(rest)
			}
		}
	}
}

// windowFrame runs on the main goroutine from inside RunFrame.
func (v *Viewer) windowFrame(rot math.Rotation, clock float64) {
	w, h := v.window.Size()
	v.draw(rot, clock, float64(w), float64(h), v.window.PixelRatio())

	dw, dh := v.window.DrawableSize()
	v.presenter.Present(v.canvas.Image(), dw, dh)
}

// handleEvent routes one input event. Returns true when the viewer should
// quit.
func (v *Viewer) handleEvent(e input.Event) bool {
	switch e.Type {
	case input.EventQuit:
		return true

	case input.EventKeyDown:
		switch e.Key {
		case sdl.SCANCODE_ESCAPE:
			return true
		case sdl.SCANCODE_F12:
			v.screenshot()
		case sdl.SCANCODE_SPACE:
			v.camera.ToggleAutoRotate()
			v.log.Info("auto-rotate toggled", zap.Bool("on", v.camera.AutoRotate()))
		}

	case input.EventResize:
		v.log.Debug("window resized", zap.Int("width", e.Width), zap.Int("height", e.Height))

	case input.EventPointerDown:
		v.camera.PointerDown(e.X, e.Y)
	case input.EventPointerMove:
		v.camera.PointerMove(e.X, e.Y)
	case input.EventPointerUp:
		v.camera.PointerUp()
	case input.EventPointerLeave:
		v.camera.PointerLeave()
	}
	return false
}

// screenshot saves the last rendered frame.
func (v *Viewer) screenshot() {
	img := v.canvas.Image()
	if img.Bounds().Empty() {
		v.log.Warn("no frame rendered yet, skipping screenshot")
		return
	}
	name, err := v.capture.Capture(img)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("file", name))
}
