// Package viewer wires the scene, renderer, camera and animation loop to
// either a window or a headless PNG sink.
package viewer

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/shockglobe/internal/config"
	"github.com/Faultbox/shockglobe/internal/engine/animation"
	"github.com/Faultbox/shockglobe/internal/engine/camera"
	"github.com/Faultbox/shockglobe/internal/engine/canvas"
	"github.com/Faultbox/shockglobe/internal/engine/debug"
	"github.com/Faultbox/shockglobe/internal/engine/input"
	"github.com/Faultbox/shockglobe/internal/engine/present"
	"github.com/Faultbox/shockglobe/internal/engine/window"
	"github.com/Faultbox/shockglobe/internal/feed"
	"github.com/Faultbox/shockglobe/internal/globe/render"
	"github.com/Faultbox/shockglobe/internal/globe/scene"
	"github.com/Faultbox/shockglobe/internal/logger"
	"github.com/Faultbox/shockglobe/pkg/math"
)

// Viewer is the running application.
type Viewer struct {
	cfg *config.Config
	log *zap.Logger

	store    *scene.Store
	pipeline *render.Pipeline
	canvas   *canvas.Canvas
	camera   *camera.GlobeCamera
	driver   *animation.Driver
	capture  *debug.ScreenshotCapture
	feed     *feed.Client

	// windowed
	window    *window.Window
	presenter *present.Presenter
	input     *input.Input
	vsync     *animation.VSyncScheduler

	// headless
	ticker   *animation.TickerScheduler
	captured int
	budget   int
	done     chan struct{}
	doneOnce sync.Once
	frameErr error

	feedCancel context.CancelFunc
	feedWG     sync.WaitGroup
	closeOnce  sync.Once
}

// New builds the viewer. In windowed mode this opens the window and GL
// context, so it must run on the main goroutine.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg:   cfg,
		log:   logger.Named("viewer"),
		store: scene.NewStore(),
		pipeline: render.New(render.Options{
			FocalLength:     cfg.Globe.FocalLength,
			RadiusRatio:     cfg.Globe.RadiusRatio,
			ParticlesPerArc: cfg.Globe.ParticlesPerArc,
			ArcElevation:    cfg.Globe.ArcElevation,
		}),
		camera: camera.New(camera.Config{
			InitialYaw:      cfg.Globe.InitialYaw,
			InitialPitch:    cfg.Globe.InitialPitch,
			DragSensitivity: cfg.Globe.DragSensitivity,
			ResumeDelay:     cfg.Globe.ResumeDelay,
			PitchLimit:      cfg.Globe.PitchLimit,
		}),
		capture: debug.NewScreenshotCapture(cfg.Capture.Dir, cfg.Capture.Prefix),
		done:    make(chan struct{}),
	}

	var err error
	v.canvas, err = canvas.New()
	if err != nil {
		v.camera.Close()
		return nil, fmt.Errorf("failed to create canvas: %w", err)
	}

	if err := v.loadScene(); err != nil {
		v.Close()
		return nil, err
	}

	driverCfg := animation.Config{
		Mode:            cfg.Clock.Mode,
		Step:            cfg.Clock.Step,
		AutoRotateSpeed: cfg.Globe.AutoRotateSpeed,
	}

	if cfg.Capture.Headless {
		v.budget = cfg.Capture.Frames
		v.ticker = animation.NewTickerScheduler(cfg.Clock.FPS)
		v.driver = animation.NewDriver(v.ticker, v.camera, v.headlessFrame, driverCfg)
		v.log.Info("headless mode",
			zap.Int("frames", v.budget),
			zap.Int("fps", cfg.Clock.FPS),
			zap.String("dir", cfg.Capture.Dir))
		return v, nil
	}

	if err := v.openWindow(); err != nil {
		v.Close()
		return nil, err
	}
	v.driver = animation.NewDriver(v.vsync, v.camera, v.windowFrame, driverCfg)
	return v, nil
}

// loadScene seeds the store from the scenario file, or from the built-in
// scenario when no live feed is configured.
func (v *Viewer) loadScene() error {
	feedCfg := v.cfg.Feed
	switch {
	case feedCfg.Scenario != "":
		s, err := feed.LoadScenario(feedCfg.Scenario)
		if err != nil {
			return err
		}
		s.Apply(v.store)
		v.log.Info("scenario loaded", zap.String("path", feedCfg.Scenario), zap.String("name", s.Name))
	case feedCfg.URL == "":
		feed.DefaultScenario().Apply(v.store)
		v.log.Info("no feed configured, using built-in scenario")
	}

	if feedCfg.URL != "" {
		v.feed = feed.NewClient(feed.Config{
			URL:            feedCfg.URL,
			ReconnectDelay: feedCfg.ReconnectDelay,
			MaxReconnects:  feedCfg.MaxReconnects,
		}, v.store)
	}
	return nil
}

// Store exposes the scene so callers can push data in.
func (v *Viewer) Store() *scene.Store {
	return v.store
}

// Run blocks until the window closes, Esc is pressed, ctx is cancelled or
// the headless frame budget is spent.
func (v *Viewer) Run(ctx context.Context) error {
	v.startFeed(ctx)

	if v.cfg.Capture.Headless {
		return v.runHeadless(ctx)
	}
	return v.runWindowed(ctx)
}

func (v *Viewer) startFeed(ctx context.Context) {
	if v.feed == nil {
		return
	}
	fctx, cancel := context.WithCancel(ctx)
	v.feedCancel = cancel
	v.feedWG.Add(1)
	go func() {
		defer v.feedWG.Done()
		if err := v.feed.Run(fctx); err != nil {
			// The last scene stays on screen.
			v.log.Error("feed stopped", zap.Error(err))
		}
	}()
}

// draw paints one frame at the given logical size into the canvas.
func (v *Viewer) draw(rot math.Rotation, clock, w, h, dpr float64) {
	v.canvas.Resize(w, h, dpr)
	v.pipeline.Draw(v.canvas, v.store.Snapshot(), render.Frame{
		Width:    w,
		Height:   h,
		Rotation: rot,
		Clock:    clock,
	})
}

// Close stops the animation first, then the feed, then releases GL and SDL.
// Safe to call more than once.
func (v *Viewer) Close() error {
	var err error
	v.closeOnce.Do(func() {
		v.log.Info("closing viewer")

		if v.driver != nil {
			v.driver.Stop()
			v.log.Debug("animation stopped", zap.Uint64("frames", v.driver.Frames()))
		}
		if v.ticker != nil {
			v.ticker.Stop()
		}
		if v.feedCancel != nil {
			v.feedCancel()
			v.feedWG.Wait()
		}
		v.camera.Close()

		if v.canvas != nil {
			err = multierr.Append(err, v.canvas.Close())
		}
		if v.presenter != nil {
			v.presenter.Close()
		}
		if v.window != nil {
			err = multierr.Append(err, v.window.Close())
		}
	})
	return err
}
