package viewer

import (
	"context"

	"go.uber.org/zap"

	"github.com/Faultbox/shockglobe/pkg/math"
)

// runHeadless renders on the ticker and writes every frame as a PNG until
// the budget is spent.
func (v *Viewer) runHeadless(ctx context.Context) error {
	v.ticker.Start()
	v.driver.Start()

	select {
	case <-ctx.Done():
		v.log.Info("headless run cancelled")
	case <-v.done:
	}

	// Stop from here, never from inside the frame callback.
	v.driver.Stop()
	v.ticker.Stop()

	if v.frameErr != nil {
		return v.frameErr
	}
	v.log.Info("headless run finished",
		zap.Int("frames", v.captured),
		zap.String("dir", v.capture.OutputDir()))
	return nil
}

// headlessFrame runs on the ticker goroutine.
func (v *Viewer) headlessFrame(rot math.Rotation, clock float64) {
	if v.captured >= v.budget {
		return
	}

	dpr := v.cfg.Window.PixelRatio
	if dpr <= 0 {
		dpr = 1
	}
	v.draw(rot, clock, float64(v.cfg.Window.Width), float64(v.cfg.Window.Height), dpr)

	name, err := v.capture.CaptureFrame(v.canvas.Image(), v.captured)
	if err != nil {
		v.frameErr = err
		v.finish()
		return
	}
	v.captured++
	v.log.Debug("frame written", zap.String("file", name), zap.Float64("clock", clock))

	if v.captured >= v.budget {
		v.finish()
	}
}

func (v *Viewer) finish() {
	v.doneOnce.Do(func() { close(v.done) })
}
