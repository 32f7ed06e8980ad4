// Package debug provides frame capture for screenshots and headless runs.
package debug

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/multierr"
)

// ScreenshotCapture writes frames as PNG files.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// NewScreenshotCapture creates a capture handler writing into outputDir.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	if prefix == "" {
		prefix = "frame"
	}
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// SetOutputDir sets the output directory for screenshots.
func (sc *ScreenshotCapture) SetOutputDir(dir string) {
	sc.outputDir = dir
}

// OutputDir returns the directory files are written to.
func (sc *ScreenshotCapture) OutputDir() string {
	return sc.outputDir
}

// Capture saves img under a timestamped name. Captures within the same
// second get a numeric suffix instead of overwriting each other.
func (sc *ScreenshotCapture) Capture(img image.Image) (string, error) {
	if err := sc.ensureDir(); err != nil {
		return "", err
	}

	base := sc.GenerateFilename()
	name := base
	for i := 1; ; i++ {
		f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			name = fmt.Sprintf("%s_%d.png", base[:len(base)-len(".png")], i)
			continue
		}
		if err != nil {
			return "", fmt.Errorf("creating file: %w", err)
		}
		return name, encode(f, img)
	}
}

// CaptureFrame saves img as the numbered frame of a sequence, replacing any
// earlier file with the same index.
func (sc *ScreenshotCapture) CaptureFrame(img image.Image, index int) (string, error) {
	if err := sc.ensureDir(); err != nil {
		return "", err
	}

	name := sc.join(fmt.Sprintf("%s_%05d.png", sc.prefix, index))
	f, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	return name, encode(f, img)
}

// GenerateFilename returns the timestamped path Capture would try first.
func (sc *ScreenshotCapture) GenerateFilename() string {
	timestamp := sc.now().Format("2006-01-02_15-04-05")
	return sc.join(fmt.Sprintf("%s_%s.png", sc.prefix, timestamp))
}

func (sc *ScreenshotCapture) join(name string) string {
	if sc.outputDir == "" {
		return name
	}
	return filepath.Join(sc.outputDir, name)
}

func (sc *ScreenshotCapture) ensureDir() error {
	if sc.outputDir == "" {
		return nil
	}
	if err := os.MkdirAll(sc.outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	return nil
}

func encode(f *os.File, img image.Image) (err error) {
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
