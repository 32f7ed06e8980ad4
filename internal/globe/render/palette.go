package render

import (
	"github.com/Faultbox/shockglobe/internal/engine/canvas"
	"github.com/Faultbox/shockglobe/internal/globe/scene"
)

var (
	colorBackground = canvas.MustHex("#0a0a0a")
	colorGrid       = canvas.RGBA(45, 38, 32, 0.65)
	colorCorner     = canvas.RGBA(60, 50, 42, 0.7)
	colorGhost      = canvas.RGBA(140, 18, 18, 0.14)
	colorTrail      = canvas.RGBA(190, 25, 25, 1)
	colorHeadCore   = canvas.MustHex("#e8e0d8")
	colorDestCross  = canvas.RGBA(140, 130, 120, 1)
	colorDestLabel  = canvas.RGBA(120, 112, 104, 1)
	colorDot        = canvas.RGBA(92, 80, 68, 1)
	colorHUDMuted   = canvas.RGBA(60, 50, 40, 0.8)
	colorHUDAlert   = canvas.RGBA(155, 18, 18, 0.75)
	colorHUDTag     = canvas.RGBA(50, 42, 35, 0.7)
)

var severityColors = map[scene.Severity]canvas.Solid{
	scene.SeverityCritical: canvas.MustHex("#c41e3a"),
	scene.SeverityHigh:     canvas.MustHex("#ff9800"),
	scene.SeverityMedium:   canvas.MustHex("#2196f3"),
	scene.SeverityLow:      canvas.MustHex("#00c853"),
}

var categoryColors = map[string]canvas.Solid{
	scene.CategoryOil:     canvas.MustHex("#d97706"),
	scene.CategoryDefense: canvas.MustHex("#22c55e"),
	scene.CategoryFX:      canvas.MustHex("#a78bfa"),
}

// ghostColor tints an arc's ghost path by category, keeping the base alpha.
func ghostColor(category string) canvas.Solid {
	if c, ok := categoryColors[category]; ok {
		c.A = colorGhost.A
		return c
	}
	return colorGhost
}

func severityColor(s scene.Severity) canvas.Solid {
	if c, ok := severityColors[s]; ok {
		return c
	}
	return severityColors[scene.SeverityMedium]
}
