package render

import (
	"strconv"

	"github.com/Faultbox/shockglobe/internal/engine/canvas"
	"github.com/Faultbox/shockglobe/internal/globe/scene"
)

const hudFontSize = 8

func (p *Pipeline) drawHUD(dst Painter, v view, snap *scene.Snapshot) {
	dst.FillText("PROJ: ORTHOGRAPHIC", 20, v.h-16, hudFontSize, canvas.AlignLeft, colorHUDMuted)
	dst.FillText("DRAG TO ROTATE", 20, v.h-6, hudFontSize, canvas.AlignLeft, colorHUDMuted)

	vectors := strconv.Itoa(len(snap.Arcs)) + " PROPAGATION VECTORS ACTIVE"
	dst.FillText(vectors, 20, 18, hudFontSize, canvas.AlignLeft, colorHUDAlert)
	var rule canvas.Path
	rule.Line(20, 21.5, 20+dst.TextWidth(vectors, hudFontSize), 21.5)
	dst.StrokePath(&rule, 0.6, colorHUDAlert.WithAlpha(0.3))

	if n := len(snap.Markers); n > 0 {
		dst.FillText(strconv.Itoa(n)+" EVENT MARKERS TRACKED", 20, 32, hudFontSize, canvas.AlignLeft, colorHUDMuted)
	}
	if snap.Epicenter != nil && snap.Epicenter.Label != "" {
		dst.FillText("EPICENTER: "+p.upper(snap.Epicenter.Label), v.w-20, 18, hudFontSize, canvas.AlignRight, colorHUDAlert)
	}

	dst.FillText("SRC: MULTI-INT", v.w-20, v.h-16, hudFontSize, canvas.AlignRight, colorHUDTag)
	dst.FillText("ALGO: SHOCK-v2.1", v.w-20, v.h-6, hudFontSize, canvas.AlignRight, colorHUDTag)
}
