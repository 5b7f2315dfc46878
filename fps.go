package sway

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay displays the current FPS, TPS and the number of live tickers on
// the scene's display link. The text refreshes every ~0.5 seconds.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
	primed     bool
}

func newFPSOverlay() *fpsOverlay {
	// 120x48 is enough for three short lines.
	return &fpsOverlay{img: ebiten.NewImage(120, 48)}
}

func (o *fpsOverlay) draw(screen *ebiten.Image, s *Scene) {
	now := s.Now()
	if !o.primed || now-o.lastUpdate >= 0.5 {
		o.primed = true
		o.lastUpdate = now

		o.img.Clear()
		// Semi-transparent background for readability
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nTickers: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), s.link.Len()))
	}
	screen.DrawImage(o.img, nil)
}
