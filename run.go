package sway

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window and game loop created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// TPS overrides ebiten's ticks per second; zero keeps the default (60).
	TPS int
	// Resizable lets the user resize the window; the layout follows it.
	Resizable bool
	// ShowFPS draws an FPS/TPS overlay in the top-left corner.
	ShowFPS bool
	// Debug enables the scene's debug mode.
	Debug bool
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene  *Scene
	width  int
	height int
	resize bool
	fps    *fpsOverlay
}

func (g *game) Update() error {
	if fn := g.scene.updateFunc; fn != nil {
		if err := fn(); err != nil {
			return err
		}
	}
	g.scene.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.fps != nil {
		g.fps.draw(screen, g.scene)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.resize {
		return outsideWidth, outsideHeight
	}
	return g.width, g.height
}

// Run opens a window and drives scene until the window closes or the update
// func returns an error. It blocks and must be called from the main goroutine.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("run: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if cfg.Debug {
		scene.SetDebugMode(true)
	}

	g := &game{scene: scene, width: cfg.Width, height: cfg.Height, resize: cfg.Resizable}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
