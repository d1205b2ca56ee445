package alder

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the Run game loop.
type RunConfig struct {
	Title      string
	Width      int // window width; 0 = stage width
	Height     int // window height; 0 = stage height
	ClearColor Color
	ShowFPS    bool
}

// game adapts a Stage to ebiten.Game. The ebiten loop is the external frame
// clock: one Update call per display refresh, no payload.
type game struct {
	stage *Stage
	cfg   RunConfig
}

func (g *game) Update() error {
	g.stage.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor.toRGBA())
	g.stage.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.stage.Width), int(g.stage.Height)
}

// Run opens a window and drives the stage with ebiten's game loop. It blocks
// until the window closes.
func Run(stage *Stage, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w == 0 {
		w = int(stage.Width)
	}
	if h == 0 {
		h = int(stage.Height)
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Title)
	return ebiten.RunGame(&game{stage: stage, cfg: cfg})
}
