package alder

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SetPenDown lowers or raises the pen. Lowering starts a new trail path at
// the sprite's current position; raising seals the current path.
func (e *Entity) SetPenDown(down bool) {
	if down == e.PenDown {
		return
	}
	e.PenDown = down
	if down {
		e.trails = append(e.trails, []Vec2{{e.X, e.Y}})
	}
}

// SetPenColor sets the trail color.
func (e *Entity) SetPenColor(c Color) {
	e.PenColor = c
}

// SetPenThickness sets the trail stroke width.
func (e *Entity) SetPenThickness(thickness float64) {
	e.PenThickness = thickness
}

// ClearPen discards all recorded trail paths. A lowered pen starts a fresh
// path at the current position.
func (e *Entity) ClearPen() {
	e.trails = nil
	if e.PenDown {
		e.trails = append(e.trails, []Vec2{{e.X, e.Y}})
	}
}

// PenTrails returns the recorded trail paths. Callers must not mutate them.
func (e *Entity) PenTrails() [][]Vec2 {
	return e.trails
}

// recordPenPoint appends the current position to the active path if the pen
// is down and the position changed since the last recorded point.
func (e *Entity) recordPenPoint() {
	if !e.PenDown || len(e.trails) == 0 {
		return
	}
	path := e.trails[len(e.trails)-1]
	if len(path) > 0 {
		last := path[len(path)-1]
		if last.X == e.X && last.Y == e.Y {
			return
		}
	}
	e.trails[len(e.trails)-1] = append(path, Vec2{e.X, e.Y})
}

// drawPen strokes the sprite's trail paths. Trails persist while the sprite
// is hidden.
func (e *Entity) drawPen(dst *ebiten.Image) {
	clr := e.PenColor.toRGBA()
	width := float32(e.PenThickness)
	for _, path := range e.trails {
		for i := 1; i < len(path); i++ {
			vector.StrokeLine(dst,
				float32(path[i-1].X), float32(path[i-1].Y),
				float32(path[i].X), float32(path[i].Y),
				width, clr, true)
		}
	}
}
