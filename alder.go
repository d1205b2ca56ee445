package alder

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default sprite fill (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and hitbox points
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// EntityKind distinguishes simulation and rendering behavior for an Entity.
type EntityKind uint8

const (
	KindSprite EntityKind = iota // costume-rendered actor with motion and collision
	KindText                     // renders a string via text/v2
	KindWidget                   // user-supplied overlay (e.g. a text input)
)

// ControlScheme maps the four logical movement directions to keyboard keys.
// A sprite with a scheme reads the input source's pressed set each tick.
type ControlScheme struct {
	Up, Down, Left, Right ebiten.Key
}

// ArrowKeys is the conventional arrow-key control scheme.
var ArrowKeys = ControlScheme{
	Up:    ebiten.KeyArrowUp,
	Down:  ebiten.KeyArrowDown,
	Left:  ebiten.KeyArrowLeft,
	Right: ebiten.KeyArrowRight,
}

// WASDKeys is the conventional WASD control scheme.
var WASDKeys = ControlScheme{
	Up:    ebiten.KeyW,
	Down:  ebiten.KeyS,
	Left:  ebiten.KeyA,
	Right: ebiten.KeyD,
}

// directionVector converts a direction in degrees (0 = up, clockwise) to a
// unit vector in stage coordinates (Y down).
func directionVector(degrees float64) (dx, dy float64) {
	rad := degrees * math.Pi / 180
	return math.Sin(rad), -math.Cos(rad)
}
