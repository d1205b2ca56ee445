package alder

import (
	"image"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Costume is an image handle shared by sprites. The decoded image.Image is
// retained for per-pixel alpha queries (hitbox tracing); the GPU texture is
// created lazily on first draw so costumes can be built and inspected without
// a running game.
//
// Costume assets are immutable once created: clones share costume handles.
type Costume struct {
	Name string

	src    image.Image
	width  int
	height int
	ready  bool

	texture *ebiten.Image

	// Memoized hitbox hull (see TraceHitbox). Generated once per costume,
	// not per collision query.
	hull          []Vec2
	hullThreshold uint8
	hullValid     bool
}

// NewCostume wraps an already-decoded image. The costume is immediately ready.
func NewCostume(name string, img image.Image) *Costume {
	b := img.Bounds()
	return &Costume{
		Name:   name,
		src:    img,
		width:  b.Dx(),
		height: b.Dy(),
		ready:  true,
	}
}

// LoadCostume reads and decodes an image file. Decoding failures are not
// fatal: the error is logged and a non-ready costume is returned, which
// sprites render as a solid-color rectangle of their fallback size.
//
// Callers must register the relevant image decoders (e.g. image/png) with a
// blank import.
func LoadCostume(name, path string) *Costume {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("alder: costume %q: %v", name, err)
		return &Costume{Name: name}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		log.Printf("alder: costume %q: decode %s: %v", name, path, err)
		return &Costume{Name: name}
	}
	return NewCostume(name, img)
}

// Ready reports whether the costume holds decoded image data.
func (c *Costume) Ready() bool {
	return c != nil && c.ready
}

// Width returns the natural pixel width, or 0 if the costume is not ready.
func (c *Costume) Width() int {
	if c == nil {
		return 0
	}
	return c.width
}

// Height returns the natural pixel height, or 0 if the costume is not ready.
func (c *Costume) Height() int {
	if c == nil {
		return 0
	}
	return c.height
}

// AlphaAt returns the alpha component (0-255) of the pixel at (x, y) in
// costume-local coordinates. Out-of-bounds queries return 0.
func (c *Costume) AlphaAt(x, y int) uint8 {
	if !c.Ready() || x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0
	}
	b := c.src.Bounds()
	_, _, _, a := c.src.At(b.Min.X+x, b.Min.Y+y).RGBA()
	return uint8(a >> 8)
}

// hitboxHull returns the memoized convex hitbox hull for this costume,
// tracing it on first use. Returns nil for non-ready costumes.
func (c *Costume) hitboxHull(threshold uint8) []Vec2 {
	if !c.Ready() {
		return nil
	}
	if c.hullValid && c.hullThreshold == threshold {
		return c.hull
	}
	c.hull = TraceHitbox(c.src, threshold)
	c.hullThreshold = threshold
	c.hullValid = true
	return c.hull
}

// image returns the GPU texture for drawing, creating it on first use.
func (c *Costume) image() *ebiten.Image {
	if !c.Ready() {
		return nil
	}
	if c.texture == nil {
		c.texture = ebiten.NewImageFromImage(c.src)
	}
	return c.texture
}
