package alder

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// opaqueSquare returns a w×h image that is fully opaque.
func opaqueSquare(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	return img
}

func hullBounds(t *testing.T, hull []Vec2) (minX, minY, maxX, maxY float64) {
	t.Helper()
	if len(hull) == 0 {
		t.Fatal("empty hull")
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range hull {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}

func TestTraceHitboxOpaqueSquare(t *testing.T) {
	hull := TraceHitbox(opaqueSquare(40, 40), DefaultAlphaThreshold)
	if len(hull) < 3 {
		t.Fatalf("hull has %d points, want >= 3", len(hull))
	}

	// Center-origin local space: the 40×40 square's hull bounding box must
	// be within 1 unit of [-20,-20]..[20,20].
	minX, minY, maxX, maxY := hullBounds(t, hull)
	for name, got := range map[string][2]float64{
		"minX": {minX, -20}, "minY": {minY, -20},
		"maxX": {maxX, 20}, "maxY": {maxY, 20},
	} {
		if math.Abs(got[0]-got[1]) > 1 {
			t.Errorf("%s = %v, want within 1 of %v", name, got[0], got[1])
		}
	}
}

func TestTraceHitboxHullIsConvex(t *testing.T) {
	// A plus shape: hull must span the extremes and stay convex.
	img := image.NewNRGBA(image.Rect(0, 0, 30, 30))
	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			if (x >= 12 && x < 18) || (y >= 12 && y < 18) {
				img.Set(x, y, color.NRGBA{A: 255})
			}
		}
	}
	hull := TraceHitbox(img, DefaultAlphaThreshold)
	if len(hull) < 3 {
		t.Fatalf("hull has %d points, want >= 3", len(hull))
	}

	// Convexity: every consecutive triple turns the same way (or is collinear).
	var pos, neg bool
	n := len(hull)
	for i := 0; i < n; i++ {
		c := cross(hull[i], hull[(i+1)%n], hull[(i+2)%n])
		if c > 0 {
			pos = true
		} else if c < 0 {
			neg = true
		}
	}
	if pos && neg {
		t.Error("hull is not convex")
	}
}

func TestTraceHitboxIgnoresInteriorPixels(t *testing.T) {
	// For a filled square only perimeter pixels are boundary candidates, so
	// the hull must not exceed the image bounds in local space.
	hull := TraceHitbox(opaqueSquare(20, 20), DefaultAlphaThreshold)
	for _, p := range hull {
		if p.X < -10 || p.X > 10 || p.Y < -10 || p.Y > 10 {
			t.Errorf("hull point %v outside local bounds", p)
		}
	}
}

func TestTraceHitboxFullyTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	if hull := TraceHitbox(img, DefaultAlphaThreshold); len(hull) != 0 {
		t.Errorf("transparent image produced %d hull points, want 0", len(hull))
	}
}

func TestTraceHitboxRespectsThreshold(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.NRGBA{A: 10}) // exactly at the default threshold
		}
	}
	if hull := TraceHitbox(img, DefaultAlphaThreshold); len(hull) != 0 {
		t.Errorf("alpha at threshold produced %d points, want 0 (threshold is exclusive)", len(hull))
	}
	if hull := TraceHitbox(img, 9); len(hull) == 0 {
		t.Error("alpha above threshold produced no hull")
	}
}

func TestConvexHullDegenerateInput(t *testing.T) {
	two := []Vec2{{0, 0}, {5, 5}}
	got := convexHull(two)
	if len(got) != 2 {
		t.Fatalf("hull of 2 points has %d points, want 2 (returned unchanged)", len(got))
	}
	if got[0] != two[0] || got[1] != two[1] {
		t.Errorf("degenerate input mutated: %v", got)
	}
}

func TestCostumeHullMemoized(t *testing.T) {
	c := NewCostume("square", opaqueSquare(40, 40))
	first := c.hitboxHull(DefaultAlphaThreshold)
	second := c.hitboxHull(DefaultAlphaThreshold)
	if len(first) == 0 {
		t.Fatal("no hull traced")
	}
	if &first[0] != &second[0] {
		t.Error("hull retraced on second query, want memoized slice")
	}

	// A different threshold invalidates the memo.
	third := c.hitboxHull(200)
	if len(third) == 0 {
		t.Fatal("no hull for new threshold")
	}
}
