package alder

import "math"

// CollisionSize returns the entity's effective collision box dimensions.
// A sprite showing an image with UseOriginalSize set reports the image's
// natural dimensions times Scale; everything else falls back to a Size-edged
// square.
func (e *Entity) CollisionSize() (w, h float64) {
	if e.Kind == KindSprite && e.UseOriginalSize {
		if c := e.Costume(); c.Ready() {
			return float64(c.Width()) * e.Scale, float64(c.Height()) * e.Scale
		}
	}
	return e.Size, e.Size
}

// Touching reports whether two entities are in contact. When both carry a
// hitbox polygon the test is exact (SAT on the world-space hulls); otherwise
// it degrades to a center-based bounding-box overlap. The test is symmetric.
func Touching(a, b *Entity) bool {
	if len(a.hitbox) > 0 && len(b.hitbox) > 0 {
		return satIntersects(a.worldHitbox(), b.worldHitbox())
	}

	aw, ah := a.CollisionSize()
	bw, bh := b.CollisionSize()
	return math.Abs(a.X-b.X) < (aw+bw)/2 &&
		math.Abs(a.Y-b.Y) < (ah+bh)/2
}

// worldHitbox transforms the sprite-local, center-origin hitbox polygon to
// stage space: world = local*scale + position. The stored polygon is never
// mutated.
func (e *Entity) worldHitbox() []Vec2 {
	world := make([]Vec2, len(e.hitbox))
	for i, p := range e.hitbox {
		world[i] = Vec2{p.X*e.Scale + e.X, p.Y*e.Scale + e.Y}
	}
	return world
}

// satIntersects runs the Separating Axis Theorem on two convex polygons:
// project both onto every edge-normal axis of both; a single axis without
// interval overlap proves the polygons disjoint. Validity depends on the
// polygons being convex, which hull construction guarantees.
func satIntersects(a, b []Vec2) bool {
	return !hasSeparatingAxis(a, b) && !hasSeparatingAxis(b, a)
}

// hasSeparatingAxis tests the edge normals of polygon p against both polygons.
func hasSeparatingAxis(p, other []Vec2) bool {
	n := len(p)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		ex, ey := p[j].X-p[i].X, p[j].Y-p[i].Y

		// Normalized edge normal.
		length := math.Hypot(ex, ey)
		if length == 0 {
			continue
		}
		ax, ay := -ey/length, ex/length

		minA, maxA := projectOntoAxis(p, ax, ay)
		minB, maxB := projectOntoAxis(other, ax, ay)
		if minA > maxB || minB > maxA {
			return true
		}
	}
	return false
}

// projectOntoAxis returns the interval covered by the polygon's vertices
// projected onto the (unit) axis.
func projectOntoAxis(p []Vec2, ax, ay float64) (min, max float64) {
	min = p[0].X*ax + p[0].Y*ay
	max = min
	for _, v := range p[1:] {
		d := v.X*ax + v.Y*ay
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}
