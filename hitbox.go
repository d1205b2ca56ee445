package alder

import (
	"image"
	"math"
	"sort"
)

// DefaultAlphaThreshold is the alpha value above which a pixel counts as
// solid when tracing hitboxes.
const DefaultAlphaThreshold = 10

// TraceHitbox derives a convex hitbox polygon from an image's alpha channel.
//
// Every pixel whose alpha exceeds threshold and that borders a transparent
// pixel (or the image edge) is collected as a boundary candidate; the convex
// hull of the candidates is then recentered so the polygon lives in
// sprite-local, center-origin space, ready to be scaled and translated at
// collision-query time.
//
// The scan is O(w*h) and the hull O(n log n) — fine for sprite-scale art,
// too slow for large backgrounds.
func TraceHitbox(img image.Image, threshold uint8) []Vec2 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	alpha := func(x, y int) uint8 {
		if x < 0 || y < 0 || x >= w || y >= h {
			return 0 // out of bounds counts as transparent
		}
		_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
		return uint8(a >> 8)
	}

	var boundary []Vec2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if alpha(x, y) <= threshold {
				continue
			}
			if hasTransparentNeighbor(alpha, x, y, threshold) {
				boundary = append(boundary, Vec2{float64(x), float64(y)})
			}
		}
	}

	hull := convexHull(boundary)

	// Recenter to sprite-local space: (0,0) becomes the image center.
	halfW, halfH := float64(w)/2, float64(h)/2
	for i := range hull {
		hull[i].X -= halfW
		hull[i].Y -= halfH
	}
	return hull
}

// hasTransparentNeighbor reports whether any of the 8 neighbors of (x, y) is
// at or below the alpha threshold.
func hasTransparentNeighbor(alpha func(int, int) uint8, x, y int, threshold uint8) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if alpha(x+dx, y+dy) <= threshold {
				return true
			}
		}
	}
	return false
}

// convexHull computes the convex hull of a point set via Graham scan:
// anchor at the lowest-y (tie-break lowest-x) point, sort the rest by polar
// angle around the anchor, then sweep keeping only left turns. Inputs with
// fewer than 3 points are returned unchanged.
//
// The returned polygon is convex, which the SAT collision test depends on.
func convexHull(points []Vec2) []Vec2 {
	if len(points) < 3 {
		return points
	}

	anchor := 0
	for i, p := range points {
		a := points[anchor]
		if p.Y < a.Y || (p.Y == a.Y && p.X < a.X) {
			anchor = i
		}
	}
	points[0], points[anchor] = points[anchor], points[0]
	ap := points[0]

	rest := points[1:]
	sort.Slice(rest, func(i, j int) bool {
		ai := math.Atan2(rest[i].Y-ap.Y, rest[i].X-ap.X)
		aj := math.Atan2(rest[j].Y-ap.Y, rest[j].X-ap.X)
		if ai != aj {
			return ai < aj
		}
		// Same angle: nearer point first so the farther one survives the sweep.
		return distSq(ap, rest[i]) < distSq(ap, rest[j])
	})

	hull := points[:0:0]
	hull = append(hull, ap)
	for _, p := range rest {
		// Drop prior hull points while the last three do not form a
		// strictly positive cross product (right turn or collinear).
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull
}

// cross returns the z component of (b-a) x (c-a).
func cross(a, b, c Vec2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func distSq(a, b Vec2) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	return dx*dx + dy*dy
}
