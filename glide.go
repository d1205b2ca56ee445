package alder

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Glide animates up to 2 float64 fields on an Entity simultaneously. Create
// one via GlidePosition or GlideScale and call Update(dt) each frame, or use
// Entity.GlideTo to have the stage advance it per tick.
//
// Glides are wall-clock driven, not tick-synchronized: if the target entity
// is deleted mid-flight the glide stops immediately and no further writes
// occur.
type Glide struct {
	tweens [2]*gween.Tween
	fields [2]*float64
	count  int
	target *Entity
	Done   bool
}

// Update advances the glide by dt seconds and writes values to the target
// fields. Deleted targets mark the glide Done without writing.
func (g *Glide) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && !g.target.Alive() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// GlidePosition creates a Glide that moves the entity's center to (toX, toY)
// over the given duration using the easing function.
func GlidePosition(e *Entity, toX, toY float64, duration float32, fn ease.TweenFunc) *Glide {
	g := &Glide{count: 2, target: e}
	g.tweens[0] = gween.New(float32(e.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(e.Y), float32(toY), duration, fn)
	g.fields[0] = &e.X
	g.fields[1] = &e.Y
	return g
}

// GlideScale creates a Glide that animates the entity's scale to the target
// value over the given duration using the easing function.
func GlideScale(e *Entity, to float64, duration float32, fn ease.TweenFunc) *Glide {
	g := &Glide{count: 1, target: e}
	g.tweens[0] = gween.New(float32(e.Scale), float32(to), duration, fn)
	g.fields[0] = &e.Scale
	return g
}

// GlideTo starts a linear stage-managed glide to (toX, toY) over duration
// seconds. The stage advances it at the end of each tick.
func (e *Entity) GlideTo(toX, toY float64, duration float32) *Glide {
	g := GlidePosition(e, toX, toY, duration, ease.Linear)
	e.stage.glides = append(e.stage.glides, g)
	return g
}

// updateGlides advances stage-managed glides and compacts finished ones.
func (st *Stage) updateGlides() {
	dt := float32(1.0 / float64(ebiten.TPS()))
	live := st.glides[:0]
	for _, g := range st.glides {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	// Clear the tail so finished glides don't linger in the backing array.
	for i := len(live); i < len(st.glides); i++ {
		st.glides[i] = nil
	}
	st.glides = live
}
