package alder

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
)

func rectToImageRect(r Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)), int(math.Ceil(r.Y+r.Height)))
}

// Stage owns all shared simulation state: the draw-order list, the input
// source, and the per-tick pipeline. Everything mutates synchronously inside
// a tick on one logical thread; there is no locking.
//
// An external frame clock (normally Run, or a custom ebiten.Game) calls
// Update once per display refresh and Draw with the frame's target image.
// A slow tick simply produces a larger visual step next frame; there is no
// fixed-timestep catch-up.
type Stage struct {
	Width, Height float64

	// entities is the draw-order list: index 0 back-most, last front-most.
	entities []*Entity

	input         InputSource
	pendingClicks []Vec2
	glides        []*Glide
	nextEntityID  uint32
	snapshotBuf   []*Entity
}

// NewStage creates an empty stage with the given logical canvas size.
func NewStage(width, height float64) *Stage {
	return &Stage{
		Width:  width,
		Height: height,
		input:  deviceInput{},
	}
}

// Entities returns the draw-order list. Callers must not mutate it; use the
// layer operations and Delete instead.
func (st *Stage) Entities() []*Entity {
	return st.entities
}

// snapshotEntities copies the draw-order list into a reused buffer so a
// dispatch pass survives structural mutation by its callbacks.
func (st *Stage) snapshotEntities() []*Entity {
	st.snapshotBuf = append(st.snapshotBuf[:0], st.entities...)
	return st.snapshotBuf
}

// Update runs one simulation tick: click dispatch, then per-sprite movement
// with collision resolution and pen recording, then touch diffing, then
// per-entity update overrides, then glide advancement.
func (st *Stage) Update() {
	st.processClicks()
	st.updateMovement()
	st.updateTouches()
	st.updateOverrides()
	st.updateGlides()
}

// updateMovement applies control-scheme and gravity motion to every sprite,
// resolving each axis against hitbox-enabled obstacles and clamping to the
// canvas. The pass iterates a snapshot; callbacks that ran earlier in the
// tick may have altered the list.
func (st *Stage) updateMovement() {
	for _, e := range st.snapshotEntities() {
		if e.Kind != KindSprite || e.deleted {
			continue
		}
		st.moveSprite(e)
	}
}

// intendedStep computes the tick's intended motion from held control keys
// plus the unconditional gravity bias on y.
func (e *Entity) intendedStep(input InputSource) (dx, dy float64) {
	if e.Controls != nil {
		if input.KeyPressed(e.Controls.Left) {
			dx -= e.Speed
		}
		if input.KeyPressed(e.Controls.Right) {
			dx += e.Speed
		}
		if input.KeyPressed(e.Controls.Up) {
			dy -= e.Speed
		}
		if input.KeyPressed(e.Controls.Down) {
			dy += e.Speed
		}
	}
	dy += e.Gravity
	return dx, dy
}

// moveSprite advances one sprite for one tick. Each axis is applied and
// resolved separately, x first, which permits sliding along a surface. A
// sprite whose speed exceeds an obstacle's extent can tunnel through it in
// one tick; that limitation is accepted, not remediated.
func (st *Stage) moveSprite(e *Entity) {
	e.PrevX, e.PrevY = e.X, e.Y
	dx, dy := e.intendedStep(st.input)

	if dx != 0 {
		e.X += dx
		st.resolveAxis(e, dx, true)
	}
	if dy != 0 {
		e.Y += dy
		st.resolveAxis(e, dy, false)
	}

	st.clampToCanvas(e)
	e.recordPenPoint()
}

// resolveAxis snaps the sprite to the near edge of every hitbox-enabled
// obstacle it now overlaps. A positional snap, not an impulse.
func (st *Stage) resolveAxis(e *Entity, delta float64, horizontal bool) {
	for _, other := range st.snapshotBuf {
		if other == e || other.Kind != KindSprite || other.deleted || !other.HitboxEnabled {
			continue
		}
		if !Touching(e, other) {
			continue
		}
		ew, eh := e.CollisionSize()
		ow, oh := other.CollisionSize()
		if horizontal {
			if delta > 0 {
				e.X = other.X - ow/2 - ew/2
			} else {
				e.X = other.X + ow/2 + ew/2
			}
		} else {
			if delta > 0 {
				e.Y = other.Y - oh/2 - eh/2
			} else {
				e.Y = other.Y + oh/2 + eh/2
			}
		}
	}
}

// clampToCanvas keeps the sprite fully inside the canvas on all four sides
// and records whether any clamp applied in Border. Consumers use Border to
// detect wall contact, e.g. to reverse direction.
func (st *Stage) clampToCanvas(e *Entity) {
	w, h := e.CollisionSize()
	e.Border = false

	if e.X < w/2 {
		e.X = w / 2
		e.Border = true
	} else if e.X > st.Width-w/2 {
		e.X = st.Width - w/2
		e.Border = true
	}
	if e.Y < h/2 {
		e.Y = h / 2
		e.Border = true
	} else if e.Y > st.Height-h/2 {
		e.Y = st.Height - h/2
		e.Border = true
	}
}

// updateOverrides runs per-entity OnUpdate callbacks over a snapshot.
func (st *Stage) updateOverrides() {
	for _, e := range st.snapshotEntities() {
		if e.deleted || e.OnUpdate == nil {
			continue
		}
		e.OnUpdate(e)
	}
}

// Draw paints the frame: pen trails first (the pen layer sits below every
// entity), then entities back-to-front in draw-order.
func (st *Stage) Draw(screen *ebiten.Image) {
	for _, e := range st.entities {
		if e.Kind == KindSprite && len(e.trails) > 0 {
			e.drawPen(screen)
		}
	}
	for _, e := range st.entities {
		if e.Hidden {
			continue
		}
		switch e.Kind {
		case KindSprite:
			e.drawSprite(screen)
		case KindText:
			e.drawText(screen)
		case KindWidget:
			if e.Widget != nil {
				e.Widget.Draw(screen, e.X, e.Y)
			}
		}
	}
}

// drawSprite renders the current costume stretched to the collision box, or
// a solid-color rectangle of the fallback size when no image is available
// (the visual degradation path for failed loads).
func (e *Entity) drawSprite(screen *ebiten.Image) {
	w, h := e.CollisionSize()
	c := e.Costume()
	if !c.Ready() {
		screen.SubImage(rectToImageRect(e.bounds())).(*ebiten.Image).Fill(e.Color.toRGBA())
		return
	}

	img := c.image()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(c.Width()), h/float64(c.Height()))
	op.GeoM.Translate(e.X-w/2, e.Y-h/2)
	screen.DrawImage(img, op)
}

// drawText renders the text entity via text/v2. Entities without a face draw
// nothing (degrade, don't error).
func (e *Entity) drawText(screen *ebiten.Image) {
	if e.Face == nil || e.Text == "" {
		return
	}
	op := &text.DrawOptions{}
	if e.Centered {
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	}
	op.GeoM.Translate(e.X, e.Y)
	op.ColorScale.Scale(
		float32(e.TextColor.R), float32(e.TextColor.G),
		float32(e.TextColor.B), float32(e.TextColor.A))
	text.Draw(screen, e.Text, e.Face, op)
}
