package alder

import "github.com/kamstrup/intmap"

// Clone duplicates the entity at runtime. Scalar state is copied from a fixed
// whitelist; costume handles are shared (immutable assets) while every
// mutable collection is cloned so later registrations on one sprite never
// leak into the other. The clone gets a fresh ID, an empty touch state, and
// is appended to the draw-order list (front). A synchronous EventCloneStart
// fires on the clone before Clone returns.
//
// Click listeners are excluded unless copyClick is true: copying them by
// default would let a click-driven clone factory re-wire every clone to
// spawn more clones on click, an unbounded chain.
//
// Widget entities cannot be cloned (the widget owns external state); Clone
// returns nil for them.
func (e *Entity) Clone(copyClick bool) *Entity {
	if e.deleted || e.Kind == KindWidget {
		if globalDebug {
			warnf("Clone on %s", describeEntity(e))
		}
		return nil
	}

	c := e.stage.newEntity(e.Name, e.Kind)

	// Whitelisted scalar fields.
	c.X, c.Y = e.X, e.Y
	c.PrevX, c.PrevY = e.PrevX, e.PrevY
	c.Color = e.Color
	c.Size = e.Size
	c.Speed = e.Speed
	c.Direction = e.Direction
	c.Scale = e.Scale
	c.UseOriginalSize = e.UseOriginalSize
	c.Gravity = e.Gravity
	c.HitboxEnabled = e.HitboxEnabled
	c.PenColor = e.PenColor
	c.PenThickness = e.PenThickness

	// The control scheme is shallow-cloned so the two sprites don't share
	// one mutable mapping.
	if e.Controls != nil {
		scheme := *e.Controls
		c.Controls = &scheme
	}

	// Costume handles are shared; the list itself is independent.
	if len(e.costumes) > 0 {
		c.costumes = make([]*Costume, len(e.costumes))
		copy(c.costumes, e.costumes)
		c.costumeIndex = e.costumeIndex
	}

	// Hitbox polygons are mutated nowhere, but a deep copy keeps that a
	// local invariant instead of a cross-sprite one.
	if len(e.hitbox) > 0 {
		c.hitbox = make([]Vec2, len(e.hitbox))
		copy(c.hitbox, e.hitbox)
	}

	// Same callbacks and targets, distinct lists.
	c.touchCbs = snapshotTouchEntries(e.touchCbs)
	c.touchOnceCbs = snapshotTouchEntries(e.touchOnceCbs)
	c.touchEndCbs = snapshotTouchEntries(e.touchEndCbs)

	// Event listeners are copied per event, excluding click by default.
	for event, ls := range e.listeners {
		if event == EventClick && !copyClick {
			continue
		}
		if len(ls) == 0 {
			continue
		}
		if c.listeners == nil {
			c.listeners = make(map[EventType][]eventListener)
		}
		cp := make([]eventListener, len(ls))
		copy(cp, ls)
		c.listeners[event] = cp
	}
	c.nextLsnID = e.nextLsnID

	// Text fields ride along for text entities.
	c.Text = e.Text
	c.Face = e.Face
	c.TextColor = e.TextColor
	c.Centered = e.Centered

	c.emit(Event{Type: EventCloneStart, Target: c, Parent: e})
	return c
}

// Delete removes the entity from the simulation. Idempotent: only the first
// call has any effect. In order, it removes the entity from the draw-order
// list, clears its pen trails, prunes it from every other sprite's touch set
// and once cache (so touch-end semantics stay consistent after the entity
// vanishes), hides it, and fires a synchronous EventDelete.
func (e *Entity) Delete() {
	if e.deleted {
		return
	}
	e.deleted = true

	st := e.stage
	st.removeEntity(e)

	e.trails = nil
	e.PenDown = false

	for _, other := range st.entities {
		if other.Kind != KindSprite {
			continue
		}
		removeFromEntityList(&other.touching, e)
		other.onceFired.Del(e.ID)
	}
	e.touching = nil
	e.onceFired = intmap.New[uint32, *Entity](touchCacheCap)

	e.Hidden = true
	e.emit(Event{Type: EventDelete, Target: e})
}

func removeFromEntityList(list *[]*Entity, e *Entity) {
	s := *list
	for i, x := range s {
		if x == e {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			*list = s[:len(s)-1]
			return
		}
	}
}
