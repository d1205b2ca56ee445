package alder

// OnTouch registers a callback that fires every tick while this sprite
// touches target.
func (e *Entity) OnTouch(target *Entity, fn TouchFunc) {
	e.touchCbs = append(e.touchCbs, touchEntry{target: target, fn: fn})
}

// OnTouchOnce registers a callback that fires once per entry into contact
// with target. Leaving contact re-arms it.
func (e *Entity) OnTouchOnce(target *Entity, fn TouchFunc) {
	e.touchOnceCbs = append(e.touchOnceCbs, touchEntry{target: target, fn: fn})
}

// OnTouchEnd registers a callback that fires on the tick target leaves
// contact with this sprite.
func (e *Entity) OnTouchEnd(target *Entity, fn TouchFunc) {
	e.touchEndCbs = append(e.touchEndCbs, touchEntry{target: target, fn: fn})
}

// TouchingSet returns this tick's touch set. Callers must not mutate it.
func (e *Entity) TouchingSet() []*Entity {
	return e.touching
}

// updateTouches is the per-tick touch pass: for every sprite (in draw order)
// the touch set is recomputed against all other sprites, then continuous,
// once, and end callbacks are dispatched in that order, each list in
// registration order. The entity list is snapshotted up front because
// callbacks may clone or delete entities mid-pass.
func (st *Stage) updateTouches() {
	snapshot := st.snapshotEntities()

	for _, e := range snapshot {
		if e.Kind != KindSprite || e.deleted {
			continue
		}

		prev := e.touching
		var now []*Entity
		for _, other := range snapshot {
			if other == e || other.Kind != KindSprite || other.deleted {
				continue
			}
			if Touching(e, other) {
				now = append(now, other)
			}
		}
		e.touching = now

		e.dispatchTouches(prev)
	}
}

// dispatchTouches fires this sprite's touch callbacks for one tick, given the
// previous tick's touch set.
func (e *Entity) dispatchTouches(prev []*Entity) {
	// (a) continuous: every tick while contact persists.
	for _, entry := range snapshotTouchEntries(e.touchCbs) {
		if e.deleted {
			return
		}
		if containsEntity(e.touching, entry.target) {
			entry.fn(e, entry.target)
		}
	}

	// (b) once: first tick of contact, until the end transition re-arms it.
	for _, entry := range snapshotTouchEntries(e.touchOnceCbs) {
		if e.deleted {
			return
		}
		if !containsEntity(e.touching, entry.target) {
			continue
		}
		if _, fired := e.onceFired.Get(entry.target.ID); fired {
			continue
		}
		e.onceFired.Put(entry.target.ID, entry.target)
		entry.fn(e, entry.target)
	}

	// (c) end: the tick contact is lost. The once cache is pruned on the
	// leave transition itself so once callbacks re-arm whether or not an
	// end callback watches the same target.
	for _, p := range prev {
		if !containsEntity(e.touching, p) {
			e.onceFired.Del(p.ID)
		}
	}
	for _, entry := range snapshotTouchEntries(e.touchEndCbs) {
		if e.deleted {
			return
		}
		if containsEntity(prev, entry.target) && !containsEntity(e.touching, entry.target) {
			entry.fn(e, entry.target)
		}
	}
}

// snapshotTouchEntries copies a callback list so handlers registered or
// removed by a callback don't affect the current dispatch.
func snapshotTouchEntries(entries []touchEntry) []touchEntry {
	if len(entries) == 0 {
		return nil
	}
	out := make([]touchEntry, len(entries))
	copy(out, entries)
	return out
}

func containsEntity(list []*Entity, e *Entity) bool {
	for _, x := range list {
		if x == e {
			return true
		}
	}
	return false
}
