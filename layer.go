package alder

// The stage's draw-order list is the single source of truth for z-order and
// iteration order: index 0 is back-most, the last index front-most.

// GoToFront moves the entity to the end of the draw-order list.
func (e *Entity) GoToFront() {
	if e.deleted {
		return
	}
	st := e.stage
	if st.removeEntity(e) {
		st.entities = append(st.entities, e)
	}
}

// GoToBack moves the entity to index 0 of the draw-order list.
func (e *Entity) GoToBack() {
	if e.deleted {
		return
	}
	st := e.stage
	if st.removeEntity(e) {
		st.entities = append([]*Entity{e}, st.entities...)
	}
}

// GoForward moves the entity n positions toward the front, clamped to the
// list bounds.
func (e *Entity) GoForward(n int) {
	e.shiftLayer(n)
}

// GoBackward moves the entity n positions toward the back, clamped to the
// list bounds.
func (e *Entity) GoBackward(n int) {
	e.shiftLayer(-n)
}

func (e *Entity) shiftLayer(n int) {
	if e.deleted {
		return
	}
	st := e.stage
	idx := st.entityIndex(e)
	if idx < 0 {
		return
	}

	target := idx + n
	if target < 0 {
		target = 0
	}
	// Removal shrinks the list by one before reinsertion.
	if max := len(st.entities) - 1; target > max {
		target = max
	}

	st.removeEntity(e)
	st.entities = append(st.entities, nil)
	copy(st.entities[target+1:], st.entities[target:])
	st.entities[target] = e
}

// entityIndex returns the entity's position in the draw-order list, or -1.
func (st *Stage) entityIndex(e *Entity) int {
	for i, x := range st.entities {
		if x == e {
			return i
		}
	}
	return -1
}

// removeEntity removes e from the draw-order list, reporting whether it was
// present. Uses copy+nil to avoid retaining a dangling pointer in the backing
// array.
func (st *Stage) removeEntity(e *Entity) bool {
	for i, x := range st.entities {
		if x == e {
			copy(st.entities[i:], st.entities[i+1:])
			st.entities[len(st.entities)-1] = nil
			st.entities = st.entities[:len(st.entities)-1]
			return true
		}
	}
	return false
}
