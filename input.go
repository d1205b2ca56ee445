package alder

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSource exposes the live keyboard and pointer state. The stage treats
// it as a read-only snapshot taken once per tick; implementations never see
// writes from the simulation.
type InputSource interface {
	KeyPressed(key ebiten.Key) bool
	PointerPosition() (x, y float64)
	PointerJustPressed() bool
}

// deviceInput is the default InputSource, backed by the ebiten device state.
type deviceInput struct{}

func (deviceInput) KeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (deviceInput) PointerPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (deviceInput) PointerJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// ScriptedInput is an InputSource driven entirely by code, for tests and
// recorded playback. The zero value is usable.
type ScriptedInput struct {
	keys    map[ebiten.Key]bool
	X, Y    float64
	clicked bool
}

// Press marks a key as held.
func (s *ScriptedInput) Press(key ebiten.Key) {
	if s.keys == nil {
		s.keys = make(map[ebiten.Key]bool)
	}
	s.keys[key] = true
}

// Release marks a key as no longer held.
func (s *ScriptedInput) Release(key ebiten.Key) {
	delete(s.keys, key)
}

// ReleaseAll clears every held key.
func (s *ScriptedInput) ReleaseAll() {
	s.keys = nil
}

// ClickAt positions the pointer and arms a single click for the next tick.
func (s *ScriptedInput) ClickAt(x, y float64) {
	s.X, s.Y = x, y
	s.clicked = true
}

func (s *ScriptedInput) KeyPressed(key ebiten.Key) bool {
	return s.keys[key]
}

func (s *ScriptedInput) PointerPosition() (float64, float64) {
	return s.X, s.Y
}

func (s *ScriptedInput) PointerJustPressed() bool {
	c := s.clicked
	s.clicked = false
	return c
}

// SetInput replaces the stage's input source. Passing nil restores the
// device-backed default.
func (st *Stage) SetInput(src InputSource) {
	if src == nil {
		src = deviceInput{}
	}
	st.input = src
}

// InjectClick queues a synthetic click at (x, y) in stage coordinates,
// dispatched at the start of the next tick exactly like a device click.
func (st *Stage) InjectClick(x, y float64) {
	st.pendingClicks = append(st.pendingClicks, Vec2{x, y})
}

// processClicks dispatches queued and device clicks. The entity list is
// snapshotted first because click handlers routinely clone, delete, and
// relayer; each click goes to the front-most entity that hit-tests.
func (st *Stage) processClicks() {
	clicks := st.pendingClicks
	st.pendingClicks = nil

	if st.input.PointerJustPressed() {
		x, y := st.input.PointerPosition()
		clicks = append(clicks, Vec2{x, y})
	}
	if len(clicks) == 0 {
		return
	}

	snapshot := st.snapshotEntities()
	for _, click := range clicks {
		for i := len(snapshot) - 1; i >= 0; i-- {
			e := snapshot[i]
			if e.deleted || !e.hitTest(click.X, click.Y) {
				continue
			}
			if e.Kind == KindWidget && e.Widget != nil {
				e.Widget.Click(click.X-e.X, click.Y-e.Y)
			}
			e.emit(Event{Type: EventClick, Target: e, X: click.X, Y: click.Y})
			break
		}
	}
}
