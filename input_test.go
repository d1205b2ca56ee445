package alder

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestScriptedKeysDriveControlScheme(t *testing.T) {
	st, in := newTestStage()
	e := newBox(st, "e", 100, 100, 30)
	e.SetSpeed(4)
	e.SetControlScheme(WASDKeys)

	in.Press(ebiten.KeyD)
	in.Press(ebiten.KeyS)
	st.Update()
	if e.X != 104 || e.Y != 104 {
		t.Errorf("position = (%v, %v), want (104, 104)", e.X, e.Y)
	}

	in.ReleaseAll()
	in.Press(ebiten.KeyA)
	in.Press(ebiten.KeyW)
	st.Update()
	if e.X != 100 || e.Y != 100 {
		t.Errorf("position = (%v, %v), want (100, 100)", e.X, e.Y)
	}
}

func TestOpposingKeysCancel(t *testing.T) {
	st, in := newTestStage()
	e := newBox(st, "e", 100, 100, 30)
	e.SetSpeed(4)
	e.SetControlScheme(WASDKeys)

	in.Press(ebiten.KeyA)
	in.Press(ebiten.KeyD)
	st.Update()
	if e.X != 100 {
		t.Errorf("x = %v with opposing keys held, want 100", e.X)
	}
}

func TestInjectClickHitsTopmost(t *testing.T) {
	st, _ := newTestStage()
	back := newBox(st, "back", 100, 100, 60)
	front := newBox(st, "front", 100, 100, 60)

	var clicked []string
	back.On(EventClick, func(Event) { clicked = append(clicked, "back") })
	front.On(EventClick, func(Event) { clicked = append(clicked, "front") })

	st.InjectClick(100, 100)
	st.Update()
	if len(clicked) != 1 || clicked[0] != "front" {
		t.Errorf("clicked = %v, want [front] (front-most only)", clicked)
	}
}

func TestClickMissesHiddenEntity(t *testing.T) {
	st, _ := newTestStage()
	top := newBox(st, "top", 100, 100, 60)
	under := newBox(st, "under", 100, 100, 60)
	under.GoToBack()

	var clicked []string
	top.On(EventClick, func(Event) { clicked = append(clicked, "top") })
	under.On(EventClick, func(Event) { clicked = append(clicked, "under") })

	top.Hidden = true
	st.InjectClick(100, 100)
	st.Update()
	if len(clicked) != 1 || clicked[0] != "under" {
		t.Errorf("clicked = %v, want [under]", clicked)
	}
}

func TestClickOnEmptySpace(t *testing.T) {
	st, _ := newTestStage()
	e := newBox(st, "e", 100, 100, 30)

	clicks := 0
	e.On(EventClick, func(Event) { clicks++ })

	st.InjectClick(500, 500)
	st.Update()
	if clicks != 0 {
		t.Error("click on empty space reached an entity")
	}
}

func TestClickUsesHitboxPolygon(t *testing.T) {
	st, _ := newTestStage()
	e := newBox(st, "diamond", 100, 100, 40)
	e.SetHitbox([]Vec2{{0, -20}, {20, 0}, {0, 20}, {-20, 0}})

	clicks := 0
	e.On(EventClick, func(Event) { clicks++ })

	// Inside the bounding box but outside the diamond.
	st.InjectClick(82, 82)
	st.Update()
	if clicks != 0 {
		t.Fatal("click outside the polygon hit the sprite")
	}

	st.InjectClick(100, 100)
	st.Update()
	if clicks != 1 {
		t.Error("click inside the polygon missed the sprite")
	}
}

// focusWidget records clicks routed to it, standing in for an overlay input.
type focusWidget struct {
	half    float64
	clicks  int
	focused bool
}

func (w *focusWidget) Draw(dst *ebiten.Image, x, y float64) {}

func (w *focusWidget) Contains(x, y float64) bool {
	return x >= -w.half && x <= w.half && y >= -w.half && y <= w.half
}

func (w *focusWidget) Click(x, y float64) {
	w.clicks++
	w.focused = true
}

func TestWidgetParticipatesInClickHitTesting(t *testing.T) {
	st, _ := newTestStage()
	w := &focusWidget{half: 25}
	e := st.AddWidget("overlay", w)
	e.SetPosition(300, 200)

	st.InjectClick(310, 205)
	st.Update()
	if w.clicks != 1 || !w.focused {
		t.Errorf("widget clicks = %d, want 1 with focus", w.clicks)
	}

	st.InjectClick(400, 400)
	st.Update()
	if w.clicks != 1 {
		t.Error("widget received a click outside its bounds")
	}
}

func TestClickEventCarriesPosition(t *testing.T) {
	st, _ := newTestStage()
	e := newBox(st, "e", 100, 100, 40)

	var got Event
	e.On(EventClick, func(ev Event) { got = ev })

	st.InjectClick(110, 95)
	st.Update()
	if got.X != 110 || got.Y != 95 {
		t.Errorf("click position = (%v, %v), want (110, 95)", got.X, got.Y)
	}
	if got.Target != e {
		t.Error("click target is not the entity")
	}
}
