package alder

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/kamstrup/intmap"
)

// Widget is an overlay element (e.g. a text input) supplied from outside the
// simulation. It participates in the draw-order list and in click hit-testing
// but owns its own focus and value state. Coordinates passed in are local to
// the owning entity's center.
type Widget interface {
	Draw(dst *ebiten.Image, x, y float64)
	Contains(x, y float64) bool
	Click(x, y float64)
}

// touchEntry pairs a touch callback with the sprite it watches.
type touchEntry struct {
	target *Entity
	fn     TouchFunc
}

// TouchFunc is invoked by the touch tracker with the sprite the callback was
// registered on and the sprite it touched (or stopped touching).
type TouchFunc func(self, other *Entity)

// Entity is the single flat element type of the simulation. One struct is
// used for all kinds to keep a single ordered collection of heterogeneous
// entities and dispatch on the Kind tag instead of virtual inheritance.
//
// Position (X, Y) is the entity's center in stage coordinates (top-left
// origin, Y down). Entities are owned exclusively by their stage's draw-order
// list; lifetime ends on Delete.
type Entity struct {
	ID   uint32
	Name string
	Kind EntityKind

	X, Y         float64
	PrevX, PrevY float64
	Hidden       bool

	// Sprite fields (KindSprite)
	Size            float64 // fallback square edge
	Scale           float64 // multiplier on image-derived dimensions
	UseOriginalSize bool
	Color           Color   // solid fill when no costume renders
	Direction       float64 // degrees, 0 = up, clockwise
	Speed           float64
	Gravity         float64 // constant per-tick downward bias, not acceleration
	Controls        *ControlScheme
	HitboxEnabled   bool // participates as an obstacle for movement resolution
	Border          bool // set when canvas clamping applied last tick

	costumes     []*Costume
	costumeIndex int

	// hitbox is a convex polygon in unscaled, sprite-local, center-origin
	// coordinates. Transformed to world space only at query time.
	hitbox []Vec2

	// Touch state
	touching     []*Entity
	onceFired    *intmap.Map[uint32, *Entity] // targets already fired for once semantics
	touchCbs     []touchEntry
	touchOnceCbs []touchEntry
	touchEndCbs  []touchEntry

	// Pen state
	PenDown      bool
	PenColor     Color
	PenThickness float64
	trails       [][]Vec2 // completed paths; the last entry is the current path

	// Text fields (KindText)
	Text      string
	Face      text.Face
	TextColor Color
	Centered  bool

	// Widget field (KindWidget)
	Widget Widget

	// OnUpdate, when set, runs once per tick after movement and touch
	// dispatch. The entity list is snapshotted before the pass, so the
	// callback may clone, delete, or relayer freely.
	OnUpdate func(e *Entity)

	listeners map[EventType][]eventListener
	nextLsnID uint32

	stage   *Stage
	deleted bool
}

const touchCacheCap = 8

func (st *Stage) newEntity(name string, kind EntityKind) *Entity {
	st.nextEntityID++
	e := &Entity{
		ID:           st.nextEntityID,
		Name:         name,
		Kind:         kind,
		Size:         defaultSpriteSize,
		Scale:        1,
		Color:        ColorWhite,
		TextColor:    ColorWhite,
		PenColor:     ColorWhite,
		PenThickness: 1,
		onceFired:    intmap.New[uint32, *Entity](touchCacheCap),
		stage:        st,
	}
	st.entities = append(st.entities, e)
	return e
}

const defaultSpriteSize = 40

// NewSprite creates a sprite and appends it to the draw-order list (front).
func (st *Stage) NewSprite(name string) *Entity {
	return st.newEntity(name, KindSprite)
}

// NewText creates a text entity and appends it to the draw-order list.
func (st *Stage) NewText(name, content string, face text.Face) *Entity {
	e := st.newEntity(name, KindText)
	e.Text = content
	e.Face = face
	return e
}

// AddWidget wraps an overlay widget in an entity so it takes part in draw
// ordering and click hit-testing.
func (st *Stage) AddWidget(name string, w Widget) *Entity {
	e := st.newEntity(name, KindWidget)
	e.Widget = w
	return e
}

// Alive reports whether the entity has not been deleted. Deferred callbacks
// holding an entity reference should check this before acting.
func (e *Entity) Alive() bool {
	return !e.deleted
}

// Stage returns the stage that owns this entity, or nil after deletion.
func (e *Entity) Stage() *Stage {
	if e.deleted {
		return nil
	}
	return e.stage
}

// --- Setters ---
//
// Setters are direct field assignments with no validation beyond type; bad
// values degrade visually rather than error.

// SetPosition moves the entity's center to (x, y).
func (e *Entity) SetPosition(x, y float64) {
	e.X, e.Y = x, y
}

// SetSize sets the fallback square edge used when no image size applies.
func (e *Entity) SetSize(size float64) {
	e.Size = size
}

// SetScale sets the multiplier applied to image-derived dimensions and to
// hitbox polygons at query time.
func (e *Entity) SetScale(scale float64) {
	e.Scale = scale
}

// SetSpeed sets the per-tick step for control-scheme movement.
func (e *Entity) SetSpeed(speed float64) {
	e.Speed = speed
}

// SetDirection sets the heading in degrees (0 = up, clockwise).
func (e *Entity) SetDirection(degrees float64) {
	e.Direction = degrees
}

// SetGravity sets the constant per-tick downward positional bias.
func (e *Entity) SetGravity(gravity float64) {
	e.Gravity = gravity
}

// SetControlScheme attaches a key mapping for tick movement. The scheme is
// copied so later caller mutation does not leak in.
func (e *Entity) SetControlScheme(scheme ControlScheme) {
	s := scheme
	e.Controls = &s
}

// SetHitboxEnabled marks the sprite as an obstacle for movement resolution.
func (e *Entity) SetHitboxEnabled(enabled bool) {
	e.HitboxEnabled = enabled
}

// SetHitbox installs a custom hitbox polygon in sprite-local, center-origin
// coordinates. The polygon must be convex for collision tests to be exact.
func (e *Entity) SetHitbox(points []Vec2) {
	e.hitbox = points
}

// Hitbox returns the entity's hitbox polygon, or nil when collision degrades
// to the bounding-box test. Callers must not mutate the returned slice.
func (e *Entity) Hitbox() []Vec2 {
	return e.hitbox
}

// TraceCostumeHitbox derives the hitbox polygon from the current costume's
// alpha channel (memoized per costume). No-op when the costume isn't ready.
func (e *Entity) TraceCostumeHitbox(threshold uint8) {
	c := e.Costume()
	if !c.Ready() {
		return
	}
	e.hitbox = c.hitboxHull(threshold)
}

// --- Costumes ---

// AddCostume appends a costume. The first costume added becomes current.
func (e *Entity) AddCostume(c *Costume) {
	e.costumes = append(e.costumes, c)
}

// Costume returns the current costume, or nil if none applies.
func (e *Entity) Costume() *Costume {
	if e.costumeIndex < 0 || e.costumeIndex >= len(e.costumes) {
		return nil
	}
	return e.costumes[e.costumeIndex]
}

// SetCostume switches to the costume at index. Out-of-range indexes are
// silently ignored.
func (e *Entity) SetCostume(index int) {
	if index < 0 || index >= len(e.costumes) {
		return
	}
	e.costumeIndex = index
}

// CostumeIndex returns the current costume index.
func (e *Entity) CostumeIndex() int {
	return e.costumeIndex
}

// NextCostume advances to the next costume, wrapping at the end.
func (e *Entity) NextCostume() {
	if len(e.costumes) == 0 {
		return
	}
	e.costumeIndex = (e.costumeIndex + 1) % len(e.costumes)
}

// --- Movement helpers ---

// Move advances the entity by steps along its current direction.
func (e *Entity) Move(steps float64) {
	dx, dy := directionVector(e.Direction)
	e.X += dx * steps
	e.Y += dy * steps
}

// TurnBy rotates the heading clockwise by the given degrees.
func (e *Entity) TurnBy(degrees float64) {
	e.Direction = math.Mod(e.Direction+degrees, 360)
}

// PointTowards turns the entity to face another entity.
func (e *Entity) PointTowards(other *Entity) {
	e.Direction = math.Atan2(other.X-e.X, e.Y-other.Y) * 180 / math.Pi
}

// bounds returns the entity's collision box as a Rect in stage coordinates.
func (e *Entity) bounds() Rect {
	w, h := e.CollisionSize()
	return Rect{X: e.X - w/2, Y: e.Y - h/2, Width: w, Height: h}
}

// hitTest reports whether the stage-space point (x, y) hits this entity.
// Widgets decide for themselves; sprites with a hitbox polygon use it,
// everything else uses the collision box.
func (e *Entity) hitTest(x, y float64) bool {
	if e.Hidden {
		return false
	}
	if e.Kind == KindWidget {
		return e.Widget != nil && e.Widget.Contains(x-e.X, y-e.Y)
	}
	if len(e.hitbox) > 0 {
		return polygonContains(e.worldHitbox(), x, y)
	}
	return e.bounds().Contains(x, y)
}

// polygonContains reports whether (x, y) lies inside a convex polygon using
// the cross-product sign test. Works for either winding order.
func polygonContains(pts []Vec2, x, y float64) bool {
	n := len(pts)
	if n < 3 {
		return false
	}
	var positive, negative bool
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		c := (pts[j].X-pts[i].X)*(y-pts[i].Y) - (pts[j].Y-pts[i].Y)*(x-pts[i].X)
		if c > 0 {
			positive = true
		} else if c < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}
