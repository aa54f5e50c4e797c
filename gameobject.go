package rage

import "math"

// Facing is one of the four movement directions. FacingNone means "keep the
// current facing" when passed to Move.
type Facing uint8

const (
	FacingNone Facing = iota
	FacingUp
	FacingDown
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingDown:
		return "down"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "none"
	}
}

// Valid reports whether f is one of the four directions.
func (f Facing) Valid() bool {
	return f >= FacingUp && f <= FacingRight
}

// ParseFacing converts "up", "down", "left" or "right" to a Facing.
func ParseFacing(s string) (Facing, bool) {
	switch s {
	case "up":
		return FacingUp, true
	case "down":
		return FacingDown, true
	case "left":
		return FacingLeft, true
	case "right":
		return FacingRight, true
	}
	return FacingNone, false
}

// DefaultSpeed is the speed of a new GameObject.
const DefaultSpeed = 1

// GameObject is a movie clip that moves in its facing direction at a fixed
// speed, stopping against collidables and optional bounds.
type GameObject struct {
	MovieClip

	speed  float64
	facing Facing
}

// NewGameObject creates a game object facing right at DefaultSpeed.
func NewGameObject(stage *Stage, img Image, x, y, width, height float64) *GameObject {
	g := &GameObject{speed: DefaultSpeed, facing: FacingRight}
	g.initMovieClip(g, stage, img, x, y, width, height)
	g.Name = "gameobject"
	return g
}

// Speed returns the distance moved per Move call.
func (g *GameObject) Speed() float64 { return g.speed }

// SetSpeed stores |v|. NaN leaves the speed unchanged.
func (g *GameObject) SetSpeed(v float64) {
	if math.IsNaN(v) {
		return
	}
	g.speed = math.Abs(v)
}

// Facing returns the current direction.
func (g *GameObject) Facing() Facing { return g.facing }

// SetFacing replaces the direction if f is valid.
func (g *GameObject) SetFacing(f Facing) bool {
	if !f.Valid() {
		return false
	}
	g.facing = f
	return true
}

// Move turns to facing (unless it is FacingNone) and moves one step that way.
// collidables and bounds may be nil.
func (g *GameObject) Move(collidables []DisplayObject, facing Facing, bounds *Rect) {
	g.SetFacing(facing)
	switch g.facing {
	case FacingUp:
		g.MoveUp(collidables, bounds)
	case FacingDown:
		g.MoveDown(collidables, bounds)
	case FacingLeft:
		g.MoveLeft(collidables, bounds)
	case FacingRight:
		g.MoveRight(collidables, bounds)
	}
}

// MoveUp moves up by Speed. On hitting a collidable the top edge snaps to its
// bottom edge; the top edge never passes above bounds.
func (g *GameObject) MoveUp(collidables []DisplayObject, bounds *Rect) {
	g.SetY(g.Y() - g.speed)
	if hit := g.HitTestGroup(collidables); hit != nil {
		g.SetY(hit.node().Bottom())
	}
	if bounds != nil && g.Y() < bounds.Y {
		g.SetY(bounds.Y)
	}
}

// MoveDown moves down by Speed. On hitting a collidable the bottom edge snaps
// to its top edge; the bottom edge never passes below bounds.
func (g *GameObject) MoveDown(collidables []DisplayObject, bounds *Rect) {
	g.SetY(g.Y() + g.speed)
	if hit := g.HitTestGroup(collidables); hit != nil {
		g.SetY(hit.node().Y() - g.Height())
	}
	if bounds != nil && g.Y() > bounds.Bottom()-g.Height() {
		g.SetY(bounds.Bottom() - g.Height())
	}
}

// MoveLeft moves left by Speed. On hitting a collidable the left edge snaps
// to its right edge; the left edge never passes bounds.
func (g *GameObject) MoveLeft(collidables []DisplayObject, bounds *Rect) {
	g.SetX(g.X() - g.speed)
	if hit := g.HitTestGroup(collidables); hit != nil {
		g.SetX(hit.node().Right())
	}
	if bounds != nil && g.X() < bounds.X {
		g.SetX(bounds.X)
	}
}

// MoveRight moves right by Speed. On hitting a collidable the right edge snaps
// to its left edge; the right edge never passes bounds.
func (g *GameObject) MoveRight(collidables []DisplayObject, bounds *Rect) {
	g.SetX(g.X() + g.speed)
	if hit := g.HitTestGroup(collidables); hit != nil {
		g.SetX(hit.node().X() - g.Width())
	}
	if bounds != nil && g.X() > bounds.Right()-g.Width() {
		g.SetX(bounds.Right() - g.Width())
	}
}
