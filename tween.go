package rage

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 float64 properties of a node simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenSize,
// TweenAlpha) and call Update(dt) each frame. Values are written through the
// node's setters, so position and size tweens dispatch EventReposition and
// EventResize like any other change.
//
// There is no global animation manager; callers drive Update themselves.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	apply  [2]func(float64)
	Done   bool
}

// Update advances all tweens by dt seconds and applies the values.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.apply[i](float64(val))
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Stop ends the group without applying further values.
func (g *TweenGroup) Stop() {
	g.Done = true
}

// TweenPosition animates obj to (toX, toY) over duration seconds.
func TweenPosition(obj DisplayObject, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	n := obj.node()
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(n.x), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(n.y), float32(toY), duration, fn)
	g.apply[0] = n.SetX
	g.apply[1] = n.SetY
	return g
}

// TweenSize animates obj's width and height over duration seconds.
func TweenSize(obj DisplayObject, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	n := obj.node()
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(n.width), float32(toW), duration, fn)
	g.tweens[1] = gween.New(float32(n.height), float32(toH), duration, fn)
	g.apply[0] = n.SetWidth
	g.apply[1] = n.SetHeight
	return g
}

// TweenAlpha animates obj's alpha over duration seconds.
func TweenAlpha(obj DisplayObject, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	n := obj.node()
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(n.Alpha), float32(to), duration, fn)
	g.apply[0] = func(v float64) { n.Alpha = v }
	return g
}
