// Package rage is a retained-mode 2D scene graph for [Ebitengine] with
// frame-based sprite animation and simple collision-assisted movement.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and frame
// loop for you:
//
//	stage := rage.NewStage(640, 480)
//	rage.Run(stage, rage.RunConfig{
//		Title: "My Game",
//		OnReady: func(g *rage.Game) {
//			// ... add nodes ...
//		},
//	})
//
// For full control, drive the stage from your own host: anything with a
// RequestFrame(func()) method can run the loop via [Stage.Start], and
// [Stage.Refresh] can be called directly in tests.
//
// # Scene graph
//
// Every element embeds a [Node]: a box with a position, size, visibility,
// alpha and its own [EventDispatcher]. A [Container] holds ordered children
// and renders them in order after itself; the [Stage] is the root container.
// Positions are absolute; children do not inherit their parent's transform.
//
//	ui := rage.NewContainer("ui", 0, 0, 640, 480)
//	stage.AddChild(ui)
//
//	img := stage.LoadImage("assets/hero.png")
//	hero := rage.NewMovieClip(stage, img, 100, 50, 32, 48)
//	ui.AddChild(hero)
//
// Every geometry change is announced: SetX and SetY dispatch
// [EventReposition], SetWidth and SetHeight dispatch [EventResize].
//
// # Clocks
//
// The stage refreshes once per display frame and dispatches [EventAnimUpdate]
// on itself every [Stage.LogicRate] refreshes. Playing [MovieClip]s advance
// one frame per logic tick.
//
// # Animation
//
// Animations are named sequences of [AnimationFrame] clip rectangles. Tables
// are validated when stored: an empty sequence or a frame with a non-positive
// or non-finite size is rejected with [ErrEmptyAnimation] or
// [ErrInvalidFrame]. Frames can be cut from a grid ([GridFrames]), read from a
// TexturePacker export ([LoadAtlas]) or from a YAML sheet (package sheet).
//
// # Movement
//
// A [GameObject] moves in one of four directions at its speed. When its box
// overlaps a collidable it snaps flush against it; optional bounds clamp it
// inside a rectangle.
//
// Tweens (via [gween]) and ECS integration (via a [Donburi] adapter in
// rage/ecs) are also available.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package rage
