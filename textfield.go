package rage

import "image/color"

// TextField is a node that draws a single line of text at its position.
type TextField struct {
	Node

	Text   string
	Fill   color.Color
	Stroke color.Color

	stage *Stage
}

// NewTextField creates a text node with white fill and black stroke.
func NewTextField(stage *Stage, text string, x, y float64) *TextField {
	t := &TextField{
		Text:   text,
		Fill:   color.White,
		Stroke: color.Black,
		stage:  stage,
	}
	t.Node.init(t, "textfield", x, y, 0, 0)
	return t
}

// SetColors sets the fill and stroke colors. A nil stroke disables the outline.
func (t *TextField) SetColors(fill, stroke color.Color) {
	t.Fill = fill
	t.Stroke = stroke
}

// Render draws the text between EventRenderStart and EventRenderDone.
func (t *TextField) Render() {
	if !t.Visible {
		return
	}
	t.events.Emit(EventRenderStart)
	if t.stage != nil && t.Text != "" {
		t.stage.surface.DrawText(t.Text, TextOptions{
			X:      t.X(),
			Y:      t.Y(),
			Fill:   t.Fill,
			Stroke: t.Stroke,
			Alpha:  t.Alpha,
		})
	}
	t.events.Emit(EventRenderDone)
}
