package rage

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// NewFPSWidget creates a text field that shows Ebitengine's measured FPS and
// TPS. The text refreshes on every logic tick of stage. Add it last to draw it
// on top.
func NewFPSWidget(stage *Stage, x, y float64) *TextField {
	t := NewTextField(stage, "", x, y)
	t.Name = "fps_widget"
	stage.On(EventAnimUpdate, func(Event) {
		t.Text = fmt.Sprintf("FPS: %.1f TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	})
	return t
}
