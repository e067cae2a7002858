// Package ui is the immediate-mode control panel of the portal demo.
package ui

import (
	"render-exercises/scene"
)

// Widgets is the subset of an immediate-mode GUI the panel draws with. Each
// call returns whether the user interacted with the widget this frame.
type Widgets interface {
	Begin(title string) bool
	End()
	Text(text string)
	Button(label string) bool
	Checkbox(label string, value *bool) bool
	ColorEdit3(label string, color *[3]float32) bool
	SameLine()
}

// Selection is the user-controlled state of the demo.
type Selection struct {
	Background scene.Background // drawn outside the portal
	Portal     scene.Background // drawn inside the portal circle
	Tint       [3]float32
	UseTint    bool
}

// Panel lays out the background, portal and tint controls.
type Panel struct {
	Title string
}

func NewPanel() *Panel {
	return &Panel{Title: "Portal"}
}

// Draw emits the panel and applies interactions to sel. It reports whether
// sel changed.
func (p *Panel) Draw(w Widgets, sel *Selection) bool {
	changed := false
	defer w.End()
	if !w.Begin(p.Title) {
		return false
	}

	w.Text("Portal view")
	changed = buttonRow(w, scene.PortalBackgrounds(), "##portal", &sel.Portal) || changed

	w.Text("Background")
	changed = buttonRow(w, scene.AllBackgrounds(), "##background", &sel.Background) || changed

	if w.Checkbox("Tint particles", &sel.UseTint) {
		changed = true
	}
	if sel.UseTint && w.ColorEdit3("Tint", &sel.Tint) {
		changed = true
	}
	return changed
}

// buttonRow draws one button per choice on a single line. The id suffix keeps
// labels shared between rows distinct.
func buttonRow(w Widgets, choices []scene.Background, id string, current *scene.Background) bool {
	changed := false
	for i, b := range choices {
		if i > 0 {
			w.SameLine()
		}
		if w.Button(b.Label()+id) && *current != b {
			*current = b
			changed = true
		}
	}
	return changed
}
