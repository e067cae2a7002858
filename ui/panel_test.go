package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"render-exercises/scene"
)

// fakeWidgets records every widget drawn and clicks the labels in press.
type fakeWidgets struct {
	open   bool
	press  map[string]bool
	tint   *[3]float32
	drawn  []string
	begins int
	ends   int
}

func newFakeWidgets(press ...string) *fakeWidgets {
	f := &fakeWidgets{open: true, press: map[string]bool{}}
	for _, p := range press {
		f.press[p] = true
	}
	return f
}

func (f *fakeWidgets) Begin(title string) bool {
	f.begins++
	f.drawn = append(f.drawn, "begin:"+title)
	return f.open
}

func (f *fakeWidgets) End()             { f.ends++ }
func (f *fakeWidgets) Text(text string) { f.drawn = append(f.drawn, "text:"+text) }
func (f *fakeWidgets) SameLine()        { f.drawn = append(f.drawn, "sameline") }

func (f *fakeWidgets) Button(label string) bool {
	f.drawn = append(f.drawn, "button:"+label)
	return f.press[label]
}

func (f *fakeWidgets) Checkbox(label string, value *bool) bool {
	f.drawn = append(f.drawn, "checkbox:"+label)
	if f.press[label] {
		*value = !*value
		return true
	}
	return false
}

func (f *fakeWidgets) ColorEdit3(label string, color *[3]float32) bool {
	f.drawn = append(f.drawn, "color:"+label)
	if f.tint != nil {
		*color = *f.tint
		return true
	}
	return false
}

func defaultSelection() Selection {
	return Selection{Background: scene.Room, Portal: scene.Forest, Tint: [3]float32{0, 0.75, 0}}
}

func TestPanelLayout(t *testing.T) {
	w := newFakeWidgets()
	sel := defaultSelection()

	changed := NewPanel().Draw(w, &sel)
	assert.False(t, changed)
	assert.Equal(t, []string{
		"begin:Portal",
		"text:Portal view",
		"button:Forest##portal", "sameline", "button:Scary##portal",
		"text:Background",
		"button:Room##background", "sameline", "button:Forest##background", "sameline", "button:Scary##background",
		"checkbox:Tint particles",
	}, w.drawn)
	assert.Equal(t, 1, w.begins)
	assert.Equal(t, 1, w.ends)
}

func TestPanelSelectsPortal(t *testing.T) {
	w := newFakeWidgets("Scary##portal")
	sel := defaultSelection()

	require.True(t, NewPanel().Draw(w, &sel))
	assert.Equal(t, scene.Scary, sel.Portal)
	assert.Equal(t, scene.Room, sel.Background, "background row is independent")
}

func TestPanelSelectsBackground(t *testing.T) {
	w := newFakeWidgets("Forest##background")
	sel := defaultSelection()

	require.True(t, NewPanel().Draw(w, &sel))
	assert.Equal(t, scene.Forest, sel.Background)
	assert.Equal(t, scene.Forest, sel.Portal)
}

func TestPanelPressingCurrentIsNoChange(t *testing.T) {
	w := newFakeWidgets("Forest##portal")
	sel := defaultSelection()

	assert.False(t, NewPanel().Draw(w, &sel))
	assert.Equal(t, scene.Forest, sel.Portal)
}

func TestPanelTint(t *testing.T) {
	sel := defaultSelection()
	w := newFakeWidgets("Tint particles")
	w.tint = &[3]float32{1, 0, 0.5}

	require.True(t, NewPanel().Draw(w, &sel))
	assert.True(t, sel.UseTint)
	assert.Equal(t, [3]float32{1, 0, 0.5}, sel.Tint)
	assert.Contains(t, w.drawn, "color:Tint")
}

func TestPanelCollapsed(t *testing.T) {
	w := newFakeWidgets("Scary##portal")
	w.open = false
	sel := defaultSelection()

	assert.False(t, NewPanel().Draw(w, &sel))
	assert.Equal(t, scene.Forest, sel.Portal)
	assert.Equal(t, 1, w.ends, "End is paired with Begin even when collapsed")
	assert.Equal(t, []string{"begin:Portal"}, w.drawn)
}
