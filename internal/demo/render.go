package demo

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

func (a *App) hintColor() tcell.Color {
	c, err := colorful.Hex(a.settings.HintColor)
	if err != nil {
		c, _ = colorful.Hex("#ffd75f")
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// focusColor is the hint color pulled halfway toward white, so the focused
// widget reads as related to the hints without competing with them.
func (a *App) focusColor() tcell.Color {
	c, err := colorful.Hex(a.settings.HintColor)
	if err != nil {
		c, _ = colorful.Hex("#ffd75f")
	}
	blended := c.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, 0.5).Clamped()
	r, g, b := blended.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (a *App) render() {
	a.screen.Clear()

	base := tcell.StyleDefault
	showing := a.handler.ShowingAccessKeys()
	hint := base.Foreground(a.hintColor()).Underline(a.settings.HintUnderline).Bold(true)

	// Menu bar.
	barStyle := base.Reverse(true)
	width, height := a.screen.Size()
	for x := 0; x < width; x++ {
		a.screen.SetContent(x, 0, ' ', nil, barStyle)
	}
	for i, w := range a.widgets {
		if !w.menuEntry {
			continue
		}
		style := barStyle
		if a.bar.IsOpen() && a.bar.ActiveIndex() == a.menuIndex(i) {
			style = base.Foreground(a.focusColor()).Reverse(true)
		}
		a.drawLabel(w.x, w.y, " "+w.label+" ", w.accessKey, style, hint.Reverse(true), showing)
	}

	// Buttons.
	for _, w := range a.widgets {
		if w.menuEntry {
			continue
		}
		style := base
		if !w.node.IsTargetable() {
			style = base.Dim(true)
		} else if a.arena.IsFocused(w.node) {
			style = base.Foreground(a.focusColor()).Bold(true)
		}
		a.drawLabel(w.x, w.y, "[ "+w.label+" ]", w.accessKey, style, hint, showing)
	}

	a.drawText(0, height-2, a.status, base)
	a.drawText(0, height-1,
		"Alt+letter invoke | F10 menu | Tab focus | Enter press | Esc dismiss | Ctrl+Q quit",
		base.Dim(true))

	a.screen.Show()
}

// drawLabel renders text, switching to the hint style on the first rune
// matching the access key while mnemonics are shown.
func (a *App) drawLabel(x, y int, text, accessKey string, style, hintStyle tcell.Style, showing bool) {
	hinted := false
	for _, r := range text {
		s := style
		if showing && !hinted && strings.ToUpper(string(r)) == accessKey {
			s = hintStyle
			hinted = true
		}
		a.screen.SetContent(x, y, r, nil, s)
		x++
	}
}

func (a *App) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// menuIndex maps a widget slice position to its menu-bar item index.
func (a *App) menuIndex(i int) int {
	idx := -1
	for j := 0; j <= i && j < len(a.widgets); j++ {
		if a.widgets[j].menuEntry {
			idx++
		}
	}
	return idx
}
