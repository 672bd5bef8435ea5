package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkravets/yardwalk/internal/core"
	"github.com/mkravets/yardwalk/internal/engine"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// noticeAge is how long a feedback notice stays on the status bar.
const noticeAge = 3 * time.Second

// drawWorld projects the world into the screen buffer. The whole yard is
// always visible; world coordinates scale to whatever terminal size is
// available.
func drawWorld(dst *core.Screen, w *engine.World, now time.Time) {
	dst.Clear()
	bounds := w.Bounds()
	sx := float64(dst.Width()) / bounds.W
	sy := float64(dst.Height()) / bounds.H

	for _, o := range w.Obstacles() {
		x, y, cw, ch := projectRect(o, sx, sy)
		dst.FillRect(x, y, cw, ch, '▓', core.ColorGray)
	}

	for _, a := range w.Actors() {
		drawActor(dst, a, sx, sy, now)
	}

	p := w.Player()
	px, py, _, _ := projectRect(p.Bounds(), sx, sy)
	dst.SetCell(px, py, '@', core.ColorBrightYellow)
	drawFacing(dst, px, py, p.Facing())
}

// projectRect maps a world rectangle to screen cells, at least 1x1 so thin
// geometry never disappears.
func projectRect(r core.Rect, sx, sy float64) (x, y, w, h int) {
	x = int(r.X * sx)
	y = int(r.Y * sy)
	w = core.Max(int(r.Right()*sx)-x, 1)
	h = core.Max(int(r.Bottom()*sy)-y, 1)
	return x, y, w, h
}

// drawActor picks a glyph and color from the actor's kind and state. A fresh
// transition flashes an exclamation mark above the actor until its animation
// completes.
func drawActor(dst *core.Screen, a *engine.Actor, sx, sy float64, now time.Time) {
	x, y, _, _ := projectRect(a.Bounds(), sx, sy)

	var glyph rune
	var color core.Color
	switch {
	case a.Kind() == engine.KindMailbox && a.State() == engine.StateTriggered:
		glyph, color = 'M', core.ColorBrightCyan
	case a.Kind() == engine.KindMailbox:
		glyph, color = 'M', core.ColorCyan
	case a.State() == engine.StateTriggered:
		glyph, color = 'D', core.ColorBrightRed
	default:
		glyph, color = 'd', core.ColorWhite
	}
	dst.SetCell(x, y, glyph, color)

	if a.State() == engine.StateTriggered && a.AnimationProgress(now) < 1 {
		dst.SetCell(x, y-1, '!', core.ColorBrightRed)
	}
}

// drawFacing marks the cell the player is looking at.
func drawFacing(dst *core.Screen, px, py int, facing core.Direction) {
	x, y := px, py
	switch facing {
	case core.DirectionUp:
		y--
	case core.DirectionDown:
		y++
	case core.DirectionLeft:
		x--
	case core.DirectionRight:
		x++
	default:
		return
	}
	if dst.Get(x, y) == ' ' {
		dst.SetCell(x, y, '·', core.ColorYellow)
	}
}

// statusBar composes the one-line session status: loop phase, player
// position and the latest feedback notice while it is fresh.
func (m Model) statusBar() string {
	w := m.loop.World()
	p := w.Player()
	pos := p.Position()

	left := statusStyle.Render(fmt.Sprintf(" (%.0f, %.0f) facing %s ", pos.X, pos.Y, p.Facing()))
	if m.loop.Phase() == engine.PhasePaused {
		left += pausedStyle.Render("PAUSED ")
	}

	if m.sink != nil {
		if notice, at := m.sink.LastNotice(); notice.Text != "" && time.Since(at) < noticeAge {
			style, ok := colorStyles[notice.Color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			left += style.Render(notice.Text)
		}
	}
	return left
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
