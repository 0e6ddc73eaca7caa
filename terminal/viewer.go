// Package terminal shows rendered tilemaps in a full-screen terminal viewer.
package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var (
	gridStyle   = tcell.StyleDefault
	statusStyle = tcell.StyleDefault.Reverse(true)
)

// Viewer paints a rendering onto a screen and scrolls it with the arrow keys.
// The last screen row is a status line.
type Viewer struct {
	screen  tcell.Screen
	title   string
	lines   [][]rune
	offsetX int
	offsetY int
}

// NewViewer creates a viewer for text on an initialized screen.
func NewViewer(screen tcell.Screen, title, text string) *Viewer {
	v := &Viewer{screen: screen, title: title}
	if text != "" {
		for _, line := range strings.Split(text, "\n") {
			v.lines = append(v.lines, []rune(line))
		}
	}
	return v
}

// Offset returns the current scroll position.
func (v *Viewer) Offset() (x, y int) {
	return v.offsetX, v.offsetY
}

// Draw repaints the screen. It does not call Show.
func (v *Viewer) Draw() {
	v.screen.Clear()
	width, height := v.screen.Size()
	rows := height - 1

	for y := 0; y < rows && v.offsetY+y < len(v.lines); y++ {
		line := v.lines[v.offsetY+y]
		x := 0
		for i := v.offsetX; i < len(line) && x < width; i++ {
			r := line[i]
			v.screen.SetContent(x, y, r, nil, gridStyle)
			x += max(runewidth.RuneWidth(r), 1)
		}
	}

	if height > 0 {
		status := fmt.Sprintf(" %s  %d rows  q: quit  arrows: scroll ", v.title, len(v.lines))
		x := 0
		for _, r := range status {
			if x >= width {
				break
			}
			v.screen.SetContent(x, height-1, r, nil, statusStyle)
			x += max(runewidth.RuneWidth(r), 1)
		}
		for ; x < width; x++ {
			v.screen.SetContent(x, height-1, ' ', nil, statusStyle)
		}
	}
}

// HandleEvent applies an event and reports whether the viewer should close.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			if ev.Rune() == 'q' || ev.Rune() == 'Q' {
				return true
			}
		case tcell.KeyUp:
			v.scroll(0, -1)
		case tcell.KeyDown:
			v.scroll(0, 1)
		case tcell.KeyLeft:
			v.scroll(-1, 0)
		case tcell.KeyRight:
			v.scroll(1, 0)
		}
	}
	return false
}

// scroll moves the view, keeping at least one line and column of content visible.
func (v *Viewer) scroll(dx, dy int) {
	widest := 0
	for _, line := range v.lines {
		widest = max(widest, len(line))
	}
	v.offsetX = min(max(v.offsetX+dx, 0), max(widest-1, 0))
	v.offsetY = min(max(v.offsetY+dy, 0), max(len(v.lines)-1, 0))
}

// Loop draws and handles events until the viewer is closed.
func (v *Viewer) Loop() {
	for {
		v.Draw()
		v.screen.Show()
		ev := v.screen.PollEvent()
		if ev == nil || v.HandleEvent(ev) {
			return
		}
	}
}

// Run opens the terminal, shows text until the user quits and restores the
// terminal.
func Run(title, text string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to setup terminal: %w", err)
	}
	defer screen.Fini()

	NewViewer(screen, title, text).Loop()
	return nil
}
