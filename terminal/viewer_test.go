package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

// row returns the runes shown on screen row y.
func row(screen tcell.SimulationScreen, y int) string {
	cells, width, _ := screen.GetContents()
	out := make([]rune, 0, width)
	for x := 0; x < width; x++ {
		cell := cells[y*width+x]
		if len(cell.Runes) == 0 {
			out = append(out, ' ')
			continue
		}
		out = append(out, cell.Runes[0])
	}
	return string(out)
}

func TestViewerDraw(t *testing.T) {
	screen := newTestScreen(t, 8, 4)
	v := NewViewer(screen, "demo", "O--A--\n--U---\n-----X\n------")
	v.Draw()
	screen.Show()

	want := []string{
		"O--A--  ",
		"--U---  ",
		"-----X  ",
	}
	for y, line := range want {
		if got := row(screen, y); got != line {
			t.Errorf("row %d = %q, want %q", y, got, line)
		}
	}

	// Status line replaces the last visible grid row
	if got := row(screen, 3); got != " demo  4" {
		t.Errorf("status row = %q", got)
	}
}

func TestViewerScroll(t *testing.T) {
	screen := newTestScreen(t, 3, 3)
	v := NewViewer(screen, "t", "abcd\nefgh\nijkl")

	press := func(key tcell.Key) {
		if v.HandleEvent(tcell.NewEventKey(key, 0, tcell.ModNone)) {
			t.Fatalf("key %v closed the viewer", key)
		}
	}

	press(tcell.KeyDown)
	press(tcell.KeyRight)
	v.Draw()
	screen.Show()
	if got := row(screen, 0); got != "fgh" {
		t.Errorf("row 0 after scroll = %q, want %q", got, "fgh")
	}

	// Offsets are clamped to the content
	for i := 0; i < 10; i++ {
		press(tcell.KeyDown)
		press(tcell.KeyRight)
	}
	if x, y := v.Offset(); x != 3 || y != 2 {
		t.Errorf("Offset() = (%d, %d), want (3, 2)", x, y)
	}
	for i := 0; i < 10; i++ {
		press(tcell.KeyUp)
		press(tcell.KeyLeft)
	}
	if x, y := v.Offset(); x != 0 || y != 0 {
		t.Errorf("Offset() = (%d, %d), want (0, 0)", x, y)
	}
}

func TestViewerQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		quit bool
	}{
		{"q", tcell.KeyRune, 'q', true},
		{"Q", tcell.KeyRune, 'Q', true},
		{"Escape", tcell.KeyEscape, 0, true},
		{"Ctrl-C", tcell.KeyCtrlC, 0, true},
		{"Other rune", tcell.KeyRune, 'x', false},
		{"Enter", tcell.KeyEnter, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewer(newTestScreen(t, 10, 5), "t", "O")
			if got := v.HandleEvent(tcell.NewEventKey(tt.key, tt.r, tcell.ModNone)); got != tt.quit {
				t.Errorf("HandleEvent() = %v, want %v", got, tt.quit)
			}
		})
	}
}

func TestViewerLoop(t *testing.T) {
	screen := newTestScreen(t, 10, 5)
	v := NewViewer(screen, "t", "O--A")

	screen.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	v.Loop()

	if _, y := v.Offset(); y != 0 {
		t.Errorf("Offset() y = %d, want 0 for single-line content", y)
	}
}

func TestViewerEmpty(t *testing.T) {
	screen := newTestScreen(t, 6, 2)
	v := NewViewer(screen, "e", "")
	v.Draw()
	screen.Show()
	if got := row(screen, 0); got != "      " {
		t.Errorf("row 0 = %q, want blank", got)
	}
}
