package draw

import (
	"fmt"
	"image/color"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/tomz197/stressgame/internal/render"
)

// boldTextSize is the point size from which text is drawn bold; the
// terminal cannot scale glyphs.
const boldTextSize = 32

// Terminal presents frames on an ANSI terminal: the play area as a scaled
// half-block canvas, a border in the chrome colour when there is room, and
// a status line on the last row carrying the controls.
type Terminal struct {
	w         io.Writer
	canvas    *Canvas
	cw        *ChunkWriter
	sizeFunc  TermSizeFunc
	maxWidth  int
	maxHeight int

	termWidth  int
	termHeight int
}

// NewTerminal creates a presenter writing to w. maxWidth and maxHeight cap
// the canvas in columns and rows.
func NewTerminal(w io.Writer, sizeFunc TermSizeFunc, maxWidth, maxHeight int) *Terminal {
	if sizeFunc == nil {
		sizeFunc = DefaultTermSizeFunc
	}
	return &Terminal{
		w:         w,
		cw:        NewChunkWriter(w, 0, 0),
		sizeFunc:  sizeFunc,
		maxWidth:  maxWidth,
		maxHeight: maxHeight,
	}
}

// Open prepares the terminal for drawing.
func (t *Terminal) Open() {
	HideCursor(t.w)
	ClearScreen(t.w)
}

// Close restores the terminal.
func (t *Terminal) Close() {
	fmt.Fprint(t.w, "\033[0m")
	ClearScreen(t.w)
	ShowCursor(t.w)
}

// Present draws f.
func (t *Terminal) Present(f *render.Frame) error {
	if err := t.layout(f); err != nil {
		return err
	}
	c := t.canvas
	chrome := f.Theme.Chrome()

	c.SetBackground(f.Background)
	c.Clear()
	for _, cmd := range f.Commands {
		switch cmd.Kind {
		case render.KindCircle:
			c.SetColor(cmd.Color)
			c.FillCircle(cmd.X, cmd.Y, cmd.Size)
		case render.KindLine:
			c.SetColor(cmd.Color)
			c.DrawLine(Point{X: cmd.X, Y: cmd.Y}, Point{X: cmd.X2, Y: cmd.Y2})
		}
	}

	c.Render(t.cw)
	c.RenderBorder(t.cw, chrome.Border)

	for _, cmd := range f.Commands {
		if cmd.Kind == render.KindText {
			t.drawText(cmd, f.Background)
		}
	}

	t.drawStatus(f, chrome)

	return t.cw.Flush()
}

// layout sizes the canvas to the terminal, clearing the screen when the
// geometry changed so nothing stale stays outside the new area.
func (t *Terminal) layout(f *render.Frame) error {
	termWidth, termHeight, err := t.sizeFunc()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}

	width, height, offCol, offRow := FitCanvas(termWidth, termHeight, t.maxWidth, t.maxHeight)

	if t.canvas == nil {
		t.canvas = NewScaledCanvas(width, height, f.Width, f.Height)
	}
	if termWidth != t.termWidth || termHeight != t.termHeight {
		t.termWidth = termWidth
		t.termHeight = termHeight
		t.cw.WriteString("\033[0m\033[H\033[2J")
		t.canvas.Resize(width, height)
		t.canvas.ForceRedraw()
	}
	t.canvas.SetOffset(offCol, offRow)
	t.cw.SetOffset(offCol, offRow)
	return nil
}

// FitCanvas picks the largest square play area (in half-block pixels) that
// fits the terminal above the status line, capped at maxWidth columns and
// maxHeight rows, and the offsets that centre it.
func FitCanvas(termWidth, termHeight, maxWidth, maxHeight int) (width, height, offCol, offRow int) {
	availRows := termHeight - 1
	size := min(termWidth, availRows*2, maxWidth, maxHeight*2)
	size -= size % 2
	size = max(size, 2)

	width = size
	height = size / 2
	offCol = max((termWidth-width)/2, 0)
	offRow = max((availRows-height)/2, 0)
	return width, height, offCol, offRow
}

// drawText places a label over the canvas and marks the cells it covers
// for redraw on the next frame.
func (t *Terminal) drawText(cmd render.Command, background color.RGBA) {
	c := t.canvas
	col, row := c.LogicalToTerminal(cmd.X, cmd.Y)
	n := utf8.RuneCountInString(cmd.Text)

	switch cmd.Align {
	case render.AlignCenter:
		col -= n / 2
	case render.AlignRight:
		col -= n
	}
	col = max(1, min(col, c.TerminalWidth()-n+1))
	row = max(1, min(row, c.TerminalHeight()))

	text := cmd.Text
	if n > c.TerminalWidth() {
		text = string([]rune(text)[:c.TerminalWidth()])
		n = c.TerminalWidth()
	}

	t.cw.WriteString(ForegroundSGR(cmd.Color))
	t.cw.WriteString(BackgroundSGR(background))
	if cmd.Size >= boldTextSize {
		t.cw.WriteString("\033[1m")
	}
	t.cw.WriteAt(col, row, text)
	t.cw.WriteString("\033[0m")

	c.Invalidate(col, row, n)
}

// drawStatus paints the chrome line with the control hints.
func (t *Terminal) drawStatus(f *render.Frame, chrome render.ChromePalette) {
	status := StatusLine(f)
	n := utf8.RuneCountInString(status)
	if n > t.termWidth {
		status = string([]rune(status)[:t.termWidth])
		n = t.termWidth
	}
	pad := t.termWidth - n
	line := strings.Repeat(" ", pad/2) + status + strings.Repeat(" ", pad-pad/2)

	t.cw.WriteString(BackgroundSGR(chrome.Background))
	t.cw.WriteString(ForegroundSGR(chrome.Foreground))
	t.cw.MoveCursorAbs(1, t.termHeight)
	t.cw.WriteString(line)
	t.cw.WriteString("\033[0m")
}

// StatusLine is the control hint shown under the canvas.
func StatusLine(f *render.Frame) string {
	return fmt.Sprintf("[Enter] %s   [Space] Boost   [T] %s   [Q] Quit",
		f.ControlLabel, render.ThemeLabel(f.Theme))
}
