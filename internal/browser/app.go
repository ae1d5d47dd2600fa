// Package browser is the Ebitengine frontend. It runs in a native window or,
// built for js/wasm, on a browser canvas.
package browser

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/tomz197/stressgame/internal/game"
	"github.com/tomz197/stressgame/internal/render"
)

const buttonFontSize = 14

// App implements ebiten.Game around a game.Game.
type App struct {
	game    *game.Game
	frame   render.Frame
	buttons []render.Button
	fonts   *text.GoTextFaceSource
	faces   map[float64]*text.GoTextFace
	touches []ebiten.TouchID
	logger  *log.Logger
}

// NewApp wraps g for Ebitengine. A nil logger discards output.
func NewApp(g *game.Game, logger *log.Logger) (*App, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	a := &App{
		game:   g,
		fonts:  source,
		faces:  make(map[float64]*text.GoTextFace),
		logger: logger,
	}
	g.Draw(&a.frame)
	a.buttons = render.ChromeLayout(a.frame.Width, a.frame.Height)
	return a, nil
}

// Size returns the outside size of the app: the canvas plus the control bar.
func (a *App) Size() (int, int) {
	return int(a.frame.Width), int(a.frame.Height) + render.ChromeHeight
}

// Update reads input and advances the game by one tick.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		a.press(render.ControlToggle)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		a.press(render.ControlTheme)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.game.Boost()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		a.press(render.ControlAt(a.buttons, float64(x), float64(y)))
	}
	a.touches = inpututil.AppendJustPressedTouchIDs(a.touches[:0])
	for _, id := range a.touches {
		x, y := ebiten.TouchPosition(id)
		a.press(render.ControlAt(a.buttons, float64(x), float64(y)))
	}

	a.game.Tick(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (a *App) press(c render.Control) {
	switch c {
	case render.ControlToggle:
		a.game.Toggle()
		a.logger.Debug("control pressed", "phase", a.game.Phase())
	case render.ControlTheme:
		a.game.ToggleTheme()
	}
}

// Draw renders the current frame and the control bar.
func (a *App) Draw(screen *ebiten.Image) {
	a.game.Draw(&a.frame)
	chrome := a.frame.Theme.Chrome()

	screen.Fill(chrome.Background)
	vector.DrawFilledRect(screen, 0, 0, float32(a.frame.Width), float32(a.frame.Height), a.frame.Background, false)

	for _, cmd := range a.frame.Commands {
		switch cmd.Kind {
		case render.KindCircle:
			vector.DrawFilledCircle(screen, float32(cmd.X), float32(cmd.Y), float32(cmd.Size/2), cmd.Color, true)
		case render.KindLine:
			vector.StrokeLine(screen, float32(cmd.X), float32(cmd.Y), float32(cmd.X2), float32(cmd.Y2), float32(cmd.Size), cmd.Color, true)
		case render.KindText:
			a.drawText(screen, cmd.Text, cmd.X, cmd.Y, cmd.Size, cmd.Align, cmd.Color)
		}
	}

	vector.StrokeRect(screen, 0, 0, float32(a.frame.Width), float32(a.frame.Height), 1, chrome.Border, false)
	a.drawChrome(screen, chrome)
}

func (a *App) drawChrome(screen *ebiten.Image, chrome render.ChromePalette) {
	for _, b := range a.buttons {
		r := b.Rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), chrome.Button, false)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, chrome.Border, false)

		label := a.frame.ControlLabel
		if b.Control == render.ControlTheme {
			label = render.ThemeLabel(a.frame.Theme)
		}
		a.drawText(screen, label, r.X+r.W/2, r.Y+r.H/2, buttonFontSize, render.AlignCenter, chrome.ButtonText)
	}
}

// drawText anchors centred text on (x,y); left and right aligned text hangs
// below y.
func (a *App) drawText(screen *ebiten.Image, s string, x, y, size float64, align render.Align, c color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	switch align {
	case render.AlignCenter:
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	case render.AlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	text.Draw(screen, s, a.face(size), op)
}

func (a *App) face(size float64) *text.GoTextFace {
	if f, ok := a.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: a.fonts, Size: size}
	a.faces[size] = f
	return f
}

// Layout keeps a fixed logical size; Ebitengine scales it to the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.Size()
}
