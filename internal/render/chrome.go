package render

// ChromeHeight is the height of the control bar below the canvas in
// backends that draw their own chrome.
const ChromeHeight = 40

const (
	buttonMargin = 8
	buttonHeight = 24
	toggleWidth  = 120
	themeWidth   = 100
)

// Control identifies a chrome button.
type Control int

const (
	ControlNone Control = iota
	ControlToggle
	ControlTheme
)

// Rect is an axis-aligned rectangle in surface pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x,y) falls inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Button is a clickable chrome control.
type Button struct {
	Control Control
	Rect    Rect
}

// ChromeLayout places the start/restart and theme buttons in the bar
// beneath a canvas of the given size.
func ChromeLayout(canvasWidth, canvasHeight float64) []Button {
	y := canvasHeight + (ChromeHeight-buttonHeight)/2
	toggle := Rect{X: buttonMargin, Y: y, W: toggleWidth, H: buttonHeight}
	theme := Rect{X: canvasWidth - buttonMargin - themeWidth, Y: y, W: themeWidth, H: buttonHeight}
	return []Button{
		{Control: ControlToggle, Rect: toggle},
		{Control: ControlTheme, Rect: theme},
	}
}

// ControlAt returns the control under (x,y), or ControlNone.
func ControlAt(buttons []Button, x, y float64) Control {
	for _, b := range buttons {
		if b.Rect.Contains(x, y) {
			return b.Control
		}
	}
	return ControlNone
}

// ThemeLabel is the caption of the theme button: the theme it switches to.
func ThemeLabel(t Theme) string {
	if t == ThemeDark {
		return "Light Theme"
	}
	return "Dark Theme"
}
