package render

import "image/color"

// Play-area colours. These never change with the theme.
var (
	Background = color.RGBA{0, 0, 0, 255}
	Hostile    = color.RGBA{255, 255, 255, 255}
	Projectile = color.RGBA{0, 0, 255, 255}
	Shooter    = color.RGBA{255, 0, 0, 255}
	Label      = color.RGBA{255, 255, 255, 255}
	Banner     = color.RGBA{255, 64, 64, 255}
)

// Theme selects the styling of the chrome around the play area.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// ChromePalette colours the surface around the canvas.
type ChromePalette struct {
	Background color.RGBA
	Foreground color.RGBA
	Button     color.RGBA
	ButtonText color.RGBA
	Border     color.RGBA
}

// Chrome returns the palette for the theme.
func (t Theme) Chrome() ChromePalette {
	if t == ThemeDark {
		return ChromePalette{
			Background: color.RGBA{0x1e, 0x1e, 0x24, 255},
			Foreground: color.RGBA{0xe6, 0xe6, 0xe6, 255},
			Button:     color.RGBA{0x3a, 0x3a, 0x46, 255},
			ButtonText: color.RGBA{0xff, 0xff, 0xff, 255},
			Border:     color.RGBA{0x88, 0x88, 0x99, 255},
		}
	}
	return ChromePalette{
		Background: color.RGBA{0xf4, 0xf4, 0xf4, 255},
		Foreground: color.RGBA{0x22, 0x22, 0x22, 255},
		Button:     color.RGBA{0xd8, 0xd8, 0xe0, 255},
		ButtonText: color.RGBA{0x11, 0x11, 0x11, 255},
		Border:     color.RGBA{0x55, 0x55, 0x66, 255},
	}
}
