// Package render holds the backend-neutral frame snapshot produced by the
// simulation. A Frame is an ordered list of draw commands in logical
// canvas coordinates; terminal and Ebitengine backends consume it.
package render

import "image/color"

// Kind identifies a draw command.
type Kind int

const (
	KindCircle Kind = iota // Filled circle, Size is the diameter
	KindLine               // Segment from (X,Y) to (X2,Y2), Size is the stroke width
	KindText               // Text anchored at (X,Y) per Align, Size is the nominal point size
)

// Align anchors text horizontally around its X coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Command is a single draw instruction.
type Command struct {
	Kind   Kind
	X, Y   float64
	X2, Y2 float64
	Size   float64
	Color  color.RGBA
	Text   string
	Align  Align
}

// Frame is everything a backend needs to draw one frame.
type Frame struct {
	Width, Height float64
	Background    color.RGBA
	Theme         Theme
	ControlLabel  string // Label of the start/restart control
	Commands      []Command
}

// Reset prepares the frame for reuse, keeping the command buffer.
func (f *Frame) Reset(width, height float64, background color.RGBA) {
	f.Width = width
	f.Height = height
	f.Background = background
	f.Commands = f.Commands[:0]
}

// Circle appends a filled circle of the given diameter.
func (f *Frame) Circle(x, y, diameter float64, c color.RGBA) {
	f.Commands = append(f.Commands, Command{Kind: KindCircle, X: x, Y: y, Size: diameter, Color: c})
}

// Line appends a stroked segment.
func (f *Frame) Line(x1, y1, x2, y2, width float64, c color.RGBA) {
	f.Commands = append(f.Commands, Command{Kind: KindLine, X: x1, Y: y1, X2: x2, Y2: y2, Size: width, Color: c})
}

// Text appends a text label.
func (f *Frame) Text(x, y, size float64, align Align, value string, c color.RGBA) {
	f.Commands = append(f.Commands, Command{Kind: KindText, X: x, Y: y, Size: size, Align: align, Text: value, Color: c})
}

// Count returns how many commands of kind k with colour c the frame holds.
func (f *Frame) Count(k Kind, c color.RGBA) int {
	n := 0
	for _, cmd := range f.Commands {
		if cmd.Kind == k && cmd.Color == c {
			n++
		}
	}
	return n
}
