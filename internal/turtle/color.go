package turtle

import (
	"fmt"
	"math"
)

type Color struct {
	Index int
	Name  string

	R, G, B uint8
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return fmt.Sprintf("%s(%d)", c.Name, c.Index)
}

// Palette is the classic 16 colour Logo palette addressed by SETPENCOLOR.
var Palette = [...]Color{
	{0, "black", 0, 0, 0},
	{1, "blue", 0, 0, 255},
	{2, "cyan", 0, 255, 255},
	{3, "green", 0, 255, 0},
	{4, "red", 255, 0, 0},
	{5, "magenta", 255, 0, 255},
	{6, "yellow", 255, 255, 0},
	{7, "white", 255, 255, 255},
	{8, "brown", 165, 42, 42},
	{9, "tan", 210, 180, 140},
	{10, "forest", 34, 139, 34},
	{11, "aqua", 127, 255, 212},
	{12, "salmon", 250, 128, 114},
	{13, "purple", 128, 0, 128},
	{14, "orange", 255, 165, 0},
	{15, "grey", 128, 128, 128},
}

type InvalidColorError struct {
	Value float64
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("pen colour must be an integer in [0, %d], got %g", len(Palette)-1, e.Value)
}

func PaletteColor(value float64) (Color, error) {
	if value != math.Trunc(value) || value < 0 || value >= float64(len(Palette)) {
		return Color{}, &InvalidColorError{Value: value}
	}

	return Palette[int(value)], nil
}
