package turtle

import (
	"fmt"
	"math"
	"strings"
)

// BoundsPolicy decides what happens when the turtle would leave the canvas.
type BoundsPolicy int

const (
	// BoundsNone passes every coordinate through unclipped.
	BoundsNone BoundsPolicy = iota
	BoundsClamp
	BoundsError
)

func (b BoundsPolicy) String() string {
	switch b {
	case BoundsNone:
		return "none"
	case BoundsClamp:
		return "clamp"
	case BoundsError:
		return "error"
	}
	return fmt.Sprintf("BoundsPolicy(%d)", int(b))
}

func ParseBoundsPolicy(s string) (BoundsPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return BoundsNone, nil
	case "clamp":
		return BoundsClamp, nil
	case "error":
		return BoundsError, nil
	}
	return BoundsNone, fmt.Errorf("unknown bounds policy %q, expected none, clamp or error", s)
}

// Canvas is centred on the origin: it spans [-Width/2, Width/2] by
// [-Height/2, Height/2].
type Canvas struct {
	Width  float64
	Height float64
}

func (c Canvas) Contains(p Point) bool {
	hw, hh := c.Width/2, c.Height/2
	return p.X >= -hw && p.X <= hw && p.Y >= -hh && p.Y <= hh
}

func (c Canvas) Clamp(p Point) Point {
	hw, hh := c.Width/2, c.Height/2
	return Point{
		X: math.Max(-hw, math.Min(hw, p.X)),
		Y: math.Max(-hh, math.Min(hh, p.Y)),
	}
}

type OutOfBoundsError struct {
	Point  Point
	Canvas Canvas
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("turtle moved out of bounds to %s, canvas is %gx%g", e.Point, e.Canvas.Width, e.Canvas.Height)
}
