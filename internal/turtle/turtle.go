// Package turtle holds the turtle state and its transitions.
//
// Coordinates are y-axis up with the origin at the centre of the canvas.
// Heading is in degrees, 0 faces up (+y) and grows clockwise, so a move of d
// changes the position by (d*sin(h), d*cos(h)).
package turtle

import (
	"fmt"
	"math"
)

type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

type State struct {
	Position Point
	Heading  float64
	PenDown  bool
	Color    Color
}

// NewState returns a turtle at the origin facing up with the pen down.
func NewState(color Color) State {
	return State{
		PenDown: true,
		Color:   color,
	}
}

type PrimitiveKind int

const (
	NoOpPrimitive PrimitiveKind = iota
	SegmentPrimitive
)

// Primitive is what a movement produces: a segment when the pen is down,
// a no-op otherwise.
type Primitive struct {
	Kind  PrimitiveKind
	From  Point
	To    Point
	Color Color
}

// NormalizeHeading maps any angle into [0, 360). Infinities and NaN have no
// direction and map to 0.
func NormalizeHeading(degrees float64) float64 {
	if math.IsInf(degrees, 0) || math.IsNaN(degrees) {
		return 0
	}

	h := math.Mod(degrees, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h -= 360
	}
	if h == 0 {
		// folds -0 into +0
		return 0
	}

	return h
}

func (s State) Forward(distance float64) (State, Primitive) {
	return s.MoveTo(s.project(distance))
}

func (s State) Back(distance float64) (State, Primitive) {
	return s.MoveTo(s.project(-distance))
}

// MoveTo is an instantaneous straight move, used for SETPOS and friends.
func (s State) MoveTo(to Point) (State, Primitive) {
	primitive := Primitive{Kind: NoOpPrimitive, From: s.Position, To: to}
	if s.PenDown {
		primitive = Primitive{
			Kind:  SegmentPrimitive,
			From:  s.Position,
			To:    to,
			Color: s.Color,
		}
	}

	s.Position = to
	return s, primitive
}

func (s State) Turn(degrees float64) State {
	s.Heading = NormalizeHeading(s.Heading + degrees)
	return s
}

func (s State) SetHeading(degrees float64) State {
	s.Heading = NormalizeHeading(degrees)
	return s
}

func (s State) PenUp() State {
	s.PenDown = false
	return s
}

func (s State) PutPenDown() State {
	s.PenDown = true
	return s
}

func (s State) SetColor(color Color) State {
	s.Color = color
	return s
}

func (s State) project(distance float64) Point {
	rad := s.Heading * math.Pi / 180

	return Point{
		X: s.Position.X + distance*math.Sin(rad),
		Y: s.Position.Y + distance*math.Cos(rad),
	}
}
