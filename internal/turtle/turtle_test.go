package turtle

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const epsilon = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func nearPoint(a, b Point) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

// angleDistance is the shortest distance between two headings.
func angleDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	return math.Min(d, 360-d)
}

func TestNewState(t *testing.T) {
	s := NewState(Palette[0])
	if s.Position != (Point{}) || s.Heading != 0 || !s.PenDown || s.Color.Index != 0 {
		t.Fatalf("NewState() = %+v, expected origin, heading 0, pen down, black", s)
	}
}

func TestNormalizeHeading(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{450, 90},
		{-90, 270},
		{-360, 0},
		{-720.5, 359.5},
		{math.Copysign(0, -1), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}

	for _, tt := range tests {
		got := NormalizeHeading(tt.input)
		if got != tt.expected || math.Signbit(got) {
			t.Fatalf("NormalizeHeading(%g) = %g, expected %g", tt.input, got, tt.expected)
		}
	}
}

func TestForwardFollowsHeading(t *testing.T) {
	tests := []struct {
		heading  float64
		distance float64
		expected Point
	}{
		{0, 100, Point{0, 100}},
		{90, 10, Point{10, 0}},
		{180, 10, Point{0, -10}},
		{270, 10, Point{-10, 0}},
		{45, math.Sqrt2, Point{1, 1}},
		{0, -5, Point{0, -5}},
	}

	for _, tt := range tests {
		s := NewState(Palette[0]).SetHeading(tt.heading)
		next, primitive := s.Forward(tt.distance)

		if !nearPoint(next.Position, tt.expected) {
			t.Fatalf("heading %g forward %g ended at %s, expected %s", tt.heading, tt.distance, next.Position, tt.expected)
		}
		if primitive.Kind != SegmentPrimitive || primitive.From != (Point{}) || primitive.To != next.Position {
			t.Fatalf("heading %g forward %g primitive = %+v", tt.heading, tt.distance, primitive)
		}
	}
}

func TestBackIsNegatedForward(t *testing.T) {
	s := NewState(Palette[0]).SetHeading(30)

	back, _ := s.Back(12)
	forward, _ := s.Forward(-12)
	if !nearPoint(back.Position, forward.Position) {
		t.Fatalf("BACK 12 = %s, FORWARD -12 = %s", back.Position, forward.Position)
	}
}

func TestPenUpMoveIsNoOp(t *testing.T) {
	s := NewState(Palette[0]).PenUp()

	next, primitive := s.Forward(50)
	if primitive.Kind != NoOpPrimitive {
		t.Fatalf("pen up move produced %+v", primitive)
	}
	if !nearPoint(next.Position, Point{0, 50}) {
		t.Fatalf("pen up move ended at %s, expected (0, 50)", next.Position)
	}

	next, primitive = next.PutPenDown().MoveTo(Point{3, 4})
	if primitive.Kind != SegmentPrimitive || primitive.From != (Point{0, 50}) {
		t.Fatalf("pen down move produced %+v", primitive)
	}
	if next.Position != (Point{3, 4}) {
		t.Fatalf("MoveTo ended at %s", next.Position)
	}
}

func TestTurnProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("turn d then turn 360-d restores the heading", prop.ForAll(
		func(start, d float64) bool {
			s := NewState(Palette[0]).SetHeading(start)
			back := s.Turn(d).Turn(360 - d)
			return angleDistance(back.Heading, s.Heading) < 1e-6
		},
		gen.Float64Range(0, 360),
		gen.Float64Range(-1000, 1000),
	))

	properties.Property("headings stay in [0, 360)", prop.ForAll(
		func(start, d float64) bool {
			h := NewState(Palette[0]).SetHeading(start).Turn(d).Heading
			return h >= 0 && h < 360
		},
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(-1e6, 1e6),
	))

	properties.Property("turning never moves the turtle or draws", prop.ForAll(
		func(d float64) bool {
			s := NewState(Palette[0])
			s.Position = Point{7, -3}
			turned := s.Turn(d)
			return turned.Position == s.Position && turned.PenDown == s.PenDown
		},
		gen.Float64Range(-720, 720),
	))

	properties.Property("pen up moves emit nothing", prop.ForAll(
		func(heading, distance float64) bool {
			_, primitive := NewState(Palette[0]).SetHeading(heading).PenUp().Forward(distance)
			return primitive.Kind == NoOpPrimitive
		},
		gen.Float64Range(0, 360),
		gen.Float64Range(-500, 500),
	))

	properties.TestingRun(t)
}

func TestPaletteColor(t *testing.T) {
	red, err := PaletteColor(4)
	if err != nil {
		t.Fatalf("PaletteColor(4) returned error: %v", err)
	}
	if red.Name != "red" || red.Hex() != "#ff0000" {
		t.Fatalf("PaletteColor(4) = %s %s, expected red #ff0000", red, red.Hex())
	}

	for _, bad := range []float64{-1, 16, 2.5, math.NaN()} {
		if _, err := PaletteColor(bad); err == nil {
			t.Fatalf("PaletteColor(%g) expected an error", bad)
		}
	}
}

func TestCanvasClamp(t *testing.T) {
	c := Canvas{Width: 200, Height: 100}

	if !c.Contains(Point{100, -50}) {
		t.Fatalf("corner must be inside the canvas")
	}
	if c.Contains(Point{100.5, 0}) {
		t.Fatalf("(100.5, 0) must be outside the canvas")
	}
	if got := c.Clamp(Point{300, -80}); got != (Point{100, -50}) {
		t.Fatalf("Clamp = %s, expected (100, -50)", got)
	}
}

func TestParseBoundsPolicy(t *testing.T) {
	tests := []struct {
		input    string
		expected BoundsPolicy
	}{
		{"", BoundsNone},
		{"none", BoundsNone},
		{"Clamp", BoundsClamp},
		{" error ", BoundsError},
	}

	for _, tt := range tests {
		got, err := ParseBoundsPolicy(tt.input)
		if err != nil || got != tt.expected {
			t.Fatalf("ParseBoundsPolicy(%q) = %s, %v, expected %s", tt.input, got, err, tt.expected)
		}
	}

	if _, err := ParseBoundsPolicy("wrap"); err == nil {
		t.Fatalf("ParseBoundsPolicy(wrap) expected an error")
	}
}
