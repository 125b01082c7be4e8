package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kievzenit/ylogo/internal/interpreter"
	"github.com/kievzenit/ylogo/internal/turtle"
)

func TestProjectCentresAndFlipsY(t *testing.T) {
	svg := NewSVG(200, 100)

	tests := []struct {
		point turtle.Point
		x, y  float64
	}{
		{turtle.Point{X: 0, Y: 0}, 100, 50},
		{turtle.Point{X: 0, Y: 50}, 100, 0},
		{turtle.Point{X: -100, Y: -50}, 0, 100},
		{turtle.Point{X: 10, Y: 20}, 110, 30},
	}

	for _, tt := range tests {
		x, y := svg.Project(tt.point)
		if x != tt.x || y != tt.y {
			t.Fatalf("Project(%s) = (%g, %g), expected (%g, %g)", tt.point, x, y, tt.x, tt.y)
		}
	}
}

func TestWriteTo(t *testing.T) {
	svg := NewSVG(200, 100)
	if err := svg.EmitSegment(turtle.Point{}, turtle.Point{X: 0, Y: 40}, turtle.Palette[4]); err != nil {
		t.Fatalf("EmitSegment returned error: %v", err)
	}

	var buf bytes.Buffer
	n, err := svg.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo returned error: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Fatalf("WriteTo reported %d bytes, wrote %d", n, buf.Len())
	}

	out := buf.String()
	for _, want := range []string{
		`width="200" height="100"`,
		`fill="#ffffff"`,
		`<line x1="100" y1="50" x2="100" y2="10" stroke="#ff0000"`,
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("svg does not contain %q:\n%s", want, out)
		}
	}
}

func TestRenderProgram(t *testing.T) {
	svg := NewSVG(300, 300)

	_, err := interpreter.Run([]byte("REPEAT 4 [ FORWARD 50 RIGHT 90 ] PENUP FORWARD 100"), interpreter.RunOptions{
		Sink: svg,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if svg.Len() != 4 {
		t.Fatalf("svg holds %d lines, expected 4", svg.Len())
	}

	var buf bytes.Buffer
	if _, err := svg.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo returned error: %v", err)
	}
	if got := strings.Count(buf.String(), "<line "); got != 4 {
		t.Fatalf("svg has %d <line> elements, expected 4", got)
	}
}
