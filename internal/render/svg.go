package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/kievzenit/ylogo/internal/turtle"
)

type line struct {
	from, to turtle.Point
	color    turtle.Color
}

// SVG buffers the segments of a run and writes them as one SVG document.
// Turtle space is centred and y-up, image space has its origin in the top
// left corner and grows downwards.
type SVG struct {
	Width  int
	Height int

	StrokeWidth float64
	Background  string

	lines []line
}

func NewSVG(width, height int) *SVG {
	return &SVG{
		Width:       width,
		Height:      height,
		StrokeWidth: 1,
		Background:  "#ffffff",
	}
}

func (s *SVG) EmitSegment(from, to turtle.Point, color turtle.Color) error {
	s.lines = append(s.lines, line{from: from, to: to, color: color})
	return nil
}

func (s *SVG) Len() int {
	return len(s.lines)
}

// Project maps a turtle point to image coordinates.
func (s *SVG) Project(p turtle.Point) (x, y float64) {
	return float64(s.Width)/2 + p.X, float64(s.Height)/2 - p.Y
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		s.Width, s.Height, s.Width, s.Height)
	fmt.Fprintf(bw, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", s.Background)

	for _, l := range s.lines {
		x1, y1 := s.Project(l.from)
		x2, y2 := s.Project(l.to)
		fmt.Fprintf(bw, `  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" stroke-linecap="round"/>`+"\n",
			coord(x1), coord(y1), coord(x2), coord(y2), l.color.Hex(), coord(s.StrokeWidth))
	}

	bw.WriteString("</svg>\n")

	if err := bw.Flush(); err != nil {
		return cw.n, fmt.Errorf("write svg: %w", err)
	}
	return cw.n, nil
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
