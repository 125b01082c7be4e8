package turtle

import "fmt"

// Sink consumes the segments a run draws. A sink error aborts the run.
type Sink interface {
	EmitSegment(from, to Point, color Color) error
}

type SinkFunc func(from, to Point, color Color) error

func (f SinkFunc) EmitSegment(from, to Point, color Color) error {
	return f(from, to, color)
}

type discardSink struct{}

func (discardSink) EmitSegment(Point, Point, Color) error { return nil }

// Machine owns the live turtle state of one run, applies the bounds policy
// and forwards drawn segments to the sink as they happen.
type Machine struct {
	state State
	sink  Sink

	canvas Canvas
	policy BoundsPolicy

	segments int
}

type MachineOption func(*Machine)

func WithBounds(canvas Canvas, policy BoundsPolicy) MachineOption {
	return func(m *Machine) {
		m.canvas = canvas
		m.policy = policy
	}
}

func NewMachine(initial State, sink Sink, opts ...MachineOption) *Machine {
	if sink == nil {
		sink = discardSink{}
	}

	m := &Machine{
		state:  initial,
		sink:   sink,
		policy: BoundsNone,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *Machine) State() State {
	return m.state
}

// Segments is the number of segments forwarded to the sink so far.
func (m *Machine) Segments() int {
	return m.segments
}

func (m *Machine) Forward(distance float64) error {
	return m.apply(m.state.Forward(distance))
}

func (m *Machine) Back(distance float64) error {
	return m.apply(m.state.Back(distance))
}

func (m *Machine) SetPosition(x, y float64) error {
	return m.apply(m.state.MoveTo(Point{X: x, Y: y}))
}

func (m *Machine) Turn(degrees float64) {
	m.state = m.state.Turn(degrees)
}

func (m *Machine) SetHeading(degrees float64) {
	m.state = m.state.SetHeading(degrees)
}

func (m *Machine) PenUp() {
	m.state = m.state.PenUp()
}

func (m *Machine) PenDown() {
	m.state = m.state.PutPenDown()
}

func (m *Machine) SetColor(color Color) {
	m.state = m.state.SetColor(color)
}

// apply commits a movement once its end point satisfies the bounds policy.
func (m *Machine) apply(next State, primitive Primitive) error {
	if to := next.Position; m.policy != BoundsNone && !m.canvas.Contains(to) {
		switch m.policy {
		case BoundsClamp:
			next.Position = m.canvas.Clamp(to)
			primitive.To = next.Position
		case BoundsError:
			return &OutOfBoundsError{Point: to, Canvas: m.canvas}
		}
	}

	if primitive.Kind == SegmentPrimitive {
		if err := m.sink.EmitSegment(primitive.From, primitive.To, primitive.Color); err != nil {
			return fmt.Errorf("emit segment %s -> %s: %w", primitive.From, primitive.To, err)
		}
		m.segments++
	}

	m.state = next
	return nil
}
