package turtle

import (
	"errors"
	"testing"
)

type segment struct {
	from, to Point
	color    Color
}

type recordingSink struct {
	segments []segment
}

func (r *recordingSink) EmitSegment(from, to Point, color Color) error {
	r.segments = append(r.segments, segment{from, to, color})
	return nil
}

func TestMachineForwardEmitsSegment(t *testing.T) {
	sink := &recordingSink{}
	m := NewMachine(NewState(Palette[0]), sink)

	if err := m.Forward(100); err != nil {
		t.Fatalf("Forward returned error: %v", err)
	}

	if len(sink.segments) != 1 {
		t.Fatalf("got %d segments, expected 1", len(sink.segments))
	}
	got := sink.segments[0]
	if got.from != (Point{0, 0}) || !nearPoint(got.to, Point{0, 100}) {
		t.Fatalf("segment = %s -> %s, expected (0, 0) -> (0, 100)", got.from, got.to)
	}
	if m.Segments() != 1 {
		t.Fatalf("Segments() = %d, expected 1", m.Segments())
	}
}

func TestMachineMovesMatchStateTransitions(t *testing.T) {
	sink := &recordingSink{}
	initial := NewState(Palette[2]).Turn(30)
	m := NewMachine(initial, sink)

	state, forward := initial.Forward(10)
	state, back := state.Back(4)
	state = state.PenUp()
	state, hidden := state.Forward(3)

	if err := m.Forward(10); err != nil {
		t.Fatalf("Forward returned error: %v", err)
	}
	if err := m.Back(4); err != nil {
		t.Fatalf("Back returned error: %v", err)
	}
	m.PenUp()
	if err := m.Forward(3); err != nil {
		t.Fatalf("Forward returned error: %v", err)
	}

	if m.State() != state {
		t.Fatalf("machine state = %+v, expected %+v", m.State(), state)
	}
	if hidden.Kind != NoOpPrimitive || len(sink.segments) != 2 {
		t.Fatalf("got %d segments, expected 2 and a no-op pen-up move", len(sink.segments))
	}
	for i, primitive := range []Primitive{forward, back} {
		want := segment{primitive.From, primitive.To, primitive.Color}
		if sink.segments[i] != want {
			t.Fatalf("segment %d = %+v, expected %+v", i, sink.segments[i], want)
		}
	}
}

func TestMachinePenUpEmitsNothing(t *testing.T) {
	sink := &recordingSink{}
	m := NewMachine(NewState(Palette[0]), sink)

	m.PenUp()
	if err := m.Forward(10); err != nil {
		t.Fatalf("Forward returned error: %v", err)
	}
	if err := m.SetPosition(5, 5); err != nil {
		t.Fatalf("SetPosition returned error: %v", err)
	}
	if len(sink.segments) != 0 {
		t.Fatalf("pen up moves emitted %d segments", len(sink.segments))
	}
	if m.State().Position != (Point{5, 5}) {
		t.Fatalf("position = %s, expected (5, 5)", m.State().Position)
	}

	m.PenDown()
	m.SetColor(Palette[4])
	if err := m.Back(5); err != nil {
		t.Fatalf("Back returned error: %v", err)
	}
	if len(sink.segments) != 1 || sink.segments[0].color.Name != "red" {
		t.Fatalf("segments = %+v, expected one red segment", sink.segments)
	}
}

func TestMachineSquareCloses(t *testing.T) {
	sink := &recordingSink{}
	m := NewMachine(NewState(Palette[0]), sink)

	for i := 0; i < 4; i++ {
		if err := m.Forward(50); err != nil {
			t.Fatalf("Forward returned error: %v", err)
		}
		m.Turn(90)
	}

	if len(sink.segments) != 4 {
		t.Fatalf("got %d segments, expected 4", len(sink.segments))
	}
	if !nearPoint(sink.segments[3].to, sink.segments[0].from) {
		t.Fatalf("square ends at %s, expected %s", sink.segments[3].to, sink.segments[0].from)
	}
	if m.State().Heading != 0 {
		t.Fatalf("heading = %g, expected 0", m.State().Heading)
	}
}

func TestMachineBoundsPolicies(t *testing.T) {
	canvas := Canvas{Width: 100, Height: 100}

	t.Run("none", func(t *testing.T) {
		m := NewMachine(NewState(Palette[0]), nil, WithBounds(canvas, BoundsNone))
		if err := m.Forward(500); err != nil {
			t.Fatalf("Forward returned error: %v", err)
		}
		if !nearPoint(m.State().Position, Point{0, 500}) {
			t.Fatalf("position = %s, expected (0, 500)", m.State().Position)
		}
	})

	t.Run("clamp", func(t *testing.T) {
		sink := &recordingSink{}
		m := NewMachine(NewState(Palette[0]), sink, WithBounds(canvas, BoundsClamp))
		if err := m.Forward(500); err != nil {
			t.Fatalf("Forward returned error: %v", err)
		}
		if m.State().Position != (Point{0, 50}) {
			t.Fatalf("position = %s, expected (0, 50)", m.State().Position)
		}
		if sink.segments[0].to != (Point{0, 50}) {
			t.Fatalf("segment ends at %s, expected (0, 50)", sink.segments[0].to)
		}
	})

	t.Run("error", func(t *testing.T) {
		sink := &recordingSink{}
		m := NewMachine(NewState(Palette[0]), sink, WithBounds(canvas, BoundsError))

		err := m.SetPosition(0, 60)
		var oob *OutOfBoundsError
		if !errors.As(err, &oob) {
			t.Fatalf("SetPosition out of bounds returned %v, expected *OutOfBoundsError", err)
		}
		if m.State().Position != (Point{}) || len(sink.segments) != 0 {
			t.Fatalf("failed move changed state to %s with %d segments", m.State().Position, len(sink.segments))
		}
	})
}

func TestMachineSinkError(t *testing.T) {
	full := errors.New("disk full")
	m := NewMachine(NewState(Palette[0]), SinkFunc(func(Point, Point, Color) error {
		return full
	}))

	err := m.Forward(10)
	if !errors.Is(err, full) {
		t.Fatalf("Forward returned %v, expected wrapped sink error", err)
	}
	if m.State().Position != (Point{}) || m.Segments() != 0 {
		t.Fatalf("failed emit must not move the turtle")
	}
}
