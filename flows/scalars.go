package flows

import "weak"

// Scalar is a history aware cell holding one piece of observed state.
// Setting a payload equal to the current one is suppressed, so a scalar
// propagates only when its payload changes, and at most once per event.
// During an event, the payload as it stood before the first write remains
// available through GetOld.
type Scalar[T comparable] struct {
	// downstream links, weakly referenced
	fanout
	// id of the cell, issued by the owning graph
	id Identifier
	// value is the current payload
	value T
	// previous is the first change snapshot of the current event, nil outside of events
	previous *T
}

// NewScalar registers a new history aware cell holding initial.
func NewScalar[T comparable](pc *ProcessingContext, initial T) *Scalar[T] {
	result := new(Scalar[T])
	result.id = pc.graph.takeId()
	result.value = initial
	return result
}

// Id returns the id of the cell.
func (s *Scalar[T]) Id() Identifier {
	if s == nil {
		return NoIdentifier
	}

	return s.id
}

// Get returns the current payload.
func (s *Scalar[T]) Get() T {
	var empty T
	if s == nil {
		return empty
	}

	return s.value
}

// GetOld returns the payload as it stood before the first write of the
// current event. Later writes within the same event do not refresh that
// snapshot. Outside of a change, GetOld returns the current payload.
func (s *Scalar[T]) GetOld() T {
	var empty T
	if s == nil {
		return empty
	}

	if s.previous != nil {
		return *s.previous
	}

	return s.value
}

// Set swaps the payload in. If value equals the current payload, the call
// has no effect. The first effective write of the event captures the
// previous payload, enrolls the cell for end of event cleanup and schedules
// the downstream links for propagation.
func (s *Scalar[T]) Set(pc *ProcessingContext, value T) {
	if s == nil || s.value == value {
		return
	}

	previous := s.value
	s.value = value
	if s.previous == nil {
		s.previous = &previous
		pc.register(s)
		pc.enqueue(s.nextLinks())
	}
}

// Weak returns a weak handle to the cell.
func (s *Scalar[T]) Weak() WeakScalar[T] {
	return WeakScalar[T]{target: weak.Make(s)}
}

// clean drops the first change snapshot at end of event.
func (s *Scalar[T]) clean() {
	if s != nil {
		s.previous = nil
	}
}

// WeakScalar is a weak handle over a scalar cell.
// Links capture their inputs through weak handles to avoid ownership cycles.
type WeakScalar[T comparable] struct {
	// target cell, if still owned somewhere
	target weak.Pointer[Scalar[T]]
}

// Upgrade returns the cell if it is still owned somewhere, nil otherwise.
// A link body whose upgrade fails should return early, performing no write.
func (w WeakScalar[T]) Upgrade() *Scalar[T] {
	return w.target.Value()
}
