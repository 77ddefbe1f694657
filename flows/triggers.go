package flows

import "weak"

// Trigger is a history less cell. Unlike Scalar, every Set propagates,
// equal payload included: a trigger is the primitive to signal that
// something happened rather than that something changed.
// It keeps no previous value, only a dirty flag cleared at end of event.
type Trigger[T any] struct {
	// downstream links, weakly referenced
	fanout
	// id of the cell, issued by the owning graph
	id Identifier
	// value is the current payload
	value T
	// dirty is set on the first write of the event
	dirty bool
}

// NewTrigger registers a new history less cell holding initial.
func NewTrigger[T any](pc *ProcessingContext, initial T) *Trigger[T] {
	result := new(Trigger[T])
	result.id = pc.graph.takeId()
	result.value = initial
	return result
}

// Id returns the id of the cell.
func (t *Trigger[T]) Id() Identifier {
	if t == nil {
		return NoIdentifier
	}

	return t.id
}

// Get returns the current payload.
func (t *Trigger[T]) Get() T {
	var empty T
	if t == nil {
		return empty
	}

	return t.value
}

// Set swaps the payload in and schedules the downstream links, whether or
// not value equals the current payload. The first write of the event
// enrolls the cell for end of event cleanup.
func (t *Trigger[T]) Set(pc *ProcessingContext, value T) {
	if t == nil {
		return
	}

	t.value = value
	if !t.dirty {
		t.dirty = true
		pc.register(t)
	}

	pc.enqueue(t.nextLinks())
}

// Weak returns a weak handle to the cell.
func (t *Trigger[T]) Weak() WeakTrigger[T] {
	return WeakTrigger[T]{target: weak.Make(t)}
}

// clean resets the dirty flag at end of event.
func (t *Trigger[T]) clean() {
	if t != nil {
		t.dirty = false
	}
}

// WeakTrigger is a weak handle over a trigger cell.
type WeakTrigger[T any] struct {
	// target cell, if still owned somewhere
	target weak.Pointer[Trigger[T]]
}

// Upgrade returns the cell if it is still owned somewhere, nil otherwise.
func (w WeakTrigger[T]) Upgrade() *Trigger[T] {
	return w.target.Value()
}
