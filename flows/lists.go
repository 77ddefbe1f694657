package flows

import (
	"iter"
	"slices"
	"weak"
)

// Change is one splice record of a list change log.
// Applying every change of an event, in order, to the sequence as it stood
// at the beginning of the event yields the current sequence.
type Change[T any] struct {
	// Offset of the splice in the sequence as it stood when the splice applied
	Offset int
	// Remove is the number of elements the splice removed at Offset
	Remove int
	// Add holds the elements the splice inserted at Offset
	Add []T
}

// List is a cell specialized for ordered sequences. Besides the current
// sequence, it records a per event log of splice operations so that
// downstream consumers may follow the changes instead of recomputing from
// scratch. The log is cleared when the event ends.
type List[T any] struct {
	// downstream links, weakly referenced
	fanout
	// id of the cell, issued by the owning graph
	id Identifier
	// values is the current sequence
	values []T
	// changes is the change log of the current event
	changes []Change[T]
}

// NewList registers a new list cell. The initial content is the baseline of
// the sequence: it does not appear in the change log.
func NewList[T any](pc *ProcessingContext, initial []T) *List[T] {
	result := new(List[T])
	result.id = pc.graph.takeId()
	result.values = slices.Clone(initial)
	return result
}

// Id returns the id of the cell.
func (l *List[T]) Id() Identifier {
	if l == nil {
		return NoIdentifier
	}

	return l.id
}

// Splice replaces the remove elements at offset with add, returns the
// removed elements, and appends the operation to the change log. A splice
// removing nothing and adding nothing is a no op and does not propagate.
// The first effective splice of the event enrolls the cell for end of event
// cleanup and schedules the downstream links for propagation.
func (l *List[T]) Splice(pc *ProcessingContext, offset, remove int, add []T) []T {
	if l == nil {
		return nil
	} else if remove == 0 && len(add) == 0 {
		return nil
	}

	first := len(l.changes) == 0
	added := slices.Clone(add)
	removed := slices.Clone(l.values[offset : offset+remove])
	l.values = slices.Replace(l.values, offset, offset+remove, added...)
	l.changes = append(l.changes, Change[T]{Offset: offset, Remove: remove, Add: added})
	if first {
		pc.register(l)
		pc.enqueue(l.nextLinks())
	}

	return removed
}

// Push appends one element at the tail.
func (l *List[T]) Push(pc *ProcessingContext, item T) {
	if l == nil {
		return
	}

	l.Splice(pc, len(l.values), 0, []T{item})
}

// Pop removes the last element and returns it, or false when the list is empty.
func (l *List[T]) Pop(pc *ProcessingContext) (T, bool) {
	var empty T
	if l == nil || len(l.values) == 0 {
		return empty, false
	}

	removed := l.Splice(pc, len(l.values)-1, 1, nil)
	return removed[0], true
}

// Extend appends the elements at the tail.
func (l *List[T]) Extend(pc *ProcessingContext, items []T) {
	if l == nil {
		return
	}

	l.Splice(pc, len(l.values), 0, items)
}

// Clear removes every element.
func (l *List[T]) Clear(pc *ProcessingContext) {
	if l == nil {
		return
	}

	l.Splice(pc, 0, len(l.values), nil)
}

// Truncate reduces the sequence to length elements, if longer.
func (l *List[T]) Truncate(pc *ProcessingContext, length int) {
	if l == nil || len(l.values) <= length {
		return
	}

	l.Splice(pc, length, len(l.values)-length, nil)
}

// Values returns the current sequence. It is a view over the cell content,
// valid until the next mutation; callers should not modify it.
func (l *List[T]) Values() []T {
	if l == nil {
		return nil
	}

	return l.values
}

// Changes returns the change log produced during the current event.
// It is empty outside of events.
func (l *List[T]) Changes() []Change[T] {
	if l == nil {
		return nil
	}

	return l.changes
}

// All ranges over index and element of the current sequence.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l == nil {
			return
		}

		for index, value := range l.values {
			if !yield(index, value) {
				return
			}
		}
	}
}

// Weak returns a weak handle to the cell.
func (l *List[T]) Weak() WeakList[T] {
	return WeakList[T]{target: weak.Make(l)}
}

// clean drops the change log at end of event.
func (l *List[T]) clean() {
	if l != nil {
		l.changes = nil
	}
}

// WeakList is a weak handle over a list cell.
type WeakList[T any] struct {
	// target cell, if still owned somewhere
	target weak.Pointer[List[T]]
}

// Upgrade returns the cell if it is still owned somewhere, nil otherwise.
func (w WeakList[T]) Upgrade() *List[T] {
	return w.target.Value()
}
