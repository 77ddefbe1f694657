package flows

// RunObserver is notified while a graph processes an event.
// Although the interface is permissive, the idea is to observe the run,
// not to act on the graph: observers must not mutate values or create
// links, and an observer driving a new event from its callbacks is skipped
// by the reentrancy guard.
type RunObserver interface {
	// an observer should have an id too to distinguish one from another
	Id() string
	// OnLinkRun is called right before a link runs its computation
	OnLinkRun(link *Link)
	// OnEventDone is called once per completed event, normal or unwinding,
	// with the number of links the event ran
	OnEventDone(runs int)
}

// functionalRunObserver encapsulates listeners to implement RunObserver
type functionalRunObserver struct {
	// id of the observer
	id string
	// onRun is called when a link is about to run
	onRun func(link *Link)
	// onDone is called when the event completed
	onDone func(runs int)
}

// Id returns the id of that observer
func (f *functionalRunObserver) Id() string {
	if f == nil {
		return ""
	}

	return f.id
}

// OnLinkRun is called when link is about to run its computation.
func (f *functionalRunObserver) OnLinkRun(link *Link) {
	if f != nil && f.onRun != nil {
		f.onRun(link)
	}
}

// OnEventDone is called when the event completed, with the number of links run.
func (f *functionalRunObserver) OnEventDone(runs int) {
	if f != nil && f.onDone != nil {
		f.onDone(runs)
	}
}

// NewRunObserver builds a run observer from listening functions.
// Either function may be nil; an observer with no function at all is nil.
func NewRunObserver(onRun func(link *Link), onDone func(runs int)) RunObserver {
	if onRun == nil && onDone == nil {
		return nil
	}

	result := new(functionalRunObserver)
	result.id = NewId()
	result.onRun = onRun
	result.onDone = onDone
	return result
}

// AddObserver registers a new observer to be notified, deduplicated by id.
func (g *EventGraph) AddObserver(observer RunObserver) {
	if g == nil || observer == nil {
		return
	}

	newValues := append(g.observers, observer)
	g.observers = SliceDeduplicateFunc(newValues, func(a, b RunObserver) bool { return a.Id() == b.Id() })
}

// RemoveObservers removes observers matching a given predicate.
func (g *EventGraph) RemoveObservers(predicate func(RunObserver) bool) {
	if g == nil || predicate == nil {
		return
	}

	g.observers = SlicesFilter(g.observers, func(o RunObserver) bool { return !predicate(o) })
}

// Observers returns the current observers.
func (g *EventGraph) Observers() []RunObserver {
	if g == nil {
		return nil
	}

	result := make([]RunObserver, len(g.observers))
	copy(result, g.observers)
	return result
}
