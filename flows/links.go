package flows

// LinkBody supplies the computation of a link and its declared outputs.
type LinkBody interface {
	// Call runs the computation with the processing context.
	// A body may return early without writing anything, for instance when
	// upgrading a weak input fails; this is not an error.
	Call(pc *ProcessingContext)
	// NextValues returns the declared output values. The scheduler consults
	// them to walk the graph downward during propagation.
	NextValues() []Value
}

// Link is a computation registered against input and output values, invoked
// during propagation. The strong handle returned by NewLink governs
// activation: once user code drops it, the weak entries in the fan out
// lists of its input values die and the link stops being invoked.
type Link struct {
	// id of the link, issued by the owning graph
	id Identifier
	// body is the user supplied computation, strongly owned by the link
	body LinkBody
}

// NewLink registers a new link with the given body. The link is scheduled
// to run once unconditionally during the event that created it.
// The caller is responsible for calling AddDownstream on each input value,
// because only the caller knows which captures are inputs and which are
// bystanders.
func NewLink(pc *ProcessingContext, body LinkBody) *Link {
	if body == nil {
		return nil
	}

	result := new(Link)
	result.id = pc.graph.takeId()
	result.body = body
	pc.graph.seeds = append(pc.graph.seeds, result)
	return result
}

// Id returns the id of the link.
func (l *Link) Id() Identifier {
	if l == nil {
		return NoIdentifier
	}

	return l.id
}

// call runs the body once, during the upward walk of propagation.
func (l *Link) call(pc *ProcessingContext) {
	if l != nil && l.body != nil {
		l.body.Call(pc)
	}
}

// outputs enumerates the declared output values of the link.
func (l *Link) outputs() []Value {
	if l == nil || l.body == nil {
		return nil
	}

	return l.body.NextValues()
}

// funcBody decorates a function and an output list to implement LinkBody
type funcBody struct {
	// outputs are the declared output values
	outputs []Value
	// callback is the decorated computation
	callback func(pc *ProcessingContext)
}

// Call runs the decorated function.
func (f funcBody) Call(pc *ProcessingContext) {
	if f.callback != nil {
		f.callback(pc)
	}
}

// NextValues returns the declared output values.
func (f funcBody) NextValues() []Value {
	return f.outputs
}

// NewFuncLink builds a link from a callback and its declared outputs.
// It is the functional counterpart of NewLink for the common case where no
// dedicated body type is worth defining.
func NewFuncLink(pc *ProcessingContext, outputs []Value, callback func(pc *ProcessingContext)) *Link {
	if callback == nil {
		return nil
	}

	return NewLink(pc, funcBody{outputs: outputs, callback: callback})
}
