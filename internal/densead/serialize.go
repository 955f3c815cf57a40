package densead

// Serializer consumes or refreshes an ordered scalar sequence. It is the
// boundary to an external serialization mechanism: an evaluation hands over
// its value+derivative slots (value first, derivatives in variable-index
// order) and knows nothing about the wire format on the other side. The
// slice aliases the evaluation's storage, so a serializer may also fill it,
// e.g. when restoring state.
type Serializer[T Scalar] interface {
	SerializeScalars(data []T) error
}

// SerializeOp exposes the evaluation's scalar sequence to s.
func (e *Evaluation[T, D]) SerializeOp(s Serializer[T]) error {
	return s.SerializeScalars(e.data())
}

// SerializeOp exposes the evaluation's scalar sequence to s.
func (e *DynamicEvaluation[T]) SerializeOp(s Serializer[T]) error {
	return s.SerializeScalars(e.data())
}
