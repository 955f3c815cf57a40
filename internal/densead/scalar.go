package densead

// Scalar is a constraint for the underlying field type of an evaluation.
// Derivative propagation only makes sense over floating-point fields.
type Scalar interface {
	~float32 | ~float64
}
