package densead

import "math"

// Elementary functions with derivative propagation. For a univariate
// composition f(u) the derivatives follow the chain rule: each slot is
// scaled by f'(u). The (f(u), f'(u)) pairs are computed once per function
// here and applied through applyChain by both storage variants.

func expRule[T Scalar](u T) (T, T) {
	f := T(math.Exp(float64(u)))
	return f, f
}

func logRule[T Scalar](u T) (T, T) {
	return T(math.Log(float64(u))), 1 / u
}

func sqrtRule[T Scalar](u T) (T, T) {
	s := T(math.Sqrt(float64(u)))
	return s, 1 / (2 * s)
}

func powRule[T Scalar](u, c T) (T, T) {
	f := T(math.Pow(float64(u), float64(c)))
	return f, c * T(math.Pow(float64(u), float64(c-1)))
}

func sinRule[T Scalar](u T) (T, T) {
	s, c := math.Sincos(float64(u))
	return T(s), T(c)
}

func cosRule[T Scalar](u T) (T, T) {
	s, c := math.Sincos(float64(u))
	return T(c), T(-s)
}

func tanhRule[T Scalar](u T) (T, T) {
	t := T(math.Tanh(float64(u)))
	return t, 1 - t*t
}

// Fixed-size variant.

// Exp returns e^x applied to the evaluation.
func (e *Evaluation[T, D]) Exp() Evaluation[T, D] {
	result := *e
	fv, fp := expRule(e.v)
	applyChain(result.data(), fv, fp)
	return result
}

// Log returns the natural logarithm. The value must be positive.
func (e *Evaluation[T, D]) Log() Evaluation[T, D] {
	result := *e
	fv, fp := logRule(e.v)
	applyChain(result.data(), fv, fp)
	return result
}

// Sqrt returns the square root. The value must be positive.
func (e *Evaluation[T, D]) Sqrt() Evaluation[T, D] {
	result := *e
	fv, fp := sqrtRule(e.v)
	applyChain(result.data(), fv, fp)
	return result
}

// Pow raises the evaluation to a constant exponent.
func (e *Evaluation[T, D]) Pow(c T) Evaluation[T, D] {
	result := *e
	fv, fp := powRule(e.v, c)
	applyChain(result.data(), fv, fp)
	return result
}

// Sin returns the sine.
func (e *Evaluation[T, D]) Sin() Evaluation[T, D] {
	result := *e
	fv, fp := sinRule(e.v)
	applyChain(result.data(), fv, fp)
	return result
}

// Cos returns the cosine.
func (e *Evaluation[T, D]) Cos() Evaluation[T, D] {
	result := *e
	fv, fp := cosRule(e.v)
	applyChain(result.data(), fv, fp)
	return result
}

// Tanh returns the hyperbolic tangent.
func (e *Evaluation[T, D]) Tanh() Evaluation[T, D] {
	result := *e
	fv, fp := tanhRule(e.v)
	applyChain(result.data(), fv, fp)
	return result
}

// Abs returns the absolute value. At exactly zero the derivatives are kept
// as-is (the one-sided derivative from the right).
func (e *Evaluation[T, D]) Abs() Evaluation[T, D] {
	if e.v < 0 {
		return e.Neg()
	}
	return *e
}

// Min returns the operand with the smaller value, derivatives included.
func (e *Evaluation[T, D]) Min(other *Evaluation[T, D]) Evaluation[T, D] {
	if other.v < e.v {
		return *other
	}
	return *e
}

// Max returns the operand with the larger value, derivatives included.
func (e *Evaluation[T, D]) Max(other *Evaluation[T, D]) Evaluation[T, D] {
	if other.v > e.v {
		return *other
	}
	return *e
}

// Dynamic-size variant.

// Exp returns e^x applied to the evaluation.
func (e *DynamicEvaluation[T]) Exp() DynamicEvaluation[T] {
	result := e.Clone()
	fv, fp := expRule(e.Value())
	applyChain(result.data(), fv, fp)
	return result
}

// Log returns the natural logarithm. The value must be positive.
func (e *DynamicEvaluation[T]) Log() DynamicEvaluation[T] {
	result := e.Clone()
	fv, fp := logRule(e.Value())
	applyChain(result.data(), fv, fp)
	return result
}

// Sqrt returns the square root. The value must be positive.
func (e *DynamicEvaluation[T]) Sqrt() DynamicEvaluation[T] {
	result := e.Clone()
	fv, fp := sqrtRule(e.Value())
	applyChain(result.data(), fv, fp)
	return result
}

// Pow raises the evaluation to a constant exponent.
func (e *DynamicEvaluation[T]) Pow(c T) DynamicEvaluation[T] {
	result := e.Clone()
	fv, fp := powRule(e.Value(), c)
	applyChain(result.data(), fv, fp)
	return result
}

// Sin returns the sine.
func (e *DynamicEvaluation[T]) Sin() DynamicEvaluation[T] {
	result := e.Clone()
	fv, fp := sinRule(e.Value())
	applyChain(result.data(), fv, fp)
	return result
}

// Cos returns the cosine.
func (e *DynamicEvaluation[T]) Cos() DynamicEvaluation[T] {
	result := e.Clone()
	fv, fp := cosRule(e.Value())
	applyChain(result.data(), fv, fp)
	return result
}

// Tanh returns the hyperbolic tangent.
func (e *DynamicEvaluation[T]) Tanh() DynamicEvaluation[T] {
	result := e.Clone()
	fv, fp := tanhRule(e.Value())
	applyChain(result.data(), fv, fp)
	return result
}

// Abs returns the absolute value. At exactly zero the derivatives are kept
// as-is (the one-sided derivative from the right).
func (e *DynamicEvaluation[T]) Abs() DynamicEvaluation[T] {
	if e.Value() < 0 {
		return e.Neg()
	}
	return e.Clone()
}

// Min returns the operand with the smaller value, derivatives included.
func (e *DynamicEvaluation[T]) Min(other *DynamicEvaluation[T]) DynamicEvaluation[T] {
	assertSameSize(e.Size(), other.Size())
	if other.Value() < e.Value() {
		return other.Clone()
	}
	return e.Clone()
}

// Max returns the operand with the larger value, derivatives included.
func (e *DynamicEvaluation[T]) Max(other *DynamicEvaluation[T]) DynamicEvaluation[T] {
	assertSameSize(e.Size(), other.Size())
	if other.Value() > e.Value() {
		return other.Clone()
	}
	return e.Clone()
}
