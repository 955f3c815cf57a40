package densead

import "fmt"

// DynamicEvaluation is a function value bundled with its partial derivatives
// w.r.t. a set of independent variables whose count is chosen at run time,
// once per instance, at construction.
//
// Storage is small-buffer optimized: up to smallVecInline-1 derivatives live
// inside the value itself, larger counts spill to one heap allocation.
//
// Because a spilled instance carries a slice, plain assignment transfers the
// buffer without copying (both sides then alias it); use Clone for an
// independent copy. Every arithmetic method that returns a new evaluation
// returns independently owned storage.
//
// Unlike Evaluation, operand compatibility in binary operations is a
// run-time precondition, checked when assertions are compiled in.
type DynamicEvaluation[T Scalar] struct {
	store smallVec[T]
}

// Size returns the number of derivatives carried by this instance.
func (e *DynamicEvaluation[T]) Size() int {
	return e.store.len() - 1
}

// length is the number of scalar slots: the value plus Size() derivatives.
func (e *DynamicEvaluation[T]) length() int {
	return e.store.len()
}

func (e *DynamicEvaluation[T]) data() []T {
	return e.store.data()
}

func (e *DynamicEvaluation[T]) derivs() []T {
	return e.store.data()[1:]
}

// Value returns the function value.
func (e *DynamicEvaluation[T]) Value() T {
	return e.data()[0]
}

// SetValue sets the function value, leaving the derivatives untouched.
func (e *DynamicEvaluation[T]) SetValue(v T) {
	e.data()[0] = v
}

// Derivative returns the derivative w.r.t. variable varIdx.
func (e *DynamicEvaluation[T]) Derivative(varIdx int) T {
	assertVarIndex(varIdx, e.Size())
	return e.derivs()[varIdx]
}

// SetDerivative sets the derivative w.r.t. variable varIdx.
func (e *DynamicEvaluation[T]) SetDerivative(varIdx int, d T) {
	assertVarIndex(varIdx, e.Size())
	e.derivs()[varIdx] = d
}

// ClearDerivatives zeroes every derivative slot. The value is unchanged.
func (e *DynamicEvaluation[T]) ClearDerivatives() {
	zeroFill(e.derivs())
}

// CopyDerivatives copies the derivative slots from other. The value is
// unchanged.
func (e *DynamicEvaluation[T]) CopyDerivatives(other *DynamicEvaluation[T]) {
	assertSameSize(e.Size(), other.Size())
	copy(e.derivs(), other.derivs())
}

// Clone returns a copy with independently owned storage.
func (e *DynamicEvaluation[T]) Clone() DynamicEvaluation[T] {
	return DynamicEvaluation[T]{store: e.store.clone()}
}

// AddAssign adds other's value and derivatives elementwise.
func (e *DynamicEvaluation[T]) AddAssign(other *DynamicEvaluation[T]) {
	assertSameSize(e.Size(), other.Size())
	addInplace(e.data(), other.data())
}

// AddScalarAssign adds a constant to the value; the derivative slots stay
// untouched.
func (e *DynamicEvaluation[T]) AddScalarAssign(c T) {
	e.data()[0] += c
}

// SubAssign subtracts other's value and derivatives elementwise.
func (e *DynamicEvaluation[T]) SubAssign(other *DynamicEvaluation[T]) {
	assertSameSize(e.Size(), other.Size())
	subInplace(e.data(), other.data())
}

// SubScalarAssign subtracts a constant from the value.
func (e *DynamicEvaluation[T]) SubScalarAssign(c T) {
	e.data()[0] -= c
}

// MulAssign multiplies by other, propagating the product rule
// (u*v)' = u'*v + v'*u through the derivative slots.
func (e *DynamicEvaluation[T]) MulAssign(other *DynamicEvaluation[T]) {
	assertSameSize(e.Size(), other.Size())

	// Capture both values before slot 0 is overwritten.
	u := e.Value()
	v := other.Value()

	e.data()[0] = u * v
	productRuleInplace(e.derivs(), other.derivs(), u, v)
}

// MulScalarAssign scales the value and every derivative: (c*u)' = c*u'.
func (e *DynamicEvaluation[T]) MulScalarAssign(c T) {
	scaleInplace(e.data(), c)
}

// DivAssign divides by other, propagating the quotient rule
// (u/v)' = (v*u' - u*v')/v^2. The derivatives are computed first so they see
// the original numerator value.
func (e *DynamicEvaluation[T]) DivAssign(other *DynamicEvaluation[T]) {
	assertSameSize(e.Size(), other.Size())

	u := e.Value()
	v := other.Value()

	quotientRuleInplace(e.derivs(), other.derivs(), u, v)
	e.data()[0] = u / v
}

// DivScalarAssign divides the value and every derivative by a constant.
func (e *DynamicEvaluation[T]) DivScalarAssign(c T) {
	scaleInplace(e.data(), 1/c)
}

// Add returns e + other.
func (e *DynamicEvaluation[T]) Add(other *DynamicEvaluation[T]) DynamicEvaluation[T] {
	result := e.Clone()
	result.AddAssign(other)
	return result
}

// AddScalar returns e + c.
func (e *DynamicEvaluation[T]) AddScalar(c T) DynamicEvaluation[T] {
	result := e.Clone()
	result.AddScalarAssign(c)
	return result
}

// Sub returns e - other.
func (e *DynamicEvaluation[T]) Sub(other *DynamicEvaluation[T]) DynamicEvaluation[T] {
	result := e.Clone()
	result.SubAssign(other)
	return result
}

// SubScalar returns e - c.
func (e *DynamicEvaluation[T]) SubScalar(c T) DynamicEvaluation[T] {
	result := e.Clone()
	result.SubScalarAssign(c)
	return result
}

// SubFromScalar returns c - e.
func (e *DynamicEvaluation[T]) SubFromScalar(c T) DynamicEvaluation[T] {
	result := e.Neg()
	result.AddScalarAssign(c)
	return result
}

// Mul returns e * other.
func (e *DynamicEvaluation[T]) Mul(other *DynamicEvaluation[T]) DynamicEvaluation[T] {
	result := e.Clone()
	result.MulAssign(other)
	return result
}

// MulScalar returns e * c.
func (e *DynamicEvaluation[T]) MulScalar(c T) DynamicEvaluation[T] {
	result := e.Clone()
	result.MulScalarAssign(c)
	return result
}

// Div returns e / other.
func (e *DynamicEvaluation[T]) Div(other *DynamicEvaluation[T]) DynamicEvaluation[T] {
	result := e.Clone()
	result.DivAssign(other)
	return result
}

// DivScalar returns e / c.
func (e *DynamicEvaluation[T]) DivScalar(c T) DynamicEvaluation[T] {
	result := e.Clone()
	result.DivScalarAssign(c)
	return result
}

// DivFromScalar returns c / e, treating c as a constant function.
func (e *DynamicEvaluation[T]) DivFromScalar(c T) DynamicEvaluation[T] {
	result := e.ConstantLike(c)
	result.DivAssign(e)
	return result
}

// Neg returns -e: value and every derivative sign-flipped.
func (e *DynamicEvaluation[T]) Neg() DynamicEvaluation[T] {
	result := DynamicEvaluation[T]{store: newSmallVec[T](e.length())}
	negVectorized(result.data(), e.data())
	return result
}

// Equal reports whether the value and every derivative match exactly.
func (e *DynamicEvaluation[T]) Equal(other *DynamicEvaluation[T]) bool {
	assertSameSize(e.Size(), other.Size())
	return slicesEqual(e.data(), other.data())
}

// EqualScalar reports whether the value equals c. Derivatives are ignored.
func (e *DynamicEvaluation[T]) EqualScalar(c T) bool {
	return e.Value() == c
}

// Less reports e.Value() < other.Value(). Ordering, like for Evaluation,
// never looks at derivatives.
func (e *DynamicEvaluation[T]) Less(other *DynamicEvaluation[T]) bool {
	assertSameSize(e.Size(), other.Size())
	return e.Value() < other.Value()
}

// LessScalar reports e.Value() < c.
func (e *DynamicEvaluation[T]) LessScalar(c T) bool {
	return e.Value() < c
}

// LessEqual reports e.Value() <= other.Value().
func (e *DynamicEvaluation[T]) LessEqual(other *DynamicEvaluation[T]) bool {
	assertSameSize(e.Size(), other.Size())
	return e.Value() <= other.Value()
}

// LessEqualScalar reports e.Value() <= c.
func (e *DynamicEvaluation[T]) LessEqualScalar(c T) bool {
	return e.Value() <= c
}

// Greater reports e.Value() > other.Value().
func (e *DynamicEvaluation[T]) Greater(other *DynamicEvaluation[T]) bool {
	assertSameSize(e.Size(), other.Size())
	return e.Value() > other.Value()
}

// GreaterScalar reports e.Value() > c.
func (e *DynamicEvaluation[T]) GreaterScalar(c T) bool {
	return e.Value() > c
}

// GreaterEqual reports e.Value() >= other.Value().
func (e *DynamicEvaluation[T]) GreaterEqual(other *DynamicEvaluation[T]) bool {
	assertSameSize(e.Size(), other.Size())
	return e.Value() >= other.Value()
}

// GreaterEqualScalar reports e.Value() >= c.
func (e *DynamicEvaluation[T]) GreaterEqualScalar(c T) bool {
	return e.Value() >= c
}

// String formats the value and derivative vector for diagnostics.
func (e *DynamicEvaluation[T]) String() string {
	return fmt.Sprintf("%v d%v", e.Value(), e.derivs())
}

// ConstantLike returns a constant function f(x) = c with the same variable
// count as e.
func (e *DynamicEvaluation[T]) ConstantLike(c T) DynamicEvaluation[T] {
	return DynConstant(e.Size(), c)
}

// VariableLike returns a seed for the variable at index pos with the same
// variable count as e.
func (e *DynamicEvaluation[T]) VariableLike(c T, pos int) DynamicEvaluation[T] {
	return DynVariable(e.Size(), c, pos)
}

// BlankLike returns a structurally compatible instance with the same
// variable count as e, skipping any redundant initialization work.
func (e *DynamicEvaluation[T]) BlankLike() DynamicEvaluation[T] {
	return DynBlank[T](e.Size())
}

// ZeroLike returns the constant 0 with the same variable count as e.
func (e *DynamicEvaluation[T]) ZeroLike() DynamicEvaluation[T] {
	return e.ConstantLike(0)
}

// OneLike returns the constant 1 with the same variable count as e.
func (e *DynamicEvaluation[T]) OneLike() DynamicEvaluation[T] {
	return e.ConstantLike(1)
}

// Package-level factories for the dynamic variant. The variable count cannot
// be inferred from the type, so every factory requires it explicitly; with
// an operand at hand the ...Like methods cover the exemplar-driven cases.

// DynConstant returns the constant function f(x) = c with numVars
// derivatives, all zero.
func DynConstant[T Scalar](numVars int, c T) DynamicEvaluation[T] {
	e := DynBlank[T](numVars)
	e.data()[0] = c
	checkDefined(e.data())
	return e
}

// DynVariable returns a seed for the independent variable at index pos with
// numVars derivatives: value c, derivative 1 at pos and 0 everywhere else.
func DynVariable[T Scalar](numVars int, c T, pos int) DynamicEvaluation[T] {
	e := DynConstant(numVars, c)
	assertVarIndex(pos, numVars)
	e.derivs()[pos] = 1
	return e
}

// DynBlank returns a structurally complete but unpopulated evaluation with
// numVars derivatives.
func DynBlank[T Scalar](numVars int) DynamicEvaluation[T] {
	if numVars < 0 {
		panic(fmt.Sprintf("densead: negative derivative count %d", numVars))
	}
	return DynamicEvaluation[T]{store: newSmallVec[T](numVars + 1)}
}

// DynZero returns the constant 0 with numVars derivatives.
func DynZero[T Scalar](numVars int) DynamicEvaluation[T] {
	return DynConstant[T](numVars, 0)
}

// DynOne returns the constant 1 with numVars derivatives.
func DynOne[T Scalar](numVars int) DynamicEvaluation[T] {
	return DynConstant[T](numVars, 1)
}
