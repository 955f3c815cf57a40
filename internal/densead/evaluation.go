package densead

import (
	"fmt"
	"unsafe"
)

// Evaluation is a function value bundled with its partial derivatives w.r.t.
// a compile-time-fixed set of independent variables.
//
// T is the scalar field type. D is an array type [N]T whose length N is the
// number of independent variables; it both sizes the inline derivative
// storage and makes evaluations with different variable counts distinct,
// incompatible types. For a function of two float64 variables:
//
//	type Eval = densead.Evaluation[float64, [2]float64]
//
// The zero value is a constant zero function: value 0, all derivatives 0.
// Evaluations are plain values: assignment copies the embedded storage, and
// copies never alias.
//
// Instantiating D with anything other than an array of T is invalid; the
// layout is verified by the factories when precondition checks are enabled.
type Evaluation[T Scalar, D any] struct {
	v T // function value (slot 0)
	d D // derivatives, one slot per variable
}

// Size returns the number of derivatives carried per evaluation. The result
// is a compile-time constant for a given instantiation.
func (e *Evaluation[T, D]) Size() int {
	return int(unsafe.Sizeof(e.d) / unsafe.Sizeof(e.v))
}

// length is the number of scalar slots: the value plus Size() derivatives.
func (e *Evaluation[T, D]) length() int {
	return e.Size() + 1
}

// data views the evaluation as its contiguous scalar sequence, value first.
// The struct is a T followed by an [N]T, so there is no padding and the view
// is exact.
func (e *Evaluation[T, D]) data() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&e.v)), e.length())
}

// derivs views only the derivative slots.
func (e *Evaluation[T, D]) derivs() []T {
	return e.data()[1:]
}

// checkLayout panics if D is not an array of T. Both operands of the
// comparison are compile-time constants, so the check folds away entirely
// for valid instantiations.
func (e *Evaluation[T, D]) checkLayout() {
	if !assertEnabled {
		return
	}
	if unsafe.Sizeof(e.d)%unsafe.Sizeof(e.v) != 0 {
		panic("densead: derivative storage type is not an array of the scalar type")
	}
}

// Value returns the function value.
func (e *Evaluation[T, D]) Value() T {
	return e.v
}

// SetValue sets the function value, leaving the derivatives untouched.
func (e *Evaluation[T, D]) SetValue(v T) {
	e.v = v
}

// Derivative returns the derivative w.r.t. variable varIdx.
func (e *Evaluation[T, D]) Derivative(varIdx int) T {
	assertVarIndex(varIdx, e.Size())
	return e.derivs()[varIdx]
}

// SetDerivative sets the derivative w.r.t. variable varIdx.
func (e *Evaluation[T, D]) SetDerivative(varIdx int, d T) {
	assertVarIndex(varIdx, e.Size())
	e.derivs()[varIdx] = d
}

// ClearDerivatives zeroes every derivative slot. The value is unchanged.
func (e *Evaluation[T, D]) ClearDerivatives() {
	zeroFill(e.derivs())
}

// CopyDerivatives copies the derivative slots from other. The value is
// unchanged.
func (e *Evaluation[T, D]) CopyDerivatives(other *Evaluation[T, D]) {
	copy(e.derivs(), other.derivs())
}

// Clone returns a copy with independent storage. For this variant a plain
// assignment does the same thing; Clone exists for symmetry with
// DynamicEvaluation.
func (e *Evaluation[T, D]) Clone() Evaluation[T, D] {
	return *e
}

// In-place arithmetic. Operand compatibility is enforced by the type system:
// both sides of a binary operation necessarily carry the same D.

// AddAssign adds other's value and derivatives elementwise.
func (e *Evaluation[T, D]) AddAssign(other *Evaluation[T, D]) {
	addInplace(e.data(), other.data())
}

// AddScalarAssign adds a constant to the value. A constant has zero
// derivative w.r.t. every variable, so the derivative slots stay untouched.
func (e *Evaluation[T, D]) AddScalarAssign(c T) {
	e.v += c
}

// SubAssign subtracts other's value and derivatives elementwise.
func (e *Evaluation[T, D]) SubAssign(other *Evaluation[T, D]) {
	subInplace(e.data(), other.data())
}

// SubScalarAssign subtracts a constant from the value.
func (e *Evaluation[T, D]) SubScalarAssign(c T) {
	e.v -= c
}

// MulAssign multiplies by other, propagating the product rule
// (u*v)' = u'*v + v'*u through the derivative slots.
func (e *Evaluation[T, D]) MulAssign(other *Evaluation[T, D]) {
	// Capture both values before slot 0 is overwritten.
	u := e.v
	v := other.v

	e.v = u * v
	productRuleInplace(e.derivs(), other.derivs(), u, v)
}

// MulScalarAssign scales the value and every derivative: (c*u)' = c*u'.
func (e *Evaluation[T, D]) MulScalarAssign(c T) {
	scaleInplace(e.data(), c)
}

// DivAssign divides by other, propagating the quotient rule
// (u/v)' = (v*u' - u*v')/v^2. The derivatives are computed first so they see
// the original numerator value.
func (e *Evaluation[T, D]) DivAssign(other *Evaluation[T, D]) {
	u := e.v
	v := other.v

	quotientRuleInplace(e.derivs(), other.derivs(), u, v)
	e.v = u / v
}

// DivScalarAssign divides the value and every derivative by a constant.
func (e *Evaluation[T, D]) DivScalarAssign(c T) {
	scaleInplace(e.data(), 1/c)
}

// Non-mutating arithmetic: copy, then compound-assign.

// Add returns e + other.
func (e *Evaluation[T, D]) Add(other *Evaluation[T, D]) Evaluation[T, D] {
	result := *e
	result.AddAssign(other)
	return result
}

// AddScalar returns e + c.
func (e *Evaluation[T, D]) AddScalar(c T) Evaluation[T, D] {
	result := *e
	result.AddScalarAssign(c)
	return result
}

// Sub returns e - other.
func (e *Evaluation[T, D]) Sub(other *Evaluation[T, D]) Evaluation[T, D] {
	result := *e
	result.SubAssign(other)
	return result
}

// SubScalar returns e - c.
func (e *Evaluation[T, D]) SubScalar(c T) Evaluation[T, D] {
	result := *e
	result.SubScalarAssign(c)
	return result
}

// SubFromScalar returns c - e.
func (e *Evaluation[T, D]) SubFromScalar(c T) Evaluation[T, D] {
	result := e.Neg()
	result.AddScalarAssign(c)
	return result
}

// Mul returns e * other.
func (e *Evaluation[T, D]) Mul(other *Evaluation[T, D]) Evaluation[T, D] {
	result := *e
	result.MulAssign(other)
	return result
}

// MulScalar returns e * c.
func (e *Evaluation[T, D]) MulScalar(c T) Evaluation[T, D] {
	result := *e
	result.MulScalarAssign(c)
	return result
}

// Div returns e / other.
func (e *Evaluation[T, D]) Div(other *Evaluation[T, D]) Evaluation[T, D] {
	result := *e
	result.DivAssign(other)
	return result
}

// DivScalar returns e / c.
func (e *Evaluation[T, D]) DivScalar(c T) Evaluation[T, D] {
	result := *e
	result.DivScalarAssign(c)
	return result
}

// DivFromScalar returns c / e, treating c as a constant function.
func (e *Evaluation[T, D]) DivFromScalar(c T) Evaluation[T, D] {
	result := e.ConstantLike(c)
	result.DivAssign(e)
	return result
}

// Neg returns -e: value and every derivative sign-flipped.
func (e *Evaluation[T, D]) Neg() Evaluation[T, D] {
	var result Evaluation[T, D]
	negVectorized(result.data(), e.data())
	return result
}

// Comparison. Equality looks at every slot; ordering looks at the value
// only, so two evaluations with equal value but different derivatives are
// neither less nor greater than each other.

// Equal reports whether the value and every derivative match exactly.
func (e *Evaluation[T, D]) Equal(other *Evaluation[T, D]) bool {
	return slicesEqual(e.data(), other.data())
}

// EqualScalar reports whether the value equals c. Derivatives are ignored.
func (e *Evaluation[T, D]) EqualScalar(c T) bool {
	return e.v == c
}

// Less reports e.Value() < other.Value().
func (e *Evaluation[T, D]) Less(other *Evaluation[T, D]) bool {
	return e.v < other.v
}

// LessScalar reports e.Value() < c.
func (e *Evaluation[T, D]) LessScalar(c T) bool {
	return e.v < c
}

// LessEqual reports e.Value() <= other.Value().
func (e *Evaluation[T, D]) LessEqual(other *Evaluation[T, D]) bool {
	return e.v <= other.v
}

// LessEqualScalar reports e.Value() <= c.
func (e *Evaluation[T, D]) LessEqualScalar(c T) bool {
	return e.v <= c
}

// Greater reports e.Value() > other.Value().
func (e *Evaluation[T, D]) Greater(other *Evaluation[T, D]) bool {
	return e.v > other.v
}

// GreaterScalar reports e.Value() > c.
func (e *Evaluation[T, D]) GreaterScalar(c T) bool {
	return e.v > c
}

// GreaterEqual reports e.Value() >= other.Value().
func (e *Evaluation[T, D]) GreaterEqual(other *Evaluation[T, D]) bool {
	return e.v >= other.v
}

// GreaterEqualScalar reports e.Value() >= c.
func (e *Evaluation[T, D]) GreaterEqualScalar(c T) bool {
	return e.v >= c
}

// String formats the value and derivative vector for diagnostics.
func (e *Evaluation[T, D]) String() string {
	return fmt.Sprintf("%v d%v", e.v, e.derivs())
}

// Exemplar factories. These let generic numeric code produce compatible
// instances from an operand at hand without naming the concrete type.

// ConstantLike returns a constant function f(x) = c with the same variable
// count as e: value c, all derivatives zero.
func (e *Evaluation[T, D]) ConstantLike(c T) Evaluation[T, D] {
	var result Evaluation[T, D]
	result.v = c
	result.checkLayout()
	checkDefined(result.data())
	return result
}

// VariableLike returns a seed for the variable at index pos with the same
// variable count as e: value c, unit derivative at pos, zero elsewhere.
func (e *Evaluation[T, D]) VariableLike(c T, pos int) Evaluation[T, D] {
	result := e.ConstantLike(c)
	assertVarIndex(pos, result.Size())
	result.derivs()[pos] = 1
	return result
}

// BlankLike returns a structurally compatible instance whose slots carry no
// meaningful data yet. Callers are expected to populate every slot; it
// exists so such callers skip a redundant zero-fill on variants that need
// one.
func (e *Evaluation[T, D]) BlankLike() Evaluation[T, D] {
	e.checkLayout()
	return Evaluation[T, D]{}
}

// ZeroLike returns the constant 0 with the same variable count as e.
func (e *Evaluation[T, D]) ZeroLike() Evaluation[T, D] {
	return e.ConstantLike(0)
}

// OneLike returns the constant 1 with the same variable count as e.
func (e *Evaluation[T, D]) OneLike() Evaluation[T, D] {
	return e.ConstantLike(1)
}

// Package-level factories for the fixed-size variant. The variable count is
// implied by the instantiation, e.g.
//
//	x := densead.Variable[float64, [2]float64](3.0, 0)

// Constant returns the constant function f(x) = c: value c, all derivatives
// zero.
func Constant[T Scalar, D any](c T) Evaluation[T, D] {
	var e Evaluation[T, D]
	return e.ConstantLike(c)
}

// Variable returns a seed for the independent variable at index pos: value
// c, derivative 1 at pos and 0 everywhere else.
func Variable[T Scalar, D any](c T, pos int) Evaluation[T, D] {
	var e Evaluation[T, D]
	return e.VariableLike(c, pos)
}

// ConstantN is Constant with an explicitly declared variable count. The
// count is redundant for this variant; passing one that disagrees with the
// compiled-in size is a caller bug and panics unconditionally rather than
// silently truncating.
func ConstantN[T Scalar, D any](numVars int, c T) Evaluation[T, D] {
	var e Evaluation[T, D]
	if numVars != e.Size() {
		panic(fmt.Sprintf("densead: this evaluation type carries %d derivatives, cannot represent %d", e.Size(), numVars))
	}
	return e.ConstantLike(c)
}

// VariableN is Variable with an explicitly declared variable count; the same
// agreement rule as ConstantN applies.
func VariableN[T Scalar, D any](numVars int, c T, pos int) Evaluation[T, D] {
	var e Evaluation[T, D]
	if numVars != e.Size() {
		panic(fmt.Sprintf("densead: this evaluation type carries %d derivatives, cannot represent %d", e.Size(), numVars))
	}
	return e.VariableLike(c, pos)
}

// Blank returns a structurally complete but unpopulated evaluation.
func Blank[T Scalar, D any]() Evaluation[T, D] {
	var e Evaluation[T, D]
	return e.BlankLike()
}

// Zero returns the constant 0.
func Zero[T Scalar, D any]() Evaluation[T, D] {
	return Constant[T, D](0)
}

// One returns the constant 1.
func One[T Scalar, D any]() Evaluation[T, D] {
	return Constant[T, D](1)
}
