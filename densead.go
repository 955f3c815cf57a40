// Copyright 2025 The densead Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package densead

import (
	"github.com/porousflow/densead/internal/densead"
)

// Type aliases for the public API.

// Scalar is the constraint for the underlying field type of an evaluation.
// Supported types: float32, float64.
type Scalar = densead.Scalar

// Evaluation is a function value with derivatives w.r.t. a compile-time
// fixed set of variables. D is an array type [N]T declaring N variables:
//
//	type Eval = densead.Evaluation[float64, [3]float64]
type Evaluation[T Scalar, D any] = densead.Evaluation[T, D]

// DynamicEvaluation is a function value with derivatives w.r.t. a run-time
// declared set of variables, stored with a small-buffer optimization.
type DynamicEvaluation[T Scalar] = densead.DynamicEvaluation[T]

// Serializer is the collaborator interface an evaluation hands its ordered
// value+derivative sequence to.
type Serializer[T Scalar] = densead.Serializer[T]

// Factories for the fixed-size variant.

// Constant returns the constant function f(x) = c: value c, all derivatives
// zero.
func Constant[T Scalar, D any](c T) Evaluation[T, D] {
	return densead.Constant[T, D](c)
}

// Variable returns a seed for the independent variable at index pos: value
// c, derivative 1 at pos and 0 everywhere else.
func Variable[T Scalar, D any](c T, pos int) Evaluation[T, D] {
	return densead.Variable[T, D](c, pos)
}

// ConstantN is Constant with an explicitly declared variable count; it
// panics if the count disagrees with the compiled-in size of the type.
func ConstantN[T Scalar, D any](numVars int, c T) Evaluation[T, D] {
	return densead.ConstantN[T, D](numVars, c)
}

// VariableN is Variable with an explicitly declared variable count; it
// panics if the count disagrees with the compiled-in size of the type.
func VariableN[T Scalar, D any](numVars int, c T, pos int) Evaluation[T, D] {
	return densead.VariableN[T, D](numVars, c, pos)
}

// Blank returns a structurally complete but unpopulated evaluation, for
// callers about to set every slot explicitly.
func Blank[T Scalar, D any]() Evaluation[T, D] {
	return densead.Blank[T, D]()
}

// Zero returns the constant 0.
func Zero[T Scalar, D any]() Evaluation[T, D] {
	return densead.Zero[T, D]()
}

// One returns the constant 1.
func One[T Scalar, D any]() Evaluation[T, D] {
	return densead.One[T, D]()
}

// Factories for the dynamic variant. The variable count cannot be inferred
// from the type, so it is always explicit; use the ...Like methods on an
// existing operand for exemplar-driven construction.

// DynConstant returns the constant function f(x) = c with numVars
// derivatives, all zero.
func DynConstant[T Scalar](numVars int, c T) DynamicEvaluation[T] {
	return densead.DynConstant(numVars, c)
}

// DynVariable returns a seed for the independent variable at index pos with
// numVars derivatives.
func DynVariable[T Scalar](numVars int, c T, pos int) DynamicEvaluation[T] {
	return densead.DynVariable(numVars, c, pos)
}

// DynBlank returns a structurally complete but unpopulated evaluation with
// numVars derivatives.
func DynBlank[T Scalar](numVars int) DynamicEvaluation[T] {
	return densead.DynBlank[T](numVars)
}

// DynZero returns the constant 0 with numVars derivatives.
func DynZero[T Scalar](numVars int) DynamicEvaluation[T] {
	return densead.DynZero[T](numVars)
}

// DynOne returns the constant 1 with numVars derivatives.
func DynOne[T Scalar](numVars int) DynamicEvaluation[T] {
	return densead.DynOne[T](numVars)
}

// SetWellDefined installs (or, with nil, removes) the validator consulted
// over every freshly constructed scalar sequence when precondition checks
// are compiled in. Intended for debug and test builds; with no validator
// installed construction pays a single nil check.
func SetWellDefined(fn func(v float64) bool) {
	densead.WellDefined = fn
}
