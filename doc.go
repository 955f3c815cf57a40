// Copyright 2025 The densead Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package densead provides dense forward-mode automatic differentiation for
// scalar simulation kernels.
//
// # Overview
//
// An evaluation carries a function value together with its exact partial
// derivatives w.r.t. a declared set of independent variables. Seed one
// evaluation per variable, combine them with ordinary arithmetic, and the
// result's derivative slots hold the Jacobian row of the expression — no
// symbolic differentiation, no finite differences.
//
// Two interchangeable storage strategies are offered:
//   - Evaluation[T, D]: derivative count fixed at compile time by the array
//     type D, storage embedded in the value.
//   - DynamicEvaluation[T]: derivative count chosen per instance at run
//     time, with small counts stored inline and larger ones on the heap.
//
// # Basic Usage
//
//	import "github.com/porousflow/densead"
//
//	// A function of two variables, f(x, y) = x*y + x.
//	type Eval = densead.Evaluation[float64, [2]float64]
//
//	func main() {
//	    x := densead.Variable[float64, [2]float64](3.0, 0)
//	    y := densead.Variable[float64, [2]float64](4.0, 1)
//
//	    f := x.Mul(&y)
//	    f.AddAssign(&x)
//
//	    f.Value()         // 15
//	    f.Derivative(0)   // ∂f/∂x = y + 1 = 5
//	    f.Derivative(1)   // ∂f/∂y = x = 3
//	}
//
// # Error Handling
//
// Violated preconditions (mismatched operand sizes on the dynamic variant,
// out-of-range variable indices) are programmer errors and panic. The checks
// are compiled in by default and removed with -tags densead_noassert, which
// restores an unchecked fast path for release builds of hot simulation
// loops. Factories that take a redundant, explicitly declared variable count
// panic unconditionally when it disagrees with the type's compiled-in size.
package densead
