// Package densead implements dense forward-mode automatic differentiation.
//
// The central type is an "evaluation": the value of a scalar function
// together with its partial derivatives w.r.t. a fixed set of independent
// variables. Derivatives are propagated through every arithmetic operation,
// so building an expression from seed variables yields the exact Jacobian
// row of that expression in a single forward pass.
//
// Two storage strategies are provided behind the same operation set:
//
//   - Evaluation[T, D]: the derivative count is fixed at compile time by the
//     array type D. Storage is embedded in the value, operations are plain
//     bounded loops the compiler can unroll and vectorize.
//   - DynamicEvaluation[T]: the derivative count is chosen per instance at
//     run time. Storage is small-buffer optimized: small counts live inline,
//     larger ones spill to the heap.
//
// Both variants share one implementation of the propagation arithmetic
// (see kernels.go); they differ only in how storage is obtained and sized.
//
// Internally an evaluation is a contiguous sequence of numVars+1 scalars:
// slot 0 holds the function value, slots 1..numVars hold the derivatives in
// variable-index order. That sequence is what SerializeOp hands to an
// external serializer.
package densead
