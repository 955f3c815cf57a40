//go:build !densead_noassert

package densead

// assertEnabled controls the precondition checks on the hot arithmetic path
// (operand size equality, derivative index ranges) and the well-definedness
// hook. Checks are on by default; build with -tags densead_noassert to
// compile them out and restore the unchecked fast path.
const assertEnabled = true
