package densead

import "fmt"

// assertSameSize verifies that two operands carry the same number of
// derivatives. Mixing sizes in a binary operation is a programmer error,
// not a recoverable condition.
func assertSameSize(a, b int) {
	if assertEnabled && a != b {
		panic(fmt.Sprintf("densead: operand size mismatch: %d vs %d derivatives", a, b))
	}
}

// assertVarIndex verifies that pos names one of the declared variables.
func assertVarIndex(pos, size int) {
	if assertEnabled && (pos < 0 || pos >= size) {
		panic(fmt.Sprintf("densead: variable index %d out of range [0,%d)", pos, size))
	}
}
