package densead

import "fmt"

// WellDefined is an injectable validator for stored scalars. When set and
// precondition checks are compiled in, every factory runs it over the freshly
// constructed value+derivative sequence and panics on the first scalar it
// rejects. It is nil by default, so release builds and ordinary test builds
// pay a single nil check at construction and nothing on the arithmetic path.
//
// A typical strict validator rejects NaN:
//
//	densead.WellDefined = func(v float64) bool { return v == v }
var WellDefined func(v float64) bool

// checkDefined feeds every slot to the installed validator, if any.
func checkDefined[T Scalar](data []T) {
	if !assertEnabled || WellDefined == nil {
		return
	}
	for i, v := range data {
		if !WellDefined(float64(v)) {
			panic(fmt.Sprintf("densead: slot %d holds an ill-defined scalar (%v)", i, v))
		}
	}
}
