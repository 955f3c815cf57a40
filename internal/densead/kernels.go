package densead

// The propagation arithmetic is implemented once, as plain index loops over
// scalar slices, and shared by both storage variants. The loops are written
// without early exits or index arithmetic so the compiler can unroll and
// vectorize them when the slice length is a compile-time constant.

func addInplace[T Scalar](a, b []T) {
	for i := range a {
		a[i] += b[i]
	}
}

func subInplace[T Scalar](a, b []T) {
	for i := range a {
		a[i] -= b[i]
	}
}

func scaleInplace[T Scalar](a []T, c T) {
	for i := range a {
		a[i] *= c
	}
}

func negVectorized[T Scalar](dst, src []T) {
	for i := range src {
		dst[i] = -src[i]
	}
}

// productRuleInplace applies (u*v)' = u'*v + v'*u to the derivative slots.
// u and v are the operand values captured before slot 0 was overwritten.
func productRuleInplace[T Scalar](du, dv []T, u, v T) {
	for i := range du {
		du[i] = du[i]*v + dv[i]*u
	}
}

// quotientRuleInplace applies (u/v)' = (v*u' - u*v')/v^2 to the derivative
// slots. It must run before the value slot is divided, so u is still the
// original numerator value.
func quotientRuleInplace[T Scalar](du, dv []T, u, v T) {
	vv := v * v
	for i := range du {
		du[i] = (v*du[i] - u*dv[i]) / vv
	}
}

func zeroFill[T Scalar](a []T) {
	for i := range a {
		a[i] = 0
	}
}

func slicesEqual[T Scalar](a, b []T) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// applyChain rewrites data for a univariate composition f(u): slot 0 becomes
// fv = f(u) and every derivative slot is scaled by fp = f'(u).
func applyChain[T Scalar](data []T, fv, fp T) {
	data[0] = fv
	scaleInplace(data[1:], fp)
}
