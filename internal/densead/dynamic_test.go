package densead_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porousflow/densead/internal/densead"
)

func TestDynConstant_AllDerivativesZero(t *testing.T) {
	for _, numVars := range []int{0, 1, 2, 7, 8, 20} {
		c := densead.DynConstant(numVars, 7.5)

		require.Equal(t, numVars, c.Size())
		assert.Equal(t, 7.5, c.Value())
		for i := 0; i < numVars; i++ {
			assert.Zero(t, c.Derivative(i), "numVars=%d derivative %d", numVars, i)
		}
	}
}

func TestDynVariable_UnitBasisDerivative(t *testing.T) {
	const numVars = 5
	for pos := 0; pos < numVars; pos++ {
		x := densead.DynVariable(numVars, 3.0, pos)

		assert.Equal(t, 3.0, x.Value())
		for i := 0; i < numVars; i++ {
			if i == pos {
				assert.Equal(t, 1.0, x.Derivative(i))
			} else {
				assert.Zero(t, x.Derivative(i))
			}
		}
	}
}

func TestDynamic_ProductAndQuotientScenarios(t *testing.T) {
	a := densead.DynVariable(2, 3.0, 0)
	b := densead.DynVariable(2, 4.0, 1)

	c := a.Mul(&b)
	assert.Equal(t, 12.0, c.Value())
	assert.Equal(t, 4.0, c.Derivative(0))
	assert.Equal(t, 3.0, c.Derivative(1))

	d := a.Div(&b)
	assert.Equal(t, 0.75, d.Value())
	assert.Equal(t, 0.25, d.Derivative(0))
	assert.Equal(t, -0.1875, d.Derivative(1))
}

func TestDynamic_SumRuleAndScalars(t *testing.T) {
	a := densead.DynVariable(3, 1.5, 0)
	b := densead.DynVariable(3, -2.0, 2)

	c := a.Add(&b)
	assert.Equal(t, -0.5, c.Value())
	assert.Equal(t, 1.0, c.Derivative(0))
	assert.Zero(t, c.Derivative(1))
	assert.Equal(t, 1.0, c.Derivative(2))

	c.AddScalarAssign(10)
	assert.Equal(t, 9.5, c.Value())
	assert.Equal(t, 1.0, c.Derivative(0), "scalar add leaves derivatives alone")

	c.MulScalarAssign(2)
	assert.Equal(t, 19.0, c.Value())
	assert.Equal(t, 2.0, c.Derivative(0))

	c.DivScalarAssign(2)
	c.SubScalarAssign(10)
	assert.Equal(t, -0.5, c.Value())
	assert.Equal(t, 1.0, c.Derivative(0))
}

func TestDynamic_SizeMismatchPanics(t *testing.T) {
	a := densead.DynVariable(2, 1.0, 0)
	b := densead.DynVariable(3, 1.0, 0)

	require.Panics(t, func() { a.Add(&b) })
	require.Panics(t, func() { a.Sub(&b) })
	require.Panics(t, func() { a.Mul(&b) })
	require.Panics(t, func() { a.Div(&b) })
	require.Panics(t, func() { a.Equal(&b) })
	require.Panics(t, func() { a.Less(&b) })
	require.Panics(t, func() { a.CopyDerivatives(&b) })
}

func TestDynamic_IndexOutOfRangePanics(t *testing.T) {
	a := densead.DynVariable(2, 1.0, 0)

	require.Panics(t, func() { a.Derivative(2) })
	require.Panics(t, func() { a.SetDerivative(-1, 0) })
	require.Panics(t, func() { densead.DynVariable(2, 1.0, 2) })
	require.Panics(t, func() { densead.DynBlank[float64](-1) })
}

func TestDynamic_InlineAndSpilledStorageAgree(t *testing.T) {
	// 4 derivatives fit inline, 20 spill to the heap; arithmetic must not
	// care. Seed x_i = i+1, f = (x0*x1 + x2) / x3.
	for _, numVars := range []int{4, 20} {
		xs := make([]densead.DynamicEvaluation[float64], numVars)
		for i := range xs {
			xs[i] = densead.DynVariable(numVars, float64(i+1), i)
		}

		f := xs[0].Mul(&xs[1])
		f.AddAssign(&xs[2])
		f.DivAssign(&xs[3])

		// Expected: df/dx0 = x1/x3, df/dx1 = x0/x3, df/dx2 = 1/x3,
		// df/dx3 = -(x0*x1+x2)/x3^2.
		assert.InDelta(t, 1.25, f.Value(), 1e-12, "numVars=%d", numVars)
		assert.InDelta(t, 0.5, f.Derivative(0), 1e-12)
		assert.InDelta(t, 0.25, f.Derivative(1), 1e-12)
		assert.InDelta(t, 0.25, f.Derivative(2), 1e-12)
		assert.InDelta(t, -0.3125, f.Derivative(3), 1e-12)
		for i := 4; i < numVars; i++ {
			assert.Zero(t, f.Derivative(i))
		}
	}
}

func TestDynamic_CloneIndependence(t *testing.T) {
	for _, numVars := range []int{2, 20} {
		a := densead.DynVariable(numVars, 3.0, 0)
		b := a.Clone()

		b.SetValue(99)
		b.SetDerivative(0, 42)

		assert.Equal(t, 3.0, a.Value(), "numVars=%d", numVars)
		assert.Equal(t, 1.0, a.Derivative(0), "numVars=%d", numVars)
	}
}

func TestDynamic_ResultsOwnTheirStorage(t *testing.T) {
	a := densead.DynVariable(20, 3.0, 0)
	b := densead.DynVariable(20, 4.0, 1)

	c := a.Add(&b)
	c.SetValue(-1)
	c.SetDerivative(0, -1)

	assert.Equal(t, 3.0, a.Value())
	assert.Equal(t, 4.0, b.Value())
	assert.Equal(t, 1.0, a.Derivative(0))
}

func TestDynamic_ExemplarFactories(t *testing.T) {
	a := densead.DynVariable(6, 3.0, 0)

	c := a.ConstantLike(2.5)
	require.Equal(t, 6, c.Size())
	assert.Equal(t, 2.5, c.Value())

	v := a.VariableLike(4.0, 5)
	assert.Equal(t, 1.0, v.Derivative(5))

	one := a.OneLike()
	zero := a.ZeroLike()
	assert.Equal(t, 1.0, one.Value())
	assert.Zero(t, zero.Value())

	blank := a.BlankLike()
	require.Equal(t, 6, blank.Size())
}

func TestDynamic_ClearAndCopyDerivatives(t *testing.T) {
	a := densead.DynVariable(3, 3.0, 0)
	b := densead.DynVariable(3, 9.0, 2)

	a.CopyDerivatives(&b)
	assert.Equal(t, 3.0, a.Value())
	assert.Zero(t, a.Derivative(0))
	assert.Equal(t, 1.0, a.Derivative(2))

	a.ClearDerivatives()
	assert.Equal(t, 3.0, a.Value())
	for i := 0; i < 3; i++ {
		assert.Zero(t, a.Derivative(i))
	}
}

func TestDynamic_NegAndSubFromScalar(t *testing.T) {
	a := densead.DynVariable(2, 3.0, 0)

	n := a.Neg()
	assert.Equal(t, -3.0, n.Value())
	assert.Equal(t, -1.0, n.Derivative(0))

	s := a.SubFromScalar(10) // 10 - a
	assert.Equal(t, 7.0, s.Value())
	assert.Equal(t, -1.0, s.Derivative(0))

	r := a.DivFromScalar(1) // 1/a
	assert.InDelta(t, 1.0/3.0, r.Value(), 1e-12)
	assert.InDelta(t, -1.0/9.0, r.Derivative(0), 1e-12)
}

func TestDynamic_OrderingAndEquality(t *testing.T) {
	a := densead.DynVariable(2, 3.0, 0)
	b := densead.DynVariable(2, 3.0, 1)

	assert.False(t, a.Less(&b))
	assert.False(t, a.Greater(&b))
	assert.True(t, a.LessEqual(&b))
	assert.True(t, a.GreaterEqual(&b))
	assert.False(t, a.Equal(&b))

	assert.True(t, a.EqualScalar(3.0))
	assert.True(t, a.LessScalar(4.0))
	assert.True(t, a.GreaterScalar(2.0))
	assert.True(t, a.LessEqualScalar(3.0))
	assert.True(t, a.GreaterEqualScalar(3.0))
}
