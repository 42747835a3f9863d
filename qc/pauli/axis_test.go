package pauli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAxis(t *testing.T) {
	assert := assert.New(t)

	a := NewAxis("IXYZ")
	assert.Equal(4, a.Len())
	assert.Equal(I, a[0])
	assert.Equal(X, a[1])
	assert.Equal(Y, a[2])
	assert.Equal(Z, a[3])
	assert.Equal("IXYZ", a.String())

	assert.Panics(func() { NewAxis("IXQZ") })
}

func TestNewAxisWithPauli(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(NewAxis("IIZI"), NewAxisWithPauli(2, 4, Z))
	assert.Equal(NewAxis("XI"), NewAxisWithPauli(0, 2, X))

	assert.Panics(func() { NewAxisWithPauli(4, 4, X) })
	assert.Panics(func() { NewAxisWithPauli(-1, 4, X) })
}

func TestAxisCommutesWith(t *testing.T) {
	assert := assert.New(t)

	assert.True(NewAxis("IIII").CommutesWith(NewAxis("XYZI")))
	assert.True(NewAxis("XYXY").CommutesWith(NewAxis("YZYX")))
	assert.True(NewAxis("XYZ").CommutesWith(NewAxis("YYY")))
	assert.False(NewAxis("XYZ").CommutesWith(NewAxis("YYZ")))
	assert.False(NewAxis("IXYZ").CommutesWith(NewAxis("IYYZ")))

	assert.Panics(func() { NewAxis("XX").CommutesWith(NewAxis("X")) })
}

// Axis commutation equals the parity of positionwise anticommuting pairs.
func TestAxisCommutationParity(t *testing.T) {
	assert := assert.New(t)

	pairs := []struct{ a, b string }{
		{"XXYZ", "YYYY"},
		{"IZZI", "IIXI"},
		{"ZIII", "XIII"},
		{"XYZI", "ZZZZ"},
	}
	for _, p := range pairs {
		a, b := NewAxis(p.a), NewAxis(p.b)
		count := 0
		for i := range a {
			if !a[i].CommutesWith(b[i]) {
				count++
			}
		}
		assert.Equal(count%2 == 0, a.CommutesWith(b), "%s vs %s", p.a, p.b)
		assert.Equal(a.CommutesWith(b), b.CommutesWith(a), "%s vs %s symmetry", p.a, p.b)
	}
}

func TestAxisCloneIsIndependent(t *testing.T) {
	assert := assert.New(t)

	a := NewAxis("XYZ")
	c := a.Clone()
	c[0] = I
	assert.Equal("XYZ", a.String())
	assert.Equal("IYZ", c.String())
}

func TestAxisWeightAndCount(t *testing.T) {
	assert := assert.New(t)

	a := NewAxis("IXYYZI")
	assert.Equal(4, a.Weight())
	assert.Equal(2, a.CountOf(Y))
	assert.Equal(1, a.CountOf(X))
	assert.Equal(2, a.CountOf(I))
}

func TestAxisEqual(t *testing.T) {
	assert := assert.New(t)

	assert.True(NewAxis("IXYZ").Equal(NewAxis("IXYZ")))
	assert.False(NewAxis("IXYZ").Equal(NewAxis("IXYX")))
	assert.False(NewAxis("IX").Equal(NewAxis("IXY")))
}
