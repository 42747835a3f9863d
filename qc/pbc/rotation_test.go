package pbc

import (
	"testing"

	"github.com/kegliz/qspc/qc/pauli"
	"github.com/stretchr/testify/assert"
)

func rot(axis string, k int) Rotation {
	return Rotation{R: NewRotation(pauli.NewAxis(axis), PiOver8(k))}
}

func meas(axis string) Measurement {
	return Measurement{A: pauli.NewAxis(axis)}
}

func TestTransformCommutingIsNoop(t *testing.T) {
	assert := assert.New(t)

	r := NewRotation(pauli.NewAxis("XXYZ"), PiOver8(1))
	r.Transform(NewClifford(pauli.NewAxis("IIII")))
	assert.Equal(pauli.NewAxis("XXYZ"), r.Axis)
	assert.Equal(PiOver8(1), r.Angle)

	r = NewRotation(pauli.NewAxis("IIIXI"), PiOver8(1))
	r.Transform(NewClifford(pauli.NewAxis("IXIII")))
	assert.Equal(pauli.NewAxis("IIIXI"), r.Axis)
	assert.Equal(PiOver8(1), r.Angle)
}

func TestTransformAxisProduct(t *testing.T) {
	assert := assert.New(t)

	// One anti-cyclic factor (Z,Y) among three anticommuting pairs
	// flips the sign.
	r := NewRotation(pauli.NewAxis("XXYZ"), PiOver8(1))
	r.Transform(NewClifford(pauli.NewAxis("YYYY")))
	assert.Equal(pauli.NewAxis("ZZIX"), r.Axis)
	assert.Equal(PiOver8(7), r.Angle)

	// (Y,Z) is cyclic, the sign survives.
	r = NewRotation(pauli.NewAxis("XXYZ"), PiOver8(1))
	r.Transform(NewClifford(pauli.NewAxis("IIZI")))
	assert.Equal(pauli.NewAxis("XXXZ"), r.Axis)
	assert.Equal(PiOver8(1), r.Angle)

	// (Z,X) is cyclic: Z becomes Y and the sign survives.
	r = NewRotation(pauli.NewAxis("IZZI"), PiOver8(1))
	r.Transform(NewClifford(pauli.NewAxis("IIXI")))
	assert.Equal(pauli.NewAxis("IZYI"), r.Axis)
	assert.Equal(PiOver8(1), r.Angle)
}

func TestTransformSign(t *testing.T) {
	assert := assert.New(t)

	// Conjugation by S takes Y to X with the sign kept.
	r := NewRotation(pauli.NewAxis("Y"), PiOver8(1))
	r.Transform(NewClifford(pauli.NewAxis("Z")))
	assert.Equal(pauli.NewAxis("X"), r.Axis)
	assert.Equal(PiOver8(1), r.Angle)

	// (X,Z) is anti-cyclic, so X goes to Y with the angle negated.
	r = NewRotation(pauli.NewAxis("X"), PiOver8(1))
	r.Transform(NewClifford(pauli.NewAxis("Z")))
	assert.Equal(pauli.NewAxis("Y"), r.Axis)
	assert.Equal(PiOver8(7), r.Angle)

	// -pi/2 starts from the opposite sign.
	r = NewRotation(pauli.NewAxis("Y"), PiOver8(1))
	r.Transform(NewRotation(pauli.NewAxis("Z"), PiOver8(6)))
	assert.Equal(pauli.NewAxis("X"), r.Axis)
	assert.Equal(PiOver8(7), r.Angle)
}

func TestTransformByPauliNegatesAngle(t *testing.T) {
	assert := assert.New(t)

	r := NewRotation(pauli.NewAxis("X"), PiOver8(1))
	r.Transform(NewPauliOp(pauli.NewAxis("Z")))
	assert.Equal(pauli.NewAxis("X"), r.Axis)
	assert.Equal(PiOver8(7), r.Angle)

	// A commuting pi Clifford leaves everything alone.
	r = NewRotation(pauli.NewAxis("X"), PiOver8(1))
	r.Transform(NewPauliOp(pauli.NewAxis("X")))
	assert.Equal(pauli.NewAxis("X"), r.Axis)
	assert.Equal(PiOver8(1), r.Angle)
}

func TestTransformArbitraryAngle(t *testing.T) {
	assert := assert.New(t)

	r := NewRotation(pauli.NewAxis("X"), Arbitrary(0.3))
	r.Transform(NewClifford(pauli.NewAxis("Z")))
	assert.Equal(pauli.NewAxis("Y"), r.Axis)
	assert.Equal(Arbitrary(-0.3), r.Angle)
}

func TestTransformPreconditions(t *testing.T) {
	assert := assert.New(t)

	r := NewRotation(pauli.NewAxis("X"), PiOver8(1))
	assert.Panics(func() {
		r.Transform(NewRotation(pauli.NewAxis("Z"), PiOver8(1)))
	})
	assert.Panics(func() {
		r.Transform(NewRotation(pauli.NewAxis("Z"), Arbitrary(1.5707)))
	})
	assert.Panics(func() {
		r.Transform(NewClifford(pauli.NewAxis("ZZ")))
	})
}

func TestRotationPredicates(t *testing.T) {
	assert := assert.New(t)

	assert.True(rot("IZII", 2).IsSingleQubitClifford())
	assert.False(rot("IZII", 2).IsMultiQubitClifford())
	assert.True(rot("IZXI", 2).IsMultiQubitClifford())
	assert.False(rot("IZXI", 1).IsMultiQubitClifford())
	assert.True(rot("IZXI", 1).IsNonCliffordRotationOrMeasurement())
	assert.False(rot("IZXI", 4).IsNonCliffordRotationOrMeasurement())

	m := meas("IZII")
	assert.True(m.IsNonCliffordRotationOrMeasurement())
	assert.False(m.IsSingleQubitClifford())
	assert.False(m.IsMultiQubitClifford())
}

func TestOperatorString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("PauliRotation(axis: IZZI, angle: PiOver8(1))", rot("IZZI", 1).String())
	assert.Equal("Measurement(IZZI)", meas("IZZI").String())
}
