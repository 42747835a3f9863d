package pbc

import (
	"fmt"

	"github.com/kegliz/qspc/qc/pauli"
)

// PauliRotation is a rotation exp(-i*theta*A/2) described by its axis A
// and quantized angle theta.
type PauliRotation struct {
	Axis  pauli.Axis
	Angle Angle
}

// NewRotation returns a rotation around axis by angle.
func NewRotation(axis pauli.Axis, angle Angle) PauliRotation {
	return PauliRotation{Axis: axis, Angle: angle}
}

// NewClifford returns the pi/4 rotation around axis.
func NewClifford(axis pauli.Axis) PauliRotation {
	return PauliRotation{Axis: axis, Angle: PiOver8(2)}
}

// NewPauliOp returns the pi rotation around axis, i.e. the Pauli
// operator itself up to global phase.
func NewPauliOp(axis pauli.Axis) PauliRotation {
	return PauliRotation{Axis: axis, Angle: PiOver8(4)}
}

// IsClifford reports whether the rotation is a Clifford rotation.
func (r PauliRotation) IsClifford() bool { return r.Angle.IsClifford() }

// HasSingleQubitSupport reports whether exactly one position is non-identity.
func (r PauliRotation) HasSingleQubitSupport() bool { return r.Axis.Weight() == 1 }

// HasMultiQubitSupport reports whether two or more positions are non-identity.
func (r PauliRotation) HasMultiQubitSupport() bool { return r.Axis.Weight() > 1 }

// Clone returns a rotation with an independent axis.
func (r PauliRotation) Clone() PauliRotation {
	return PauliRotation{Axis: r.Axis.Clone(), Angle: r.Angle}
}

// antiCyclic reports whether the ordered non-identity pair (a, b) is in
// anti-cyclic orientation. The cyclic orientations (X,Y), (Y,Z), (Z,X)
// leave the conjugation sign untouched; these three flip it.
func antiCyclic(a, b pauli.Pauli) bool {
	return (a == pauli.Y && b == pauli.X) ||
		(a == pauli.Z && b == pauli.Y) ||
		(a == pauli.X && b == pauli.Z)
}

// Transform conjugates r by the Clifford rotation c, rewriting r in
// place to c·r·c⁻¹. A non-Clifford c or a length mismatch is a
// programmer error.
//
// If the axes commute the rotation is untouched. A pi conjugation
// negates the angle and keeps the axis. For pi/2 and -pi/2 the axis
// becomes the positionwise Pauli product and the sign follows the
// orientation parity of the anticommuting tensor factors.
func (r *PauliRotation) Transform(c PauliRotation) {
	k, ok := c.Angle.Eighths()
	if !ok || k%2 != 0 {
		panic("pbc: transform by non-clifford rotation")
	}
	if r.Axis.Len() != c.Axis.Len() {
		panic("pbc: transform axis length mismatch")
	}
	if r.Axis.CommutesWith(c.Axis) {
		return
	}
	sign := 1
	switch k {
	case 0:
		return
	case 4:
		r.Angle = r.Angle.Neg()
		return
	case 2:
		sign = 1
	case 6:
		sign = -1
	}
	for i, a := range r.Axis {
		b := c.Axis[i]
		if antiCyclic(a, b) {
			sign = -sign
		}
		r.Axis[i] = a.Mul(b)
	}
	if sign < 0 {
		r.Angle = r.Angle.Neg()
	}
}

func (r PauliRotation) String() string {
	return fmt.Sprintf("axis: %s, angle: %s", r.Axis, r.Angle)
}

// Operator is a single step of a Pauli-based computation: a Pauli
// rotation or a destructive Z-basis measurement along an axis.
type Operator interface {
	// Axis returns the multi-qubit Pauli support of the operator.
	Axis() pauli.Axis

	// IsNonCliffordRotationOrMeasurement reports whether the operator
	// survives the SPC translation, conjugated by the pending Cliffords.
	IsNonCliffordRotationOrMeasurement() bool

	IsSingleQubitClifford() bool
	IsMultiQubitClifford() bool

	fmt.Stringer
}

// Rotation wraps a PauliRotation as an Operator.
type Rotation struct {
	R PauliRotation
}

func (r Rotation) Axis() pauli.Axis { return r.R.Axis }

func (r Rotation) IsNonCliffordRotationOrMeasurement() bool { return !r.R.IsClifford() }

func (r Rotation) IsSingleQubitClifford() bool {
	return r.R.IsClifford() && r.R.HasSingleQubitSupport()
}

func (r Rotation) IsMultiQubitClifford() bool {
	return r.R.IsClifford() && r.R.HasMultiQubitSupport()
}

func (r Rotation) String() string {
	return fmt.Sprintf("PauliRotation(%s)", r.R)
}

// Measurement is a destructive projective measurement along an axis.
type Measurement struct {
	A pauli.Axis
}

func (m Measurement) Axis() pauli.Axis { return m.A }

func (m Measurement) IsNonCliffordRotationOrMeasurement() bool { return true }

func (m Measurement) IsSingleQubitClifford() bool { return false }

func (m Measurement) IsMultiQubitClifford() bool { return false }

func (m Measurement) String() string {
	return fmt.Sprintf("Measurement(%s)", m.A)
}
