package pauli

import "strings"

// Axis is a multi-qubit Pauli operator: the rotation axis of a Pauli
// rotation on n qubits. Its length is fixed by the owning circuit and
// every binary operation requires matching lengths.
type Axis []Pauli

// NewAxis parses a string of I/X/Y/Z letters into an Axis.
// It panics on any other rune; axis strings are produced by code, not users.
func NewAxis(s string) Axis {
	a := make(Axis, len(s))
	for i, r := range s {
		switch r {
		case 'I':
			a[i] = I
		case 'X':
			a[i] = X
		case 'Y':
			a[i] = Y
		case 'Z':
			a[i] = Z
		default:
			panic("pauli: invalid axis letter " + string(r))
		}
	}
	return a
}

// NewAxisWithPauli returns the axis I…IPI…I of the given size with p at index.
func NewAxisWithPauli(index, size int, p Pauli) Axis {
	if index < 0 || index >= size {
		panic("pauli: axis index out of range")
	}
	a := make(Axis, size)
	a[index] = p
	return a
}

func (a Axis) Len() int { return len(a) }

// Clone returns an independent copy of the axis.
func (a Axis) Clone() Axis {
	c := make(Axis, len(a))
	copy(c, a)
	return c
}

// CommutesWith reports whether two axes of equal length commute: they
// anticommute iff an odd number of positions hold anticommuting pairs.
func (a Axis) CommutesWith(other Axis) bool {
	if len(a) != len(other) {
		panic("pauli: axis length mismatch")
	}
	count := 0
	for i, p := range a {
		if !p.CommutesWith(other[i]) {
			count++
		}
	}
	return count%2 == 0
}

// Equal reports positionwise equality.
func (a Axis) Equal(other Axis) bool {
	if len(a) != len(other) {
		return false
	}
	for i, p := range a {
		if p != other[i] {
			return false
		}
	}
	return true
}

// Weight returns the number of non-identity positions.
func (a Axis) Weight() int {
	w := 0
	for _, p := range a {
		if p != I {
			w++
		}
	}
	return w
}

// CountOf returns the number of positions holding p.
func (a Axis) CountOf(p Pauli) int {
	n := 0
	for _, q := range a {
		if q == p {
			n++
		}
	}
	return n
}

func (a Axis) String() string {
	var b strings.Builder
	b.Grow(len(a))
	for _, p := range a {
		b.WriteString(p.String())
	}
	return b.String()
}
