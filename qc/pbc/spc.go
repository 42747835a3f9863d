package pbc

import "github.com/kegliz/qspc/qc/pauli"

// SPCTranslation rewrites an operator stream so that every Clifford
// rotation is commuted to the right of the non-Clifford rotations and
// dropped. The output contains only non-Clifford rotations and
// measurements; the composition "pending Cliffords · emitted stream"
// stays equivalent to the consumed prefix up to global phase.
//
// PiOver8(3) and PiOver8(5) rotations are split into a pi Clifford on
// the same axis plus a -pi/8 or pi/8 residual before being emitted.
func SPCTranslation(ops []Operator) []Operator {
	result := make([]Operator, 0, len(ops))
	var pending []PauliRotation

	for _, op := range ops {
		switch o := op.(type) {
		case Rotation:
			r := o.R.Clone()
			if r.Angle.IsZero() {
				continue
			}
			if r.Angle.IsClifford() {
				pending = append(pending, r)
				continue
			}
			if k, ok := r.Angle.Eighths(); ok {
				switch k {
				case 3:
					pending = append(pending, NewPauliOp(r.Axis.Clone()))
					r.Angle = PiOver8(1).Neg()
				case 5:
					pending = append(pending, NewPauliOp(r.Axis.Clone()))
					r.Angle = PiOver8(1)
				}
			}
			// Each residual sits to the left of every pending Clifford,
			// so it absorbs them most recent first.
			for i := len(pending) - 1; i >= 0; i-- {
				r.Transform(pending[i])
			}
			result = append(result, Rotation{R: r})
		case Measurement:
			scratch := NewPauliOp(o.A.Clone())
			for i := len(pending) - 1; i >= 0; i-- {
				scratch.Transform(pending[i])
			}
			result = append(result, Measurement{A: scratch.Axis})
		}
	}
	return result
}

// GatherCliffords collects the Clifford rotations of an operator
// stream the way the SPC pass accumulates them, including the pi
// rotations split off PiOver8(3|5) residuals. The result drives the
// logical-operator report over the original stream.
func GatherCliffords(ops []Operator) []PauliRotation {
	var cliffords []PauliRotation
	for _, op := range ops {
		o, ok := op.(Rotation)
		if !ok {
			continue
		}
		if o.R.Angle.IsZero() {
			continue
		}
		if o.R.Angle.IsClifford() {
			cliffords = append(cliffords, o.R.Clone())
			continue
		}
		if k, ok := o.R.Angle.Eighths(); ok && (k == 3 || k == 5) {
			cliffords = append(cliffords, NewPauliOp(o.R.Axis.Clone()))
		}
	}
	return cliffords
}

// ClockedOperator pairs a compact-form operator with the additional
// logical clock cycles its lattice-surgery realization costs.
type ClockedOperator struct {
	Op     Operator
	Clocks int
}

// SPCCompactTranslation runs the SPC pass and then normalizes each
// emitted operator so its axis consists of only Z and I, prepending the
// required Cliffords and accounting the clock cost. Unlike the SPC
// pass, accumulated Cliffords are pushed to the right, so each operator
// absorbs them in forward order before its own normalization.
func SPCCompactTranslation(ops []Operator) []ClockedOperator {
	reduced := SPCTranslation(ops)
	result := make([]ClockedOperator, 0, len(reduced))
	var cliffords []PauliRotation

	for _, op := range reduced {
		var cur Operator
		switch o := op.(type) {
		case Rotation:
			if o.R.IsClifford() {
				panic("pbc: clifford rotation survived the spc pass")
			}
			r := o.R.Clone()
			for _, c := range cliffords {
				r.Transform(c)
			}
			cur = Rotation{R: r}
		case Measurement:
			scratch := NewPauliOp(o.A.Clone())
			for _, c := range cliffords {
				scratch.Transform(c)
			}
			cur = Measurement{A: scratch.Axis}
		}

		extra, clocks := spcCompactTranslationOne(cur)
		cliffords = append(cliffords, extra...)
		result = append(result, ClockedOperator{Op: cur, Clocks: clocks})
	}
	return result
}

// spcCompactTranslationOne computes the Cliffords that reduce the
// operator's axis to Z/I and the clock cycles the reduction costs.
//
// Y positions go first: an odd count takes one XY permutation (Z on
// every Y position) for one clock, an even positive count takes two
// partial permutations (the first Y position, then the rest) for two.
// The X/Z collapse then walks the axis as given here, charging the
// Hadamard-equivalent triple per X or Y position; a pair of adjacent
// busy positions past the first pair needs two rounds.
func spcCompactTranslationOne(op Operator) ([]PauliRotation, int) {
	var cliffords []PauliRotation
	axis := op.Axis()
	n := axis.Len()
	clocks := 0

	yCount := axis.CountOf(pauli.Y)
	switch {
	case yCount == 0:
		// No Y work.
	case yCount%2 == 1:
		perm := make(pauli.Axis, n)
		for i, p := range axis {
			if p == pauli.Y {
				perm[i] = pauli.Z
			}
		}
		cliffords = append(cliffords, NewClifford(perm))
		clocks++
	default:
		first := make(pauli.Axis, n)
		rest := make(pauli.Axis, n)
		seen := false
		for i, p := range axis {
			if p != pauli.Y {
				continue
			}
			if !seen {
				first[i] = pauli.Z
				seen = true
			} else {
				rest[i] = pauli.Z
			}
		}
		cliffords = append(cliffords, NewClifford(first), NewClifford(rest))
		clocks += 2
	}

	hasXY := false
	needsTwoRounds := false
	for i := 0; i < n; i += 2 {
		aXY := axis[i] == pauli.X || axis[i] == pauli.Y
		if aXY {
			cliffords = append(cliffords, hadamardTriple(i, n)...)
			hasXY = true
		}
		if i == n-1 {
			break
		}
		bXY := axis[i+1] == pauli.X || axis[i+1] == pauli.Y
		if bXY {
			hasXY = true
			cliffords = append(cliffords, hadamardTriple(i+1, n)...)
		}
		if i == 0 {
			continue
		}
		if aXY && bXY {
			needsTwoRounds = true
		}
	}

	if needsTwoRounds {
		clocks += 6
	} else if hasXY {
		clocks += 3
	}
	return cliffords, clocks
}

// hadamardTriple is the Z,X,Z pi/4 sequence on one qubit, the Clifford
// that exchanges X and Z there.
func hadamardTriple(index, size int) []PauliRotation {
	return []PauliRotation{
		NewClifford(pauli.NewAxisWithPauli(index, size, pauli.Z)),
		NewClifford(pauli.NewAxisWithPauli(index, size, pauli.X)),
		NewClifford(pauli.NewAxisWithPauli(index, size, pauli.Z)),
	}
}
