// Package translate lowers the parsed surface program into the
// operator stream of Pauli-based computation: register bookkeeping,
// the angle-argument grammar, and the per-gate decomposition into
// Pauli rotations and measurements.
package translate

import "fmt"

type register struct {
	name string
	size int
}

// Registers tracks the declared quantum and classical registers.
// Declarations are append-only; names are unique across both kinds and
// indices are assigned contiguously in declaration order. The total
// qubit count fixes the axis length of every emitted operator.
type Registers struct {
	qregs []register
	cregs []register
}

func NewRegisters() *Registers {
	return &Registers{}
}

func (r *Registers) isQReg(name string) bool {
	for _, reg := range r.qregs {
		if reg.name == name {
			return true
		}
	}
	return false
}

func (r *Registers) isCReg(name string) bool {
	for _, reg := range r.cregs {
		if reg.name == name {
			return true
		}
	}
	return false
}

// AddQReg appends a quantum register declaration.
func (r *Registers) AddQReg(name string, size int) error {
	if r.isQReg(name) || r.isCReg(name) {
		return fmt.Errorf("Duplicate register name: %s", name)
	}
	if size < 0 {
		return fmt.Errorf("The number of qubits in a register must be non-negative")
	}
	r.qregs = append(r.qregs, register{name: name, size: size})
	return nil
}

// AddCReg appends a classical register declaration.
func (r *Registers) AddCReg(name string, size int) error {
	if r.isQReg(name) || r.isCReg(name) {
		return fmt.Errorf("Duplicate register name: %s", name)
	}
	if size < 0 {
		return fmt.Errorf("The number of bits in a register must be non-negative")
	}
	r.cregs = append(r.cregs, register{name: name, size: size})
	return nil
}

// QubitIndex resolves name[index] to the contiguous global qubit index.
func (r *Registers) QubitIndex(name string, index int) (int, bool) {
	offset := 0
	for _, reg := range r.qregs {
		if reg.name == name {
			if index < reg.size {
				return offset + index, true
			}
			return 0, false
		}
		offset += reg.size
	}
	return 0, false
}

// ClassicalBitIndex resolves name[index] to the contiguous global bit index.
func (r *Registers) ClassicalBitIndex(name string, index int) (int, bool) {
	offset := 0
	for _, reg := range r.cregs {
		if reg.name == name {
			if index < reg.size {
				return offset + index, true
			}
			return 0, false
		}
		offset += reg.size
	}
	return 0, false
}

// NumQubits is the sum of all quantum register sizes.
func (r *Registers) NumQubits() int {
	n := 0
	for _, reg := range r.qregs {
		n += reg.size
	}
	return n
}

// NumClassicalBits is the sum of all classical register sizes.
func (r *Registers) NumClassicalBits() int {
	n := 0
	for _, reg := range r.cregs {
		n += reg.size
	}
	return n
}
