package translate

import (
	"fmt"

	"github.com/kegliz/qspc/qc/pauli"
	"github.com/kegliz/qspc/qc/pbc"
	"github.com/kegliz/qspc/qc/qasm"
)

// Extract walks the node stream and produces the operator list plus
// the register table. Unsupported nodes abort with a diagnostic; gate
// definitions and conditionals are dropped from the stream once the
// unsupported check has seen them.
func Extract(nodes []qasm.Node) ([]pbc.Operator, *Registers, error) {
	for _, node := range nodes {
		switch node.(type) {
		case qasm.Barrier:
			return nil, nil, fmt.Errorf("unsupported node in the AST: barrier")
		case qasm.Opaque:
			return nil, nil, fmt.Errorf("unsupported node in the AST: opaque")
		case qasm.If:
			return nil, nil, fmt.Errorf("unsupported node in the AST: if")
		}
	}

	kept := make([]qasm.Node, 0, len(nodes))
	for _, node := range nodes {
		switch node.(type) {
		case qasm.GateDecl, qasm.If:
			// Known but unhandled; dropped once the check above passed.
		default:
			kept = append(kept, node)
		}
	}

	regs := NewRegisters()
	for _, node := range kept {
		switch n := node.(type) {
		case qasm.QReg:
			if err := regs.AddQReg(n.Name, n.Size); err != nil {
				return nil, nil, err
			}
		case qasm.CReg:
			if err := regs.AddCReg(n.Name, n.Size); err != nil {
				return nil, nil, err
			}
		}
	}

	var ops []pbc.Operator
	for _, node := range kept {
		switch n := node.(type) {
		case qasm.ApplyGate:
			if err := translateGate(n.Name, n.Args, n.AngleArgs, regs, &ops); err != nil {
				return nil, nil, err
			}
		case qasm.Measure:
			args := []qasm.Argument{n.Source, n.Target}
			if err := translateGate("measure", args, nil, regs, &ops); err != nil {
				return nil, nil, err
			}
		}
	}
	return ops, regs, nil
}

func extractQubit(args []qasm.Argument, i int, regs *Registers, context string) (int, error) {
	arg := args[i]
	if arg.Index < 0 {
		return 0, fmt.Errorf("%s: args[%d] must be non-negative", context, i)
	}
	index, ok := regs.QubitIndex(arg.Register, arg.Index)
	if !ok {
		return 0, fmt.Errorf("%s: there is no qubit %s[%d]", context, arg.Register, arg.Index)
	}
	return index, nil
}

func extractClassicalBit(args []qasm.Argument, i int, regs *Registers, context string) (int, error) {
	arg := args[i]
	if arg.Index < 0 {
		return 0, fmt.Errorf("%s: args[%d] must be non-negative", context, i)
	}
	index, ok := regs.ClassicalBitIndex(arg.Register, arg.Index)
	if !ok {
		return 0, fmt.Errorf("%s: there is no classical bit %s[%d]", context, arg.Register, arg.Index)
	}
	return index, nil
}

func checkArity(name string, args []qasm.Argument, angleArgs []string, wantQubits, wantAngles int) error {
	if len(args) != wantQubits {
		return fmt.Errorf("Invalid number of arguments for %s: %d", name, len(args))
	}
	if len(angleArgs) != wantAngles {
		return fmt.Errorf("Invalid number of angle arguments for %s: %d", name, len(angleArgs))
	}
	return nil
}

// translateGate appends the decomposition of one gate application to
// out. All rotations are in the internal pi/8 convention.
func translateGate(name string, args []qasm.Argument, angleArgs []string, regs *Registers, out *[]pbc.Operator) error {
	numQubits := regs.NumQubits()
	switch name {
	case "x", "y", "z":
		if err := checkArity(name, args, angleArgs, 1, 0); err != nil {
			return err
		}
		qubit, err := extractQubit(args, 0, regs, name)
		if err != nil {
			return err
		}
		var p pauli.Pauli
		switch name {
		case "x":
			p = pauli.X
		case "y":
			p = pauli.Y
		default:
			p = pauli.Z
		}
		axis := pauli.NewAxisWithPauli(qubit, numQubits, p)
		*out = append(*out, pbc.Rotation{R: pbc.NewPauliOp(axis)})
	case "rz", "ry":
		if err := checkArity(name, args, angleArgs, 1, 1); err != nil {
			return err
		}
		qubit, err := extractQubit(args, 0, regs, name)
		if err != nil {
			return err
		}
		angle, err := ExtractAngle(angleArgs[0], name)
		if err != nil {
			return err
		}
		if angle.IsZero() {
			return nil
		}
		p := pauli.Z
		if name == "ry" {
			p = pauli.Y
		}
		axis := pauli.NewAxisWithPauli(qubit, numQubits, p)
		*out = append(*out, pbc.Rotation{R: pbc.NewRotation(axis, angle)})
	case "sx":
		if err := checkArity(name, args, angleArgs, 1, 0); err != nil {
			return err
		}
		qubit, err := extractQubit(args, 0, regs, name)
		if err != nil {
			return err
		}
		axis := pauli.NewAxisWithPauli(qubit, numQubits, pauli.X)
		*out = append(*out, pbc.Rotation{R: pbc.NewClifford(axis)})
	case "h":
		if err := checkArity(name, args, angleArgs, 1, 0); err != nil {
			return err
		}
		qubit, err := extractQubit(args, 0, regs, name)
		if err != nil {
			return err
		}
		z := pauli.NewAxisWithPauli(qubit, numQubits, pauli.Z)
		x := pauli.NewAxisWithPauli(qubit, numQubits, pauli.X)
		*out = append(*out,
			pbc.Rotation{R: pbc.NewClifford(z.Clone())},
			pbc.Rotation{R: pbc.NewClifford(x)},
			pbc.Rotation{R: pbc.NewClifford(z)},
		)
	case "cx":
		if err := checkArity(name, args, angleArgs, 2, 0); err != nil {
			return err
		}
		control, err := extractQubit(args, 0, regs, name)
		if err != nil {
			return err
		}
		target, err := extractQubit(args, 1, regs, name)
		if err != nil {
			return err
		}
		if control == target {
			return fmt.Errorf("cx: control and target must be different")
		}
		both := make(pauli.Axis, numQubits)
		both[control] = pauli.Z
		both[target] = pauli.X
		*out = append(*out,
			pbc.Rotation{R: pbc.NewRotation(pauli.NewAxisWithPauli(control, numQubits, pauli.Z), pbc.PiOver8(2).Neg())},
			pbc.Rotation{R: pbc.NewRotation(pauli.NewAxisWithPauli(target, numQubits, pauli.X), pbc.PiOver8(2).Neg())},
			pbc.Rotation{R: pbc.NewClifford(both)},
		)
	case "measure":
		if err := checkArity(name, args, angleArgs, 2, 0); err != nil {
			return err
		}
		qubit, err := extractQubit(args, 0, regs, name)
		if err != nil {
			return err
		}
		if _, err := extractClassicalBit(args, 1, regs, name); err != nil {
			return err
		}
		axis := pauli.NewAxisWithPauli(qubit, numQubits, pauli.Z)
		*out = append(*out, pbc.Measurement{A: axis})
	default:
		return fmt.Errorf("Unrecognized gate: %s", name)
	}
	return nil
}
