// Package report renders the translation result the way the command
// line presents it: operator counts, the logical-operator table, the
// numbered SPC listing, and the numbered compact listing with clock
// charges. Axis runs are colorized when the destination is a terminal.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/kegliz/qspc/qc/pauli"
	"github.com/kegliz/qspc/qc/pbc"
)

// ColorMode selects how axis runs are rendered.
type ColorMode int

const (
	// ColorAuto tints axes iff the writer is a terminal.
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

type ReporterOptions struct {
	Writer io.Writer // destination, stdout when nil
	Color  ColorMode
}

type Reporter struct {
	w     io.Writer
	color bool
}

func NewReporter(options ReporterOptions) *Reporter {
	w := options.Writer
	if w == nil {
		w = os.Stdout
	}
	color := false
	switch options.Color {
	case ColorAlways:
		color = true
	case ColorAuto:
		if f, ok := w.(*os.File); ok {
			color = isatty.IsTerminal(f.Fd())
		}
	}
	return &Reporter{w: w, color: color}
}

func (rep *Reporter) println(line string) error {
	if rep.color {
		line = colorize(line)
	}
	_, err := fmt.Fprintln(rep.w, line)
	return err
}

// Render writes the full report for an operator stream on numQubits
// qubits: counts over the original stream, the logical-operator table
// derived from its Cliffords, then the SPC and compact translations.
func (rep *Reporter) Render(ops []pbc.Operator, numQubits int) error {
	singleCliffords := 0
	nonCliffords := 0
	multiCliffords := 0
	for _, op := range ops {
		if op.IsSingleQubitClifford() {
			singleCliffords++
		}
		if op.IsNonCliffordRotationOrMeasurement() {
			nonCliffords++
		}
		if op.IsMultiQubitClifford() {
			multiCliffords++
		}
	}
	if err := rep.println(fmt.Sprintf("num ops = %d", len(ops))); err != nil {
		return err
	}
	if err := rep.println(fmt.Sprintf("num single clifford ops = %d", singleCliffords)); err != nil {
		return err
	}
	if err := rep.println(fmt.Sprintf("num non-clifford rotations and measurements = %d", nonCliffords)); err != nil {
		return err
	}
	if err := rep.println(fmt.Sprintf("num multi qubit clifford ops = %d", multiCliffords)); err != nil {
		return err
	}

	// The logical-operator table sees every Clifford of the original
	// stream, the split-off pi rotations included.
	cliffords := pbc.GatherCliffords(ops)
	for i := 0; i < numQubits; i++ {
		for _, p := range []pauli.Pauli{pauli.X, pauli.Z} {
			scratch := pbc.NewPauliOp(pauli.NewAxisWithPauli(i, numQubits, p))
			for j := len(cliffords) - 1; j >= 0; j-- {
				scratch.Transform(cliffords[j])
			}
			line := fmt.Sprintf("%s%03d => %s", p, i, scratch.Axis)
			if err := rep.println(line); err != nil {
				return err
			}
		}
	}

	if err := rep.println(""); err != nil {
		return err
	}
	for i, op := range pbc.SPCTranslation(ops) {
		if err := rep.println(fmt.Sprintf("%4d %s", i, op)); err != nil {
			return err
		}
	}

	if err := rep.println(""); err != nil {
		return err
	}
	for i, co := range pbc.SPCCompactTranslation(ops) {
		if err := rep.println(fmt.Sprintf("%4d %s (+%d)", i, co.Op, co.Clocks)); err != nil {
			return err
		}
	}
	return nil
}
