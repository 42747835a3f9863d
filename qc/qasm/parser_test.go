package qasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBellProgram(t *testing.T) {
	assert := assert.New(t)

	source := `OPENQASM 2.0;
include "qelib1.inc";

qreg q[2];
creg c[2];

h q[0];
cx q[0], q[1];
measure q[0] -> c[0];
measure q[1] -> c[1];
`
	nodes, err := Parse(source)
	require.NoError(t, err)
	assert.Equal([]Node{
		QReg{Name: "q", Size: 2},
		CReg{Name: "c", Size: 2},
		ApplyGate{Name: "h", Args: []Argument{{Register: "q", Index: 0}}},
		ApplyGate{Name: "cx", Args: []Argument{
			{Register: "q", Index: 0},
			{Register: "q", Index: 1},
		}},
		Measure{Source: Argument{Register: "q", Index: 0}, Target: Argument{Register: "c", Index: 0}},
		Measure{Source: Argument{Register: "q", Index: 1}, Target: Argument{Register: "c", Index: 1}},
	}, nodes)
}

func TestParseAngleArgsStayRaw(t *testing.T) {
	assert := assert.New(t)

	nodes, err := Parse("qreg q[1]; rz( pi / 2 ) q[0];")
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(ApplyGate{
		Name:      "rz",
		Args:      []Argument{{Register: "q", Index: 0}},
		AngleArgs: []string{" pi / 2 "},
	}, nodes[1])

	nodes, err = Parse("qreg q[1]; rz( 3 * pi / 4 ) q[0];")
	require.NoError(t, err)
	assert.Equal([]string{" 3 * pi / 4 "}, nodes[1].(ApplyGate).AngleArgs)
}

func TestParseComments(t *testing.T) {
	assert := assert.New(t)

	nodes, err := Parse("// header\nqreg q[1]; // trailing\nx q[0];\n")
	require.NoError(t, err)
	assert.Equal([]Node{
		QReg{Name: "q", Size: 1},
		ApplyGate{Name: "x", Args: []Argument{{Register: "q", Index: 0}}},
	}, nodes)
}

func TestParseGateDefinitionBodyIsDropped(t *testing.T) {
	assert := assert.New(t)

	source := `qreg q[1];
gate mygate(theta) a {
  rz(theta) a;
  h a;
}
x q[0];
`
	nodes, err := Parse(source)
	require.NoError(t, err)
	assert.Equal([]Node{
		QReg{Name: "q", Size: 1},
		GateDecl{Name: "mygate"},
		ApplyGate{Name: "x", Args: []Argument{{Register: "q", Index: 0}}},
	}, nodes)
}

func TestParseUnsupportedKinds(t *testing.T) {
	assert := assert.New(t)

	nodes, err := Parse("qreg q[2]; creg c[1]; barrier q[0]; opaque magic q[0]; if (c==1) x q[0]; reset q[1];")
	require.NoError(t, err)
	assert.Equal([]Node{
		QReg{Name: "q", Size: 2},
		CReg{Name: "c", Size: 1},
		Barrier{},
		Opaque{Name: "magic"},
		If{Condition: "c==1"},
		Reset{Target: Argument{Register: "q", Index: 1}},
	}, nodes)
}

func TestParseNegativeSizesAndIndices(t *testing.T) {
	assert := assert.New(t)

	// Negative values parse; rejecting them is the translator's job.
	nodes, err := Parse("qreg q[-1]; x q[-2];")
	require.NoError(t, err)
	assert.Equal(QReg{Name: "q", Size: -1}, nodes[0])
	assert.Equal(ApplyGate{Name: "x", Args: []Argument{{Register: "q", Index: -2}}}, nodes[1])
}

func TestParseErrors(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		source string
		line   int
	}{
		{"OPENQASM 3.0;", 1},
		{"qreg q[2];\nh q;", 2},
		{"qreg q[2];\nmeasure q[0];", 2},
		{"qreg q[2];\nh;", 2},
		{"qreg q[];", 1},
		{"qreg q[2];\nrz(pi q[0];", 2},
	}
	for _, c := range cases {
		_, err := Parse(c.source)
		require.Error(t, err, "source %q", c.source)
		var perr *ParseError
		require.ErrorAs(t, err, &perr, "source %q", c.source)
		assert.Equal(c.line, perr.Line, "source %q", c.source)
	}
}

func TestParseVersionHeaderOptional(t *testing.T) {
	assert := assert.New(t)

	nodes, err := Parse("qreg q[1]; sx q[0];")
	require.NoError(t, err)
	assert.Len(nodes, 2)
}
