package translate

import (
	"testing"

	"github.com/kegliz/qspc/qc/pbc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAngle(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		in   string
		want pbc.Angle
	}{
		{"0", pbc.PiOver8(0)},
		{" 0 ", pbc.PiOver8(0)},
		{" pi ", pbc.PiOver8(4)},
		{"pi", pbc.PiOver8(4)},
		{"-pi", pbc.PiOver8(4)},
		{" pi / 2 ", pbc.PiOver8(2)},
		{"pi/2", pbc.PiOver8(2)},
		{"- pi / 2", pbc.PiOver8(6)},
		{" pi / 4 ", pbc.PiOver8(1)},
		{"-pi/4", pbc.PiOver8(7)},
		{" 3 * pi / 4 ", pbc.PiOver8(3)},
		{" - 3 * pi / 4 ", pbc.PiOver8(5)},
		{"2 * pi", pbc.PiOver8(0)},
		{"3*pi/2", pbc.PiOver8(6)},
		{"-1.25", pbc.Arbitrary(-0.625)},
		{" - 0.5 ", pbc.Arbitrary(-0.25)},
	}
	for _, c := range cases {
		got, err := ExtractAngle(c.in, "test")
		require.NoError(t, err, "input %q", c.in)
		assert.Equal(c.want, got, "input %q", c.in)
	}
}

func TestExtractAngleErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := ExtractAngle("", "rz")
	assert.EqualError(err, "rz: angle must not be empty")

	_, err = ExtractAngle("   ", "rz")
	assert.EqualError(err, "rz: angle must not be empty")

	_, err = ExtractAngle(" pi / 8 ", "rz")
	assert.EqualError(err, "rz: invalid angle:  pi / 8 ")

	_, err = ExtractAngle("pi / 3", "rz")
	assert.EqualError(err, "rz: invalid angle: pi / 3")

	// Bare floats must carry an explicit minus sign.
	_, err = ExtractAngle("1.25", "rz")
	assert.EqualError(err, "rz: invalid angle: 1.25")

	_, err = ExtractAngle("theta", "rz")
	assert.EqualError(err, "rz: invalid angle: theta")
}
