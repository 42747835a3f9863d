package translate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kegliz/qspc/qc/pbc"
)

var (
	piAngleRE    = regexp.MustCompile(`^ *(-)? *(([0-9]+) *\*)? *pi *(/ *([0-9]+))? *$`)
	floatAngleRE = regexp.MustCompile(`^ *- *([0-9]+\.[0-9]+) *$`)
)

// ExtractAngle parses a gate angle argument into a canonical Angle.
// The input is QASM style while the output is in the internal pi/8
// scale, so a QASM angle n*pi/m maps to PiOver8(4n/m) with m limited
// to 1, 2 and 4; " pi / 2 " parses to PiOver8(2), for instance.
// Bare float angles must be negative and are halved on the way in.
func ExtractAngle(s, context string) (pbc.Angle, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return pbc.Angle{}, fmt.Errorf("%s: angle must not be empty", context)
	}
	if trimmed == "0" {
		return pbc.PiOver8(0), nil
	}
	if m := piAngleRE.FindStringSubmatch(s); m != nil {
		n := 1
		if m[3] != "" {
			v, err := strconv.Atoi(m[3])
			if err != nil {
				return pbc.Angle{}, fmt.Errorf("%s: invalid angle: %s", context, s)
			}
			n = v
		}
		denom := 1
		if m[5] != "" {
			v, err := strconv.Atoi(m[5])
			if err != nil {
				return pbc.Angle{}, fmt.Errorf("%s: invalid angle: %s", context, s)
			}
			denom = v
		}
		var k int
		switch denom {
		case 1:
			k = 4 * n
		case 2:
			k = 2 * n
		case 4:
			k = n
		default:
			return pbc.Angle{}, fmt.Errorf("%s: invalid angle: %s", context, s)
		}
		if m[1] == "-" {
			k = -k
		}
		return pbc.PiOver8(k), nil
	}
	if m := floatAngleRE.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return pbc.Angle{}, fmt.Errorf("%s: invalid angle: %s", context, s)
		}
		return pbc.Arbitrary(-v / 2), nil
	}
	return pbc.Angle{}, fmt.Errorf("%s: invalid angle: %s", context, s)
}
