package report

import (
	"regexp"
	"strings"
)

// A run of two or more consecutive Pauli letters is an axis worth
// tinting; single letters stay plain.
var axisRunRE = regexp.MustCompile(`[IXYZ][IXYZ]+`)

const (
	sgrGrey  = "\x1b[38;5;8m"
	sgrRed   = "\x1b[38;5;9m"
	sgrGreen = "\x1b[38;5;10m"
	sgrBlue  = "\x1b[38;5;12m"
	sgrReset = "\x1b[0m"
)

// colorize tints the first axis run of the line: I grey, X red,
// Y green, Z blue.
func colorize(line string) string {
	loc := axisRunRE.FindStringIndex(line)
	if loc == nil {
		return line
	}
	var b strings.Builder
	b.WriteString(line[:loc[0]])
	for _, c := range line[loc[0]:loc[1]] {
		switch c {
		case 'I':
			b.WriteString(sgrGrey + "I" + sgrReset)
		case 'X':
			b.WriteString(sgrRed + "X" + sgrReset)
		case 'Y':
			b.WriteString(sgrGreen + "Y" + sgrReset)
		case 'Z':
			b.WriteString(sgrBlue + "Z" + sgrReset)
		}
	}
	b.WriteString(line[loc[1]:])
	return b.String()
}
