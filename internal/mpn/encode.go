// Package mpn encodes resistance values as vendor part numbers and
// distributor search keywords. The encoding is deterministic: equal
// inputs always produce the same strings, and every code is plain
// alphanumerics plus '-', safe to drop into a URL.
package mpn

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// Family describes one vendor part-number template: the catalog text
// before and after the embedded value code. The shipped default
// reproduces Yageo's thick-film chip resistor family.
type Family struct {
	Prefix string
	Suffix string
}

// Yageo0402 is the family results are labelled with: RC series, 0402
// size, 1% tolerance, 7-inch reel packaging.
var Yageo0402 = Family{Prefix: "RC0402FR-07", Suffix: "L"}

// PartNumber embeds the value code for a resistance in kΩ into the
// family template.
func (f Family) PartNumber(kohm float64) string {
	return f.Prefix + ValueCode(kohm) + f.Suffix
}

// PartNumber returns the full Yageo 0402 part number for a resistance
// in kΩ, e.g. 10.0 -> "RC0402FR-0710KL".
func PartNumber(kohm float64) string {
	return Yageo0402.PartNumber(kohm)
}

// ValueCode renders a resistance in kΩ as the datasheet R/K/M code,
// where the letter marks both the magnitude and the decimal point:
// 0.82 -> "820R", 10 -> "10K", 10.5 -> "10K5", 2.7 -> "2K7", 1000 -> "1M".
//
// The code carries two significant decimal digits in the kilo-ohm range
// and a single fractional digit in the ohm and mega-ohm ranges; finer
// precision is rounded away.
func ValueCode(kohm float64) string {
	ohm := kohm * 1000.0
	switch {
	case ohm >= 1e6:
		m := ohm / 1e6
		if scalar.EqualWithinAbs(m, math.Round(m), 0.01) {
			return fmt.Sprintf("%dM", int(math.Round(m)))
		}
		return fmt.Sprintf("%dM%d", int(m), int(math.Round(math.Mod(m, 1)*10)))
	case ohm >= 1e3:
		k := ohm / 1e3
		intPart, frac, _ := strings.Cut(strconv.FormatFloat(k, 'f', 2, 64), ".")
		if frac == "00" {
			return intPart + "K"
		}
		return intPart + "K" + strings.TrimRight(frac, "0")
	default:
		if scalar.EqualWithinAbs(ohm, math.Round(ohm), 0.01) {
			return fmt.Sprintf("%dR", int(math.Round(ohm)))
		}
		return fmt.Sprintf("%dR%d", int(ohm), int(math.Round(math.Mod(ohm, 1)*10)))
	}
}
