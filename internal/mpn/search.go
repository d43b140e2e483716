package mpn

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SearchKeyword renders a resistance in kΩ as the free-text keyword
// distributors index resistors under: 10 -> "10k", 10.5 -> "10.5k",
// 0.82 -> "820", 1500 -> "1.5M".
func SearchKeyword(kohm float64) string {
	if kohm >= 1000 {
		s := fmt.Sprintf("%.1f", kohm/1000)
		return strings.TrimSuffix(s, ".0") + "M"
	}
	if kohm >= 1 {
		if math.Abs(kohm-math.Round(kohm)) < 0.001 {
			return strconv.Itoa(int(math.Round(kohm))) + "k"
		}
		s := strconv.FormatFloat(kohm, 'f', 2, 64)
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
		return s + "k"
	}
	return strconv.Itoa(int(math.Round(kohm * 1000)))
}
