package ingredient

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	mixedFraction  = regexp.MustCompile(`^(\d+)\s+(\d+)/(\d+)$`)
	simpleFraction = regexp.MustCompile(`^(\d+)/(\d+)$`)
	leadingNumber  = regexp.MustCompile(`^(?:\d+(?:\.\d*)?|\.\d+)`)
)

// ParseQuantity converts a quantity literal ("2", "0.5", "3/4", "1 1/2") to a
// decimal. Text it cannot read yields 0.
func ParseQuantity(s string) float64 {
	s = strings.TrimSpace(s)

	if m := mixedFraction.FindStringSubmatch(s); m != nil {
		frac, ok := fraction(m[2], m[3])
		if !ok {
			return 0
		}
		return atof(m[1]) + frac
	}

	if m := simpleFraction.FindStringSubmatch(s); m != nil {
		frac, _ := fraction(m[1], m[2])
		return frac
	}

	return atof(leadingNumber.FindString(s))
}

func fraction(num, den string) (float64, bool) {
	d := atof(den)
	if d == 0 {
		return 0, false
	}
	return atof(num) / d, true
}

func atof(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
