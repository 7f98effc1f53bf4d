package ingredient

import (
	"regexp"
	"strconv"
)

// DefaultOriginalServings is assumed when a recipe does not state its yield.
const DefaultOriginalServings = 4

// Normalize runs one line through parse, scale and convert. Scaling happens
// before conversion so the ratio always applies to the amount as written.
// Conversion only happens when the unit belongs to the other system.
func Normalize(line string, targetServings, originalServings float64, useMetric bool) ParsedIngredient {
	p := Scale(Parse(line), ServingRatio(targetServings, originalServings))

	if p.Measured() {
		want := Imperial
		if useMetric {
			want = Metric
		}
		if sys := p.Unit.System(); sys != want && sys != Count {
			p = Convert(p, useMetric)
		}
	}

	return p
}

// Process rescales every line from originalServings to targetServings,
// converts it toward the requested unit system and renders it. Lines are
// independent; the output has one entry per input line in the same order.
func Process(lines []string, targetServings, originalServings float64, useMetric bool) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = Format(Normalize(l, targetServings, originalServings, useMetric))
	}
	return out
}

var leadingInt = regexp.MustCompile(`\d+`)

// ParseServings reads a yield such as "Serves 6" or "6 servings". It returns
// DefaultOriginalServings when no positive number is present.
func ParseServings(text string) int {
	m := leadingInt.FindString(text)
	if m == "" {
		return DefaultOriginalServings
	}
	n, err := strconv.Atoi(m)
	if err != nil || n <= 0 {
		return DefaultOriginalServings
	}
	return n
}
