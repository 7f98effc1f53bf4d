package ingredient

import (
	"regexp"
	"strings"
)

const (
	RuleParenthetical = "parenthetical"
	RuleUnitOf        = "unit-of"
	RuleUnitName      = "unit-name"
	RuleUnitOnly      = "unit-only"
	RuleCount         = "count"
)

// rule pairs a pattern with the extractor that builds a ParsedIngredient from
// its submatches.
type rule struct {
	name    string
	re      *regexp.Regexp
	extract func(original string, m []string) ParsedIngredient
}

// rules are tried in order and the first match wins. More specific patterns
// must come before the general ones that would also match their input.
var rules = func() []rule {
	const qty = `([\d\s/.]+)`
	unit := unitPattern()

	return []rule{
		{
			// 3/4 cup (63 g) cocoa powder
			name: RuleParenthetical,
			re: regexp.MustCompile(`(?i)^` + qty + `\s+(` + unit + `)\s+\((\d+(?:\.\d+)?)\s*(` + unit + `)\)\s+(?:of\s+)?(.+)$`),
			extract: func(original string, m []string) ParsedIngredient {
				u, _ := LookupUnit(m[4])
				return ParsedIngredient{
					Original:   original,
					Amount:     amount(atof(m[3])),
					Unit:       u,
					Ingredient: strings.TrimSpace(m[5]),
				}
			},
		},
		{
			// 2 lbs of bananas
			name:    RuleUnitOf,
			re:      regexp.MustCompile(`(?i)^` + qty + `\s+(` + unit + `)\s+of\s+(.+)$`),
			extract: measured,
		},
		{
			// 2 cups flour
			name:    RuleUnitName,
			re:      regexp.MustCompile(`(?i)^` + qty + `\s+(` + unit + `)\s+(.+)$`),
			extract: measured,
		},
		{
			// 2 cups
			name:    RuleUnitOnly,
			re:      regexp.MustCompile(`(?i)^` + qty + `\s+(` + unit + `)$`),
			extract: measured,
		},
		{
			// 3 eggs
			name: RuleCount,
			re:   regexp.MustCompile(`^` + qty + `\s+(.+)$`),
			extract: func(original string, m []string) ParsedIngredient {
				return ParsedIngredient{
					Original:   original,
					Amount:     amount(ParseQuantity(m[1])),
					Ingredient: strings.TrimSpace(m[2]),
				}
			},
		},
	}
}()

func measured(original string, m []string) ParsedIngredient {
	u, _ := LookupUnit(m[2])
	p := ParsedIngredient{
		Original: original,
		Amount:   amount(ParseQuantity(m[1])),
		Unit:     u,
	}
	if len(m) > 3 {
		p.Ingredient = strings.TrimSpace(m[3])
	}
	return p
}

// Rules returns the parse rule names in the order they are tried.
func Rules() []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.name
	}
	return names
}

// MatchRule returns the name of the first rule matching line, or "" if none
// does.
func MatchRule(line string) string {
	line = strings.TrimSpace(line)
	for _, r := range rules {
		if r.re.MatchString(line) {
			return r.name
		}
	}
	return ""
}

// Parse reads a raw ingredient line. A line no rule accepts comes back with
// the whole text as the ingredient name and no amount or unit.
func Parse(line string) ParsedIngredient {
	original := strings.TrimSpace(line)

	for _, r := range rules {
		m := r.re.FindStringSubmatch(original)
		if m == nil {
			continue
		}
		p := r.extract(original, m)
		p.Rule = r.name
		return p
	}

	return ParsedIngredient{Original: original, Ingredient: original}
}

// ParseAll parses every line in order.
func ParseAll(lines []string) []ParsedIngredient {
	out := make([]ParsedIngredient, len(lines))
	for i, l := range lines {
		out[i] = Parse(l)
	}
	return out
}
