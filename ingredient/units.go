package ingredient

import (
	"sort"
	"strings"
)

// Unit is a canonical unit abbreviation. The zero value means "no unit".
type Unit string

const (
	Teaspoon   Unit = "tsp"
	Tablespoon Unit = "tbsp"
	Cup        Unit = "cup"
	FluidOunce Unit = "fl oz"
	Pint       Unit = "pint"
	Quart      Unit = "quart"
	Gallon     Unit = "gallon"
	Ounce      Unit = "oz"
	Pound      Unit = "lb"
	Inch       Unit = "inch"
	Foot       Unit = "foot"

	Milliliter Unit = "ml"
	Liter      Unit = "l"
	Gram       Unit = "g"
	Kilogram   Unit = "kg"
	Centimeter Unit = "cm"

	Clove   Unit = "clove"
	Head    Unit = "head"
	Bunch   Unit = "bunch"
	Stalk   Unit = "stalk"
	Slice   Unit = "slice"
	Piece   Unit = "piece"
	Can     Unit = "can"
	Package Unit = "package"
	Bag     Unit = "bag"
	Jar     Unit = "jar"
	Bottle  Unit = "bottle"
	Stick   Unit = "stick"
	Pinch   Unit = "pinch"
	Dash    Unit = "dash"
	Sprig   Unit = "sprig"
)

// System tags the measurement system a unit belongs to.
type System int

const (
	NoSystem System = iota
	Imperial
	Metric
	Count
)

func (s System) String() string {
	switch s {
	case Imperial:
		return "imperial"
	case Metric:
		return "metric"
	case Count:
		return "count"
	default:
		return "none"
	}
}

// conversion is a single-hop multiplicative mapping into the other system.
type conversion struct {
	to     Unit
	factor float64
}

type unitInfo struct {
	system  System
	plural  string
	aliases []string
	convert *conversion
}

// units is the single conversion and display table. Every unit converts to at
// most one fixed target regardless of magnitude.
var units = map[Unit]unitInfo{
	Teaspoon:   {Imperial, "tsp", []string{"teaspoon", "teaspoons", "tsp", "tsps"}, &conversion{Milliliter, 4.92892}},
	Tablespoon: {Imperial, "tbsp", []string{"tablespoon", "tablespoons", "tbsp", "tbsps", "tbs"}, &conversion{Milliliter, 14.7868}},
	Cup:        {Imperial, "cups", []string{"cup", "cups", "c"}, &conversion{Milliliter, 236.588}},
	FluidOunce: {Imperial, "fl oz", []string{"fluid ounce", "fluid ounces", "fl oz", "fl. oz"}, &conversion{Milliliter, 29.5735}},
	Pint:       {Imperial, "pints", []string{"pint", "pints", "pt"}, &conversion{Milliliter, 473.176}},
	Quart:      {Imperial, "quarts", []string{"quart", "quarts", "qt"}, &conversion{Milliliter, 946.353}},
	Gallon:     {Imperial, "gallons", []string{"gallon", "gallons", "gal"}, &conversion{Liter, 3.78541}},
	Ounce:      {Imperial, "oz", []string{"ounce", "ounces", "oz"}, &conversion{Gram, 28.3495}},
	Pound:      {Imperial, "lbs", []string{"pound", "pounds", "lb", "lbs"}, &conversion{Gram, 453.592}},
	Inch:       {Imperial, "inches", []string{"inch", "inches", "in"}, &conversion{Centimeter, 2.54}},
	Foot:       {Imperial, "feet", []string{"foot", "feet", "ft"}, &conversion{Centimeter, 30.48}},

	Milliliter: {Metric, "ml", []string{"ml", "milliliter", "milliliters", "millilitre", "millilitres"}, &conversion{Cup, 0.00422675}},
	Liter:      {Metric, "l", []string{"l", "liter", "liters", "litre", "litres"}, &conversion{Cup, 4.22675}},
	Gram:       {Metric, "g", []string{"g", "gram", "grams"}, &conversion{Ounce, 0.035274}},
	Kilogram:   {Metric, "kg", []string{"kg", "kilogram", "kilograms"}, &conversion{Pound, 2.20462}},
	Centimeter: {Metric, "cm", []string{"cm", "centimeter", "centimeters", "centimetre", "centimetres"}, &conversion{Inch, 0.393701}},

	Clove:   {Count, "cloves", []string{"clove", "cloves"}, nil},
	Head:    {Count, "heads", []string{"head", "heads"}, nil},
	Bunch:   {Count, "bunches", []string{"bunch", "bunches"}, nil},
	Stalk:   {Count, "stalks", []string{"stalk", "stalks"}, nil},
	Slice:   {Count, "slices", []string{"slice", "slices"}, nil},
	Piece:   {Count, "pieces", []string{"piece", "pieces"}, nil},
	Can:     {Count, "cans", []string{"can", "cans"}, nil},
	Package: {Count, "packages", []string{"package", "packages"}, nil},
	Bag:     {Count, "bags", []string{"bag", "bags"}, nil},
	Jar:     {Count, "jars", []string{"jar", "jars"}, nil},
	Bottle:  {Count, "bottles", []string{"bottle", "bottles"}, nil},
	Stick:   {Count, "sticks", []string{"stick", "sticks"}, nil},
	Pinch:   {Count, "pinches", []string{"pinch", "pinches"}, nil},
	Dash:    {Count, "dashes", []string{"dash", "dashes"}, nil},
	Sprig:   {Count, "sprigs", []string{"sprig", "sprigs"}, nil},
}

var aliases = func() map[string]Unit {
	m := make(map[string]Unit)
	for u, info := range units {
		for _, a := range info.aliases {
			m[a] = u
		}
	}
	return m
}()

// LookupUnit resolves a unit token to its canonical form. Matching ignores
// case, surrounding space and a single trailing period.
func LookupUnit(token string) (Unit, bool) {
	t := strings.ToLower(strings.TrimSpace(token))
	t = strings.TrimSuffix(t, ".")
	t = strings.Join(strings.Fields(t), " ")
	u, ok := aliases[t]
	return u, ok
}

// System reports which measurement system u belongs to.
func (u Unit) System() System {
	return units[u].system
}

// Known reports whether u is in the unit table.
func (u Unit) Known() bool {
	_, ok := units[u]
	return ok
}

// Display returns the form of u to print next to amount.
func (u Unit) Display(amount float64) string {
	info, ok := units[u]
	if !ok || amount == 1 {
		return string(u)
	}
	return info.plural
}

// ConversionTo returns the fixed target unit and factor for converting u into
// the given system, or false when no such conversion exists.
func (u Unit) ConversionTo(sys System) (Unit, float64, bool) {
	info, ok := units[u]
	if !ok || info.convert == nil || info.system == sys {
		return "", 0, false
	}
	target := info.convert.to
	if units[target].system != sys {
		return "", 0, false
	}
	return target, info.convert.factor, true
}

// unitPattern is a regular expression alternation of every known alias,
// longest first so "fluid ounces" wins over "fluid ounce".
func unitPattern() string {
	all := make([]string, 0, len(aliases))
	for a := range aliases {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool {
		if len(all[i]) != len(all[j]) {
			return len(all[i]) > len(all[j])
		}
		return all[i] < all[j]
	})
	for i, a := range all {
		a = strings.ReplaceAll(a, ".", `\.`)
		all[i] = strings.ReplaceAll(a, " ", `\s+`)
	}
	return `(?:` + strings.Join(all, "|") + `)\.?`
}
