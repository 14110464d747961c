package shape

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	numberRe = regexp.MustCompile(`\d+(?:\.\d+)?`)
	colorRe  = regexp.MustCompile(`(?i)#[0-9a-f]{6}`)
	kindRe   = regexp.MustCompile(`(?i)box|sphere|torus`)
)

// defaultDimensions is what a description carries when the text has no numbers.
var defaultDimensions = [...]float64{1, 1, 1}

// Description is what one line of text asks for. It is rebuilt on every submission and never shared.
type Description struct {
	Kind       Kind
	Dimensions []float64
	Color      Color
}

// Default is the description of text that names nothing.
func Default() Description {
	return Description{
		Kind:       Unknown,
		Dimensions: append([]float64(nil), defaultDimensions[:]...),
		Color:      White,
	}
}

// Decode turns free-form text into a Description. It never fails: anything it cannot find
// falls back to Unknown, [1 1 1] and white.
//
// Every number outside a color token is a dimension, in order. The color is the first #rrggbb token and
// the kind is the first of box, sphere or torus, both matched case-insensitively. When the kind
// needs more dimensions than were given, the missing trailing ones are 1.
func Decode(text string) Description {
	d := Description{Kind: Unknown, Color: White}

	if m := kindRe.FindString(text); m != "" {
		d.Kind = ParseKind(m)
	}
	if m := colorRe.FindString(text); m != "" {
		if c, ok := ParseHexColor(m); ok {
			d.Color = c
		}
	}

	// Digits inside color tokens are not dimensions.
	nums := numberRe.FindAllString(colorRe.ReplaceAllLiteralString(text, " "), -1)
	if len(nums) == 0 {
		d.Dimensions = append([]float64(nil), defaultDimensions[:]...)
		return d
	}
	d.Dimensions = make([]float64, 0, max(len(nums), d.Kind.Required()))
	for _, n := range nums {
		v, err := strconv.ParseFloat(n, 64)
		if err != nil {
			v = 1
		}
		d.Dimensions = append(d.Dimensions, v)
	}
	for len(d.Dimensions) < d.Kind.Required() {
		d.Dimensions = append(d.Dimensions, 1)
	}
	return d
}

// Dimension returns the i-th dimension, or 1 when it is missing or not positive.
func (d Description) Dimension(i int) float64 {
	if i < 0 || i >= len(d.Dimensions) || !(d.Dimensions[i] > 0) {
		return 1
	}
	return d.Dimensions[i]
}

// String formats d the way the terminal log shows it, e.g. "box [2 3 4] #035efc".
func (d Description) String() string {
	parts := make([]string, len(d.Dimensions))
	for i, v := range d.Dimensions {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return fmt.Sprintf("%s [%s] %s", d.Kind, strings.Join(parts, " "), d.Color)
}
