package ccfeplot

import (
	"fmt"
	"image/color"
	"strings"
)

// Options is a set of styling parameters keyed by canonical option
// name. Values are dynamically typed; the converters in style.go turn
// string forms into renderer values.
type Options map[string]interface{}

// AliasTable maps the short option names to their canonical names.
var AliasTable = map[string]string{
	"lw":  "linewidth",
	"ls":  "linestyle",
	"mfc": "markerfacecolor",
	"mew": "markeredgewidth",
	"mec": "markeredgecolor",
	"ms":  "markersize",
	"mev": "markevery",
	"c":   "color",
	"cs":  "colorcycle",
	"fs":  "fontsize",
}

// The fixed option buckets. Membership decides where a constructor or
// plot-call option is routed; anything outside all buckets is an
// ErrInvalidArgument at the point of use.
var (
	figureOptions = NewStringSetFrom([]string{
		"figsize", "dpi", "sharex", "sharey",
	})

	legendOptions = NewStringSetFrom([]string{
		"fancybox", "loc", "framealpha", "numpoints", "ncol",
		"markerscale", "mode", "bbox_to_anchor",
	})

	lineOptions = NewStringSetFrom([]string{
		"label", "linewidth", "linestyle", "marker",
		"markerfacecolor", "markeredgewidth", "markersize",
		"markeredgecolor", "markevery", "alpha", "color",
	})

	axisOptions = NewStringSetFrom([]string{
		"xlabel", "ylabel", "xlim", "ylim", "title",
		"colorcycle", "grid", "xscale", "yscale", "fontsize",
	})

	otherOptions = NewStringSetFrom([]string{
		"showlegend",
	})

	// Options that apply to one plot call only and never persist
	// into the session defaults.
	uniqueOptions = NewStringSetFrom([]string{
		"color", "label", "marker", "linestyle", "colorcycle",
	})
)

func (o Options) Copy() Options {
	c := make(Options, len(o))
	for k, v := range o {
		c[k] = v
	}
	return c
}

// Combine merges the os into a copy of o. Later values overwrite
// earlier ones or values in o.
func (o Options) Combine(os ...Options) Options {
	merged := o.Copy()
	for _, om := range os {
		for k, v := range om {
			merged[k] = v
		}
	}
	return merged
}

// Canonical returns a copy of o with every aliased name replaced by
// its canonical name. A canonical name present alongside its alias
// wins.
func (o Options) Canonical() Options {
	c := make(Options, len(o))
	for k, v := range o {
		if full, ok := AliasTable[k]; ok {
			if _, set := o[full]; set {
				continue
			}
			c[full] = v
			continue
		}
		c[k] = v
	}
	return c
}

// -------------------------------------------------------------------------
// Value coercion

func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	}
	return 0, false
}

func toBool(v interface{}) (bool, bool) {
	switch x := v.(type) {
	case bool:
		return x, true
	case string:
		switch strings.ToLower(x) {
		case "on", "true", "yes":
			return true, true
		case "off", "false", "no":
			return false, true
		}
	}
	return false, false
}

// toPair accepts the fixed-length coordinate tuples used for limits,
// figure size and legend anchors.
func toPair(v interface{}) ([2]float64, bool) {
	switch x := v.(type) {
	case [2]float64:
		return x, true
	case [2]int:
		return [2]float64{float64(x[0]), float64(x[1])}, true
	}
	return [2]float64{}, false
}

func toColor(v interface{}) (color.Color, bool) {
	switch x := v.(type) {
	case color.Color:
		return x, true
	case string:
		return String2Color(x), true
	}
	return nil, false
}

func toColorList(v interface{}) ([]color.Color, bool) {
	switch x := v.(type) {
	case []color.Color:
		return x, true
	case []string:
		cycle := make([]color.Color, len(x))
		for i, s := range x {
			cycle[i] = String2Color(s)
		}
		return cycle, true
	}
	return nil, false
}

// -------------------------------------------------------------------------
// Format specs

// parseFormat splits a compact format spec like "r--o" or "b-" into
// color, linestyle and marker options. Any of the three parts may be
// absent; an unparseable rest is an error.
func parseFormat(spec string) (Options, error) {
	opts := Options{}
	rest := spec
	for rest != "" {
		switch {
		case strings.HasPrefix(rest, "--"):
			opts["linestyle"] = "--"
			rest = rest[2:]
		case strings.HasPrefix(rest, "-."):
			opts["linestyle"] = "-."
			rest = rest[2:]
		case strings.HasPrefix(rest, "-"):
			opts["linestyle"] = "-"
			rest = rest[1:]
		case strings.HasPrefix(rest, ":"):
			opts["linestyle"] = ":"
			rest = rest[1:]
		default:
			ch := rest[:1]
			if _, ok := BuiltinColors[ch]; ok && strings.Contains("bgrcmykw", ch) {
				opts["color"] = ch
			} else if String2PointShape(ch) != BlankPoint {
				opts["marker"] = ch
			} else {
				return nil, fmt.Errorf("%w: bad format spec %q", ErrInvalidArgument, spec)
			}
			rest = rest[1:]
		}
	}
	return opts, nil
}
