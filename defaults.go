package ccfeplot

// Defaults bundles the per-bucket default options of a session. A
// Session copies the bundle at construction, so mutating one session
// never leaks styling into another.
type Defaults struct {
	Figure Options
	Legend Options
	Line   Options
	Other  Options
}

var DefaultDefaults = Defaults{
	Figure: Options{
		"dpi":    96.0,
		"sharex": false,
		"sharey": false,
	},
	Legend: Options{
		"loc":        "best",
		"fancybox":   true,
		"framealpha": 0.8,
		"numpoints":  1,
		"ncol":       1,
	},
	Line: Options{
		"linestyle": "-",
	},
	Other: Options{
		"showlegend": true,
	},
}

func (d Defaults) copy() Defaults {
	return Defaults{
		Figure: d.Figure.Copy(),
		Legend: d.Legend.Copy(),
		Line:   d.Line.Copy(),
		Other:  d.Other.Copy(),
	}
}
