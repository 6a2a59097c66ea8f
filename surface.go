package ccfeplot

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Index addresses one surface within the session's grid.
type Index struct {
	Row, Col int
}

// Series is one plotted line: the x/y values plus the artists that
// were handed to the renderer for it.
type Series struct {
	Label  string
	XYs    plotter.XYs
	Line   *plotter.Line
	Points *plotter.Scatter
}

func (sr *Series) thumbs() []plot.Thumbnailer {
	var t []plot.Thumbnailer
	if sr.Line != nil {
		t = append(t, sr.Line)
	}
	if sr.Points != nil {
		t = append(t, sr.Points)
	}
	return t
}

// Surface is a single drawing region within a session's grid of
// subplots. It wraps one renderer plot and keeps the bookkeeping the
// renderer does not: the plotted series, the grid lines and the color
// cycle.
type Surface struct {
	p        *plot.Plot
	row, col int

	series []*Series
	grid   *plotter.Grid

	cycle    []color.Color
	cycleIdx int
}

func newSurface(row, col int) *Surface {
	p := plot.New()
	// Offset and scientific tick notation are never wanted in an
	// exploratory session.
	p.X.Tick.Marker = plainTicks{}
	p.Y.Tick.Marker = plainTicks{}
	return &Surface{p: p, row: row, col: col}
}

// Index returns the (row, column) position of s in its grid.
func (s *Surface) Index() Index { return Index{s.row, s.col} }

// Plot exposes the underlying renderer plot for customizations the
// wrapper does not cover.
func (s *Surface) Plot() *plot.Plot { return s.p }

// Series returns the series plotted on s so far, in plot order.
func (s *Surface) Series() []*Series { return s.series }

// nextColor returns the upcoming cycle color without consuming it;
// addSeries advances the cycle only once the whole series committed.
func (s *Surface) nextColor() color.Color {
	if len(s.cycle) > 0 {
		return s.cycle[s.cycleIdx%len(s.cycle)]
	}
	return plotutil.Color(s.cycleIdx)
}

// addSeries builds the line and marker artists for one series from
// already canonicalized and merged options and adds them to the
// surface.
func (s *Surface) addSeries(x, y []float64, opts Options) (*Series, error) {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X, pts[i].Y = x[i], y[i]
	}
	sr := &Series{XYs: pts}

	if v, ok := opts["label"]; ok {
		str, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: label %v is not a string", ErrInvalidArgument, v)
		}
		sr.Label = str
	}

	lt := SolidLine
	if v, ok := opts["linestyle"]; ok {
		str, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: linestyle %v is not a string", ErrInvalidArgument, v)
		}
		lt = String2LineType(str)
	}

	var col color.Color
	fromCycle := false
	if v, ok := opts["color"]; ok {
		c, ok := toColor(v)
		if !ok {
			return nil, fmt.Errorf("%w: cannot use %v as a color", ErrInvalidArgument, v)
		}
		col = c
	} else {
		col = s.nextColor()
		fromCycle = true
	}
	if v, ok := opts["alpha"]; ok {
		var a float64
		switch av := v.(type) {
		case string:
			a = String2Float(av, 0, 1)
		default:
			f, ok := toFloat(v)
			if !ok {
				return nil, fmt.Errorf("%w: alpha %v is not a number", ErrInvalidArgument, v)
			}
			a = f
		}
		col = SetAlpha(col, a)
	}

	var line *plotter.Line
	if lt != BlankLine {
		var err error
		line, err = plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.Color = col
		line.Width = plotter.DefaultLineStyle.Width
		if v, ok := opts["linewidth"]; ok {
			w, ok := toFloat(v)
			if !ok {
				return nil, fmt.Errorf("%w: linewidth %v is not a number", ErrInvalidArgument, v)
			}
			line.Width = vg.Points(w)
		}
		line.Dashes = lt.Dashes()
	}

	var sc *plotter.Scatter
	if v, ok := opts["marker"]; ok {
		str, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: marker %v is not a string", ErrInvalidArgument, v)
		}
		if shape := String2PointShape(str); shape != BlankPoint {
			mpts := pts
			if ev, ok := opts["markevery"]; ok {
				sub, err := markEvery(pts, ev)
				if err != nil {
					return nil, err
				}
				mpts = sub
			}
			var err error
			sc, err = plotter.NewScatter(mpts)
			if err != nil {
				return nil, err
			}
			sc.Shape = shape.Glyph()
			sc.Color = col
			if v, ok := opts["markerfacecolor"]; ok {
				if c, ok := toColor(v); ok {
					sc.Color = c
				}
			} else if v, ok := opts["markeredgecolor"]; ok {
				if c, ok := toColor(v); ok {
					sc.Color = c
				}
			}
			if v, ok := opts["markersize"]; ok {
				ms, ok := toFloat(v)
				if !ok {
					return nil, fmt.Errorf("%w: markersize %v is not a number", ErrInvalidArgument, v)
				}
				sc.Radius = vg.Points(ms / 2)
			}
		}
	}

	// The surface is only touched once every option has validated.
	if fromCycle {
		s.cycleIdx++
	}
	if line != nil {
		s.p.Add(line)
		sr.Line = line
	}
	if sc != nil {
		s.p.Add(sc)
		sr.Points = sc
	}
	s.series = append(s.series, sr)
	return sr, nil
}

// markEvery subsamples pts according to an every-Nth spec: a plain
// int N, or [2]int{start, stride}.
func markEvery(pts plotter.XYs, spec interface{}) (plotter.XYs, error) {
	start, stride := 0, 0
	switch v := spec.(type) {
	case int:
		stride = v
	case [2]int:
		start, stride = v[0], v[1]
	default:
		return nil, fmt.Errorf("%w: markevery spec %v", ErrInvalidArgument, spec)
	}
	if stride < 1 || start < 0 {
		return nil, fmt.Errorf("%w: markevery spec (%d, %d)", ErrInvalidArgument, start, stride)
	}
	sub := plotter.XYs{}
	for i := start; i < len(pts); i += stride {
		sub = append(sub, pts[i])
	}
	return sub, nil
}

// applyAxisOption routes one axis-level option to the wrapped plot.
// The caller has already canonicalized the name.
func (s *Surface) applyAxisOption(name string, v interface{}) error {
	switch name {
	case "xlabel":
		return setText(&s.p.X.Label.Text, name, v)
	case "ylabel":
		return setText(&s.p.Y.Label.Text, name, v)
	case "title":
		return setText(&s.p.Title.Text, name, v)
	case "xlim":
		return setLim(&s.p.X, name, v)
	case "ylim":
		return setLim(&s.p.Y, name, v)
	case "xscale":
		return setScale(&s.p.X, v)
	case "yscale":
		return setScale(&s.p.Y, v)
	case "grid":
		on, ok := toBool(v)
		if !ok {
			return fmt.Errorf("%w: grid %v is not on/off", ErrInvalidArgument, v)
		}
		return s.setGrid(on, nil)
	case "colorcycle":
		cycle, ok := toColorList(v)
		if !ok {
			return fmt.Errorf("%w: colorcycle %v is not a color list", ErrInvalidArgument, v)
		}
		s.cycle = cycle
		s.cycleIdx = 0
		return nil
	}
	return fmt.Errorf("%w: unknown axis option %q", ErrInvalidArgument, name)
}

func setText(dst *string, name string, v interface{}) error {
	str, ok := v.(string)
	if !ok {
		return fmt.Errorf("%w: %s %v is not a string", ErrInvalidArgument, name, v)
	}
	*dst = str
	return nil
}

func setLim(ax *plot.Axis, name string, v interface{}) error {
	lim, ok := toPair(v)
	if !ok {
		return fmt.Errorf("%w: %s %v is not a (min, max) pair", ErrInvalidArgument, name, v)
	}
	ax.Min, ax.Max = lim[0], lim[1]
	return nil
}

func setScale(ax *plot.Axis, v interface{}) error {
	if err := checkScale(v); err != nil {
		return err
	}
	switch v.(string) {
	case "linear":
		ax.Scale = plot.LinearScale{}
		ax.Tick.Marker = plainTicks{}
	case "log":
		ax.Scale = plot.LogScale{}
		ax.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	return nil
}

func checkScale(v interface{}) error {
	str, ok := v.(string)
	if !ok {
		return fmt.Errorf("%w: axis scale %v is not a string", ErrInvalidArgument, v)
	}
	switch str {
	case "linear", "log":
		return nil
	case "symlog":
		return fmt.Errorf("%w: symlog axis scale has no renderer support", ErrUnsupported)
	}
	return fmt.Errorf("%w: unknown axis scale %q", ErrInvalidArgument, str)
}

// checkAxisOption validates one axis option without touching the plot,
// so a plot call can reject its whole option set before the first
// artist is added.
func checkAxisOption(name string, v interface{}) error {
	switch name {
	case "xlabel", "ylabel", "title":
		if _, ok := v.(string); !ok {
			return fmt.Errorf("%w: %s %v is not a string", ErrInvalidArgument, name, v)
		}
	case "xlim", "ylim":
		if _, ok := toPair(v); !ok {
			return fmt.Errorf("%w: %s %v is not a (min, max) pair", ErrInvalidArgument, name, v)
		}
	case "xscale", "yscale":
		return checkScale(v)
	case "grid":
		if _, ok := toBool(v); !ok {
			return fmt.Errorf("%w: grid %v is not on/off", ErrInvalidArgument, v)
		}
	case "colorcycle":
		if _, ok := toColorList(v); !ok {
			return fmt.Errorf("%w: colorcycle %v is not a color list", ErrInvalidArgument, v)
		}
	default:
		return fmt.Errorf("%w: unknown axis option %q", ErrInvalidArgument, name)
	}
	return nil
}

// setGrid turns the grid lines on or off. The renderer cannot remove
// a plotter once added, so off means zero-width lines.
func (s *Surface) setGrid(on bool, style Options) error {
	if s.grid == nil {
		s.grid = plotter.NewGrid()
		s.p.Add(s.grid)
	}
	if !on {
		s.grid.Vertical.Width = 0
		s.grid.Horizontal.Width = 0
		return nil
	}
	fresh := plotter.NewGrid()
	s.grid.Vertical = fresh.Vertical
	s.grid.Horizontal = fresh.Horizontal
	if v, ok := style["linewidth"]; ok {
		w, ok := toFloat(v)
		if !ok {
			return fmt.Errorf("%w: grid linewidth %v is not a number", ErrInvalidArgument, v)
		}
		s.grid.Vertical.Width = vg.Points(w)
		s.grid.Horizontal.Width = vg.Points(w)
	}
	if v, ok := style["color"]; ok {
		c, ok := toColor(v)
		if !ok {
			return fmt.Errorf("%w: grid color %v", ErrInvalidArgument, v)
		}
		s.grid.Vertical.Color = c
		s.grid.Horizontal.Color = c
	}
	if v, ok := style["linestyle"]; ok {
		str, ok := v.(string)
		if !ok {
			return fmt.Errorf("%w: grid linestyle %v", ErrInvalidArgument, v)
		}
		dashes := String2LineType(str).Dashes()
		s.grid.Vertical.Dashes = dashes
		s.grid.Horizontal.Dashes = dashes
	}
	return nil
}

// autoscale recomputes the selected axis ranges from the plotted
// series. Unless tight, the range is expanded by 5% on both ends.
func (s *Surface) autoscale(doX, doY, tight bool) {
	if len(s.series) == 0 {
		return
	}
	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for _, sr := range s.series {
		x0, x1, y0, y1 := plotter.XYRange(sr.XYs)
		xmin, xmax = math.Min(xmin, x0), math.Max(xmax, x1)
		ymin, ymax = math.Min(ymin, y0), math.Max(ymax, y1)
	}
	if !tight {
		ex := (xmax - xmin) * 0.05
		ey := (ymax - ymin) * 0.05
		xmin, xmax = xmin-ex, xmax+ex
		ymin, ymax = ymin-ey, ymax+ey
	}
	if doX {
		s.p.X.Min, s.p.X.Max = xmin, xmax
	}
	if doY {
		s.p.Y.Min, s.p.Y.Max = ymin, ymax
	}
}

// setFontSize applies one size to every text element of the surface.
func (s *Surface) setFontSize(size vg.Length) {
	s.p.Title.TextStyle.Font.Size = size
	s.p.X.Label.TextStyle.Font.Size = size
	s.p.Y.Label.TextStyle.Font.Size = size
	s.p.X.Tick.Label.Font.Size = size
	s.p.Y.Tick.Label.Font.Size = size
	s.p.Legend.TextStyle.Font.Size = size
}

// plainTicks formats major tick labels in plain fixed notation so the
// renderer never falls back to offset or scientific forms.
type plainTicks struct{}

func (plainTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i, t := range ticks {
		if t.Label == "" { // minor tick
			continue
		}
		ticks[i].Label = strconv.FormatFloat(t.Value, 'f', -1, 64)
	}
	return ticks
}
