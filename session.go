package ccfeplot

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Session owns a grid of drawing surfaces, the per-session default
// styling and one legend per surface. It is the single stateful
// object of this package; all operations are synchronous and the
// session itself does no locking, so sharing one across goroutines
// needs external serialization.
type Session struct {
	rows, cols int
	surfaces   [][]*Surface
	def        *Surface

	legends map[Index]*plot.Legend

	// The per-session parameter dictionaries. figure is fixed after
	// construction; the others accumulate non-unique options from
	// plot calls.
	figure Options
	legend Options
	line   Options
	axis   Options
	other  Options

	fontSize vg.Length

	renderer    Renderer
	interactive bool

	diag io.Writer
}

// New constructs a session with a rows x cols grid of surfaces.
// Options may hold figure, legend, line and showlegend defaults;
// anything else is an ErrInvalidArgument. A nil renderer leaves the
// session in non-interactive mode where Redraw is a diagnostic no-op.
func New(rows, cols int, r Renderer, opts Options) (*Session, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: grid dimensions %dx%d", ErrInvalidArgument, rows, cols)
	}
	if r == nil {
		r = nonInteractive{}
	}

	d := DefaultDefaults.copy()
	s := &Session{
		rows:        rows,
		cols:        cols,
		legends:     make(map[Index]*plot.Legend),
		figure:      d.Figure,
		legend:      d.Legend,
		line:        d.Line,
		axis:        Options{},
		other:       d.Other,
		renderer:    r,
		interactive: r.Interactive(),
		diag:        os.Stdout,
	}

	for name, v := range opts.Canonical() {
		switch {
		case figureOptions.Contains(name):
			s.figure[name] = v
		case legendOptions.Contains(name):
			s.legend[name] = v
		case lineOptions.Contains(name):
			s.line[name] = v
		case axisOptions.Contains(name):
			s.axis[name] = v
		case otherOptions.Contains(name):
			s.other[name] = v
		default:
			return nil, fmt.Errorf("%w: unrecognized option %q", ErrInvalidArgument, name)
		}
	}

	s.surfaces = make([][]*Surface, rows)
	for r := 0; r < rows; r++ {
		s.surfaces[r] = make([]*Surface, cols)
		for c := 0; c < cols; c++ {
			s.surfaces[r][c] = newSurface(r, c)
		}
	}
	s.def = s.surfaces[0][0]
	return s, nil
}

// Warnf prints a diagnostic. Diagnostics cover recoverable usage
// mistakes that must not abort an interactive exploration.
func (s *Session) Warnf(f string, args ...interface{}) {
	if !strings.HasSuffix(f, "\n") {
		f = f + "\n"
	}
	fmt.Fprintf(s.diag, "Warning "+f, args...)
}

// SetDiagnostics redirects diagnostic output, which defaults to
// standard output.
func (s *Session) SetDiagnostics(w io.Writer) {
	s.diag = w
}

// Rows and Cols report the grid dimensions given at construction.
func (s *Session) Rows() int { return s.rows }
func (s *Session) Cols() int { return s.cols }

// Surface resolves a target specifier to a concrete surface. Valid
// targets are nil (the session default), an Index or [2]int pair, or
// a *Surface handle. A bare integer is rejected: whether it means a
// row or a column is ambiguous and deliberately left unresolved.
func (s *Session) Surface(target interface{}) (*Surface, error) {
	switch t := target.(type) {
	case nil:
		return s.def, nil
	case *Surface:
		return t, nil
	case Index:
		return s.at(t)
	case [2]int:
		return s.at(Index{t[0], t[1]})
	case int:
		return nil, fmt.Errorf("%w: bare integer surface target %d (row or column?)", ErrUnsupported, t)
	}
	return nil, fmt.Errorf("%w: cannot resolve %T as a surface target", ErrInvalidArgument, target)
}

func (s *Session) at(idx Index) (*Surface, error) {
	if idx.Row < 0 || idx.Row >= s.rows || idx.Col < 0 || idx.Col >= s.cols {
		return nil, fmt.Errorf("%w: (%d, %d) outside %dx%d grid",
			ErrIndexOutOfRange, idx.Row, idx.Col, s.rows, s.cols)
	}
	return s.surfaces[idx.Row][idx.Col], nil
}

// SetDefaultSurface updates the session's default target for
// subsequent implicit calls and returns the resolved handle.
func (s *Session) SetDefaultSurface(target interface{}) (*Surface, error) {
	surf, err := s.Surface(target)
	if err != nil {
		return nil, err
	}
	s.def = surf
	return surf, nil
}

// DefaultSurface returns the current default target.
func (s *Session) DefaultSurface() *Surface { return s.def }

// Autoscale delegates autoscaling of the default surface for the
// given axis selector ("x", "y" or "both"). Re-enabling autoscale
// clears any stored explicit limit for that axis so the next plot
// call does not reapply it. Triggers a redraw.
func (s *Session) Autoscale(enable bool, axis string, tight bool) error {
	var doX, doY bool
	switch axis {
	case "x":
		doX = true
	case "y":
		doY = true
	case "both":
		doX, doY = true, true
	default:
		return fmt.Errorf("%w: axis selector %q", ErrInvalidArgument, axis)
	}
	if enable {
		s.def.autoscale(doX, doY, tight)
		if doX {
			delete(s.axis, "xlim")
		}
		if doY {
			delete(s.axis, "ylim")
		}
	}
	return s.Redraw()
}

// SetGrid turns the grid of the default surface on or off. The style
// options linewidth, linestyle and color apply to the grid lines.
// Triggers a redraw.
func (s *Session) SetGrid(on bool, style Options) error {
	if err := s.def.setGrid(on, style.Canonical()); err != nil {
		return err
	}
	return s.Redraw()
}

// SetFontSize updates the font size of every text element on every
// surface, and of text added later. Triggers a redraw.
func (s *Session) SetFontSize(size float64) error {
	if size <= 0 {
		return fmt.Errorf("%w: font size %g", ErrInvalidArgument, size)
	}
	s.fontSize = vg.Points(size)
	for _, row := range s.surfaces {
		for _, surf := range row {
			surf.setFontSize(s.fontSize)
		}
	}
	return s.Redraw()
}

// Redraw repaints the canvas. In interactive mode the figure window
// is re-shown first if it was closed. Outside interactive mode there
// is nothing to repaint and the request degrades to a diagnostic.
func (s *Session) Redraw() error {
	if !s.interactive {
		s.Warnf("redraw is unsupported in non-interactive plotting mode")
		return nil
	}
	if !s.renderer.Open() {
		if err := s.renderer.Show(); err != nil {
			return err
		}
	}
	s.syncSharedAxes()
	return s.renderer.Repaint(s.frame())
}

func (s *Session) frame() Frame {
	grid := make([][]*plot.Plot, s.rows)
	for r := range s.surfaces {
		grid[r] = make([]*plot.Plot, s.cols)
		for c := range s.surfaces[r] {
			grid[r][c] = s.surfaces[r][c].p
		}
	}
	f := Frame{Grid: grid, Width: 8 * vg.Inch, Height: 6 * vg.Inch, DPI: 96}
	if v, ok := s.figure["figsize"]; ok {
		if wh, ok := toPair(v); ok {
			f.Width = vg.Length(wh[0]) * vg.Inch
			f.Height = vg.Length(wh[1]) * vg.Inch
		}
	}
	if v, ok := s.figure["dpi"]; ok {
		if dpi, ok := toFloat(v); ok {
			f.DPI = int(dpi)
		}
	}
	return f
}

// syncSharedAxes unifies axis ranges across the grid when the sharex
// or sharey figure options are set. The renderer has no linked-axes
// notion, so the union range is stamped onto every surface right
// before a repaint.
func (s *Session) syncSharedAxes() {
	shareX, _ := toBool(s.figure["sharex"])
	shareY, _ := toBool(s.figure["sharey"])
	if !shareX && !shareY {
		return
	}
	xmin, xmax := s.surfaces[0][0].p.X.Min, s.surfaces[0][0].p.X.Max
	ymin, ymax := s.surfaces[0][0].p.Y.Min, s.surfaces[0][0].p.Y.Max
	for _, row := range s.surfaces {
		for _, surf := range row {
			if surf.p.X.Min < xmin {
				xmin = surf.p.X.Min
			}
			if surf.p.X.Max > xmax {
				xmax = surf.p.X.Max
			}
			if surf.p.Y.Min < ymin {
				ymin = surf.p.Y.Min
			}
			if surf.p.Y.Max > ymax {
				ymax = surf.p.Y.Max
			}
		}
	}
	for _, row := range s.surfaces {
		for _, surf := range row {
			if shareX {
				surf.p.X.Min, surf.p.X.Max = xmin, xmax
			}
			if shareY {
				surf.p.Y.Min, surf.p.Y.Max = ymin, ymax
			}
		}
	}
}
