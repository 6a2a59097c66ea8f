package ccfeplot

import (
	"bytes"
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// recorder is a fake renderer counting repaints.
type recorder struct {
	interactive bool
	open        bool
	shows       int
	repaints    int
	last        Frame
}

func (r *recorder) Interactive() bool { return r.interactive }
func (r *recorder) Open() bool        { return r.open }

func (r *recorder) Show() error {
	r.open = true
	r.shows++
	return nil
}

func (r *recorder) Repaint(f Frame) error {
	r.repaints++
	r.last = f
	return nil
}

func newTestSession(t *testing.T, rows, cols int, opts Options) (*Session, *recorder) {
	t.Helper()
	rec := &recorder{}
	s, err := New(rows, cols, rec, opts)
	require.NoError(t, err)
	s.SetDiagnostics(&bytes.Buffer{})
	return s, rec
}

func TestNewRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 2}, {0, 0}} {
		_, err := New(dims[0], dims[1], nil, nil)
		assert.ErrorIs(t, err, ErrInvalidArgument, "dims %v", dims)
	}
}

func TestNewRejectsUnknownOption(t *testing.T) {
	_, err := New(1, 1, nil, Options{"bogus": 1})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSurfaceResolution(t *testing.T) {
	s, _ := newTestSession(t, 3, 2, nil)

	for r := 0; r < 3; r++ {
		for c := 0; c < 2; c++ {
			surf, err := s.Surface(Index{r, c})
			require.NoError(t, err)
			assert.Equal(t, Index{r, c}, surf.Index())
		}
	}

	for _, idx := range []Index{{3, 0}, {0, 2}, {-1, 0}, {0, -1}} {
		_, err := s.Surface(idx)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "index %v", idx)
	}

	// nil resolves to the default surface, (0, 0) at construction.
	surf, err := s.Surface(nil)
	require.NoError(t, err)
	assert.Equal(t, Index{0, 0}, surf.Index())

	// An explicit handle resolves to itself.
	same, err := s.Surface(surf)
	require.NoError(t, err)
	assert.Same(t, surf, same)

	// A [2]int pair works like an Index.
	surf, err = s.Surface([2]int{2, 1})
	require.NoError(t, err)
	assert.Equal(t, Index{2, 1}, surf.Index())

	// A bare integer is ambiguous and stays unsupported.
	_, err = s.Surface(1)
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = s.Surface("nonsens")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSetDefaultSurface(t *testing.T) {
	s, _ := newTestSession(t, 2, 2, nil)

	surf, err := s.SetDefaultSurface(Index{1, 1})
	require.NoError(t, err)
	assert.Same(t, surf, s.DefaultSurface())

	require.NoError(t, s.Plot([]float64{1, 2}, []float64{3, 4}))
	assert.Len(t, surf.Series(), 1)

	_, err = s.SetDefaultSurface(Index{5, 5})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	// A failed update must not move the default.
	assert.Same(t, surf, s.DefaultSurface())
}

func TestAliasEquivalence(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{4, 5, 6}

	s, _ := newTestSession(t, 1, 1, nil)
	require.NoError(t, s.Plot(x, y, Options{"lw": 2.5}))
	require.NoError(t, s.Plot(x, y, Options{"linewidth": 2.5}))

	series := s.DefaultSurface().Series()
	require.Len(t, series, 2)
	assert.Equal(t, vg.Points(2.5), series[0].Line.Width)
	assert.Equal(t, series[1].Line.Width, series[0].Line.Width)
}

func TestUniqueOptionsDoNotPersist(t *testing.T) {
	x := []float64{1, 2}
	y := []float64{3, 4}

	s, _ := newTestSession(t, 1, 1, nil)
	require.NoError(t, s.Plot(x, y, Options{"label": "A", "color": "red"}))
	require.NoError(t, s.Plot(x, y))

	series := s.DefaultSurface().Series()
	require.Len(t, series, 2)
	assert.Equal(t, "A", series[0].Label)
	assert.Equal(t, "", series[1].Label, "label must not carry over")
	assert.NotEqual(t, series[0].Line.Color, series[1].Line.Color,
		"explicit color must not carry over")
}

func TestSessionDefaultsMergeAndOverride(t *testing.T) {
	x := []float64{1, 2}
	y := []float64{3, 4}

	s, _ := newTestSession(t, 1, 1, Options{"linewidth": 3})
	require.NoError(t, s.Plot(x, y))
	require.NoError(t, s.Plot(x, y, Options{"lw": 1}))

	series := s.DefaultSurface().Series()
	require.Len(t, series, 2)
	assert.Equal(t, vg.Points(3), series[0].Line.Width, "session default applies")
	assert.Equal(t, vg.Points(1), series[1].Line.Width, "per-call option overrides")
}

func TestNonUniqueOptionsPersist(t *testing.T) {
	x := []float64{1, 2}
	y := []float64{3, 4}

	s, _ := newTestSession(t, 1, 1, nil)
	require.NoError(t, s.Plot(x, y, Options{"linewidth": 4}))
	require.NoError(t, s.Plot(x, y))

	series := s.DefaultSurface().Series()
	require.Len(t, series, 2)
	assert.Equal(t, vg.Points(4), series[1].Line.Width)
}

func TestFormatSpec(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{1, 4, 9, 16, 25}

	s, _ := newTestSession(t, 1, 1, nil)
	require.NoError(t, s.Plot(x, y, "r--o"))

	series := s.DefaultSurface().Series()
	require.Len(t, series, 1)
	assert.Equal(t, String2Color("r"), series[0].Line.Color)
	assert.Equal(t, DashedLine.Dashes(), series[0].Line.Dashes)
	require.NotNil(t, series[0].Points)

	// Named options override the format spec.
	require.NoError(t, s.Plot(x, y, "r-", Options{"color": "blue"}))
	series = s.DefaultSurface().Series()
	assert.Equal(t, String2Color("blue"), series[1].Line.Color)

	assert.ErrorIs(t, s.Plot(x, y, "quux"), ErrInvalidArgument)
}

func TestMarkEvery(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{0, 1, 2, 3, 4}

	s, _ := newTestSession(t, 1, 1, nil)
	require.NoError(t, s.Plot(x, y, Options{"marker": "o", "mev": 2}))
	require.NoError(t, s.Plot(x, y, Options{"marker": "o", "markevery": [2]int{1, 2}}))

	series := s.DefaultSurface().Series()
	require.Len(t, series, 2)
	require.NotNil(t, series[0].Points)
	assert.Len(t, series[0].Points.XYs, 3) // indices 0, 2, 4
	assert.Len(t, series[1].Points.XYs, 2) // indices 1, 3
}

func TestAutoscaleClearsStoredLimits(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{0, 1, 4, 9, 16}

	s, _ := newTestSession(t, 1, 1, nil)
	require.NoError(t, s.Plot(x, y, Options{"xlim": [2]float64{0, 1}}))

	surf := s.DefaultSurface()
	assert.Equal(t, 1.0, surf.Plot().X.Max, "explicit limit applied")
	_, stored := s.axis["xlim"]
	assert.True(t, stored)

	require.NoError(t, s.Autoscale(true, "x", true))
	_, stored = s.axis["xlim"]
	assert.False(t, stored, "autoscale clears the stored limit")
	assert.Equal(t, 4.0, surf.Plot().X.Max)

	// The cleared limit must not be reapplied by the next plot call.
	require.NoError(t, s.Plot(x, y))
	assert.Equal(t, 4.0, surf.Plot().X.Max)

	assert.ErrorIs(t, s.Autoscale(true, "z", false), ErrInvalidArgument)
}

func TestLegendRoundTrip(t *testing.T) {
	rows, cols := 2, 3
	s, _ := newTestSession(t, rows, cols, nil)

	legends, err := s.UpdateAllLegends()
	require.NoError(t, err)
	require.Len(t, legends, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			leg, ok := legends[Index{r, c}]
			assert.True(t, ok, "missing legend for (%d, %d)", r, c)
			assert.NotNil(t, leg)
		}
	}
}

func TestLegendsDisabled(t *testing.T) {
	s, _ := newTestSession(t, 1, 2, Options{"showlegend": false})
	require.NoError(t, s.Plot([]float64{1, 2}, []float64{3, 4}, Options{"label": "A"}))

	leg, err := s.UpdateLegend(nil)
	require.NoError(t, err)
	assert.Nil(t, leg)

	legends, err := s.UpdateAllLegends()
	require.NoError(t, err)
	for idx, leg := range legends {
		assert.Nil(t, leg, "legend for %v", idx)
	}
}

func TestInteractiveRedraw(t *testing.T) {
	rec := &recorder{interactive: true}
	s, err := New(2, 2, rec, nil)
	require.NoError(t, err)
	s.SetDiagnostics(&bytes.Buffer{})

	require.NoError(t, s.Plot([]float64{1, 2}, []float64{3, 4}))
	assert.Equal(t, 1, rec.repaints, "plot repaints implicitly in interactive mode")
	assert.Equal(t, 1, rec.shows, "closed window is re-shown before repainting")

	require.NoError(t, s.Redraw())
	assert.Equal(t, 2, rec.repaints)
	assert.Equal(t, 1, rec.shows, "open window is not re-shown")

	assert.Len(t, rec.last.Grid, 2)
	assert.Len(t, rec.last.Grid[0], 2)
}

func TestNonInteractiveRedrawIsDiagnosticNoop(t *testing.T) {
	rec := &recorder{interactive: false}
	s, err := New(1, 1, rec, nil)
	require.NoError(t, err)
	var diag bytes.Buffer
	s.SetDiagnostics(&diag)

	require.NoError(t, s.Plot([]float64{1, 2}, []float64{3, 4}))
	assert.Zero(t, rec.repaints, "no implicit repaint outside interactive mode")

	require.NoError(t, s.Redraw())
	assert.Zero(t, rec.repaints)
	assert.Contains(t, diag.String(), "non-interactive")
}

func TestFrameGeometry(t *testing.T) {
	rec := &recorder{interactive: true}
	s, err := New(1, 1, rec, Options{"figsize": [2]float64{4, 3}, "dpi": 120})
	require.NoError(t, err)
	s.SetDiagnostics(&bytes.Buffer{})

	require.NoError(t, s.Redraw())
	assert.Equal(t, 4*vg.Inch, rec.last.Width)
	assert.Equal(t, 3*vg.Inch, rec.last.Height)
	assert.Equal(t, 120, rec.last.DPI)
}

func TestSharedAxes(t *testing.T) {
	rec := &recorder{interactive: true}
	s, err := New(1, 2, rec, Options{"sharex": true})
	require.NoError(t, err)
	s.SetDiagnostics(&bytes.Buffer{})

	require.NoError(t, s.Plot([]float64{0, 1}, []float64{0, 1}, Options{"ax": Index{0, 0}}))
	require.NoError(t, s.Plot([]float64{5, 9}, []float64{0, 1}, Options{"ax": Index{0, 1}}))

	left, _ := s.Surface(Index{0, 0})
	right, _ := s.Surface(Index{0, 1})
	assert.Equal(t, right.Plot().X.Max, left.Plot().X.Max)
	assert.Equal(t, 0.0, left.Plot().X.Min)
	assert.Equal(t, 9.0, left.Plot().X.Max)
}

func TestSetFontSize(t *testing.T) {
	s, _ := newTestSession(t, 2, 1, nil)
	require.NoError(t, s.SetFontSize(18))

	for r := 0; r < 2; r++ {
		surf, err := s.Surface(Index{r, 0})
		require.NoError(t, err)
		assert.Equal(t, vg.Points(18), surf.Plot().Title.TextStyle.Font.Size)
		assert.Equal(t, vg.Points(18), surf.Plot().X.Tick.Label.Font.Size)
	}

	assert.ErrorIs(t, s.SetFontSize(0), ErrInvalidArgument)
}

func TestSetGrid(t *testing.T) {
	s, _ := newTestSession(t, 1, 1, nil)
	require.NoError(t, s.SetGrid(true, Options{"linewidth": 2}))
	surf := s.DefaultSurface()
	require.NotNil(t, surf.grid)
	assert.Equal(t, vg.Points(2), surf.grid.Vertical.Width)

	require.NoError(t, s.SetGrid(false, nil))
	assert.Zero(t, surf.grid.Vertical.Width)
	assert.Zero(t, surf.grid.Horizontal.Width)
}

func TestAxisOptions(t *testing.T) {
	s, _ := newTestSession(t, 1, 1, nil)
	x := []float64{1, 10, 100}
	y := []float64{1, 2, 3}
	require.NoError(t, s.Plot(x, y, Options{
		"xlabel": "time [s]",
		"ylabel": "level",
		"title":  "decay",
		"xscale": "log",
	}))

	p := s.DefaultSurface().Plot()
	assert.Equal(t, "time [s]", p.X.Label.Text)
	assert.Equal(t, "level", p.Y.Label.Text)
	assert.Equal(t, "decay", p.Title.Text)

	assert.ErrorIs(t, s.Plot(x, y, Options{"xscale": "symlog"}), ErrUnsupported)
	assert.ErrorIs(t, s.Plot(x, y, Options{"yscale": "nonsens"}), ErrInvalidArgument)
}

func TestFailedPlotLeavesSurfaceUntouched(t *testing.T) {
	s, _ := newTestSession(t, 1, 1, nil)
	x := []float64{1, 2}
	y := []float64{3, 4}

	assert.ErrorIs(t, s.Plot(x, y, Options{"xscale": "symlog"}), ErrUnsupported)
	assert.Empty(t, s.DefaultSurface().Series(), "failed plot left a series behind")

	assert.ErrorIs(t, s.Plot(x, y, Options{"xlabel": 7}), ErrInvalidArgument)
	assert.Empty(t, s.DefaultSurface().Series())

	assert.ErrorIs(t, s.Plot(x, y, Options{"loc": "nonsens"}), ErrInvalidArgument)
	assert.Empty(t, s.DefaultSurface().Series())
	assert.Empty(t, s.Legends())

	assert.ErrorIs(t, s.Plot(x, y, Options{"marker": 3}), ErrInvalidArgument)
	assert.Empty(t, s.DefaultSurface().Series())
	assert.Empty(t, s.axis, "failed plot must not persist axis options")

	// The failed calls must not have advanced the color cycle either.
	require.NoError(t, s.Plot(x, y))
	require.NoError(t, s.Plot(x, y))
	series := s.DefaultSurface().Series()
	require.Len(t, series, 2)
	assert.Equal(t, plotutil.Color(0), series[0].Line.Color)
	assert.Equal(t, plotutil.Color(1), series[1].Line.Color)
}

func TestAlphaAcceptsPercentStrings(t *testing.T) {
	s, _ := newTestSession(t, 1, 1, nil)
	require.NoError(t, s.Plot([]float64{1, 2}, []float64{3, 4},
		Options{"color": "red", "alpha": "50%"}))

	series := s.DefaultSurface().Series()
	require.Len(t, series, 1)
	assert.Equal(t, color.NRGBA{0xff, 0x00, 0x00, 0x7f}, series[0].Line.Color)
}

func TestPlotRejectsLengthMismatch(t *testing.T) {
	s, _ := newTestSession(t, 1, 1, nil)
	err := s.Plot([]float64{1, 2, 3}, []float64{1})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Empty(t, s.DefaultSurface().Series())
}

func TestPlainTicks(t *testing.T) {
	for _, tick := range (plainTicks{}).Ticks(0, 1e6) {
		if tick.Label == "" {
			continue
		}
		assert.NotContains(t, tick.Label, "e", "tick %q in scientific notation", tick.Label)
		assert.NotContains(t, tick.Label, "E", "tick %q in scientific notation", tick.Label)
	}
}

func ExampleSession() {
	s, _ := New(1, 1, nil, Options{"showlegend": false})
	x := []float64{0, 1, 2, 3}
	y := []float64{0, 1, 4, 9}
	s.Plot(x, y, "b-o", Options{"label": "squares"})
	fmt.Println(len(s.DefaultSurface().Series()))
	// Output: 1
}
