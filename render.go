package ccfeplot

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Frame is one repaint request: the grid of plots plus the figure
// geometry from the session's figure settings.
type Frame struct {
	Grid   [][]*plot.Plot
	Width  vg.Length
	Height vg.Length
	DPI    int
}

// Renderer is the drawing backend a session repaints into. The
// session queries the drawing mode once at construction; a renderer
// reporting non-interactive turns every implicit redraw off.
type Renderer interface {
	// Interactive reports whether a live display exists that is
	// worth repainting after every mutating call.
	Interactive() bool

	// Open reports whether the figure window is still open.
	Open() bool

	// Show (re-)displays the figure window.
	Show() error

	// Repaint renders the frame.
	Repaint(f Frame) error
}

// nonInteractive is the zero renderer of a session constructed
// without one. It has no display, so there is nothing to repaint.
type nonInteractive struct{}

func (nonInteractive) Interactive() bool   { return false }
func (nonInteractive) Open() bool          { return false }
func (nonInteractive) Show() error         { return nil }
func (nonInteractive) Repaint(Frame) error { return nil }

// PNGRenderer repaints the session into a PNG file, tiling the grid
// of surfaces onto one canvas. Every repaint overwrites the file, so
// an image viewer watching it behaves like an interactive window.
type PNGRenderer struct {
	Path string

	closed bool
}

var _ Renderer = (*PNGRenderer)(nil)

func NewPNGRenderer(path string) *PNGRenderer {
	return &PNGRenderer{Path: path}
}

func (r *PNGRenderer) Interactive() bool { return true }
func (r *PNGRenderer) Open() bool        { return !r.closed }

func (r *PNGRenderer) Show() error {
	r.closed = false
	return nil
}

// Close marks the window as closed; the next redraw re-shows it.
func (r *PNGRenderer) Close() { r.closed = true }

func (r *PNGRenderer) Repaint(f Frame) error {
	if len(f.Grid) == 0 || len(f.Grid[0]) == 0 {
		return fmt.Errorf("%w: empty frame", ErrInvalidArgument)
	}
	img := vgimg.NewWith(
		vgimg.UseWH(f.Width, f.Height),
		vgimg.UseDPI(f.DPI),
	)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: len(f.Grid),
		Cols: len(f.Grid[0]),
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}
	canvases := plot.Align(f.Grid, tiles, dc)
	for i := range f.Grid {
		for j := range f.Grid[i] {
			if f.Grid[i][j] != nil {
				f.Grid[i][j].Draw(canvases[i][j])
			}
		}
	}

	w, err := os.Create(r.Path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
