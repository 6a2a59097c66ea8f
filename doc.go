// Package ccfeplot is a thin convenience wrapper around gonum/plot
// for interactive exploratory plotting. One Session bundles subplot
// grid creation, default styling, legend management and repeated line
// plotting into a short call surface:
//
//	s, _ := ccfeplot.New(2, 2, ccfeplot.NewPNGRenderer("fig.png"), nil)
//	s.Plot(x, y, "r--o", ccfeplot.Options{"label": "sin(x)"})
//	s.Plot(x, y2, ccfeplot.Options{"lw": 2, "label": "2 sin(x)"})
//
// # Options
//
// Styling parameters are passed as an Options map keyed by canonical
// name (color, linewidth, linestyle, marker, label, ...). A fixed
// alias table accepts the usual short forms, so lw is linewidth, c is
// color, mfc is markerfacecolor and so on. Session defaults fill in
// whatever a call leaves out; per-call values override them. Options
// that only make sense for a single series (label, color, marker,
// linestyle, colorcycle) never stick to the next call.
//
// Axis level options (xlabel, ylim, xscale, title, grid, ...) are
// routed to the target surface instead of the series.
//
// # Drawing Modes
//
// A session is either interactive or non-interactive, decided by the
// renderer given at construction. Interactive sessions repaint after
// every mutating call; in a non-interactive session Redraw degrades
// to a diagnostic message, as there is no live display to repaint.
//
// The package owns no data pipeline and no rendering: drawing is
// delegated to gonum.org/v1/plot, and a Renderer implementation
// decides where repaints go.
package ccfeplot
