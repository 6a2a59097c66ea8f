package ccfeplot

import "fmt"

// Plot draws one line series on the target surface. After x and y the
// call may pass a compact format spec string like "r--o" and/or an
// Options map; format spec settings are overridden by equally named
// options. The target comes from the "ax" option (nil for the session
// default); an explicit target also becomes the new default, matching
// the active-surface behavior of the interactive workflow.
//
// Session line defaults fill in whatever the call leaves out and
// per-call options override them. Options that are unique per call
// (label, color, marker, linestyle, colorcycle) never persist; the
// remaining line and axis options do.
func (s *Session) Plot(x, y []float64, args ...interface{}) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d x values vs %d y values", ErrInvalidArgument, len(x), len(y))
	}

	opts := Options{}
	for _, a := range args {
		switch v := a.(type) {
		case string:
			fmtOpts, err := parseFormat(v)
			if err != nil {
				return err
			}
			opts = fmtOpts.Combine(opts)
		case Options:
			opts = opts.Combine(v.Canonical())
		case map[string]interface{}:
			opts = opts.Combine(Options(v).Canonical())
		default:
			return fmt.Errorf("%w: plot argument %T (want format spec or Options)", ErrInvalidArgument, a)
		}
	}

	target, explicit := opts["ax"]
	delete(opts, "ax")
	var surf *Surface
	var err error
	if explicit {
		surf, err = s.SetDefaultSurface(target)
	} else {
		surf, err = s.Surface(nil)
	}
	if err != nil {
		return err
	}

	// Sort the call options into their buckets before touching any
	// session state, so a bad option fails without partial mutation.
	callLine := Options{}
	callAxis := Options{}
	callLegend := Options{}
	callOther := Options{}
	for name, v := range opts {
		switch {
		case lineOptions.Contains(name):
			callLine[name] = v
		case axisOptions.Contains(name):
			callAxis[name] = v
		case legendOptions.Contains(name):
			callLegend[name] = v
		case otherOptions.Contains(name):
			callOther[name] = v
		default:
			return fmt.Errorf("%w: unrecognized plot option %q", ErrInvalidArgument, name)
		}
	}

	lineOpts := s.line.Combine(callLine)
	axis := s.axis.Combine(callAxis)

	// Validate the axis and legend buckets up front: once the first
	// artist reaches the surface a failing call would leave a half
	// plotted state behind.
	for name, v := range axis {
		if name == "fontsize" {
			size, ok := toFloat(v)
			if !ok || size <= 0 {
				return fmt.Errorf("%w: fontsize %v", ErrInvalidArgument, v)
			}
			continue
		}
		if err := checkAxisOption(name, v); err != nil {
			return err
		}
	}
	if err := validateLegendSettings(s.legend.Combine(callLegend)); err != nil {
		return err
	}

	if _, err := surf.addSeries(x, y, lineOpts); err != nil {
		return err
	}

	// Axis options are applied after the series is added so explicit
	// limits win over the data-driven ranges the renderer picks up.
	for name, v := range axis {
		if name == "fontsize" {
			size, _ := toFloat(v)
			if err := s.SetFontSize(size); err != nil {
				return err
			}
			continue
		}
		if err := surf.applyAxisOption(name, v); err != nil {
			return err
		}
	}

	// Persist non-unique options into the session dictionaries, only
	// now that they are known to be good.
	for name, v := range callLine {
		if !uniqueOptions.Contains(name) {
			s.line[name] = v
		}
	}
	for name, v := range callLegend {
		s.legend[name] = v
	}
	for name, v := range callOther {
		s.other[name] = v
	}
	for name, v := range callAxis {
		if name == "fontsize" || uniqueOptions.Contains(name) {
			continue
		}
		s.axis[name] = v
	}

	if show, _ := toBool(s.other["showlegend"]); show {
		if _, err := s.UpdateLegend(surf); err != nil {
			return err
		}
	}

	if s.interactive {
		return s.Redraw()
	}
	return nil
}
