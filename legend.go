package ccfeplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// UpdateLegend rebuilds the legend of the target surface from its
// labeled series, with the session's legend settings applied. An
// empty legend is legitimate (no labeled series yet, or none at all)
// and produces no warning. When legends are disabled for the session
// the registry entry is cleared and a nil handle returned.
func (s *Session) UpdateLegend(target interface{}) (*plot.Legend, error) {
	surf, err := s.Surface(target)
	if err != nil {
		return nil, err
	}

	if show, _ := toBool(s.other["showlegend"]); !show {
		s.legends[surf.Index()] = nil
		return nil, nil
	}

	leg := plot.NewLegend()
	if err := applyLegendSettings(&leg, s.legend); err != nil {
		return nil, err
	}
	if s.fontSize > 0 {
		leg.TextStyle.Font.Size = s.fontSize
	}
	for _, sr := range surf.series {
		if sr.Label == "" {
			continue
		}
		leg.Add(sr.Label, sr.thumbs()...)
	}

	surf.p.Legend = leg
	handle := &surf.p.Legend
	s.legends[surf.Index()] = handle
	return handle, nil
}

// UpdateAllLegends applies UpdateLegend to every surface in row-major
// order and returns the full index to legend mapping. With legends
// disabled every entry is nil.
func (s *Session) UpdateAllLegends() (map[Index]*plot.Legend, error) {
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			if _, err := s.UpdateLegend(Index{r, c}); err != nil {
				return nil, err
			}
		}
	}
	return s.legends, nil
}

// Legends returns the current index to legend registry. Surfaces
// whose legend was never populated are absent.
func (s *Session) Legends() map[Index]*plot.Legend { return s.legends }

// applyLegendSettings maps the recognized legend options onto the
// renderer's legend. The renderer has no frame alpha, column count,
// rounded corners or expand mode; those options are accepted and kept
// in the session settings but have no renderer-side effect.
func applyLegendSettings(leg *plot.Legend, settings Options) error {
	if v, ok := settings["loc"]; ok {
		str, ok := v.(string)
		if !ok {
			return fmt.Errorf("%w: legend loc %v is not a string", ErrInvalidArgument, v)
		}
		if err := applyLoc(leg, str); err != nil {
			return err
		}
	}
	if v, ok := settings["markerscale"]; ok {
		scale, ok := toFloat(v)
		if !ok {
			return fmt.Errorf("%w: legend markerscale %v is not a number", ErrInvalidArgument, v)
		}
		leg.ThumbnailWidth = vg.Length(float64(leg.ThumbnailWidth) * scale)
	}
	if v, ok := settings["bbox_to_anchor"]; ok {
		anchor, ok := toPair(v)
		if !ok {
			return fmt.Errorf("%w: legend bbox_to_anchor %v is not a pair", ErrInvalidArgument, v)
		}
		leg.XOffs = vg.Length(anchor[0]) * vg.Inch
		leg.YOffs = vg.Length(anchor[1]) * vg.Inch
	}
	return nil
}

// validateLegendSettings checks settings against a throwaway legend,
// so a plot call can reject them before anything reaches a surface.
func validateLegendSettings(settings Options) error {
	leg := plot.NewLegend()
	return applyLegendSettings(&leg, settings)
}

// applyLoc places the legend. The renderer only knows the four plot
// corners, so the center and edge locations snap to the nearest one.
func applyLoc(leg *plot.Legend, loc string) error {
	switch loc {
	case "best", "upper right", "upper center", "center":
		leg.Top = true
	case "upper left":
		leg.Top, leg.Left = true, true
	case "lower left", "center left":
		leg.Left = true
	case "lower right", "lower center", "center right", "right":
		// The zero placement.
	default:
		return fmt.Errorf("%w: legend loc %q", ErrInvalidArgument, loc)
	}
	return nil
}
