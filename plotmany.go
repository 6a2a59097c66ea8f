package ccfeplot

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// PlotMany issues one Plot call per entry of a series collection.
//
// In "dict" mode ys is a map of series name to y values
// (map[string][]float64) and x is either a []float64 shared by every
// series or a map keyed like ys. In "array" mode ys is a [][]float64
// of rows and x is either shared or a [][]float64 of rows.
//
// Each option value may itself be per-series: a string-keyed map in
// dict mode, a slice in array mode. Strings and fixed-length
// coordinate tuples such as [2]float64 limits always broadcast as
// scalars, as does anything not indexable by the series key.
//
// An unrecognized mode is a recoverable usage mistake: it is reported
// as a diagnostic and the call plots nothing.
func (s *Session) PlotMany(x, ys interface{}, mode string, opts Options) error {
	opts = opts.Canonical()
	switch strings.ToLower(mode) {
	case "dict":
		ym, ok := ys.(map[string][]float64)
		if !ok {
			return invalidf("dict mode needs map[string][]float64 y values, got %T", ys)
		}
		keys := make([]string, 0, len(ym))
		for k := range ym {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, key := range keys {
			call := Options{}
			for name, v := range opts {
				call[name] = seriesValueByKey(v, key)
			}
			xv, err := xForKey(x, key)
			if err != nil {
				return err
			}
			if err := s.Plot(xv, ym[key], call); err != nil {
				return err
			}
		}
	case "array":
		yr, ok := ys.([][]float64)
		if !ok {
			return invalidf("array mode needs [][]float64 y values, got %T", ys)
		}
		for i, row := range yr {
			call := Options{}
			for name, v := range opts {
				call[name] = seriesValueByIndex(v, i)
			}
			xv, err := xForIndex(x, i)
			if err != nil {
				return err
			}
			if err := s.Plot(xv, row, call); err != nil {
				return err
			}
		}
	default:
		s.Warnf("incorrect mode %q for PlotMany; ignoring method call", mode)
	}
	return nil
}

func invalidf(f string, args ...interface{}) error {
	return fmt.Errorf("%w: "+f, append([]interface{}{ErrInvalidArgument}, args...)...)
}

// seriesValueByKey resolves one option value for the series key: a
// string-keyed map holding the key yields the per-series entry,
// anything else broadcasts.
func seriesValueByKey(v interface{}, key string) interface{} {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		if e := rv.MapIndex(reflect.ValueOf(key)); e.IsValid() {
			return e.Interface()
		}
	}
	return v
}

// seriesValueByIndex resolves one option value for the series index:
// a slice long enough yields the per-series entry; strings and
// fixed-length arrays (coordinate tuples) broadcast.
func seriesValueByIndex(v interface{}, i int) interface{} {
	if _, ok := v.(string); ok {
		return v
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice && i < rv.Len() {
		return rv.Index(i).Interface()
	}
	return v
}

func xForKey(x interface{}, key string) ([]float64, error) {
	switch xv := x.(type) {
	case []float64:
		return xv, nil
	case map[string][]float64:
		if v, ok := xv[key]; ok {
			return v, nil
		}
		return nil, invalidf("no x values for series %q", key)
	}
	return nil, invalidf("dict mode needs []float64 or map[string][]float64 x values, got %T", x)
}

func xForIndex(x interface{}, i int) ([]float64, error) {
	switch xv := x.(type) {
	case []float64:
		return xv, nil
	case [][]float64:
		if i < len(xv) {
			return xv[i], nil
		}
		return nil, invalidf("no x values for series %d", i)
	}
	return nil, invalidf("array mode needs []float64 or [][]float64 x values, got %T", x)
}
