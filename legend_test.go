package ccfeplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
)

func TestApplyLoc(t *testing.T) {
	tests := []struct {
		loc       string
		top, left bool
	}{
		{"best", true, false},
		{"upper right", true, false},
		{"upper center", true, false},
		{"center", true, false},
		{"upper left", true, true},
		{"lower left", false, true},
		{"center left", false, true},
		{"lower right", false, false},
		{"lower center", false, false},
		{"center right", false, false},
		{"right", false, false},
	}
	for i, tc := range tests {
		leg := plot.NewLegend()
		if err := applyLoc(&leg, tc.loc); err != nil {
			t.Errorf("%d %q: unexpected error %v", i, tc.loc, err)
			continue
		}
		if leg.Top != tc.top || leg.Left != tc.left {
			t.Errorf("%d %q: got top=%v left=%v want top=%v left=%v",
				i, tc.loc, leg.Top, leg.Left, tc.top, tc.left)
		}
	}

	leg := plot.NewLegend()
	if err := applyLoc(&leg, "nonsens"); err == nil {
		t.Errorf("bad loc accepted")
	}
}

func TestUpdateLegendUsesSessionSettings(t *testing.T) {
	s, _ := newTestSession(t, 1, 1, Options{"loc": "upper left"})
	require.NoError(t, s.Plot([]float64{1, 2}, []float64{3, 4}, Options{"label": "A"}))

	leg, err := s.UpdateLegend(nil)
	require.NoError(t, err)
	require.NotNil(t, leg)
	assert.True(t, leg.Top)
	assert.True(t, leg.Left)
}

func TestUpdateLegendTargetErrors(t *testing.T) {
	s, _ := newTestSession(t, 1, 1, nil)

	_, err := s.UpdateLegend(Index{4, 4})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = s.UpdateLegend(2)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestBadLegendSettingSurfacesOnPlot(t *testing.T) {
	s, _ := newTestSession(t, 1, 1, Options{"loc": "nonsens"})
	err := s.Plot([]float64{1, 2}, []float64{3, 4})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Empty(t, s.DefaultSurface().Series(), "rejected call must not plot")
}

func TestLegendRegistryTracksPopulation(t *testing.T) {
	s, _ := newTestSession(t, 2, 2, nil)
	assert.Empty(t, s.Legends(), "no legend before any plot call")

	require.NoError(t, s.Plot([]float64{1, 2}, []float64{3, 4}, Options{"ax": Index{1, 0}}))
	legends := s.Legends()
	require.Len(t, legends, 1)
	assert.NotNil(t, legends[Index{1, 0}])
}
