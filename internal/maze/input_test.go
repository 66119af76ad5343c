package maze

import (
	"testing"

	"github.com/vovakirdan/joystick-maze/internal/core"
)

func TestMapAxis(t *testing.T) {
	const low, high, step = 1000, 3000, 2

	tests := []struct {
		name   string
		sample AxisSample
		want   core.Vec2
	}{
		{"rest", AxisSample{2048, 2048}, core.V(0, 0)},
		{"left", AxisSample{999, 2048}, core.V(-2, 0)},
		{"right", AxisSample{3001, 2048}, core.V(2, 0)},
		{"up", AxisSample{2048, 0}, core.V(0, -2)},
		{"down", AxisSample{2048, 4095}, core.V(0, 2)},
		{"diagonal", AxisSample{0, 4095}, core.V(-2, 2)},
		{"low bound is rest", AxisSample{1000, 1000}, core.V(0, 0)},
		{"high bound is rest", AxisSample{3000, 3000}, core.V(0, 0)},
		{"beyond sensor range", AxisSample{-50, 9000}, core.V(-2, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MapAxis(tc.sample, low, high, step); got != tc.want {
				t.Errorf("MapAxis(%+v) = %v, expected %v", tc.sample, got, tc.want)
			}
		})
	}
}

func TestMapAxisThresholdMonotonicity(t *testing.T) {
	const low, high, step = 1000, 3000, 3

	// Sweep the full 12-bit range on one axis while the other rests, then swap.
	for v := 0; v <= 4095; v++ {
		want := 0
		switch {
		case v < low:
			want = -step
		case v > high:
			want = step
		}

		gotX := MapAxis(AxisSample{X: v, Y: 2048}, low, high, step)
		if gotX.X != want || gotX.Y != 0 {
			t.Fatalf("x=%d: got %v, expected (%d,0)", v, gotX, want)
		}

		gotY := MapAxis(AxisSample{X: 2048, Y: v}, low, high, step)
		if gotY.Y != want || gotY.X != 0 {
			t.Fatalf("y=%d: got %v, expected (0,%d)", v, gotY, want)
		}
	}
}

func TestMapAxisPure(t *testing.T) {
	s := AxisSample{X: 500, Y: 3500}
	first := MapAxis(s, 1000, 3000, 2)
	for i := 0; i < 100; i++ {
		if got := MapAxis(s, 1000, 3000, 2); got != first {
			t.Fatalf("MapAxis is not deterministic: %v vs %v", got, first)
		}
	}
}

func TestMapperMatchesMapAxis(t *testing.T) {
	m := NewMapper(Thresholds{Low: 1000, High: 3000}, 2)

	for _, s := range []AxisSample{{0, 0}, {2048, 2048}, {4095, 10}, {1000, 3001}} {
		if got, want := m.Map(s), MapAxis(s, 1000, 3000, 2); got != want {
			t.Errorf("Map(%+v) = %v, MapAxis = %v", s, got, want)
		}
	}
}

func TestMapperRecentered(t *testing.T) {
	m := NewMapper(Thresholds{Low: 1000, High: 3000}, 2)

	// Stick rests 200 high on X and 100 low on Y
	r := m.Recentered(Calibration{XCenter: 2248, YCenter: 1948}, 2048)

	if r.X != (Thresholds{Low: 1200, High: 3200}) {
		t.Errorf("X thresholds = %+v, expected {1200 3200}", r.X)
	}
	if r.Y != (Thresholds{Low: 900, High: 2900}) {
		t.Errorf("Y thresholds = %+v, expected {900 2900}", r.Y)
	}

	// 1100 is below the shifted X low threshold but inside the fixed band
	if got := r.Map(AxisSample{X: 1100, Y: 1948}); got != core.V(-2, 0) {
		t.Errorf("recentered Map = %v, expected (-2,0)", got)
	}
	if got := m.Map(AxisSample{X: 1100, Y: 1948}); got != core.V(0, 0) {
		t.Errorf("fixed Map = %v, expected (0,0)", got)
	}
}
