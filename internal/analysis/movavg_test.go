package analysis

import (
	"math"
	"testing"
)

func TestMovingAverageValues(t *testing.T) {
	got := MovingAverage([]float64{1, 2, 3, 4, 5}, 3)
	want := []float64{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("got[%d] = %g, want %g", i, got[i], want[i])
		}
	}
}

func TestMovingAverageLength(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i)
	}
	got := MovingAverage(values, 10)
	if len(got) != 91 {
		t.Fatalf("len = %d, want 91", len(got))
	}

	first := 0.0
	for _, v := range values[:10] {
		first += v
	}
	first /= 10
	if math.Abs(got[0]-first) > 1e-12 {
		t.Errorf("got[0] = %g, want mean of first window %g", got[0], first)
	}
	last := 0.0
	for _, v := range values[90:] {
		last += v
	}
	last /= 10
	if math.Abs(got[90]-last) > 1e-12 {
		t.Errorf("got[90] = %g, want mean of last window %g", got[90], last)
	}
}

func TestMovingAverageDegenerateWindows(t *testing.T) {
	values := []float64{1, 2, 3}
	tests := []struct {
		name   string
		window int
	}{
		{"zero window", 0},
		{"negative window", -4},
		{"window longer than data", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MovingAverage(values, tt.window); got != nil {
				t.Errorf("MovingAverage = %v, want nil", got)
			}
		})
	}
}

func TestMovingAverageWindowOne(t *testing.T) {
	values := []float64{3.5, -1, 0, 12}
	got := MovingAverage(values, 1)
	if len(got) != len(values) {
		t.Fatalf("len = %d, want %d", len(got), len(values))
	}
	for i := range values {
		if got[i] != values[i] {
			t.Errorf("got[%d] = %g, want %g", i, got[i], values[i])
		}
	}
}
