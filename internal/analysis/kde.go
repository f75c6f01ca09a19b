package analysis

import "math"

// DefaultKDEPoints is the grid resolution used when a caller passes a
// non-positive point count to KDE.
const DefaultKDEPoints = 200

// KDE evaluates a Gaussian kernel density estimate of values on a uniform
// grid. The bandwidth follows Scott's rule, h = s * n^(-1/5) with s the
// sample standard deviation, scaled by adjust (values <= 0 mean 1). The
// grid spans the data extended by three bandwidths on each side so the
// tails decay visibly instead of being clipped.
//
// The returned slices are the grid positions and the estimated density at
// each position. Fewer than two samples yield nil slices.
func KDE(values []float64, adjust float64, points int) (xs, ys []float64) {
	n := len(values)
	if n < 2 {
		return nil, nil
	}
	if points <= 0 {
		points = DefaultKDEPoints
	}
	if adjust <= 0 {
		adjust = 1
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)
	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(n - 1)
	std := math.Sqrt(variance)

	h := adjust * std * math.Pow(float64(n), -0.2)
	if h <= 0 {
		// zero-spread sample, fall back to a token bandwidth
		h = adjust
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	lo -= 3 * h
	hi += 3 * h

	xs = make([]float64, points)
	ys = make([]float64, points)
	step := (hi - lo) / float64(points-1)
	norm := 1 / (float64(n) * h * math.Sqrt(2*math.Pi))
	for i := range xs {
		x := lo + float64(i)*step
		xs[i] = x
		sum := 0.0
		for _, v := range values {
			u := (x - v) / h
			sum += math.Exp(-0.5 * u * u)
		}
		ys[i] = norm * sum
	}
	return xs, ys
}
