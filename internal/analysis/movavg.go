package analysis

// MovingAverage smooths values with an unweighted sliding window, keeping
// only positions where the window overlaps the data completely. The result
// therefore has len(values)-window+1 points, and result[i] is the mean of
// values[i:i+window].
//
// A window that is non-positive or longer than the data yields nil.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 0 || window > len(values) {
		return nil
	}
	out := make([]float64, 0, len(values)-window+1)
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out = append(out, sum/float64(window))
		}
	}
	return out
}
