package plot

import "github.com/wcharczuk/go-chart/v2/drawing"

// viridisAnchors samples the viridis colormap at eleven evenly spaced
// stops, dark violet through teal to yellow. Intermediate values
// interpolate linearly between neighbouring stops.
var viridisAnchors = [][3]uint8{
	{68, 1, 84}, {72, 36, 117}, {65, 68, 135}, {53, 95, 141},
	{42, 120, 142}, {33, 145, 140}, {34, 168, 132}, {68, 191, 112},
	{122, 209, 81}, {189, 223, 38}, {253, 231, 37},
}

// Viridis maps t in [0, 1] onto the viridis colormap. Out-of-range
// arguments clamp to the nearest end.
func Viridis(t float64) drawing.Color {
	last := len(viridisAnchors) - 1
	if t <= 0 {
		return anchorColor(0)
	}
	if t >= 1 {
		return anchorColor(last)
	}
	pos := t * float64(last)
	i := int(pos)
	f := pos - float64(i)
	lo, hi := viridisAnchors[i], viridisAnchors[i+1]
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + f*(float64(b)-float64(a)) + 0.5)
	}
	return drawing.Color{R: lerp(lo[0], hi[0]), G: lerp(lo[1], hi[1]), B: lerp(lo[2], hi[2]), A: 255}
}

func anchorColor(i int) drawing.Color {
	a := viridisAnchors[i]
	return drawing.Color{R: a[0], G: a[1], B: a[2], A: 255}
}

// ReplicaColors assigns each of n replicas an evenly spaced viridis color,
// darkest first. A single replica gets the dark end of the map.
func ReplicaColors(n int) []drawing.Color {
	if n <= 0 {
		return nil
	}
	colors := make([]drawing.Color, n)
	for i := range colors {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		colors[i] = Viridis(t)
	}
	return colors
}
