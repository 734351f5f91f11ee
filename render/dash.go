package render

import "math"

// Segment is a stroked piece of a dashed line
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// DashSegments splits the line (x1,y1)-(x2,y2) into the visible pieces of a
// dash pattern. The pattern phase at distance s along the line is
// (s + offset) mod period, so a negative offset moves dashes forward.
// An odd-length pattern is repeated once, and an empty or all-zero pattern
// yields the whole line.
func DashSegments(x1, y1, x2, y2 float64, pattern []float64, offset float64) []Segment {
	whole := []Segment{{x1, y1, x2, y2}}
	if len(pattern) == 0 {
		return whole
	}
	if len(pattern)%2 == 1 {
		pattern = append(append([]float64{}, pattern...), pattern...)
	}
	period := 0.0
	for _, d := range pattern {
		if d < 0 {
			return whole
		}
		period += d
	}
	if period == 0 {
		return whole
	}

	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	ux, uy := dx/length, dy/length

	// Locate the pattern entry the line starts in
	phase := math.Mod(offset, period)
	if phase < 0 {
		phase += period
	}
	i := 0
	for phase >= pattern[i] {
		phase -= pattern[i]
		i = (i + 1) % len(pattern)
	}
	remaining := pattern[i] - phase

	var out []Segment
	s := 0.0
	for s < length {
		step := math.Min(remaining, length-s)
		if i%2 == 0 && step > 0 {
			out = append(out, Segment{
				X1: x1 + ux*s, Y1: y1 + uy*s,
				X2: x1 + ux*(s+step), Y2: y1 + uy*(s+step),
			})
		}
		s += step
		i = (i + 1) % len(pattern)
		remaining = pattern[i]
	}
	return out
}
