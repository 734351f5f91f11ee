package render

import (
	"image/color"

	"github.com/tanema/gween/ease"
)

// GradientAt returns the colour of a linear gradient at t in [0, 1].
// Channels are interpolated independently in non-premultiplied space.
func GradientAt(stops []GradientStop, t float64) color.NRGBA {
	switch {
	case len(stops) == 0:
		return Transparent
	case t <= stops[0].Offset:
		return stops[0].Color
	case t >= stops[len(stops)-1].Offset:
		return stops[len(stops)-1].Color
	}

	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		at := float32(t - a.Offset)
		d := float32(span)
		return color.NRGBA{
			R: lerpChannel(at, a.Color.R, b.Color.R, d),
			G: lerpChannel(at, a.Color.G, b.Color.G, d),
			B: lerpChannel(at, a.Color.B, b.Color.B, d),
			A: lerpChannel(at, a.Color.A, b.Color.A, d),
		}
	}
	return stops[len(stops)-1].Color
}

func lerpChannel(t float32, from, to uint8, d float32) uint8 {
	v := ease.Linear(t, float32(from), float32(to)-float32(from), d)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// FadeStops is a transparent-colour-transparent gradient peaking at the middle
func FadeStops(c color.NRGBA) []GradientStop {
	return []GradientStop{
		{Offset: 0, Color: Transparent},
		{Offset: 0.5, Color: c},
		{Offset: 1, Color: Transparent},
	}
}
