package plot

import "image/color"

// Colormap is a two-stop linear color ramp.
type Colormap struct {
	Name     string
	From, To color.RGBA
}

var (
	// Winter runs from blue to spring green.
	Winter = Colormap{Name: "winter", From: color.RGBA{0, 0, 255, 255}, To: color.RGBA{0, 255, 128, 255}}
	// Autumn runs from red to yellow.
	Autumn = Colormap{Name: "autumn", From: color.RGBA{255, 0, 0, 255}, To: color.RGBA{255, 255, 0, 255}}
)

// Black is the default stroke color.
var Black = color.RGBA{0, 0, 0, 255}

// At returns the color at t, clamped to [0, 1].
func (c Colormap) At(t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(a, b uint8) uint8 { return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5) }
	return color.RGBA{
		R: lerp(c.From.R, c.To.R),
		G: lerp(c.From.G, c.To.G),
		B: lerp(c.From.B, c.To.B),
		A: lerp(c.From.A, c.To.A),
	}
}

// ColormapByName resolves "winter" or "autumn"; anything else yields Autumn.
func ColormapByName(name string) Colormap {
	if name == Winter.Name {
		return Winter
	}
	return Autumn
}
