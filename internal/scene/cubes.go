package scene

import (
	"math"
	"time"
)

// Cubes is a slowly turning cloud of floating blocks.
type Cubes struct {
	Count   int
	Seed    uint64
	Palette Palette
}

// Render implements Scene.
func (c Cubes) Render(width, height int, t time.Duration) string {
	g := newGrid(width, height)
	s := seconds(t)
	r := newRNG(c.Seed)
	turn := s * 0.1
	for i := 0; i < c.Count; i++ {
		// Positions are in [-1, 1] on x and z, [0, 1] on y.
		x0 := r.float()*2 - 1
		z0 := r.float()*2 - 1
		y0 := r.float()
		phase := r.float() * 2 * math.Pi

		x := x0*math.Cos(turn) - z0*math.Sin(turn)
		z := x0*math.Sin(turn) + z0*math.Cos(turn)
		bob := math.Sin(s*2+phase) * 0.6

		px := (x + 1) / 2 * float64(width-1)
		py := y0*float64(height-1) + bob
		tone := inkBody
		if i%2 == 1 {
			tone = inkBright
		}
		glyph := '■'
		if z < -0.3 {
			glyph, tone = '▪', inkDim
		}
		g.plot(px, py, glyph, tone)
	}
	return g.render(c.Palette)
}
