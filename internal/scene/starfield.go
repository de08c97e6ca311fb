package scene

import (
	"math"
	"time"
)

// Starfield is a twinkling field of stars.
type Starfield struct {
	Count   int
	Seed    uint64
	Palette Palette
}

// Render implements Scene.
func (s Starfield) Render(width, height int, t time.Duration) string {
	g := newGrid(width, height)
	drawStars(g, s.Seed, s.Count, seconds(t))
	return g.render(s.Palette)
}

// drawStars scatters count stars over g. Each star twinkles on its own phase.
func drawStars(g *grid, seed uint64, count int, t float64) {
	r := newRNG(seed)
	for i := 0; i < count; i++ {
		x := int(r.float() * float64(g.w))
		y := int(r.float() * float64(g.h))
		phase := r.float() * 2 * math.Pi
		speed := 0.5 + r.float()
		b := math.Sin(t*speed + phase)
		switch {
		case b > 0.85:
			g.set(x, y, '✦', inkDim)
		case b > 0.1:
			g.set(x, y, '·', inkDim)
		case b > -0.6:
			g.set(x, y, '·', inkFaint)
		}
	}
}
