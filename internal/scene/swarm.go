package scene

import (
	"math"
	"time"
)

// Swarm is a glowing core with particles orbiting it at different radii and speeds.
type Swarm struct {
	Particles int
	Stars     int
	Seed      uint64
	Palette   Palette
}

// Render implements Scene.
func (w Swarm) Render(width, height int, t time.Duration) string {
	g := newGrid(width, height)
	s := seconds(t)
	drawStars(g, w.Seed, w.Stars, s)

	cx := float64(width-1) / 2
	cy := float64(height-1) / 2
	reach := math.Min(float64(height)*0.45, float64(width)*0.22)
	if reach < 1 {
		return g.render(w.Palette)
	}

	r := newRNG(w.Seed + 1)
	group := s * 0.05 * 2 * math.Pi
	for i := 0; i < w.Particles; i++ {
		radius := reach * (0.3 + 0.7*r.float())
		phase := r.float() * 2 * math.Pi
		speed := 0.2 + r.float()*0.6
		tilt := 0.3 + r.float()*0.7
		a := phase + group + s*speed
		x := cx + math.Cos(a)*radius*2
		y := cy + math.Sin(a)*radius*tilt
		glyph, tone := '•', inkBody
		if math.Sin(a) > 0.5 {
			glyph, tone = '·', inkDim
		}
		g.plot(x, y, glyph, tone)
	}

	g.plot(cx-1, cy, '(', inkBody)
	g.plot(cx, cy, '●', inkBright)
	g.plot(cx+1, cy, ')', inkBody)
	return g.render(w.Palette)
}
