package scene

import (
	"math"
	"time"
)

// Orb is a breathing wireframe shell around a pulsing core, optionally held in a box.
// Cursor's slide uses the bare orb; Claude's puts it in a box.
type Orb struct {
	Stars   int
	Seed    uint64
	Boxed   bool
	Palette Palette
}

// Render implements Scene.
func (o Orb) Render(width, height int, t time.Duration) string {
	g := newGrid(width, height)
	s := seconds(t)
	drawStars(g, o.Seed, o.Stars, s)

	cx := float64(width-1) / 2
	cy := float64(height-1) / 2
	// Rows are about twice as tall as columns are wide.
	base := math.Min(float64(height)*0.38, float64(width)*0.19)
	if base < 1 {
		return g.render(o.Palette)
	}

	if o.Boxed {
		half := base * 1.25
		drawBox(g, cx, cy, half*2, half, math.Sin(s*0.2)*0.6)
	}

	shell := base * (1 + math.Sin(s*0.5)*0.04)
	spin := s * 0.35
	// Meridians of the shell, foreshortened by the spin.
	for m := 0; m < 3; m++ {
		squash := math.Cos(spin + float64(m)*math.Pi/3)
		for a := 0.0; a < 2*math.Pi; a += math.Pi / 48 {
			x := cx + math.Cos(a)*shell*2*squash
			y := cy + math.Sin(a)*shell
			g.plot(x, y, '·', inkBody)
		}
	}
	for a := 0.0; a < 2*math.Pi; a += math.Pi / 64 {
		g.plot(cx+math.Cos(a)*shell*2, cy+math.Sin(a)*shell, '•', inkBody)
	}

	core := shell * (0.35 + math.Sin(s*2)*0.02)
	for y := -core; y <= core; y += 0.5 {
		span := math.Sqrt(math.Max(0, core*core-y*y)) * 2
		for x := -span; x <= span; x += 0.5 {
			g.plot(cx+x, cy+y, '●', inkBright)
		}
	}
	return g.render(o.Palette)
}

// drawBox outlines a rectangle centered at (cx, cy), nudged sideways by tilt cells.
func drawBox(g *grid, cx, cy, halfW, halfH, tilt float64) {
	left := int(math.Round(cx - halfW + tilt))
	right := int(math.Round(cx + halfW + tilt))
	top := int(math.Round(cy - halfH))
	bottom := int(math.Round(cy + halfH))
	for x := left + 1; x < right; x++ {
		g.set(x, top, '─', inkDim)
		g.set(x, bottom, '─', inkDim)
	}
	for y := top + 1; y < bottom; y++ {
		g.set(left, y, '│', inkDim)
		g.set(right, y, '│', inkDim)
	}
	g.set(left, top, '╭', inkDim)
	g.set(right, top, '╮', inkDim)
	g.set(left, bottom, '╰', inkDim)
	g.set(right, bottom, '╯', inkDim)
}
