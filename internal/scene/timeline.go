package scene

import (
	"math"
	"time"
)

// Timeline lays three tools along a glowing line, from assisted to autonomous.
// Active selects the highlighted node: 0 for none, 1 to 3 for a node.
type Timeline struct {
	Active  int
	Stars   int
	Seed    uint64
	Labels  [3]string
	Palette Palette
}

var timelineGlyphs = [3]rune{'▣', '▲', '◆'}

// Render implements Scene.
func (l Timeline) Render(width, height int, t time.Duration) string {
	g := newGrid(width, height)
	s := seconds(t)
	drawStars(g, l.Seed, l.Stars, s)
	if width < 3 || height < 3 {
		return g.render(l.Palette)
	}

	y := height / 2
	for x := 0; x < width; x++ {
		g.set(x, y, '━', inkBody)
	}

	for i := 0; i < 3; i++ {
		x := width * (2*i + 1) / 6
		active := l.Active == i+1
		tone := inkDim
		if active {
			tone = inkBright
		}
		bob := 0
		if math.Sin(s*2+float64(i)) > 0.6 {
			bob = -1
		}
		g.set(x, y-1+bob, timelineGlyphs[i], tone)
		if active {
			g.set(x-2, y-1+bob, '[', inkBright)
			g.set(x+2, y-1+bob, ']', inkBright)
		}
		label := l.Labels[i]
		labelInk := inkDim
		if active {
			labelInk = inkBright
		}
		g.text(x-len([]rune(label))/2, y+2, label, labelInk)
	}
	return g.render(l.Palette)
}
