// Package scene draws the animated backdrops behind slides in character cells.
// Scenes are decorative: deterministic functions of size, seed and elapsed time.
package scene

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Scene renders one animation frame.
// The result has exactly height lines, each exactly width cells wide.
type Scene interface {
	Render(width, height int, t time.Duration) string
}

// ink selects a palette entry for a cell.
type ink uint8

const (
	inkNone ink = iota
	inkFaint
	inkDim
	inkBody
	inkBright
)

// Palette maps inks to styles. A zero style draws the glyph unstyled.
type Palette struct {
	Faint  lipgloss.Style
	Dim    lipgloss.Style
	Body   lipgloss.Style
	Bright lipgloss.Style
}

// NewPalette builds a palette around one accent color.
func NewPalette(accent, glow string) Palette {
	return Palette{
		Faint:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Body:   lipgloss.NewStyle().Foreground(lipgloss.Color(accent)),
		Bright: lipgloss.NewStyle().Foreground(lipgloss.Color(glow)).Bold(true),
	}
}

func (p Palette) style(i ink) lipgloss.Style {
	switch i {
	case inkFaint:
		return p.Faint
	case inkDim:
		return p.Dim
	case inkBody:
		return p.Body
	case inkBright:
		return p.Bright
	}
	return lipgloss.NewStyle()
}

type cell struct {
	r   rune
	ink ink
}

// grid is a fixed-size cell buffer. Writes outside the bounds are dropped.
type grid struct {
	w, h  int
	cells []cell
}

func newGrid(w, h int) *grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g := &grid{w: w, h: h, cells: make([]cell, w*h)}
	for i := range g.cells {
		g.cells[i] = cell{r: ' '}
	}
	return g
}

func (g *grid) set(x, y int, r rune, i ink) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[y*g.w+x] = cell{r: r, ink: i}
}

// plot is set with rounding, for float coordinates.
func (g *grid) plot(x, y float64, r rune, i ink) {
	g.set(int(math.Round(x)), int(math.Round(y)), r, i)
}

func (g *grid) text(x, y int, s string, i ink) {
	for _, r := range s {
		g.set(x, y, r, i)
		x++
	}
}

// render joins the grid into lines, styling runs of equal ink together.
func (g *grid) render(p Palette) string {
	lines := make([]string, g.h)
	var run strings.Builder
	for y := 0; y < g.h; y++ {
		var line strings.Builder
		cur := inkNone
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if cur == inkNone {
				line.WriteString(run.String())
			} else {
				line.WriteString(p.style(cur).Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < g.w; x++ {
			c := g.cells[y*g.w+x]
			i := c.ink
			if c.r == ' ' {
				i = inkNone
			}
			if i != cur {
				flush()
				cur = i
			}
			run.WriteRune(c.r)
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

// rng is a small deterministic generator so scenes look the same on every run.
type rng uint64

func (r *rng) next() uint64 {
	*r ^= *r << 13
	*r ^= *r >> 7
	*r ^= *r << 17
	return uint64(*r)
}

// float returns a value in [0, 1).
func (r *rng) float() float64 {
	return float64(r.next()>>11) / float64(1<<53)
}

func newRNG(seed uint64) *rng {
	if seed == 0 {
		seed = 0x9e3779b97f4a7c15
	}
	r := rng(seed)
	return &r
}

func seconds(t time.Duration) float64 { return t.Seconds() }
