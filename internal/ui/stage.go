package ui

import (
	"math"
	"strings"

	"agentdeck/internal/ui/textutil"
)

// Reference resolution every slide is designed for.
const (
	RefWidth  = 1920
	RefHeight = 1080
)

// Scale is the uniform factor that fits a RefWidth×RefHeight canvas inside a
// vw×vh viewport without cropping.
func Scale(vw, vh float64) float64 {
	return math.Min(vw/RefWidth, vh/RefHeight)
}

// Canvas is where the slide lands inside the terminal, in cells.
type Canvas struct {
	X, Y          int
	Width, Height int
	Scale         float64
}

// Stage maps the fixed 16:9 canvas onto a grid of terminal cells.
type Stage struct {
	// CellAspect is the height of a cell in units of its width.
	CellAspect float64
}

// Fit computes the canvas for a cols×rows terminal area. Vertical distances
// are measured in cell widths so the canvas keeps its 16:9 shape on screen.
func (s Stage) Fit(cols, rows int) Canvas {
	if cols <= 0 || rows <= 0 {
		return Canvas{}
	}
	aspect := s.CellAspect
	if aspect <= 0 {
		aspect = 1
	}
	scale := Scale(float64(cols), float64(rows)*aspect)
	w := clamp(floor(RefWidth*scale), 1, cols)
	h := clamp(floor(RefHeight*scale/aspect), 1, rows)
	return Canvas{
		X:      (cols - w) / 2,
		Y:      (rows - h) / 2,
		Width:  w,
		Height: h,
		Scale:  scale,
	}
}

// Place draws content, already sized to the canvas, centered in a cols×rows
// block with blank letterbox margins.
func (s Stage) Place(c Canvas, cols, rows int, content string) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	body := strings.Split(textutil.Fit(content, c.Width, c.Height), "\n")
	left := strings.Repeat(" ", c.X)
	blank := strings.Repeat(" ", cols)
	out := make([]string, rows)
	for i := range out {
		j := i - c.Y
		if j < 0 || j >= len(body) {
			out[i] = blank
			continue
		}
		out[i] = textutil.FitLine(left+body[j], cols)
	}
	return strings.Join(out, "\n")
}

// floor tolerates float error so an exact fit is not lost to 79.999…
func floor(v float64) int {
	return int(math.Floor(v + 1e-9))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
