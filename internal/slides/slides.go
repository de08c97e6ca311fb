// Package slides holds the content of the talk: six slides in a fixed order.
//
// A slide is a renderable unit with no behavior of its own. Slides with
// Steps > 0 present several internal states before the deck moves on; the
// deck package drives those states and passes the current one in Frame.Step.
package slides

import (
	"time"

	"agentdeck/internal/ui/textutil"
)

// Frame is everything a slide needs to draw itself.
type Frame struct {
	Width   int
	Height  int
	Step    int
	Elapsed time.Duration
}

// Slide is one unit of content in the deck.
type Slide struct {
	Title    string
	Subtitle string
	// Steps is the last internal step; 0 marks a plain slide.
	Steps  int
	render func(Frame) string
}

// Render draws the slide into exactly f.Width×f.Height cells.
func (s Slide) Render(f Frame) string {
	if s.render == nil {
		return textutil.Fit("", f.Width, f.Height)
	}
	return textutil.Fit(s.render(f), f.Width, f.Height)
}

// Stepped reports whether the slide has internal steps.
func (s Slide) Stepped() bool { return s.Steps > 0 }

// Talk returns the deck for "From Bricklayer to Architect".
func Talk() []Slide {
	return []Slide{
		{
			Title:    "From Bricklayer to Architect",
			Subtitle: "The Era of Agentic Coding",
			render:   renderIntro,
		},
		{
			Title:    "The Spectrum of Agency",
			Subtitle: "A journey from tools to teammates",
			Steps:    len(spectrumStops),
			render:   renderSpectrum,
		},
		{
			Title:    "Cursor",
			Subtitle: "The Bionic Suit",
			render:   renderCursor,
		},
		{
			Title:    "Claude CLI",
			Subtitle: "The Brain in a Box",
			render:   renderClaude,
		},
		{
			Title:    "Google Antigravity",
			Subtitle: "The Living Swarm",
			render:   renderAntigravity,
		},
		{
			Title:    "The Auto-Pilot Paradox",
			Subtitle: "The Risks of Total Agency",
			render:   renderParadox,
		},
	}
}

// StepCounts returns the per-slide step counts in deck order.
func StepCounts(s []Slide) []int {
	out := make([]int, len(s))
	for i, sl := range s {
		out[i] = sl.Steps
	}
	return out
}
