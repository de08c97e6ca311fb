package ui

import (
	"agentdeck/internal/progress"

	bprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ProgressBar is the full-width strip along the bottom edge plus the
// "n / total" counter. It is recomputed from the deck on every render.
type ProgressBar struct {
	bar bprogress.Model
}

// NewProgressBar creates an unanimated, label-free bar.
func NewProgressBar() ProgressBar {
	bar := bprogress.New(
		bprogress.WithSolidFill(ColorAccent),
		bprogress.WithoutPercentage(),
		bprogress.WithFillCharacters('━', '━'),
	)
	bar.EmptyColor = ColorTrack
	return ProgressBar{bar: bar}
}

// View renders the bar width cells wide for the given position.
func (p ProgressBar) View(current, total, width int) string {
	if width <= 0 {
		return ""
	}
	p.bar.Width = width
	return p.bar.ViewAs(progress.Fraction(current, total))
}

// Counter renders the position label.
func (p ProgressBar) Counter(current, total int) string {
	return Styles.Status.Render(progress.Counter(current, total))
}

// statusRow puts left at the start and right at the end of a width-wide row.
func statusRow(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(gap).Render(""), right)
}
