// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns an unstyled string occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens an unstyled string to at most maxWidth columns,
// ending in an ellipsis when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// PadRight truncates an unstyled string to width columns and pads it with
// spaces to exactly width. Wide runes count as two columns.
func PadRight(s string, width int) string {
	s = Truncate(s, width)
	if pad := width - VisualWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// Fit forces a styled block to exactly width×height cells: long lines are
// cut, short lines padded with spaces, extra lines dropped, missing lines added.
func Fit(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	blank := strings.Repeat(" ", width)
	out := make([]string, height)
	for i := range out {
		if i >= len(lines) {
			out[i] = blank
			continue
		}
		out[i] = FitLine(lines[i], width)
	}
	return strings.Join(out, "\n")
}

// FitLine cuts or pads one styled line to exactly width cells.
func FitLine(line string, width int) string {
	w := lipgloss.Width(line)
	switch {
	case w > width:
		line = ansi.Truncate(line, width, "")
		if pad := width - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		return line
	case w < width:
		return line + strings.Repeat(" ", width-w)
	}
	return line
}

// Pan places two width-wide blocks side by side and returns the width-wide
// window starting at column start. start 0 shows left, start width shows right.
func Pan(left, right string, width, start int) string {
	if width <= 0 {
		return ""
	}
	start = max(0, min(start, width))
	l := strings.Split(left, "\n")
	r := strings.Split(right, "\n")
	rows := max(len(l), len(r))
	out := make([]string, rows)
	for i := range out {
		var a, b string
		if i < len(l) {
			a = l[i]
		}
		if i < len(r) {
			b = r[i]
		}
		joined := FitLine(a, width) + FitLine(b, width)
		out[i] = FitLine(ansi.Cut(joined, start, start+width), width)
	}
	return strings.Join(out, "\n")
}
