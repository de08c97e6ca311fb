package ui

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestScale(t *testing.T) {
	tests := []struct {
		vw, vh float64
		want   float64
	}{
		{1920, 1080, 1},
		{3840, 2160, 2},
		{1920, 2000, 1},
		{960, 1080, 0.5},
		{4000, 540, 0.5},
	}
	for _, tt := range tests {
		if got := Scale(tt.vw, tt.vh); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Scale(%v, %v) = %v, want %v", tt.vw, tt.vh, got, tt.want)
		}
	}
}

func TestStage_Fit(t *testing.T) {
	s := Stage{CellAspect: 2}

	tests := []struct {
		cols, rows int
		want       Canvas
	}{
		{80, 22, Canvas{X: 1, Y: 0, Width: 78, Height: 22}},
		{192, 200, Canvas{X: 0, Y: 73, Width: 192, Height: 54}},
		{96, 27, Canvas{X: 0, Y: 0, Width: 96, Height: 27}},
	}
	for _, tt := range tests {
		got := s.Fit(tt.cols, tt.rows)
		got.Scale = 0
		if got != tt.want {
			t.Errorf("Fit(%d, %d) = %+v, want %+v", tt.cols, tt.rows, got, tt.want)
		}
	}

	if (Stage{CellAspect: 2}).Fit(0, 10) != (Canvas{}) {
		t.Error("empty area should give an empty canvas")
	}
}

func TestStage_FitNeverExceedsArea(t *testing.T) {
	s := Stage{CellAspect: 2.1}
	for cols := 1; cols < 200; cols += 7 {
		for rows := 1; rows < 80; rows += 5 {
			c := s.Fit(cols, rows)
			if c.X < 0 || c.Y < 0 || c.X+c.Width > cols || c.Y+c.Height > rows {
				t.Fatalf("Fit(%d, %d) = %+v escapes the area", cols, rows, c)
			}
		}
	}
}

func TestStage_PlaceLetterboxes(t *testing.T) {
	s := Stage{CellAspect: 2}
	c := Canvas{X: 2, Y: 1, Width: 3, Height: 2}
	out := s.Place(c, 7, 4, "abc\ndef")
	want := "       \n  abc  \n  def  \n       "
	if out != want {
		t.Errorf("Place = %q, want %q", out, want)
	}

	big := s.Place(s.Fit(50, 20), 50, 20, strings.Repeat("x", 200))
	for i, l := range strings.Split(big, "\n") {
		if w := lipgloss.Width(l); w != 50 {
			t.Errorf("line %d width %d", i, w)
		}
	}
}
