package telemetry

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// RenderSummary formats dwell rows as a table with a total line.
func RenderSummary(rows []Dwell) string {
	var total time.Duration
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("#", "Slide", "Time", "Visits").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, d := range rows {
		total += d.Duration
		t.Row(strconv.Itoa(d.Index+1), d.Title, formatDuration(d.Duration), strconv.Itoa(d.Visits))
	}
	return t.Render() + "\n" + fmt.Sprintf("Total: %s", formatDuration(total))
}

// formatDuration renders m:ss, rounded to the second.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
