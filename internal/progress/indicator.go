// Package progress projects deck position into what the progress indicator shows.
// Everything here is a pure function of (current, total); callers recompute it
// on every render so the indicator can never lag the deck.
package progress

import "fmt"

// Fraction returns the filled share of the progress bar: (current+1)/total.
// Returns 0 when total is not positive.
func Fraction(current, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(current+1) / float64(total)
}

// Counter returns the human-readable position, e.g. "3 / 6".
func Counter(current, total int) string {
	return fmt.Sprintf("%d / %d", current+1, total)
}
