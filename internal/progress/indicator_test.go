package progress

import "testing"

func TestFraction(t *testing.T) {
	tests := []struct {
		current, total int
		want           float64
	}{
		{0, 1, 1},
		{0, 6, 1.0 / 6},
		{2, 6, 0.5},
		{5, 6, 1},
		{0, 0, 0},
		{3, -1, 0},
	}
	for _, tt := range tests {
		if got := Fraction(tt.current, tt.total); got != tt.want {
			t.Errorf("Fraction(%d, %d) = %v, want %v", tt.current, tt.total, got, tt.want)
		}
	}
}

func TestFraction_MatchesEveryPosition(t *testing.T) {
	for n := 1; n <= 10; n++ {
		for i := 0; i < n; i++ {
			want := float64(i+1) / float64(n)
			if got := Fraction(i, n); got != want {
				t.Errorf("N=%d i=%d: got %v, want %v", n, i, got, want)
			}
		}
	}
}

func TestCounter(t *testing.T) {
	if got := Counter(2, 6); got != "3 / 6" {
		t.Errorf("Counter(2, 6) = %q, want %q", got, "3 / 6")
	}
	if got := Counter(0, 1); got != "1 / 1" {
		t.Errorf("Counter(0, 1) = %q, want %q", got, "1 / 1")
	}
}
