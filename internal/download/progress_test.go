package download

import "testing"

func TestFraction(t *testing.T) {
	tests := []struct {
		written, total int64
		want           float64
	}{
		{0, 100, 0},
		{50, 100, 0.5},
		{150, 100, 1},
		{10, 0, -1},
		{10, -1, -1},
	}

	for _, tt := range tests {
		if got := Fraction(tt.written, tt.total); got != tt.want {
			t.Errorf("Fraction(%d, %d) = %v, want %v", tt.written, tt.total, got, tt.want)
		}
	}
}

func TestFormatProgress(t *testing.T) {
	tests := []struct {
		written, total int64
		want           string
	}{
		{0, -1, "0 B"},
		{1500, -1, "1.5 kB"},
		{1000000, 40000000, "1.0 MB / 40 MB"},
		{-5, 0, "0 B"},
	}

	for _, tt := range tests {
		if got := FormatProgress(tt.written, tt.total); got != tt.want {
			t.Errorf("FormatProgress(%d, %d) = %q, want %q", tt.written, tt.total, got, tt.want)
		}
	}
}
