package question

import "testing"

func TestPercentage(t *testing.T) {
	tests := []struct {
		score, total, want int
	}{
		{3, 3, 100},
		{2, 3, 67}, // rounded
		{1, 3, 33},
		{0, 3, 0},
		{0, 0, 0}, // guard against empty sessions
	}

	for _, tt := range tests {
		if got := Percentage(tt.score, tt.total); got != tt.want {
			t.Errorf("Percentage(%d, %d) = %d, want %d", tt.score, tt.total, got, tt.want)
		}
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		pct  int
		want Band
	}{
		{100, BandPerfect},
		{99, BandGreat},
		{80, BandGreat},
		{79, BandPass},
		{60, BandPass},
		{59, BandNeedsWork},
		{40, BandNeedsWork},
		{39, BandPoor},
		{0, BandPoor},
	}

	for _, tt := range tests {
		if got := BandFor(tt.pct); got != tt.want {
			t.Errorf("BandFor(%d) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestBandMessagesPresent(t *testing.T) {
	for _, b := range []Band{BandPerfect, BandGreat, BandPass, BandNeedsWork, BandPoor} {
		if b.Message() == "" {
			t.Errorf("band %q has no message", b)
		}
	}
}
