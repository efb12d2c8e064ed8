package question

import "math"

// Band is a feedback tier for a final score percentage.
type Band string

const (
	BandPerfect   Band = "perfect"
	BandGreat     Band = "great"
	BandPass      Band = "pass"
	BandNeedsWork Band = "needs-work"
	BandPoor      Band = "poor"
)

// bandMessages are the user-facing messages per tier.
var bandMessages = map[Band]string{
	BandPerfect:   "Excellent! You answered all questions correctly!",
	BandGreat:     "Very good! You did great!",
	BandPass:      "Good job! You passed the test!",
	BandNeedsWork: "You need to try harder!",
	BandPoor:      "Keep studying and try again!",
}

// Percentage converts a score out of total into a rounded percent.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// BandFor maps a percentage to its feedback tier:
// 100 perfect, >=80 great, >=60 pass, >=40 needs-work, else poor.
func BandFor(percentage int) Band {
	switch {
	case percentage >= 100:
		return BandPerfect
	case percentage >= 80:
		return BandGreat
	case percentage >= 60:
		return BandPass
	case percentage >= 40:
		return BandNeedsWork
	default:
		return BandPoor
	}
}

// Message returns the feedback message for the band.
func (b Band) Message() string {
	return bandMessages[b]
}
