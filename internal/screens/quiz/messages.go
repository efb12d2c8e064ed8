package quiz

import "time"

// autosaveTickMsg drives the periodic snapshot check.
type autosaveTickMsg time.Time

// feedbackDoneMsg dismisses the per-question feedback overlay.
type feedbackDoneMsg struct{}
