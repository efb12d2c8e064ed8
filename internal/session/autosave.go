package session

import (
	"context"
	"fmt"
	"os"
	"time"
)

// DefaultAutosaveInterval matches the cadence of the periodic snapshot timer.
const DefaultAutosaveInterval = 30 * time.Second

// Saver performs periodic best-effort snapshots of an in-progress session.
// It is driven by the UI's tick messages, so saves interleave with user
// mutations on a single goroutine; every save writes the full record and the
// most recent snapshot wins.
type Saver struct {
	engine   *Engine
	interval time.Duration
	lastSave time.Time
}

// NewSaver builds a saver over the engine. A non-positive interval falls
// back to DefaultAutosaveInterval.
func NewSaver(engine *Engine, interval time.Duration) *Saver {
	if interval <= 0 {
		interval = DefaultAutosaveInterval
	}
	return &Saver{engine: engine, interval: interval}
}

// MaybeSave snapshots the session if the interval has elapsed. Completed
// sessions are not autosaved once their terminal snapshot is durable: the
// finished record is frozen and must not be overwritten. A completed session
// whose finishing save failed is still unsynced and gets retried here.
// Save failures are logged and retried on the next cycle. Returns true if a
// save was attempted.
func (s *Saver) MaybeSave(ctx context.Context, st *State) bool {
	if st == nil || st.finishedAndSynced() {
		return false
	}
	now := time.Now()
	if !s.lastSave.IsZero() && now.Sub(s.lastSave) < s.interval {
		return false
	}
	s.lastSave = now

	if err := s.engine.Save(ctx, st); err != nil {
		fmt.Fprintf(os.Stderr, "warning: autosave failed: %v\n", err)
	}
	return true
}

// Flush writes a final snapshot unconditionally, for quit paths. Completed
// sessions are skipped for the same reason as MaybeSave, unless their
// finishing save never landed.
func (s *Saver) Flush(ctx context.Context, st *State) {
	if st == nil || st.finishedAndSynced() {
		return
	}
	if err := s.engine.Save(ctx, st); err != nil {
		fmt.Fprintf(os.Stderr, "warning: final save failed: %v\n", err)
	}
}
